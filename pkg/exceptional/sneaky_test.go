package exceptional

import (
	"errors"
	"io"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmuggle_RaisesExactError(t *testing.T) {
	t.Parallel()

	_, parseErr := strconv.Atoi("x")
	for _, err := range []error{ioFailure(), parseErr, io.ErrUnexpectedEOF} {
		got := raisedError(t, func() { _ = Smuggle(err) })
		assert.Equal(t, err, got)

		var r *Rethrow
		assert.False(t, errors.As(got, &r), "smuggled errors must not be wrapped")
	}
}

func TestSmuggleValue(t *testing.T) {
	t.Parallel()

	err := ioFailure()
	got := raisedError(t, func() { _ = SmuggleValue[int](err) })
	assert.Same(t, err, got)
}

func TestSmuggle_Nil(t *testing.T) {
	t.Parallel()

	err := raisedError(t, func() { _ = Smuggle(nil) })
	assert.ErrorIs(t, err, ErrContractViolation)
}

func TestSneaky_IsACatcher(t *testing.T) {
	t.Parallel()

	err := ioFailure()
	got := raisedError(t, func() { Dispatch(Sneaky, err) })
	assert.Same(t, err, got)
}
