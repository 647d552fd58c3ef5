package exceptional

import (
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaught_NeverDoubleWraps(t *testing.T) {
	t.Parallel()

	for _, err := range []error{io.EOF, ioFailure(), errors.New("x"), Fatal(io.EOF)} {
		once := Caught(err)
		assert.Same(t, once, Caught(once))
		assert.Same(t, once, Caught(Caught(once)))
		assert.Equal(t, err, once.Cause())
	}
}

func TestCaught_KeepsCauseIdentity(t *testing.T) {
	t.Parallel()

	cause := ioFailure()
	r := Caught(cause)

	assert.Same(t, cause, r.Cause())
	assert.Same(t, cause, r.Unwrap())
	assert.True(t, errors.Is(r, fs.ErrPermission))
	assert.Equal(t, cause.Error(), r.Error())
}

func TestNewRethrow_RejectsNilCause(t *testing.T) {
	t.Parallel()

	err := raisedError(t, func() { NewRethrow(nil) })
	assert.ErrorIs(t, err, ErrContractViolation)

	var typedNil *fs.PathError
	err = raisedError(t, func() { NewRethrow(typedNil) })
	assert.ErrorIs(t, err, ErrContractViolation)

	err = raisedError(t, func() { Caught(nil) })
	assert.ErrorIs(t, err, ErrContractViolation)
}

func TestNewRethrow_AlwaysWraps(t *testing.T) {
	t.Parallel()

	inner := Caught(io.EOF)
	outer := NewRethrow(inner)

	assert.NotSame(t, inner, outer)
	assert.Same(t, inner, outer.Cause())
}

func TestRethrow_ID(t *testing.T) {
	t.Parallel()

	a, b := Caught(io.EOF), Caught(io.EOF)
	assert.NotEqual(t, uuid.Nil, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Contains(t, a.String(), a.ID().String())
}

func TestCauseAs(t *testing.T) {
	t.Parallel()

	r := Caught(ioFailure())

	pathErr, ok := CauseAs[*fs.PathError](r)
	require.True(t, ok)
	assert.Equal(t, "x", pathErr.Path)

	_, ok = CauseAs[*Rethrow](r)
	assert.False(t, ok)

	_, ok = CauseAs[*fs.PathError](nil)
	assert.False(t, ok)
}
