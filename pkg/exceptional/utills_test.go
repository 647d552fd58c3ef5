package exceptional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	t.Parallel()

	var ptr *int
	var m map[string]int
	var s []int
	var fn func()
	var ch chan int
	var err error

	for _, v := range []interface{}{nil, ptr, m, s, fn, ch, err} {
		assert.True(t, IsNil(v), "%T", v)
	}

	n := 0
	for _, v := range []interface{}{0, "", false, &n, []int{}, map[string]int{}, struct{}{}} {
		assert.False(t, IsNil(v), "%T", v)
	}
}

func TestRequireNonNil(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { RequireNonNil(1, "v") })

	err := raisedError(t, func() { RequireNonNil(nil, "thing") })
	assert.ErrorIs(t, err, ErrContractViolation)
	assert.Contains(t, err.Error(), "thing must not be nil")
}

type boxCatcher struct {
	inner interface{}
}

func (boxCatcher) Handle(error) {}

type boxErr struct {
	details interface{}
}

func (boxErr) Error() string { return "box" }

func TestSameCatcher_UncomparableField(t *testing.T) {
	t.Parallel()

	a := boxCatcher{inner: []int{1}}
	b := boxCatcher{inner: []int{1}}

	assert.NotPanics(t, func() { SameCatcher(a, b) })
	assert.False(t, SameCatcher(a, b))
	assert.False(t, SameCatcher(a, a))
	assert.True(t, SameCatcher(boxCatcher{inner: 1}, boxCatcher{inner: 1}))
}

func TestEqual_UncomparableField(t *testing.T) {
	t.Parallel()

	assert.True(t, equal(boxErr{details: []int{1}}, boxErr{details: []int{1}}))
	assert.False(t, equal(boxErr{details: []int{1}}, boxErr{details: []int{2}}))
	assert.False(t, identical(boxErr{details: []int{1}}, boxErr{details: []int{1}}))
}
