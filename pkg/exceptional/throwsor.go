package exceptional

import "fmt"

// ThrowsOr holds the outcome of one call: a value, a failure, or nothing.
// The zero value is empty. A ThrowsOr never changes after construction.
type ThrowsOr[V any] struct {
	value   V
	present bool
	failure error
	raised  *Rethrow
}

// Empty holds nothing.
func Empty[V any]() ThrowsOr[V] {
	return ThrowsOr[V]{}
}

// Value holds v. An absent v is a contract violation.
func Value[V any](v V) ThrowsOr[V] {
	RequireNonNil(v, "value")
	return ThrowsOr[V]{
		value:   v,
		present: true,
	}
}

// ValueOr holds v, or the failure returned by failure when v is absent.
// failure runs only in that case.
func ValueOr[V any](v V, failure func() error) ThrowsOr[V] {
	RequireNonNil(failure, "failure")
	if IsNil(v) {
		return RaiseFrom[V](failure)
	}
	return Value(v)
}

// Maybe holds v, or nothing when v is absent.
func Maybe[V any](v V) ThrowsOr[V] {
	if IsNil(v) {
		return Empty[V]()
	}
	return Value(v)
}

// Raise holds err. A nil err is a contract violation.
func Raise[V any](err error) ThrowsOr[V] {
	RequireNonNil(err, "failure")
	return ThrowsOr[V]{
		failure: err,
		raised:  Caught(err),
	}
}

// RaiseFrom holds the failure returned by failure, which must not be nil.
func RaiseFrom[V any](failure func() error) ThrowsOr[V] {
	RequireNonNil(failure, "failure")
	return Raise[V](failure())
}

// Result runs fn once and remembers what happened. Fatal failures are raised
// instead of being held.
func Result[V any](fn func() (V, error)) ThrowsOr[V] {
	RequireNonNil(fn, "fn")

	v, err := CaptureValue(fn)
	if err != nil {
		if IsFatal(err) {
			panic(err)
		}
		return Raise[V](err)
	}
	return Maybe(v)
}

// Propagate retypes a failure-holding t. Any other state is a contract
// violation.
func Propagate[T, V any](t ThrowsOr[V]) ThrowsOr[T] {
	if t.failure == nil {
		violateWith(ErrNotExceptional)
	}
	return ThrowsOr[T]{
		failure: t.failure,
		raised:  t.raised,
	}
}

func (t ThrowsOr[V]) IsEmpty() bool {
	return !t.present && t.failure == nil
}

func (t ThrowsOr[V]) IsValuePresent() bool {
	return t.present
}

func (t ThrowsOr[V]) IsValueEmpty() bool {
	return !t.present
}

func (t ThrowsOr[V]) IsExceptional() bool {
	return t.failure != nil
}

func (t ThrowsOr[V]) IsNotExceptional() bool {
	return t.failure == nil
}

func (t ThrowsOr[V]) Value() (V, bool) {
	return t.value, t.present
}

// Err returns the held failure, or nil.
func (t ThrowsOr[V]) Err() error {
	return t.failure
}

// Unwrap returns the value, the held failure, or ErrEmpty.
func (t ThrowsOr[V]) Unwrap() (V, error) {
	switch {
	case t.failure != nil:
		return t.value, t.failure
	case t.present:
		return t.value, nil
	default:
		return t.value, ErrEmpty
	}
}

// GetOrThrow returns the value. A held failure is raised as a Rethrow, the
// same one on every call; an empty container raises ErrEmpty.
func (t ThrowsOr[V]) GetOrThrow() V {
	if t.failure != nil {
		panic(t.raised)
	}
	if !t.present {
		violateWith(ErrEmpty)
	}
	return t.value
}

// ExceptionOrThrow returns the held failure or raises ErrNoFailure.
func (t ThrowsOr[V]) ExceptionOrThrow() error {
	if t.failure == nil {
		violateWith(ErrNoFailure)
	}
	return t.failure
}

// Equal compares values and failures; the Rethrow built for GetOrThrow is
// not part of the comparison.
func (t ThrowsOr[V]) Equal(other ThrowsOr[V]) bool {
	if t.present != other.present {
		return false
	}
	if t.present && !equal(t.value, other.value) {
		return false
	}
	return identical(t.failure, other.failure) || equal(t.failure, other.failure)
}

func (t ThrowsOr[V]) String() string {
	switch {
	case t.failure != nil:
		return fmt.Sprintf("ThrowsOr[exception=%T: %v]", t.failure, t.failure)
	case t.present:
		return fmt.Sprintf("ThrowsOr[value=%v]", t.value)
	default:
		return "ThrowsOr.empty"
	}
}
