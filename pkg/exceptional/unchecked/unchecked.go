// Package unchecked adapts may-fail functions into plain ones that raise a
// failure as an exceptional.Rethrow.
package unchecked

import "github.com/ib-77/exceptional/pkg/exceptional"

func raise(err error) {
	exceptional.Dispatch(exceptional.Rethrowing, err)
}

func Runnable(fn func() error) func() {
	exceptional.RequireNonNil(fn, "runnable")
	return func() {
		raise(fn())
	}
}

func Supplier[T any](fn func() (T, error)) func() T {
	exceptional.RequireNonNil(fn, "supplier")
	return func() T {
		v, err := fn()
		raise(err)
		return v
	}
}

func Consumer[T any](fn func(t T) error) func(t T) {
	exceptional.RequireNonNil(fn, "consumer")
	return func(t T) {
		raise(fn(t))
	}
}

func BiConsumer[T, U any](fn func(t T, u U) error) func(t T, u U) {
	exceptional.RequireNonNil(fn, "consumer")
	return func(t T, u U) {
		raise(fn(t, u))
	}
}

func Function[T, R any](fn func(t T) (R, error)) func(t T) R {
	exceptional.RequireNonNil(fn, "function")
	return func(t T) R {
		r, err := fn(t)
		raise(err)
		return r
	}
}

func BiFunction[T, U, R any](fn func(t T, u U) (R, error)) func(t T, u U) R {
	exceptional.RequireNonNil(fn, "function")
	return func(t T, u U) R {
		r, err := fn(t, u)
		raise(err)
		return r
	}
}

// Unchecked is a Rethrow whose cause is known to be an E.
type Unchecked[E error] struct {
	*exceptional.Rethrow
	checked E
}

// Wrap builds the typed wrapper around cause.
func Wrap[E error](cause E) *Unchecked[E] {
	return &Unchecked[E]{
		Rethrow: exceptional.NewRethrow(cause),
		checked: cause,
	}
}

// Checked returns the cause with its static type.
func (u *Unchecked[E]) Checked() E {
	return u.checked
}

// Of views err as an Unchecked[E] when err is a Rethrow whose cause chain
// holds an E.
func Of[E error](err error) (*Unchecked[E], bool) {
	r, ok := err.(*exceptional.Rethrow)
	if !ok {
		return nil, false
	}
	cause, ok := exceptional.CauseAs[E](r)
	if !ok {
		return nil, false
	}
	return &Unchecked[E]{Rethrow: r, checked: cause}, true
}
