// Package attempt bundles one Catcher with shorthand entry points for running
// may-fail actions and suppliers.
//
// Common usage:
// - Ignoring/Printing/Rethrowing: the canonical attempts
// - With: an attempt over any Catcher
// - Run: run an action, dispatching its failure
// - Get/GetAsInt/GetAsInt64/GetAsFloat64/GetAsBool: produce a value, or
//   report it absent when the supplier failed and the catcher did not raise
package attempt

import "github.com/ib-77/exceptional/pkg/exceptional"

// Attempt runs may-fail code and hands its failures to one Catcher.
type Attempt struct {
	catcher exceptional.Catcher
}

var (
	ignoring   = &Attempt{catcher: exceptional.Ignore}
	printing   = &Attempt{catcher: exceptional.Print}
	rethrowing = &Attempt{catcher: exceptional.Rethrowing}
)

func Ignoring() *Attempt {
	return ignoring
}

func Printing() *Attempt {
	return printing
}

func Rethrowing() *Attempt {
	return rethrowing
}

func With(c exceptional.Catcher) *Attempt {
	exceptional.RequireNonNil(c, "catcher")
	return &Attempt{catcher: c}
}

func (a *Attempt) Catcher() exceptional.Catcher {
	return a.catcher
}

// Run runs action and dispatches its failure, if any.
func (a *Attempt) Run(action func() error) {
	exceptional.RequireNonNil(action, "action")
	exceptional.Dispatch(a.catcher, exceptional.Capture(action))
}

// Get runs supplier. ok is false when supplier failed or produced an absent
// value.
func Get[T any](a *Attempt, supplier func() (T, error)) (v T, ok bool) {
	exceptional.RequireNonNil(a, "attempt")
	exceptional.RequireNonNil(supplier, "supplier")

	v, err := exceptional.CaptureValue(supplier)
	if err != nil {
		exceptional.Dispatch(a.catcher, err)
		var zero T
		return zero, false
	}
	return v, !exceptional.IsNil(v)
}

func GetAsInt(a *Attempt, supplier func() (int, error)) (int, bool) {
	return Get(a, supplier)
}

func GetAsInt64(a *Attempt, supplier func() (int64, error)) (int64, bool) {
	return Get(a, supplier)
}

func GetAsFloat64(a *Attempt, supplier func() (float64, error)) (float64, bool) {
	return Get(a, supplier)
}

func GetAsBool(a *Attempt, supplier func() (bool, error)) (bool, bool) {
	return Get(a, supplier)
}

// Result runs supplier under a and keeps the outcome. The failure is
// dispatched first; the container is only returned when the catcher did not
// raise.
func Result[T any](a *Attempt, supplier func() (T, error)) exceptional.ThrowsOr[T] {
	exceptional.RequireNonNil(a, "attempt")

	out := exceptional.Result(supplier)
	if out.IsExceptional() {
		exceptional.Dispatch(a.catcher, out.Err())
	}
	return out
}
