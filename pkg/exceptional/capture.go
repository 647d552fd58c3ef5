package exceptional

import (
	"fmt"
	"runtime/debug"
)

// PanicError is a raised value that was not an error.
type PanicError struct {
	value interface{}
	stack []byte
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.value)
}

// Value returns what was passed to panic.
func (p *PanicError) Value() interface{} {
	return p.value
}

// Stack returns the goroutine stack at the point of recovery.
func (p *PanicError) Stack() []byte {
	return p.stack
}

// Capture runs fn and returns its error or whatever it raised. Raised errors
// keep their identity; other raised values become a *PanicError. Fatal
// failures and contract violations are raised again.
func Capture(fn func() error) (err error) {
	RequireNonNil(fn, "fn")

	defer func() {
		if r := recover(); r != nil {
			err = recovered(r)
		}
	}()
	return fn()
}

// CaptureValue is Capture for functions producing a value.
func CaptureValue[T any](fn func() (T, error)) (v T, err error) {
	RequireNonNil(fn, "fn")

	defer func() {
		if r := recover(); r != nil {
			var zero T
			v, err = zero, recovered(r)
		}
	}()
	return fn()
}

func recovered(r interface{}) error {
	err, ok := r.(error)
	if !ok {
		return &PanicError{value: r, stack: debug.Stack()}
	}

	if IsFatal(err) || IsContractViolation(err) {
		panic(r)
	}
	return err
}
