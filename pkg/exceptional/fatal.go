package exceptional

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrContractViolation marks programmer errors: a nil where a value is
// required, or a ThrowsOr queried in the wrong state. Violations are raised
// where they happen and never reach a Catcher.
var ErrContractViolation = errors.New("contract violation")

var (
	ErrEmpty          = fmt.Errorf("%w: no value present", ErrContractViolation)
	ErrNoFailure      = fmt.Errorf("%w: no failure present", ErrContractViolation)
	ErrNotExceptional = fmt.Errorf("%w: cannot propagate, not exceptional", ErrContractViolation)
)

func violate(format string, args ...interface{}) {
	panic(pkgerrors.Wrapf(ErrContractViolation, format, args...))
}

func violateWith(err error) {
	panic(pkgerrors.WithStack(err))
}

// IsContractViolation reports whether err is, or wraps, a contract violation.
func IsContractViolation(err error) bool {
	return errors.Is(err, ErrContractViolation)
}

type fatal interface {
	Fatal() bool
}

type fatalError struct {
	err error
}

func (f *fatalError) Error() string {
	return "fatal: " + f.err.Error()
}

func (f *fatalError) Unwrap() error {
	return f.err
}

func (f *fatalError) Fatal() bool {
	return true
}

// Fatal marks err as an unrecoverable failure. Fatal failures bypass every
// Catcher and are raised again as they are.
func Fatal(err error) error {
	RequireNonNil(err, "err")
	return &fatalError{err: err}
}

// IsFatal reports whether any error in err's chain declares itself fatal.
func IsFatal(err error) bool {
	var f fatal
	return errors.As(err, &f) && f.Fatal()
}
