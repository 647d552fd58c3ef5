package exceptional

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Rethrow carries a failure across a boundary that only raises one kind of
// error. Its cause is never nil.
type Rethrow struct {
	id    uuid.UUID
	cause error
}

// NewRethrow wraps cause. A nil cause is a contract violation.
func NewRethrow(cause error) *Rethrow {
	RequireNonNil(cause, "cause")
	return &Rethrow{
		id:    uuid.New(),
		cause: cause,
	}
}

// Caught returns err itself when it already is a Rethrow, or a new Rethrow
// around it otherwise.
func Caught(err error) *Rethrow {
	if r, ok := err.(*Rethrow); ok && r != nil {
		return r
	}
	return NewRethrow(err)
}

func (r *Rethrow) Error() string {
	return r.cause.Error()
}

func (r *Rethrow) Unwrap() error {
	return r.cause
}

// Cause returns the wrapped failure.
func (r *Rethrow) Cause() error {
	return r.cause
}

// ID identifies this wrapper in printed traces.
func (r *Rethrow) ID() uuid.UUID {
	return r.id
}

func (r *Rethrow) String() string {
	return fmt.Sprintf("exceptional.Rethrow{id=%s, cause=%T: %v}", r.id, r.cause, r.cause)
}

// CauseAs finds the first error of type E in the cause chain of r.
func CauseAs[E error](r *Rethrow) (E, bool) {
	var target E
	if r == nil {
		return target, false
	}
	ok := errors.As(r.cause, &target)
	return target, ok
}
