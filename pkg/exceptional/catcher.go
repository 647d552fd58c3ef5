package exceptional

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Catcher decides what happens to a failure. Handle returns nothing: a
// policy either has side effects only or raises. Custom implementations are
// reached through Dispatch, which raises fatal failures and contract
// violations before Handle runs; the policies of this package check the same
// on direct calls.
type Catcher interface {
	Handle(err error)
}

type policy struct {
	name   string
	handle func(err error)
}

func (p *policy) Handle(err error) {
	if err == nil {
		return
	}
	raiseUnrecoverable(err)
	p.handle(err)
}

func (p *policy) String() string {
	return p.name
}

var stderrLogger = newStderrLogger()

func newStderrLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

var (
	// Ignore drops the failure.
	Ignore Catcher = &policy{name: "exceptional.Ignore", handle: func(error) {}}

	// Print writes the failure with its type and stack to stderr and returns.
	Print Catcher = printing("exceptional.Print", stderrLogger)

	// Rethrowing raises the failure wrapped in a Rethrow. A Rethrow is raised
	// as it is.
	Rethrowing Catcher = &policy{name: "exceptional.Rethrowing", handle: func(err error) {
		panic(Caught(err))
	}}

	// Sneaky raises the failure itself, unwrapped.
	Sneaky Catcher = &policy{name: "exceptional.Sneaky", handle: func(err error) {
		Smuggle(err)
	}}
)

// Of adapts handle into a Catcher. Each call returns a distinct policy.
func Of(handle func(err error)) Catcher {
	RequireNonNil(handle, "handle")
	p := &policy{handle: handle}
	p.name = fmt.Sprintf("exceptional.Of(%p)", p)
	return p
}

// Printing returns a policy that logs failures to logger at error level.
func Printing(logger logrus.FieldLogger) Catcher {
	RequireNonNil(logger, "logger")
	return printing("exceptional.Printing", logger)
}

func printing(name string, logger logrus.FieldLogger) Catcher {
	return &policy{name: name, handle: func(err error) {
		logger.WithFields(Fields(err)).Error(err.Error())
	}}
}

// Fields describes err for structured logging: its type, its stack and, for
// a Rethrow, the wrapper id and the type of the cause.
func Fields(err error) logrus.Fields {
	fields := logrus.Fields{
		"error_type": fmt.Sprintf("%T", err),
		"stack":      stackOf(err),
	}

	var r *Rethrow
	if errors.As(err, &r) {
		fields["rethrow_id"] = r.ID().String()
		fields["cause_type"] = fmt.Sprintf("%T", r.Cause())
	}
	return fields
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

func stackOf(err error) string {
	var st stackTracer
	if errors.As(err, &st) {
		return fmt.Sprintf("%+v", st.StackTrace())
	}

	var p *PanicError
	if errors.As(err, &p) {
		return string(p.Stack())
	}
	return string(debug.Stack())
}

// Dispatch hands err to c. Fatal failures and contract violations are raised
// again before c runs. A nil err is a no-op.
func Dispatch(c Catcher, err error) {
	if err == nil {
		return
	}

	raiseUnrecoverable(err)

	RequireNonNil(c, "catcher")
	c.Handle(err)
}

func raiseUnrecoverable(err error) {
	if IsFatal(err) || IsContractViolation(err) {
		panic(err)
	}
}
