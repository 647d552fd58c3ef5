package checked

import (
	"fmt"

	"github.com/ib-77/exceptional/pkg/exceptional"
)

// Swapper is implemented by every checked shape S.
type Swapper[S any] interface {
	exceptional.Source
	// WithCatcher returns S with the same try-operation and catcher c
	WithCatcher(c exceptional.Catcher) S
}

// policy is the failure policy embedded in every shape. origin is set only on
// values produced by WithCatcher and is used for delegation and display.
type policy[S any] struct {
	catcher exceptional.Catcher
	origin  S
	swapped bool
}

func (p policy[S]) current() exceptional.Catcher {
	if p.catcher == nil {
		return exceptional.Rethrowing
	}
	return p.catcher
}

func (p policy[S]) describe(self any) string {
	if !p.swapped {
		return fmt.Sprintf("%T@%p", self, self)
	}
	return fmt.Sprintf("%T{origin=%v, catcher=%v}", self, p.origin, p.current())
}

// swap is WithCatcher for all shapes. The same catcher returns self; a
// swapped value swaps on its origin so wrappers never nest.
func swap[S Swapper[S]](self S, p policy[S], c exceptional.Catcher,
	rebuild func(origin S, p policy[S]) S) S {

	exceptional.RequireNonNil(c, "catcher")

	if exceptional.SameCatcher(c, p.current()) {
		return self
	}
	if p.swapped {
		return p.origin.WithCatcher(c)
	}
	return rebuild(self, policy[S]{catcher: c, origin: self, swapped: true})
}

func run(c exceptional.Catcher, try func() error) {
	exceptional.Dispatch(c, exceptional.Capture(try))
}

func get[T any](c exceptional.Catcher, try func() (T, error)) T {
	v, err := exceptional.CaptureValue(try)
	if err != nil {
		exceptional.Dispatch(c, err)
		var zero T
		return zero
	}
	return v
}
