package checked

import "github.com/ib-77/exceptional/pkg/exceptional"

type Runnable struct {
	try func() error
	policy[*Runnable]
}

func NewRunnable(try func() error) *Runnable {
	exceptional.RequireNonNil(try, "runnable")
	return &Runnable{try: try}
}

func RunnableOf(c exceptional.Catcher, try func() error) *Runnable {
	return NewRunnable(try).WithCatcher(c)
}

func (r *Runnable) RunOrThrow() error {
	return r.try()
}

func (r *Runnable) Run() {
	run(r.Catcher(), r.try)
}

func (r *Runnable) Catcher() exceptional.Catcher {
	return r.current()
}

func (r *Runnable) WithCatcher(c exceptional.Catcher) *Runnable {
	return swap(r, r.policy, c, func(origin *Runnable, p policy[*Runnable]) *Runnable {
		return &Runnable{try: origin.RunOrThrow, policy: p}
	})
}

func (r *Runnable) String() string {
	return r.describe(r)
}
