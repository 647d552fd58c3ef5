package checked

import "github.com/ib-77/exceptional/pkg/exceptional"

// Predicate tests a T. Its safe form reports false when the test fails and
// the catcher does not raise.
type Predicate[T any] struct {
	try func(t T) (bool, error)
	policy[*Predicate[T]]
}

func NewPredicate[T any](try func(t T) (bool, error)) *Predicate[T] {
	exceptional.RequireNonNil(try, "predicate")
	return &Predicate[T]{try: try}
}

func PredicateOf[T any](c exceptional.Catcher, try func(t T) (bool, error)) *Predicate[T] {
	return NewPredicate(try).WithCatcher(c)
}

func (p *Predicate[T]) TestOrThrow(t T) (bool, error) {
	return p.try(t)
}

func (p *Predicate[T]) Test(t T) bool {
	return get(p.Catcher(), func() (bool, error) { return p.try(t) })
}

func (p *Predicate[T]) Catcher() exceptional.Catcher {
	return p.current()
}

func (p *Predicate[T]) WithCatcher(c exceptional.Catcher) *Predicate[T] {
	return swap(p, p.policy, c, func(origin *Predicate[T], pol policy[*Predicate[T]]) *Predicate[T] {
		return &Predicate[T]{try: origin.TestOrThrow, policy: pol}
	})
}

func (p *Predicate[T]) String() string {
	return p.describe(p)
}

type BiPredicate[T, U any] struct {
	try func(t T, u U) (bool, error)
	policy[*BiPredicate[T, U]]
}

func NewBiPredicate[T, U any](try func(t T, u U) (bool, error)) *BiPredicate[T, U] {
	exceptional.RequireNonNil(try, "predicate")
	return &BiPredicate[T, U]{try: try}
}

func BiPredicateOf[T, U any](c exceptional.Catcher, try func(t T, u U) (bool, error)) *BiPredicate[T, U] {
	return NewBiPredicate(try).WithCatcher(c)
}

func (p *BiPredicate[T, U]) TestOrThrow(t T, u U) (bool, error) {
	return p.try(t, u)
}

func (p *BiPredicate[T, U]) Test(t T, u U) bool {
	return get(p.Catcher(), func() (bool, error) { return p.try(t, u) })
}

func (p *BiPredicate[T, U]) Catcher() exceptional.Catcher {
	return p.current()
}

func (p *BiPredicate[T, U]) WithCatcher(c exceptional.Catcher) *BiPredicate[T, U] {
	return swap(p, p.policy, c, func(origin *BiPredicate[T, U], pol policy[*BiPredicate[T, U]]) *BiPredicate[T, U] {
		return &BiPredicate[T, U]{try: origin.TestOrThrow, policy: pol}
	})
}

func (p *BiPredicate[T, U]) String() string {
	return p.describe(p)
}
