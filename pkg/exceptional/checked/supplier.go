package checked

import "github.com/ib-77/exceptional/pkg/exceptional"

type Supplier[T any] struct {
	try func() (T, error)
	policy[*Supplier[T]]
}

func NewSupplier[T any](try func() (T, error)) *Supplier[T] {
	exceptional.RequireNonNil(try, "supplier")
	return &Supplier[T]{try: try}
}

func SupplierOf[T any](c exceptional.Catcher, try func() (T, error)) *Supplier[T] {
	return NewSupplier(try).WithCatcher(c)
}

func (s *Supplier[T]) GetOrThrow() (T, error) {
	return s.try()
}

func (s *Supplier[T]) Get() T {
	return get(s.Catcher(), s.try)
}

func (s *Supplier[T]) Catcher() exceptional.Catcher {
	return s.current()
}

func (s *Supplier[T]) WithCatcher(c exceptional.Catcher) *Supplier[T] {
	return swap(s, s.policy, c, func(origin *Supplier[T], p policy[*Supplier[T]]) *Supplier[T] {
		return &Supplier[T]{try: origin.GetOrThrow, policy: p}
	})
}

func (s *Supplier[T]) String() string {
	return s.describe(s)
}
