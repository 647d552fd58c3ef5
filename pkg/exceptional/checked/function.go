package checked

import "github.com/ib-77/exceptional/pkg/exceptional"

type Function[T, R any] struct {
	try func(t T) (R, error)
	policy[*Function[T, R]]
}

func NewFunction[T, R any](try func(t T) (R, error)) *Function[T, R] {
	exceptional.RequireNonNil(try, "function")
	return &Function[T, R]{try: try}
}

func FunctionOf[T, R any](c exceptional.Catcher, try func(t T) (R, error)) *Function[T, R] {
	return NewFunction(try).WithCatcher(c)
}

func (f *Function[T, R]) ApplyOrThrow(t T) (R, error) {
	return f.try(t)
}

func (f *Function[T, R]) Apply(t T) R {
	return get(f.Catcher(), func() (R, error) { return f.try(t) })
}

func (f *Function[T, R]) Catcher() exceptional.Catcher {
	return f.current()
}

func (f *Function[T, R]) WithCatcher(c exceptional.Catcher) *Function[T, R] {
	return swap(f, f.policy, c, func(origin *Function[T, R], p policy[*Function[T, R]]) *Function[T, R] {
		return &Function[T, R]{try: origin.ApplyOrThrow, policy: p}
	})
}

func (f *Function[T, R]) String() string {
	return f.describe(f)
}

type BiFunction[T, U, R any] struct {
	try func(t T, u U) (R, error)
	policy[*BiFunction[T, U, R]]
}

func NewBiFunction[T, U, R any](try func(t T, u U) (R, error)) *BiFunction[T, U, R] {
	exceptional.RequireNonNil(try, "function")
	return &BiFunction[T, U, R]{try: try}
}

func BiFunctionOf[T, U, R any](c exceptional.Catcher, try func(t T, u U) (R, error)) *BiFunction[T, U, R] {
	return NewBiFunction(try).WithCatcher(c)
}

func (f *BiFunction[T, U, R]) ApplyOrThrow(t T, u U) (R, error) {
	return f.try(t, u)
}

func (f *BiFunction[T, U, R]) Apply(t T, u U) R {
	return get(f.Catcher(), func() (R, error) { return f.try(t, u) })
}

func (f *BiFunction[T, U, R]) Catcher() exceptional.Catcher {
	return f.current()
}

func (f *BiFunction[T, U, R]) WithCatcher(c exceptional.Catcher) *BiFunction[T, U, R] {
	return swap(f, f.policy, c, func(origin *BiFunction[T, U, R], p policy[*BiFunction[T, U, R]]) *BiFunction[T, U, R] {
		return &BiFunction[T, U, R]{try: origin.ApplyOrThrow, policy: p}
	})
}

func (f *BiFunction[T, U, R]) String() string {
	return f.describe(f)
}

// UnaryOperator is a Function from T to T.
type UnaryOperator[T any] struct {
	try func(t T) (T, error)
	policy[*UnaryOperator[T]]
}

func NewUnaryOperator[T any](try func(t T) (T, error)) *UnaryOperator[T] {
	exceptional.RequireNonNil(try, "operator")
	return &UnaryOperator[T]{try: try}
}

func UnaryOperatorOf[T any](c exceptional.Catcher, try func(t T) (T, error)) *UnaryOperator[T] {
	return NewUnaryOperator(try).WithCatcher(c)
}

func (o *UnaryOperator[T]) ApplyOrThrow(t T) (T, error) {
	return o.try(t)
}

func (o *UnaryOperator[T]) Apply(t T) T {
	return get(o.Catcher(), func() (T, error) { return o.try(t) })
}

func (o *UnaryOperator[T]) Catcher() exceptional.Catcher {
	return o.current()
}

func (o *UnaryOperator[T]) WithCatcher(c exceptional.Catcher) *UnaryOperator[T] {
	return swap(o, o.policy, c, func(origin *UnaryOperator[T], p policy[*UnaryOperator[T]]) *UnaryOperator[T] {
		return &UnaryOperator[T]{try: origin.ApplyOrThrow, policy: p}
	})
}

func (o *UnaryOperator[T]) String() string {
	return o.describe(o)
}

// BinaryOperator is a BiFunction from (T, T) to T.
type BinaryOperator[T any] struct {
	try func(a, b T) (T, error)
	policy[*BinaryOperator[T]]
}

func NewBinaryOperator[T any](try func(a, b T) (T, error)) *BinaryOperator[T] {
	exceptional.RequireNonNil(try, "operator")
	return &BinaryOperator[T]{try: try}
}

func BinaryOperatorOf[T any](c exceptional.Catcher, try func(a, b T) (T, error)) *BinaryOperator[T] {
	return NewBinaryOperator(try).WithCatcher(c)
}

func (o *BinaryOperator[T]) ApplyOrThrow(a, b T) (T, error) {
	return o.try(a, b)
}

func (o *BinaryOperator[T]) Apply(a, b T) T {
	return get(o.Catcher(), func() (T, error) { return o.try(a, b) })
}

func (o *BinaryOperator[T]) Catcher() exceptional.Catcher {
	return o.current()
}

func (o *BinaryOperator[T]) WithCatcher(c exceptional.Catcher) *BinaryOperator[T] {
	return swap(o, o.policy, c, func(origin *BinaryOperator[T], p policy[*BinaryOperator[T]]) *BinaryOperator[T] {
		return &BinaryOperator[T]{try: origin.ApplyOrThrow, policy: p}
	})
}

func (o *BinaryOperator[T]) String() string {
	return o.describe(o)
}
