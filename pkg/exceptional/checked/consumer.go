package checked

import "github.com/ib-77/exceptional/pkg/exceptional"

type Consumer[T any] struct {
	try func(t T) error
	policy[*Consumer[T]]
}

func NewConsumer[T any](try func(t T) error) *Consumer[T] {
	exceptional.RequireNonNil(try, "consumer")
	return &Consumer[T]{try: try}
}

func ConsumerOf[T any](c exceptional.Catcher, try func(t T) error) *Consumer[T] {
	return NewConsumer(try).WithCatcher(c)
}

func (c *Consumer[T]) AcceptOrThrow(t T) error {
	return c.try(t)
}

func (c *Consumer[T]) Accept(t T) {
	run(c.Catcher(), func() error { return c.try(t) })
}

func (c *Consumer[T]) Catcher() exceptional.Catcher {
	return c.current()
}

func (c *Consumer[T]) WithCatcher(catcher exceptional.Catcher) *Consumer[T] {
	return swap(c, c.policy, catcher, func(origin *Consumer[T], p policy[*Consumer[T]]) *Consumer[T] {
		return &Consumer[T]{try: origin.AcceptOrThrow, policy: p}
	})
}

func (c *Consumer[T]) String() string {
	return c.describe(c)
}

type BiConsumer[T, U any] struct {
	try func(t T, u U) error
	policy[*BiConsumer[T, U]]
}

func NewBiConsumer[T, U any](try func(t T, u U) error) *BiConsumer[T, U] {
	exceptional.RequireNonNil(try, "consumer")
	return &BiConsumer[T, U]{try: try}
}

func BiConsumerOf[T, U any](c exceptional.Catcher, try func(t T, u U) error) *BiConsumer[T, U] {
	return NewBiConsumer(try).WithCatcher(c)
}

func (c *BiConsumer[T, U]) AcceptOrThrow(t T, u U) error {
	return c.try(t, u)
}

func (c *BiConsumer[T, U]) Accept(t T, u U) {
	run(c.Catcher(), func() error { return c.try(t, u) })
}

func (c *BiConsumer[T, U]) Catcher() exceptional.Catcher {
	return c.current()
}

func (c *BiConsumer[T, U]) WithCatcher(catcher exceptional.Catcher) *BiConsumer[T, U] {
	return swap(c, c.policy, catcher, func(origin *BiConsumer[T, U], p policy[*BiConsumer[T, U]]) *BiConsumer[T, U] {
		return &BiConsumer[T, U]{try: origin.AcceptOrThrow, policy: p}
	})
}

func (c *BiConsumer[T, U]) String() string {
	return c.describe(c)
}
