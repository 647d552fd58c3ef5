package chain

import (
	"github.com/ib-77/exceptional/pkg/exceptional"
	"github.com/ib-77/exceptional/pkg/exceptional/solo"
)

// Chain wraps an exceptional.ThrowsOr to enable fluent chaining
type Chain[T any] struct {
	result exceptional.ThrowsOr[T]
}

// Start creates a new chain from an exceptional.ThrowsOr
func Start[T any](result exceptional.ThrowsOr[T]) *Chain[T] {
	return &Chain[T]{
		result: result,
	}
}

// FromValue creates a new chain from a value; an absent value starts empty
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{
		result: exceptional.Maybe(value),
	}
}

// FromResult runs fn once and starts a chain from its outcome
func FromResult[T any](fn func() (T, error)) *Chain[T] {
	return &Chain[T]{
		result: exceptional.Result(fn),
	}
}

// Result returns the underlying exceptional.ThrowsOr
func (c *Chain[T]) Result() exceptional.ThrowsOr[T] {
	return c.result
}

// Then chains a function that returns exceptional.ThrowsOr[U]
func Then[T, U any](c *Chain[T], onValue func(T) exceptional.ThrowsOr[U]) *Chain[U] {
	return &Chain[U]{
		result: solo.Switch[T, U](c.result, onValue),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnValue func(T) (U, error)) *Chain[U] {
	return &Chain[U]{
		result: solo.Try[T, U](c.result, tryOnValue),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onValue func(T) U) *Chain[U] {
	return &Chain[U]{
		result: solo.Map[T, U](c.result, onValue),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onValue func(T)) *Chain[T] {
	return &Chain[T]{
		result: solo.Tee[T](c.result, onValue),
	}
}

// Catch hands a held failure to catcher; the chain continues if it does not raise
func (c *Chain[T]) Catch(catcher exceptional.Catcher) *Chain[T] {
	return &Chain[T]{
		result: solo.Catch[T](c.result, catcher),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onValue func(T) U, onFailure func(error) U, onEmpty func() U) U {
	return solo.Finally[T, U](c.result, onValue, onFailure, onEmpty)
}
