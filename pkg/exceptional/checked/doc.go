// Package checked contains may-fail functional values. Each shape exposes a
// try form that returns the failure and a safe form that hands the failure to
// the value's Catcher instead (exceptional.Rethrowing unless swapped).
//
// Shapes:
// - Runnable: RunOrThrow / Run
// - Supplier[T]: GetOrThrow / Get
// - Consumer[T], BiConsumer[T, U]: AcceptOrThrow / Accept
// - Function[T, R], BiFunction[T, U, R], UnaryOperator[T], BinaryOperator[T]: ApplyOrThrow / Apply
// - Predicate[T], BiPredicate[T, U]: TestOrThrow / Test
//
// Primitive specializations are instantiations: Supplier[int] is an int
// supplier, Predicate[float64] a float predicate. When the Catcher does not
// raise, a safe form that returns something returns the zero value.
//
// WithCatcher swaps the policy without touching the try-operation. Swapping
// to the current catcher returns the receiver; swapping a swapped value swaps
// its origin.
package checked
