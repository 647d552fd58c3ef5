package solo

import (
	"github.com/ib-77/exceptional/pkg/exceptional"
)

func Succeed[T any](input T) exceptional.ThrowsOr[T] {
	return exceptional.Maybe(input)
}

func Fail[T any](err error) exceptional.ThrowsOr[T] {
	return exceptional.Raise[T](err)
}

// passOn carries a non-value input over to Out.
func passOn[In, Out any](input exceptional.ThrowsOr[In]) exceptional.ThrowsOr[Out] {
	if input.IsExceptional() {
		return exceptional.Propagate[Out](input)
	}
	return exceptional.Empty[Out]()
}

func Switch[In any, Out any](input exceptional.ThrowsOr[In],
	onValue func(v In) exceptional.ThrowsOr[Out]) exceptional.ThrowsOr[Out] {

	if v, ok := input.Value(); ok {
		return onValue(v)
	}
	return passOn[In, Out](input)
}

func Map[In any, Out any](input exceptional.ThrowsOr[In],
	onValue func(v In) Out) exceptional.ThrowsOr[Out] {

	if v, ok := input.Value(); ok {
		return exceptional.Maybe(onValue(v))
	}
	return passOn[In, Out](input)
}

// Try runs onValue on the held value; a failure or panic becomes the held
// failure of the result.
func Try[In any, Out any](input exceptional.ThrowsOr[In],
	onTryExecute func(v In) (Out, error)) exceptional.ThrowsOr[Out] {

	if v, ok := input.Value(); ok {
		return exceptional.Result(func() (Out, error) { return onTryExecute(v) })
	}
	return passOn[In, Out](input)
}

// FailOnError keeps the value unless maybeErr reports a failure for it.
func FailOnError[T any](input exceptional.ThrowsOr[T],
	maybeErr func(v T) error) exceptional.ThrowsOr[T] {

	if v, ok := input.Value(); ok {
		if err := maybeErr(v); err != nil {
			return exceptional.Raise[T](err)
		}
	}
	return input
}

func Tee[T any](input exceptional.ThrowsOr[T], onValue func(v T)) exceptional.ThrowsOr[T] {
	if v, ok := input.Value(); ok {
		onValue(v)
	}
	return input
}

func DoubleTee[T any](input exceptional.ThrowsOr[T],
	onValue func(v T),
	onFailure func(err error),
	onEmpty func()) exceptional.ThrowsOr[T] {

	switch {
	case input.IsValuePresent():
		v, _ := input.Value()
		onValue(v)
	case input.IsExceptional():
		onFailure(input.Err())
	default:
		onEmpty()
	}
	return input
}

// Catch dispatches a held failure through c and returns input when c does
// not raise.
func Catch[T any](input exceptional.ThrowsOr[T], c exceptional.Catcher) exceptional.ThrowsOr[T] {
	if input.IsExceptional() {
		exceptional.Dispatch(c, input.Err())
	}
	return input
}

func Finally[In, Out any](input exceptional.ThrowsOr[In],
	onValue func(v In) Out,
	onFailure func(err error) Out,
	onEmpty func() Out) Out {

	if v, ok := input.Value(); ok {
		return onValue(v)
	} else if input.IsExceptional() {
		return onFailure(input.Err())
	} else {
		return onEmpty()
	}
}

// Or returns the first input holding a value, else the first holding a
// failure, else input.
func Or[T any](input exceptional.ThrowsOr[T], alternatives ...exceptional.ThrowsOr[T]) exceptional.ThrowsOr[T] {
	candidates := make([]exceptional.ThrowsOr[T], 0, len(alternatives)+1)
	candidates = append(candidates, input)
	candidates = append(candidates, alternatives...)

	hasFail := false
	var failRes exceptional.ThrowsOr[T]

	for _, res := range candidates {
		if res.IsValuePresent() {
			return res
		}
		if res.IsExceptional() && !hasFail {
			hasFail = true
			failRes = res
		}
	}

	if hasFail {
		return failRes
	}
	return input
}
