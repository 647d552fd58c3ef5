// Package exceptional turns failures of may-fail functions into a disposition
// chosen by the caller: ignore it, print it, rethrow it wrapped, or rethrow it
// exactly as it was raised.
//
// Highlights:
// - Catcher: the failure policy (Ignore, Print, Rethrowing, Sneaky, Of)
// - Dispatch: hand a failure to a Catcher, re-raising fatal failures first
// - Rethrow: the single wrapper used to raise any error across a boundary
// - Smuggle: raise an error as-is, without wrapping it
// - Capture/CaptureValue: turn a raised failure back into an error value
// - ThrowsOr[V]: remember the outcome (value, failure or nothing) of one call
//
// Raising means panicking with an error value. Capture recovers it again.
package exceptional
