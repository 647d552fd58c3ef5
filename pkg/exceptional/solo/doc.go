// Package solo contains single-value, synchronous combinators over
// exceptional.ThrowsOr[T]. None of them modifies its input; each returns a new
// container, or the input itself when nothing changes.
//
// Highlights:
// - Succeed/Fail: construct ThrowsOr[T]
// - Switch: move from ThrowsOr[In] to ThrowsOr[Out]
// - Map: transform a held value
// - Try: call a function (Out, error) and keep its failure
// - Tee/DoubleTee: side-effect helpers
// - Catch: hand a held failure to a Catcher
// - Finally: reduce to a concrete value via value/failure/empty handlers
// - Or: pick the first value among alternatives
package solo
