// Package chain provides a fluent wrapper around exceptional.ThrowsOr[T].
//
// Key constructs:
// - Start/FromValue/FromResult: create a Chain
// - Then/ThenTry: compose container-returning or error-returning functions
// - Map: transform a held value
// - Ensure: trigger side effects on a value only
// - Catch: dispatch a held failure through a Catcher
// - Finally: reduce to a concrete value via handlers
package chain
