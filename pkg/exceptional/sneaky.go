package exceptional

// Smuggle raises err exactly as it is. It never returns; the error result
// lets a call sit in a return statement.
func Smuggle(err error) error {
	RequireNonNil(err, "err")
	panic(err)
}

// SmuggleValue is Smuggle for functions returning a value.
func SmuggleValue[T any](err error) T {
	panic(Smuggle(err))
}
