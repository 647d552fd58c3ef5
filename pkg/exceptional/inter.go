package exceptional

// Source defines an interface for values that dispatch failures to a Catcher
type Source interface {
	// Catcher returns the active failure policy
	Catcher() Catcher
}
