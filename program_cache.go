package optioneer

// ProgramCache stores compiled expression programs keyed by expression
// strings. Implementations must be safe for concurrent use when shared
// between validators.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}
