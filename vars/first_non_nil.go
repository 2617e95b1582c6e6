package vars

// FirstNonNil dereferences the first set value, in priority order. Command
// line values usually come before config values, so an explicit zero still
// wins.
func FirstNonNil[T any](values ...*T) T {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	var zero T
	return zero
}
