package hasherr

// ConfigurationError - Custom error to inform that the hash map was given invalid construction parameters
type ConfigurationError struct {
	Msg string
}

// Error - Used to notify that construction parameters were invalid
func (E ConfigurationError) Error() string {
	if E.Msg == "" {
		return "invalid configuration"
	}
	return E.Msg
}

// Is - Makes errors.Is match on type rather than on message
func (E ConfigurationError) Is(target error) bool {
	_, ok := target.(ConfigurationError)
	return ok
}

// CapacityViolation - Custom error to inform that a bucket still exceeds its capacity with its local depth
// already at the maximum representable hash bit width. It indicates an internal defect and should never
// occur under any input.
type CapacityViolation struct {
	Msg string
}

// Error - Used to notify that the capacity invariant was violated
func (E CapacityViolation) Error() string {
	if E.Msg == "" {
		return "bucket capacity invariant violated"
	}
	return E.Msg
}

// Is - Makes errors.Is match on type rather than on message
func (E CapacityViolation) Is(target error) bool {
	_, ok := target.(CapacityViolation)
	return ok
}

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	Msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.Msg == "" {
		return "no record found"
	}
	return E.Msg
}

// Is - Makes errors.Is match on type rather than on message
func (E NoRecordFound) Is(target error) bool {
	_, ok := target.(NoRecordFound)
	return ok
}
