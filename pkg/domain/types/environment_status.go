package types

// EnvironmentStatus represents the lifecycle status of a work environment.
// Once finalized, no child entity may be created or mutated.
type EnvironmentStatus string

const (
	EnvironmentDraft     EnvironmentStatus = "draft"
	EnvironmentFinalized EnvironmentStatus = "finalized"
)

// IsValid checks if the environment status is valid
func (s EnvironmentStatus) IsValid() bool {
	switch s {
	case EnvironmentDraft, EnvironmentFinalized:
		return true
	default:
		return false
	}
}

// String returns the string representation of the environment status
func (s EnvironmentStatus) String() string {
	return string(s)
}
