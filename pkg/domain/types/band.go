package types

// Band represents a qualitative risk level derived from the
// probability x severity matrix.
type Band string

const (
	BandLow      Band = "low"
	BandMedium   Band = "medium"
	BandHigh     Band = "high"
	BandCritical Band = "critical"
)

// AllBands returns all valid bands in ascending order of severity
func AllBands() []Band {
	return []Band{BandLow, BandMedium, BandHigh, BandCritical}
}

// IsValid checks if the band is valid
func (b Band) IsValid() bool {
	switch b {
	case BandLow, BandMedium, BandHigh, BandCritical:
		return true
	default:
		return false
	}
}

// String returns the string representation of the band
func (b Band) String() string {
	return string(b)
}
