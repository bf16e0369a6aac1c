package types

// Comparison represents how a measured value relates to its regulatory
// reference limit. The thresholds themselves come from an external
// reference-limit table, not from this package.
type Comparison string

const (
	ComparisonBelow Comparison = "below"
	ComparisonNear  Comparison = "near"
	ComparisonAbove Comparison = "above"
)

// String returns the string representation of the comparison
func (c Comparison) String() string {
	return string(c)
}
