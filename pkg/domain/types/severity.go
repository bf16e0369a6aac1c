package types

// Severity represents the remediation urgency band of a checklist.
type Severity string

const (
	SeverityNoData  Severity = "no_data"
	SeverityPending Severity = "pending"
	SeverityOK      Severity = "ok"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// String returns the string representation of the severity
func (s Severity) String() string {
	return string(s)
}
