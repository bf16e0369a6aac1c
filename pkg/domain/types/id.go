package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// CompanyID represents a unique identifier for a company
type CompanyID string

// NewCompanyID generates a new random CompanyID
func NewCompanyID() CompanyID {
	return CompanyID(uuid.NewString())
}

// Validate checks if the CompanyID is valid
func (c CompanyID) Validate() error {
	if c == "" {
		return goerr.New("company ID cannot be empty")
	}
	return nil
}

// String returns the string representation of CompanyID
func (c CompanyID) String() string {
	return string(c)
}

// EnvironmentID represents a unique identifier for a work environment
type EnvironmentID string

// NewEnvironmentID generates a new random EnvironmentID
func NewEnvironmentID() EnvironmentID {
	return EnvironmentID(uuid.NewString())
}

// Validate checks if the EnvironmentID is valid
func (e EnvironmentID) Validate() error {
	if e == "" {
		return goerr.New("environment ID cannot be empty")
	}
	return nil
}

// String returns the string representation of EnvironmentID
func (e EnvironmentID) String() string {
	return string(e)
}

// RoleID represents a unique identifier for a role (cargo)
type RoleID string

// NewRoleID generates a new random RoleID
func NewRoleID() RoleID {
	return RoleID(uuid.NewString())
}

// String returns the string representation of RoleID
func (r RoleID) String() string {
	return string(r)
}

// ActivityID represents a unique identifier for an activity
type ActivityID string

// NewActivityID generates a new random ActivityID
func NewActivityID() ActivityID {
	return ActivityID(uuid.NewString())
}

// Validate checks if the ActivityID is valid
func (a ActivityID) Validate() error {
	if a == "" {
		return goerr.New("activity ID cannot be empty")
	}
	return nil
}

// String returns the string representation of ActivityID
func (a ActivityID) String() string {
	return string(a)
}

// RiskID represents a unique identifier for a risk
type RiskID string

// NewRiskID generates a new random RiskID
func NewRiskID() RiskID {
	return RiskID(uuid.NewString())
}

// Validate checks if the RiskID is valid
func (r RiskID) Validate() error {
	if r == "" {
		return goerr.New("risk ID cannot be empty")
	}
	return nil
}

// String returns the string representation of RiskID
func (r RiskID) String() string {
	return string(r)
}

// AssessmentID represents a unique identifier for a risk assessment
type AssessmentID string

// NewAssessmentID generates a new random AssessmentID
func NewAssessmentID() AssessmentID {
	return AssessmentID(uuid.NewString())
}

// String returns the string representation of AssessmentID
func (a AssessmentID) String() string {
	return string(a)
}

// MeasurementID represents a unique identifier for a risk measurement
type MeasurementID string

// NewMeasurementID generates a new random MeasurementID
func NewMeasurementID() MeasurementID {
	return MeasurementID(uuid.NewString())
}

// String returns the string representation of MeasurementID
func (m MeasurementID) String() string {
	return string(m)
}

// ChecklistID represents a unique identifier for a checklist
type ChecklistID string

// NewChecklistID generates a new random ChecklistID
func NewChecklistID() ChecklistID {
	return ChecklistID(uuid.NewString())
}

// Validate checks if the ChecklistID is valid
func (c ChecklistID) Validate() error {
	if c == "" {
		return goerr.New("checklist ID cannot be empty")
	}
	return nil
}

// String returns the string representation of ChecklistID
func (c ChecklistID) String() string {
	return string(c)
}

// InspectionID represents a unique identifier for an inspection
type InspectionID string

// NewInspectionID generates a new random InspectionID
func NewInspectionID() InspectionID {
	return InspectionID(uuid.NewString())
}

// String returns the string representation of InspectionID
func (i InspectionID) String() string {
	return string(i)
}
