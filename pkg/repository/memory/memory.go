// Package memory provides an in-memory Repository implementation for
// development and tests.
package memory

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/sesmt-lab/sentinela/pkg/domain/interfaces"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = goerr.New("record not found")

type Memory struct {
	company     *companyRepository
	environment *environmentRepository
	role        *roleRepository
	activity    *activityRepository
	risk        *riskRepository
	assessment  *assessmentRepository
	measurement *measurementRepository
	checklist   *checklistRepository
	inspection  *inspectionRepository
}

var _ interfaces.Repository = &Memory{}

// New creates an empty in-memory repository.
func New() *Memory {
	return &Memory{
		company:     newCompanyRepository(),
		environment: newEnvironmentRepository(),
		role:        newRoleRepository(),
		activity:    newActivityRepository(),
		risk:        newRiskRepository(),
		assessment:  newAssessmentRepository(),
		measurement: newMeasurementRepository(),
		checklist:   newChecklistRepository(),
		inspection:  newInspectionRepository(),
	}
}

func (m *Memory) Company() interfaces.CompanyRepository {
	return m.company
}

func (m *Memory) Environment() interfaces.EnvironmentRepository {
	return m.environment
}

func (m *Memory) Role() interfaces.RoleRepository {
	return m.role
}

func (m *Memory) Activity() interfaces.ActivityRepository {
	return m.activity
}

func (m *Memory) Risk() interfaces.RiskRepository {
	return m.risk
}

func (m *Memory) Assessment() interfaces.AssessmentRepository {
	return m.assessment
}

func (m *Memory) Measurement() interfaces.MeasurementRepository {
	return m.measurement
}

func (m *Memory) Checklist() interfaces.ChecklistRepository {
	return m.checklist
}

func (m *Memory) Inspection() interfaces.InspectionRepository {
	return m.inspection
}

func (m *Memory) Close() error {
	return nil
}
