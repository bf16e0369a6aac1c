package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Company() CompanyRepository
	Environment() EnvironmentRepository
	Role() RoleRepository
	Activity() ActivityRepository
	Risk() RiskRepository
	Assessment() AssessmentRepository
	Measurement() MeasurementRepository
	Checklist() ChecklistRepository
	Inspection() InspectionRepository

	Close() error
}
