// Package firestore provides the Firestore-backed Repository
// implementation.
package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"

	"github.com/sesmt-lab/sentinela/pkg/domain/interfaces"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = goerr.New("record not found")

type Firestore struct {
	client      *firestore.Client
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

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix prefixes all collection names. Used by tests to
// isolate runs against a shared project.
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.company.collectionPrefix = prefix
		f.environment.collectionPrefix = prefix
		f.role.collectionPrefix = prefix
		f.activity.collectionPrefix = prefix
		f.risk.collectionPrefix = prefix
		f.assessment.collectionPrefix = prefix
		f.measurement.collectionPrefix = prefix
		f.checklist.collectionPrefix = prefix
		f.inspection.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID), goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:      client,
		company:     newCompanyRepository(client),
		environment: newEnvironmentRepository(client),
		role:        newRoleRepository(client),
		activity:    newActivityRepository(client),
		risk:        newRiskRepository(client),
		assessment:  newAssessmentRepository(client),
		measurement: newMeasurementRepository(client),
		checklist:   newChecklistRepository(client),
		inspection:  newInspectionRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Company() interfaces.CompanyRepository {
	return f.company
}

func (f *Firestore) Environment() interfaces.EnvironmentRepository {
	return f.environment
}

func (f *Firestore) Role() interfaces.RoleRepository {
	return f.role
}

func (f *Firestore) Activity() interfaces.ActivityRepository {
	return f.activity
}

func (f *Firestore) Risk() interfaces.RiskRepository {
	return f.risk
}

func (f *Firestore) Assessment() interfaces.AssessmentRepository {
	return f.assessment
}

func (f *Firestore) Measurement() interfaces.MeasurementRepository {
	return f.measurement
}

func (f *Firestore) Checklist() interfaces.ChecklistRepository {
	return f.checklist
}

func (f *Firestore) Inspection() interfaces.InspectionRepository {
	return f.inspection
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
