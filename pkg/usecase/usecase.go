// Package usecase wires the domain services, repositories and
// configuration into the operations exposed by the controllers.
package usecase

import (
	"github.com/sesmt-lab/sentinela/pkg/domain/interfaces"
	"github.com/sesmt-lab/sentinela/pkg/domain/model/config"
	"github.com/sesmt-lab/sentinela/pkg/service/reflimit"
	"github.com/sesmt-lab/sentinela/pkg/service/template"
)

// defaultAttentionLimit bounds the dashboard attention list.
const defaultAttentionLimit = 8

type UseCases struct {
	repo           interfaces.Repository
	matrix         *config.MatrixConfig
	comparator     reflimit.Comparator
	templates      *template.Registry
	attentionLimit int

	Company     *CompanyUseCase
	Environment *EnvironmentUseCase
	Risk        *RiskUseCase
	Assessment  *AssessmentUseCase
	Measurement *MeasurementUseCase
	Inspection  *InspectionUseCase
	Legacy      *LegacyUseCase
	Dashboard   *DashboardUseCase
}

type Option func(*UseCases)

// WithMatrixConfig overrides the default risk matrix bands.
func WithMatrixConfig(cfg *config.MatrixConfig) Option {
	return func(uc *UseCases) {
		uc.matrix = cfg
	}
}

// WithComparator supplies the reference-limit comparison policy for
// measurements. Without one, measurements store no comparison.
func WithComparator(c reflimit.Comparator) Option {
	return func(uc *UseCases) {
		uc.comparator = c
	}
}

// WithTemplates supplies the checklist template registry used to
// provision checklists on company creation.
func WithTemplates(reg *template.Registry) Option {
	return func(uc *UseCases) {
		uc.templates = reg
	}
}

// WithAttentionLimit overrides the dashboard attention list size.
func WithAttentionLimit(n int) Option {
	return func(uc *UseCases) {
		uc.attentionLimit = n
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:           repo,
		attentionLimit: defaultAttentionLimit,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Company = NewCompanyUseCase(repo, uc.templates)
	uc.Environment = NewEnvironmentUseCase(repo)
	uc.Risk = NewRiskUseCase(repo)
	uc.Assessment = NewAssessmentUseCase(repo, uc.matrix)
	uc.Measurement = NewMeasurementUseCase(repo, uc.comparator)
	uc.Inspection = NewInspectionUseCase(repo)
	uc.Legacy = NewLegacyUseCase(repo)
	uc.Dashboard = NewDashboardUseCase(repo, uc.attentionLimit)

	return uc
}
