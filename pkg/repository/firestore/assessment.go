package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

type assessmentDocument struct {
	ID                     string    `firestore:"id"`
	RiskID                 string    `firestore:"risk_id"`
	Probability            int       `firestore:"probability"`
	Severity               int       `firestore:"severity"`
	ConfidenceLevel        string    `firestore:"confidence_level"`
	TechnicalJustification string    `firestore:"technical_justification"`
	Classification         string    `firestore:"classification"`
	RequiresJustification  bool      `firestore:"requires_justification"`
	CreatedAt              time.Time `firestore:"created_at"`
	UpdatedAt              time.Time `firestore:"updated_at"`
}

func (d *assessmentDocument) toModel() *model.RiskAssessment {
	return &model.RiskAssessment{
		ID:                     types.AssessmentID(d.ID),
		RiskID:                 types.RiskID(d.RiskID),
		Probability:            d.Probability,
		Severity:               d.Severity,
		ConfidenceLevel:        d.ConfidenceLevel,
		TechnicalJustification: d.TechnicalJustification,
		Classification:         types.Band(d.Classification),
		RequiresJustification:  d.RequiresJustification,
		CreatedAt:              d.CreatedAt,
		UpdatedAt:              d.UpdatedAt,
	}
}

type assessmentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAssessmentRepository(client *firestore.Client) *assessmentRepository {
	return &assessmentRepository{client: client}
}

func (r *assessmentRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_assessments"
	}
	return "assessments"
}

// Upsert stores the assessment keyed by risk ID, so each risk carries at
// most one document. The original ID and created_at survive replacement.
func (r *assessmentRepository) Upsert(ctx context.Context, assessment *model.RiskAssessment) (*model.RiskAssessment, error) {
	docRef := r.client.Collection(r.collection()).Doc(assessment.RiskID.String())
	now := time.Now().UTC()

	stored := *assessment
	stored.UpdatedAt = now

	existing, err := docRef.Get(ctx)
	switch {
	case err == nil:
		var prev assessmentDocument
		if err := existing.DataTo(&prev); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal assessment", goerr.V("riskID", assessment.RiskID))
		}
		stored.ID = types.AssessmentID(prev.ID)
		stored.CreatedAt = prev.CreatedAt

	case status.Code(err) == codes.NotFound:
		if stored.ID == "" {
			stored.ID = types.NewAssessmentID()
		}
		stored.CreatedAt = now

	default:
		return nil, goerr.Wrap(err, "failed to get assessment", goerr.V("riskID", assessment.RiskID))
	}

	doc := &assessmentDocument{
		ID:                     stored.ID.String(),
		RiskID:                 stored.RiskID.String(),
		Probability:            stored.Probability,
		Severity:               stored.Severity,
		ConfidenceLevel:        stored.ConfidenceLevel,
		TechnicalJustification: stored.TechnicalJustification,
		Classification:         stored.Classification.String(),
		RequiresJustification:  stored.RequiresJustification,
		CreatedAt:              stored.CreatedAt,
		UpdatedAt:              stored.UpdatedAt,
	}

	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to upsert assessment", goerr.V("riskID", assessment.RiskID))
	}

	return doc.toModel(), nil
}

func (r *assessmentRepository) GetByRisk(ctx context.Context, riskID types.RiskID) (*model.RiskAssessment, error) {
	doc, err := r.client.Collection(r.collection()).Doc(riskID.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("riskID", riskID))
		}
		return nil, goerr.Wrap(err, "failed to get assessment", goerr.V("riskID", riskID))
	}

	var assessmentDoc assessmentDocument
	if err := doc.DataTo(&assessmentDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal assessment", goerr.V("riskID", riskID))
	}

	return assessmentDoc.toModel(), nil
}
