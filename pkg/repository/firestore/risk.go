package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

type riskDocument struct {
	ID               string    `firestore:"id"`
	ActivityID       string    `firestore:"activity_id"`
	Hazard           string    `firestore:"hazard"`
	HazardousEvent   string    `firestore:"hazardous_event"`
	PotentialDamage  string    `firestore:"potential_damage"`
	AgentCategory    string    `firestore:"agent_category"`
	Condition        string    `firestore:"condition"`
	ExposedCount     int       `firestore:"exposed_count"`
	ExistingControls string    `firestore:"existing_controls"`
	LegacyMigrated   bool      `firestore:"legacy_migrated"`
	CreatedAt        time.Time `firestore:"created_at"`
	UpdatedAt        time.Time `firestore:"updated_at"`
}

func (d *riskDocument) toModel() *model.Risk {
	return &model.Risk{
		ID:               types.RiskID(d.ID),
		ActivityID:       types.ActivityID(d.ActivityID),
		Hazard:           d.Hazard,
		HazardousEvent:   d.HazardousEvent,
		PotentialDamage:  d.PotentialDamage,
		AgentCategory:    types.AgentCategory(d.AgentCategory),
		Condition:        d.Condition,
		ExposedCount:     d.ExposedCount,
		ExistingControls: d.ExistingControls,
		LegacyMigrated:   d.LegacyMigrated,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

type riskRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newRiskRepository(client *firestore.Client) *riskRepository {
	return &riskRepository{client: client}
}

func (r *riskRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_risks"
	}
	return "risks"
}

func (r *riskRepository) Create(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	id := risk.ID
	if id == "" {
		id = types.NewRiskID()
	}

	now := time.Now().UTC()
	doc := &riskDocument{
		ID:               id.String(),
		ActivityID:       risk.ActivityID.String(),
		Hazard:           risk.Hazard,
		HazardousEvent:   risk.HazardousEvent,
		PotentialDamage:  risk.PotentialDamage,
		AgentCategory:    risk.AgentCategory.String(),
		Condition:        risk.Condition,
		ExposedCount:     risk.ExposedCount,
		ExistingControls: risk.ExistingControls,
		LegacyMigrated:   risk.LegacyMigrated,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create risk", goerr.V("id", id))
	}

	return doc.toModel(), nil
}

func (r *riskRepository) Get(ctx context.Context, id types.RiskID) (*model.Risk, error) {
	doc, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get risk", goerr.V("id", id))
	}

	var riskDoc riskDocument
	if err := doc.DataTo(&riskDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal risk", goerr.V("id", id))
	}

	return riskDoc.toModel(), nil
}

func (r *riskRepository) ListByActivity(ctx context.Context, activityID types.ActivityID) ([]*model.Risk, error) {
	iter := r.client.Collection(r.collection()).
		Where("activity_id", "==", activityID.String()).
		Documents(ctx)
	defer iter.Stop()

	var risks []*model.Risk
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate risks")
		}

		var riskDoc riskDocument
		if err := doc.DataTo(&riskDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal risk")
		}
		risks = append(risks, riskDoc.toModel())
	}

	return risks, nil
}

func (r *riskRepository) Delete(ctx context.Context, id types.RiskID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get risk", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete risk", goerr.V("id", id))
	}

	return nil
}
