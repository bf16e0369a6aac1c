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

type activityDocument struct {
	ID                   string    `firestore:"id"`
	EnvironmentID        string    `firestore:"environment_id"`
	Name                 string    `firestore:"name"`
	Role                 string    `firestore:"role"`
	MacroProcess         string    `firestore:"macro_process"`
	TechnicalDescription string    `firestore:"technical_description"`
	TaskDescription      string    `firestore:"task_description"`
	Frequency            string    `firestore:"frequency"`
	CreatedAt            time.Time `firestore:"created_at"`
	UpdatedAt            time.Time `firestore:"updated_at"`
}

func (d *activityDocument) toModel() *model.Activity {
	return &model.Activity{
		ID:                   types.ActivityID(d.ID),
		EnvironmentID:        types.EnvironmentID(d.EnvironmentID),
		Name:                 d.Name,
		Role:                 d.Role,
		MacroProcess:         d.MacroProcess,
		TechnicalDescription: d.TechnicalDescription,
		TaskDescription:      d.TaskDescription,
		Frequency:            d.Frequency,
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
}

type activityRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newActivityRepository(client *firestore.Client) *activityRepository {
	return &activityRepository{client: client}
}

func (r *activityRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_activities"
	}
	return "activities"
}

func (r *activityRepository) Create(ctx context.Context, activity *model.Activity) (*model.Activity, error) {
	id := activity.ID
	if id == "" {
		id = types.NewActivityID()
	}

	now := time.Now().UTC()
	doc := &activityDocument{
		ID:                   id.String(),
		EnvironmentID:        activity.EnvironmentID.String(),
		Name:                 activity.Name,
		Role:                 activity.Role,
		MacroProcess:         activity.MacroProcess,
		TechnicalDescription: activity.TechnicalDescription,
		TaskDescription:      activity.TaskDescription,
		Frequency:            activity.Frequency,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create activity", goerr.V("id", id))
	}

	return doc.toModel(), nil
}

func (r *activityRepository) Get(ctx context.Context, id types.ActivityID) (*model.Activity, error) {
	doc, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "activity not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get activity", goerr.V("id", id))
	}

	var activityDoc activityDocument
	if err := doc.DataTo(&activityDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal activity", goerr.V("id", id))
	}

	return activityDoc.toModel(), nil
}

func (r *activityRepository) ListByEnvironment(ctx context.Context, envID types.EnvironmentID) ([]*model.Activity, error) {
	iter := r.client.Collection(r.collection()).
		Where("environment_id", "==", envID.String()).
		Documents(ctx)
	defer iter.Stop()

	var activities []*model.Activity
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate activities")
		}

		var activityDoc activityDocument
		if err := doc.DataTo(&activityDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal activity")
		}
		activities = append(activities, activityDoc.toModel())
	}

	return activities, nil
}
