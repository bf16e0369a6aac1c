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

type environmentDocument struct {
	ID        string    `firestore:"id"`
	CompanyID string    `firestore:"company_id"`
	Unit      string    `firestore:"unit"`
	Sector    string    `firestore:"sector"`
	Name      string    `firestore:"name"`
	Type      string    `firestore:"type"`
	Status    string    `firestore:"status"`
	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func (d *environmentDocument) toModel() *model.Environment {
	return &model.Environment{
		ID:        types.EnvironmentID(d.ID),
		CompanyID: types.CompanyID(d.CompanyID),
		Unit:      d.Unit,
		Sector:    d.Sector,
		Name:      d.Name,
		Type:      d.Type,
		Status:    types.EnvironmentStatus(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func environmentToDocument(env *model.Environment) *environmentDocument {
	return &environmentDocument{
		ID:        env.ID.String(),
		CompanyID: env.CompanyID.String(),
		Unit:      env.Unit,
		Sector:    env.Sector,
		Name:      env.Name,
		Type:      env.Type,
		Status:    env.Status.String(),
		CreatedAt: env.CreatedAt,
		UpdatedAt: env.UpdatedAt,
	}
}

type environmentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newEnvironmentRepository(client *firestore.Client) *environmentRepository {
	return &environmentRepository{client: client}
}

func (r *environmentRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_environments"
	}
	return "environments"
}

func (r *environmentRepository) Create(ctx context.Context, env *model.Environment) (*model.Environment, error) {
	stored := *env
	if stored.ID == "" {
		stored.ID = types.NewEnvironmentID()
	}
	if stored.Status == "" {
		stored.Status = types.EnvironmentDraft
	}
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	doc := environmentToDocument(&stored)
	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create environment", goerr.V("id", stored.ID))
	}

	return doc.toModel(), nil
}

func (r *environmentRepository) Get(ctx context.Context, id types.EnvironmentID) (*model.Environment, error) {
	doc, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "environment not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get environment", goerr.V("id", id))
	}

	var envDoc environmentDocument
	if err := doc.DataTo(&envDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal environment", goerr.V("id", id))
	}

	return envDoc.toModel(), nil
}

func (r *environmentRepository) ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*model.Environment, error) {
	iter := r.client.Collection(r.collection()).
		Where("company_id", "==", companyID.String()).
		Documents(ctx)
	defer iter.Stop()

	var envs []*model.Environment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate environments")
		}

		var envDoc environmentDocument
		if err := doc.DataTo(&envDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal environment")
		}
		envs = append(envs, envDoc.toModel())
	}

	return envs, nil
}

func (r *environmentRepository) Update(ctx context.Context, env *model.Environment) (*model.Environment, error) {
	docRef := r.client.Collection(r.collection()).Doc(env.ID.String())

	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "environment not found", goerr.V("id", env.ID))
		}
		return nil, goerr.Wrap(err, "failed to get environment", goerr.V("id", env.ID))
	}

	var existing environmentDocument
	if err := doc.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal environment", goerr.V("id", env.ID))
	}

	stored := *env
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now().UTC()

	updated := environmentToDocument(&stored)
	if _, err := docRef.Set(ctx, updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update environment", goerr.V("id", env.ID))
	}

	return updated.toModel(), nil
}
