package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

type roleDocument struct {
	ID            string    `firestore:"id"`
	EnvironmentID string    `firestore:"environment_id"`
	Name          string    `firestore:"name"`
	CreatedAt     time.Time `firestore:"created_at"`
	UpdatedAt     time.Time `firestore:"updated_at"`
}

func (d *roleDocument) toModel() *model.Role {
	return &model.Role{
		ID:            types.RoleID(d.ID),
		EnvironmentID: types.EnvironmentID(d.EnvironmentID),
		Name:          d.Name,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

type roleRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newRoleRepository(client *firestore.Client) *roleRepository {
	return &roleRepository{client: client}
}

func (r *roleRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_roles"
	}
	return "roles"
}

func (r *roleRepository) Create(ctx context.Context, role *model.Role) (*model.Role, error) {
	id := role.ID
	if id == "" {
		id = types.NewRoleID()
	}

	now := time.Now().UTC()
	doc := &roleDocument{
		ID:            id.String(),
		EnvironmentID: role.EnvironmentID.String(),
		Name:          role.Name,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create role", goerr.V("id", id))
	}

	return doc.toModel(), nil
}

func (r *roleRepository) ListByEnvironment(ctx context.Context, envID types.EnvironmentID) ([]*model.Role, error) {
	iter := r.client.Collection(r.collection()).
		Where("environment_id", "==", envID.String()).
		Documents(ctx)
	defer iter.Stop()

	var roles []*model.Role
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate roles")
		}

		var roleDoc roleDocument
		if err := doc.DataTo(&roleDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal role")
		}
		roles = append(roles, roleDoc.toModel())
	}

	return roles, nil
}
