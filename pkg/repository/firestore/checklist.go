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

type checklistItemDocument struct {
	ID       string `firestore:"id"`
	Question string `firestore:"question"`
	Weight   int    `firestore:"weight"`
}

type checklistDocument struct {
	ID        string                  `firestore:"id"`
	CompanyID string                  `firestore:"company_id"`
	Category  string                  `firestore:"category"`
	Items     []checklistItemDocument `firestore:"items"`
	CreatedAt time.Time               `firestore:"created_at"`
	UpdatedAt time.Time               `firestore:"updated_at"`
}

func (d *checklistDocument) toModel() *model.Checklist {
	items := make([]model.ChecklistItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, model.ChecklistItem{
			ID:       item.ID,
			Question: item.Question,
			Weight:   item.Weight,
		})
	}

	return &model.Checklist{
		ID:        types.ChecklistID(d.ID),
		CompanyID: types.CompanyID(d.CompanyID),
		Category:  d.Category,
		Items:     items,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type checklistRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newChecklistRepository(client *firestore.Client) *checklistRepository {
	return &checklistRepository{client: client}
}

func (r *checklistRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_checklists"
	}
	return "checklists"
}

func (r *checklistRepository) Create(ctx context.Context, checklist *model.Checklist) (*model.Checklist, error) {
	id := checklist.ID
	if id == "" {
		id = types.NewChecklistID()
	}

	items := make([]checklistItemDocument, 0, len(checklist.Items))
	for _, item := range checklist.Items {
		items = append(items, checklistItemDocument{
			ID:       item.ID,
			Question: item.Question,
			Weight:   item.Weight,
		})
	}

	now := time.Now().UTC()
	doc := &checklistDocument{
		ID:        id.String(),
		CompanyID: checklist.CompanyID.String(),
		Category:  checklist.Category,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}

	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create checklist", goerr.V("id", id))
	}

	return doc.toModel(), nil
}

func (r *checklistRepository) Get(ctx context.Context, id types.ChecklistID) (*model.Checklist, error) {
	doc, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "checklist not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get checklist", goerr.V("id", id))
	}

	var checklistDoc checklistDocument
	if err := doc.DataTo(&checklistDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal checklist", goerr.V("id", id))
	}

	return checklistDoc.toModel(), nil
}

func (r *checklistRepository) ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*model.Checklist, error) {
	iter := r.client.Collection(r.collection()).
		Where("company_id", "==", companyID.String()).
		Documents(ctx)
	defer iter.Stop()

	var checklists []*model.Checklist
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate checklists")
		}

		var checklistDoc checklistDocument
		if err := doc.DataTo(&checklistDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal checklist")
		}
		checklists = append(checklists, checklistDoc.toModel())
	}

	return checklists, nil
}
