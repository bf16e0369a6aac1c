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

// inspectionAnswerDocument flattens the nullable answer into two fields
// because Firestore round-trips a nil *bool as false.
type inspectionAnswerDocument struct {
	ItemID   string `firestore:"item_id"`
	Answered bool   `firestore:"answered"`
	Answer   bool   `firestore:"answer"`
}

type inspectionDocument struct {
	ID          string                     `firestore:"id"`
	ChecklistID string                     `firestore:"checklist_id"`
	CompanyID   string                     `firestore:"company_id"`
	Date        string                     `firestore:"date"`
	Items       []inspectionAnswerDocument `firestore:"items"`
	CreatedAt   time.Time                  `firestore:"created_at"`
}

func (d *inspectionDocument) toModel() *model.Inspection {
	items := make([]model.InspectionAnswer, 0, len(d.Items))
	for _, item := range d.Items {
		answer := model.InspectionAnswer{ItemID: item.ItemID}
		if item.Answered {
			v := item.Answer
			answer.Answer = &v
		}
		items = append(items, answer)
	}

	return &model.Inspection{
		ID:          types.InspectionID(d.ID),
		ChecklistID: types.ChecklistID(d.ChecklistID),
		CompanyID:   types.CompanyID(d.CompanyID),
		Date:        d.Date,
		Items:       items,
		CreatedAt:   d.CreatedAt,
	}
}

type inspectionRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newInspectionRepository(client *firestore.Client) *inspectionRepository {
	return &inspectionRepository{client: client}
}

func (r *inspectionRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_inspections"
	}
	return "inspections"
}

func (r *inspectionRepository) Create(ctx context.Context, inspection *model.Inspection) (*model.Inspection, error) {
	id := inspection.ID
	if id == "" {
		id = types.NewInspectionID()
	}

	items := make([]inspectionAnswerDocument, 0, len(inspection.Items))
	for _, item := range inspection.Items {
		answerDoc := inspectionAnswerDocument{ItemID: item.ItemID}
		if item.Answer != nil {
			answerDoc.Answered = true
			answerDoc.Answer = *item.Answer
		}
		items = append(items, answerDoc)
	}

	doc := &inspectionDocument{
		ID:          id.String(),
		ChecklistID: inspection.ChecklistID.String(),
		CompanyID:   inspection.CompanyID.String(),
		Date:        inspection.Date,
		Items:       items,
		CreatedAt:   time.Now().UTC(),
	}

	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create inspection", goerr.V("id", id))
	}

	return doc.toModel(), nil
}

func (r *inspectionRepository) ListByCompany(ctx context.Context, companyID types.CompanyID) ([]*model.Inspection, error) {
	iter := r.client.Collection(r.collection()).
		Where("company_id", "==", companyID.String()).
		Documents(ctx)
	defer iter.Stop()

	var inspections []*model.Inspection
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate inspections")
		}

		var inspectionDoc inspectionDocument
		if err := doc.DataTo(&inspectionDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal inspection")
		}
		inspections = append(inspections, inspectionDoc.toModel())
	}

	return inspections, nil
}
