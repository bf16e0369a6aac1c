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

type measurementDocument struct {
	ID              string    `firestore:"id"`
	RiskID          string    `firestore:"risk_id"`
	Type            string    `firestore:"type"`
	MeasuredValue   float64   `firestore:"measured_value"`
	Unit            string    `firestore:"unit"`
	ExposureTime    string    `firestore:"exposure_time"`
	Method          string    `firestore:"method"`
	Instrument      string    `firestore:"instrument"`
	MeasurementDate string    `firestore:"measurement_date"`
	Comparison      string    `firestore:"comparison"`
	CreatedAt       time.Time `firestore:"created_at"`
	UpdatedAt       time.Time `firestore:"updated_at"`
}

func (d *measurementDocument) toModel() *model.RiskMeasurement {
	return &model.RiskMeasurement{
		ID:              types.MeasurementID(d.ID),
		RiskID:          types.RiskID(d.RiskID),
		Type:            d.Type,
		MeasuredValue:   d.MeasuredValue,
		Unit:            d.Unit,
		ExposureTime:    d.ExposureTime,
		Method:          d.Method,
		Instrument:      d.Instrument,
		MeasurementDate: d.MeasurementDate,
		Comparison:      types.Comparison(d.Comparison),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

type measurementRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newMeasurementRepository(client *firestore.Client) *measurementRepository {
	return &measurementRepository{client: client}
}

func (r *measurementRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_measurements"
	}
	return "measurements"
}

func (r *measurementRepository) Create(ctx context.Context, m *model.RiskMeasurement) (*model.RiskMeasurement, error) {
	id := m.ID
	if id == "" {
		id = types.NewMeasurementID()
	}

	now := time.Now().UTC()
	doc := &measurementDocument{
		ID:              id.String(),
		RiskID:          m.RiskID.String(),
		Type:            m.Type,
		MeasuredValue:   m.MeasuredValue,
		Unit:            m.Unit,
		ExposureTime:    m.ExposureTime,
		Method:          m.Method,
		Instrument:      m.Instrument,
		MeasurementDate: m.MeasurementDate,
		Comparison:      m.Comparison.String(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create measurement", goerr.V("id", id))
	}

	return doc.toModel(), nil
}

func (r *measurementRepository) Get(ctx context.Context, id types.MeasurementID) (*model.RiskMeasurement, error) {
	doc, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "measurement not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get measurement", goerr.V("id", id))
	}

	var measurementDoc measurementDocument
	if err := doc.DataTo(&measurementDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal measurement", goerr.V("id", id))
	}

	return measurementDoc.toModel(), nil
}

func (r *measurementRepository) ListByRisk(ctx context.Context, riskID types.RiskID) ([]*model.RiskMeasurement, error) {
	iter := r.client.Collection(r.collection()).
		Where("risk_id", "==", riskID.String()).
		Documents(ctx)
	defer iter.Stop()

	var measurements []*model.RiskMeasurement
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate measurements")
		}

		var measurementDoc measurementDocument
		if err := doc.DataTo(&measurementDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal measurement")
		}
		measurements = append(measurements, measurementDoc.toModel())
	}

	return measurements, nil
}

func (r *measurementRepository) Delete(ctx context.Context, id types.MeasurementID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "measurement not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get measurement", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete measurement", goerr.V("id", id))
	}

	return nil
}
