package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

type assessmentRequest struct {
	Probability            int    `json:"probability"`
	Severity               int    `json:"severity"`
	ConfidenceLevel        string `json:"confidenceLevel"`
	TechnicalJustification string `json:"technicalJustification"`
}

type assessmentResponse struct {
	ID                     string `json:"id"`
	RiskID                 string `json:"riskId"`
	Probability            int    `json:"probability"`
	Severity               int    `json:"severity"`
	Score                  int    `json:"score"`
	Classification         string `json:"classification"`
	RequiresJustification  bool   `json:"requiresJustification"`
	ConfidenceLevel        string `json:"confidenceLevel"`
	TechnicalJustification string `json:"technicalJustification"`
}

func toAssessmentResponse(a *model.RiskAssessment) assessmentResponse {
	return assessmentResponse{
		ID:                     a.ID.String(),
		RiskID:                 a.RiskID.String(),
		Probability:            a.Probability,
		Severity:               a.Severity,
		Score:                  a.Score(),
		Classification:         a.Classification.String(),
		RequiresJustification:  a.RequiresJustification,
		ConfidenceLevel:        a.ConfidenceLevel,
		TechnicalJustification: a.TechnicalJustification,
	}
}

func (s *Server) upsertAssessment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	riskID := types.RiskID(chi.URLParam(r, "riskID"))

	var req assessmentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(ctx, w, err)
		return
	}

	stored, err := s.uc.Assessment.Upsert(ctx, &model.RiskAssessment{
		RiskID:                 riskID,
		Probability:            req.Probability,
		Severity:               req.Severity,
		ConfidenceLevel:        req.ConfidenceLevel,
		TechnicalJustification: req.TechnicalJustification,
	})
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, toAssessmentResponse(stored))
}

func (s *Server) getAssessment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	riskID := types.RiskID(chi.URLParam(r, "riskID"))

	assessment, err := s.uc.Assessment.GetByRisk(ctx, riskID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, toAssessmentResponse(assessment))
}

type measurementRequest struct {
	Type            string  `json:"type"`
	MeasuredValue   float64 `json:"measuredValue"`
	Unit            string  `json:"unit"`
	ExposureTime    string  `json:"exposureTime"`
	Method          string  `json:"method"`
	Instrument      string  `json:"instrument"`
	MeasurementDate string  `json:"measurementDate"`
}

type measurementResponse struct {
	ID              string  `json:"id"`
	RiskID          string  `json:"riskId"`
	Type            string  `json:"type"`
	MeasuredValue   float64 `json:"measuredValue"`
	Unit            string  `json:"unit"`
	ExposureTime    string  `json:"exposureTime"`
	Method          string  `json:"method"`
	Instrument      string  `json:"instrument"`
	MeasurementDate string  `json:"measurementDate"`
	Comparison      string  `json:"comparison,omitempty"`
}

func toMeasurementResponse(m *model.RiskMeasurement) measurementResponse {
	return measurementResponse{
		ID:              m.ID.String(),
		RiskID:          m.RiskID.String(),
		Type:            m.Type,
		MeasuredValue:   m.MeasuredValue,
		Unit:            m.Unit,
		ExposureTime:    m.ExposureTime,
		Method:          m.Method,
		Instrument:      m.Instrument,
		MeasurementDate: m.MeasurementDate,
		Comparison:      m.Comparison.String(),
	}
}

func (s *Server) recordMeasurement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	riskID := types.RiskID(chi.URLParam(r, "riskID"))

	var req measurementRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(ctx, w, err)
		return
	}

	created, err := s.uc.Measurement.Record(ctx, &model.RiskMeasurement{
		RiskID:          riskID,
		Type:            req.Type,
		MeasuredValue:   req.MeasuredValue,
		Unit:            req.Unit,
		ExposureTime:    req.ExposureTime,
		Method:          req.Method,
		Instrument:      req.Instrument,
		MeasurementDate: req.MeasurementDate,
	})
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, toMeasurementResponse(created))
}

func (s *Server) listMeasurements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	riskID := types.RiskID(chi.URLParam(r, "riskID"))

	measurements, err := s.uc.Measurement.ListByRisk(ctx, riskID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	resp := make([]measurementResponse, 0, len(measurements))
	for _, m := range measurements {
		resp = append(resp, toMeasurementResponse(m))
	}
	respondJSON(ctx, w, http.StatusOK, resp)
}

func (s *Server) deleteMeasurement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.MeasurementID(chi.URLParam(r, "measurementID"))

	if err := s.uc.Measurement.Delete(ctx, id); err != nil {
		respondError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
