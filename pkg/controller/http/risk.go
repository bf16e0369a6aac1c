package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

type riskRequest struct {
	ActivityID       string `json:"activityId"`
	Hazard           string `json:"hazard"`
	HazardousEvent   string `json:"hazardousEvent"`
	PotentialDamage  string `json:"potentialDamage"`
	AgentCategory    string `json:"agentCategory"`
	Condition        string `json:"condition"`
	ExposedCount     int    `json:"exposedCount"`
	ExistingControls string `json:"existingControls"`
}

type riskResponse struct {
	ID               string `json:"id"`
	ActivityID       string `json:"activityId"`
	Hazard           string `json:"hazard"`
	HazardousEvent   string `json:"hazardousEvent"`
	PotentialDamage  string `json:"potentialDamage"`
	AgentCategory    string `json:"agentCategory"`
	Condition        string `json:"condition"`
	ExposedCount     int    `json:"exposedCount"`
	ExistingControls string `json:"existingControls"`
	LegacyMigrated   bool   `json:"legacyMigrated"`
}

func toRiskResponse(risk *model.Risk) riskResponse {
	return riskResponse{
		ID:               risk.ID.String(),
		ActivityID:       risk.ActivityID.String(),
		Hazard:           risk.Hazard,
		HazardousEvent:   risk.HazardousEvent,
		PotentialDamage:  risk.PotentialDamage,
		AgentCategory:    risk.AgentCategory.String(),
		Condition:        risk.Condition,
		ExposedCount:     risk.ExposedCount,
		ExistingControls: risk.ExistingControls,
		LegacyMigrated:   risk.LegacyMigrated,
	}
}

func (s *Server) createRisk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req riskRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(ctx, w, err)
		return
	}

	created, err := s.uc.Risk.Create(ctx, &model.Risk{
		ActivityID:       types.ActivityID(req.ActivityID),
		Hazard:           req.Hazard,
		HazardousEvent:   req.HazardousEvent,
		PotentialDamage:  req.PotentialDamage,
		AgentCategory:    types.AgentCategory(req.AgentCategory),
		Condition:        req.Condition,
		ExposedCount:     req.ExposedCount,
		ExistingControls: req.ExistingControls,
	})
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, toRiskResponse(created))
}

func (s *Server) getRisk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.RiskID(chi.URLParam(r, "riskID"))

	risk, err := s.uc.Risk.Get(ctx, id)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, toRiskResponse(risk))
}

func (s *Server) listRisks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	activityID := types.ActivityID(chi.URLParam(r, "activityID"))

	risks, err := s.uc.Risk.ListByActivity(ctx, activityID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	resp := make([]riskResponse, 0, len(risks))
	for _, risk := range risks {
		resp = append(resp, toRiskResponse(risk))
	}
	respondJSON(ctx, w, http.StatusOK, resp)
}

func (s *Server) deleteRisk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.RiskID(chi.URLParam(r, "riskID"))

	if err := s.uc.Risk.Delete(ctx, id); err != nil {
		respondError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
