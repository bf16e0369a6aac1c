package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

type environmentRequest struct {
	CompanyID string `json:"companyId"`
	Unit      string `json:"unit"`
	Sector    string `json:"sector"`
	Name      string `json:"name"`
	Type      string `json:"type"`
}

type environmentResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"companyId"`
	Unit      string `json:"unit"`
	Sector    string `json:"sector"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Status    string `json:"status"`
}

func toEnvironmentResponse(e *model.Environment) environmentResponse {
	return environmentResponse{
		ID:        e.ID.String(),
		CompanyID: e.CompanyID.String(),
		Unit:      e.Unit,
		Sector:    e.Sector,
		Name:      e.Name,
		Type:      e.Type,
		Status:    e.Status.String(),
	}
}

func (s *Server) createEnvironment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req environmentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(ctx, w, err)
		return
	}

	created, err := s.uc.Environment.Create(ctx, &model.Environment{
		CompanyID: types.CompanyID(req.CompanyID),
		Unit:      req.Unit,
		Sector:    req.Sector,
		Name:      req.Name,
		Type:      req.Type,
	})
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, toEnvironmentResponse(created))
}

func (s *Server) getEnvironment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.EnvironmentID(chi.URLParam(r, "environmentID"))

	env, err := s.uc.Environment.Get(ctx, id)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, toEnvironmentResponse(env))
}

func (s *Server) listEnvironments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	companyID := types.CompanyID(chi.URLParam(r, "companyID"))

	envs, err := s.uc.Environment.ListByCompany(ctx, companyID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	resp := make([]environmentResponse, 0, len(envs))
	for _, e := range envs {
		resp = append(resp, toEnvironmentResponse(e))
	}
	respondJSON(ctx, w, http.StatusOK, resp)
}

func (s *Server) finalizeEnvironment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.EnvironmentID(chi.URLParam(r, "environmentID"))

	env, err := s.uc.Environment.Finalize(ctx, id)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, toEnvironmentResponse(env))
}

type roleRequest struct {
	Name string `json:"name"`
}

type roleResponse struct {
	ID            string `json:"id"`
	EnvironmentID string `json:"environmentId"`
	Name          string `json:"name"`
}

func (s *Server) addRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	envID := types.EnvironmentID(chi.URLParam(r, "environmentID"))

	var req roleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(ctx, w, err)
		return
	}

	created, err := s.uc.Environment.AddRole(ctx, &model.Role{
		EnvironmentID: envID,
		Name:          req.Name,
	})
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, roleResponse{
		ID:            created.ID.String(),
		EnvironmentID: created.EnvironmentID.String(),
		Name:          created.Name,
	})
}

func (s *Server) listRoles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	envID := types.EnvironmentID(chi.URLParam(r, "environmentID"))

	roles, err := s.uc.Environment.ListRoles(ctx, envID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	resp := make([]roleResponse, 0, len(roles))
	for _, role := range roles {
		resp = append(resp, roleResponse{
			ID:            role.ID.String(),
			EnvironmentID: role.EnvironmentID.String(),
			Name:          role.Name,
		})
	}
	respondJSON(ctx, w, http.StatusOK, resp)
}

type activityRequest struct {
	Name                 string `json:"name"`
	Role                 string `json:"role"`
	MacroProcess         string `json:"macroProcess"`
	TechnicalDescription string `json:"technicalDescription"`
	TaskDescription      string `json:"taskDescription"`
	Frequency            string `json:"frequency"`
}

type activityResponse struct {
	ID                   string `json:"id"`
	EnvironmentID        string `json:"environmentId"`
	Name                 string `json:"name"`
	Role                 string `json:"role"`
	MacroProcess         string `json:"macroProcess"`
	TechnicalDescription string `json:"technicalDescription"`
	TaskDescription      string `json:"taskDescription"`
	Frequency            string `json:"frequency"`
}

func toActivityResponse(a *model.Activity) activityResponse {
	return activityResponse{
		ID:                   a.ID.String(),
		EnvironmentID:        a.EnvironmentID.String(),
		Name:                 a.Name,
		Role:                 a.Role,
		MacroProcess:         a.MacroProcess,
		TechnicalDescription: a.TechnicalDescription,
		TaskDescription:      a.TaskDescription,
		Frequency:            a.Frequency,
	}
}

func (s *Server) addActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	envID := types.EnvironmentID(chi.URLParam(r, "environmentID"))

	var req activityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(ctx, w, err)
		return
	}

	created, err := s.uc.Environment.AddActivity(ctx, &model.Activity{
		EnvironmentID:        envID,
		Name:                 req.Name,
		Role:                 req.Role,
		MacroProcess:         req.MacroProcess,
		TechnicalDescription: req.TechnicalDescription,
		TaskDescription:      req.TaskDescription,
		Frequency:            req.Frequency,
	})
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, toActivityResponse(created))
}

func (s *Server) listActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	envID := types.EnvironmentID(chi.URLParam(r, "environmentID"))

	activities, err := s.uc.Environment.ListActivities(ctx, envID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	resp := make([]activityResponse, 0, len(activities))
	for _, a := range activities {
		resp = append(resp, toActivityResponse(a))
	}
	respondJSON(ctx, w, http.StatusOK, resp)
}
