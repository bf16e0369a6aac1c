package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

type companyRequest struct {
	Name string `json:"name"`
	CNPJ string `json:"cnpj"`
	CNAE string `json:"cnae"`
}

type companyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	CNPJ string `json:"cnpj"`
	CNAE string `json:"cnae"`
}

func toCompanyResponse(c *model.Company) companyResponse {
	return companyResponse{
		ID:   c.ID.String(),
		Name: c.Name,
		CNPJ: c.CNPJ,
		CNAE: c.CNAE,
	}
}

func (s *Server) createCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req companyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(ctx, w, err)
		return
	}

	created, err := s.uc.Company.Create(ctx, &model.Company{
		Name: req.Name,
		CNPJ: req.CNPJ,
		CNAE: req.CNAE,
	})
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, toCompanyResponse(created))
}

func (s *Server) getCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.CompanyID(chi.URLParam(r, "companyID"))

	company, err := s.uc.Company.Get(ctx, id)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, toCompanyResponse(company))
}

func (s *Server) listCompanies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	companies, err := s.uc.Company.List(ctx)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	resp := make([]companyResponse, 0, len(companies))
	for _, c := range companies {
		resp = append(resp, toCompanyResponse(c))
	}
	respondJSON(ctx, w, http.StatusOK, resp)
}

type checklistItemResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Weight   int    `json:"weight"`
}

type checklistResponse struct {
	ID        string                  `json:"id"`
	CompanyID string                  `json:"companyId"`
	Category  string                  `json:"category"`
	Items     []checklistItemResponse `json:"items"`
}

func toChecklistResponse(c *model.Checklist) checklistResponse {
	items := make([]checklistItemResponse, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, checklistItemResponse{
			ID:       item.ID,
			Question: item.Question,
			Weight:   item.Weight,
		})
	}
	return checklistResponse{
		ID:        c.ID.String(),
		CompanyID: c.CompanyID.String(),
		Category:  c.Category,
		Items:     items,
	}
}

func (s *Server) listChecklists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.CompanyID(chi.URLParam(r, "companyID"))

	checklists, err := s.uc.Company.Checklists(ctx, id)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	resp := make([]checklistResponse, 0, len(checklists))
	for _, c := range checklists {
		resp = append(resp, toChecklistResponse(c))
	}
	respondJSON(ctx, w, http.StatusOK, resp)
}
