package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

type inspectionAnswerRequest struct {
	ItemID string `json:"itemId"`
	Answer *bool  `json:"answer"`
}

type inspectionRequest struct {
	ChecklistID string                    `json:"checklistId"`
	CompanyID   string                    `json:"companyId"`
	Date        string                    `json:"date"`
	Items       []inspectionAnswerRequest `json:"items"`
}

type inspectionResponse struct {
	ID          string                    `json:"id"`
	ChecklistID string                    `json:"checklistId"`
	CompanyID   string                    `json:"companyId"`
	Date        string                    `json:"date"`
	Items       []inspectionAnswerRequest `json:"items"`
}

func toInspectionResponse(insp *model.Inspection) inspectionResponse {
	items := make([]inspectionAnswerRequest, 0, len(insp.Items))
	for _, item := range insp.Items {
		items = append(items, inspectionAnswerRequest{ItemID: item.ItemID, Answer: item.Answer})
	}
	return inspectionResponse{
		ID:          insp.ID.String(),
		ChecklistID: insp.ChecklistID.String(),
		CompanyID:   insp.CompanyID.String(),
		Date:        insp.Date,
		Items:       items,
	}
}

func (s *Server) recordInspection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req inspectionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(ctx, w, err)
		return
	}

	items := make([]model.InspectionAnswer, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.InspectionAnswer{ItemID: item.ItemID, Answer: item.Answer})
	}

	created, err := s.uc.Inspection.Record(ctx, &model.Inspection{
		ChecklistID: types.ChecklistID(req.ChecklistID),
		CompanyID:   types.CompanyID(req.CompanyID),
		Date:        req.Date,
		Items:       items,
	})
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, toInspectionResponse(created))
}

func (s *Server) listInspections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	companyID := types.CompanyID(chi.URLParam(r, "companyID"))

	inspections, err := s.uc.Inspection.ListByCompany(ctx, companyID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	resp := make([]inspectionResponse, 0, len(inspections))
	for _, insp := range inspections {
		resp = append(resp, toInspectionResponse(insp))
	}
	respondJSON(ctx, w, http.StatusOK, resp)
}

type checklistMetricsResponse struct {
	ChecklistID    string  `json:"checklistId"`
	Category       string  `json:"category"`
	Total          int     `json:"total"`
	OK             int     `json:"ok"`
	NonConforming  int     `json:"nonConforming"`
	Pending        int     `json:"pending"`
	Unknown        int     `json:"unknown"`
	OKPct          float64 `json:"okPct"`
	NonPct         float64 `json:"nonPct"`
	PendingPct     float64 `json:"pendingPct"`
	UnknownPct     float64 `json:"unknownPct"`
	CompliancePct  int     `json:"compliancePct"`
	ActionsNeeded  int     `json:"actionsNeeded"`
	Severity       string  `json:"severity"`
	HasInspection  bool    `json:"hasInspection"`
	InspectionDate string  `json:"inspectionDate,omitempty"`
}

func toChecklistMetricsResponse(m model.ChecklistMetrics) checklistMetricsResponse {
	return checklistMetricsResponse{
		ChecklistID:    m.ChecklistID.String(),
		Category:       m.Category,
		Total:          m.Total,
		OK:             m.OK,
		NonConforming:  m.NonConforming,
		Pending:        m.Pending,
		Unknown:        m.Unknown,
		OKPct:          m.OKPct,
		NonPct:         m.NonPct,
		PendingPct:     m.PendingPct,
		UnknownPct:     m.UnknownPct,
		CompliancePct:  m.CompliancePct,
		ActionsNeeded:  m.ActionsNeeded,
		Severity:       m.Severity.String(),
		HasInspection:  m.HasInspection,
		InspectionDate: m.InspectionDate,
	}
}

type companySummaryResponse struct {
	Applicable    int `json:"applicable"`
	Inspected     int `json:"inspected"`
	NoInspection  int `json:"noInspection"`
	CoveragePct   int `json:"coveragePct"`
	CompliancePct int `json:"compliancePct"`
	ActionsNeeded int `json:"actionsNeeded"`
}

type companyComplianceResponse struct {
	CompanyID  string                     `json:"companyId"`
	Summary    companySummaryResponse     `json:"summary"`
	Checklists []checklistMetricsResponse `json:"checklists"`
	Attention  []checklistMetricsResponse `json:"attention"`
}

func (s *Server) companyCompliance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	companyID := types.CompanyID(chi.URLParam(r, "companyID"))

	topN := 0
	if raw := r.URL.Query().Get("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondJSON(ctx, w, http.StatusBadRequest,
				errorResponse{Error: "top must be a positive integer", Code: "bad_request"})
			return
		}
		topN = n
	}

	compliance, err := s.uc.Dashboard.CompanyCompliance(ctx, companyID, topN)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	resp := companyComplianceResponse{
		CompanyID: compliance.CompanyID.String(),
		Summary: companySummaryResponse{
			Applicable:    compliance.Summary.Applicable,
			Inspected:     compliance.Summary.Inspected,
			NoInspection:  compliance.Summary.NoInspection,
			CoveragePct:   compliance.Summary.CoveragePct,
			CompliancePct: compliance.Summary.CompliancePct,
			ActionsNeeded: compliance.Summary.ActionsNeeded,
		},
		Checklists: make([]checklistMetricsResponse, 0, len(compliance.Checklists)),
		Attention:  make([]checklistMetricsResponse, 0, len(compliance.Attention)),
	}
	for _, m := range compliance.Checklists {
		resp.Checklists = append(resp.Checklists, toChecklistMetricsResponse(m))
	}
	for _, m := range compliance.Attention {
		resp.Attention = append(resp.Attention, toChecklistMetricsResponse(m))
	}

	respondJSON(ctx, w, http.StatusOK, resp)
}
