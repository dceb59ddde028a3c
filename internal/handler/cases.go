package handler

import (
	"net/http"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/coordinator"
)

// CaseSummary is a case without its item pool
type CaseSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	ItemCount int    `json:"item_count"`
}

// CaseListResponse lists the catalog cases
type CaseListResponse struct {
	Cases []CaseSummary `json:"cases"`
}

// OpenCaseRequest is the body of a case opening
type OpenCaseRequest struct {
	AccountID string `json:"account_id" validate:"required,accountid"`
	RequestID string `json:"request_id,omitempty" validate:"requestid"`
}

// HandleGetCases lists the available cases
// @Summary List cases
// @Tags cases
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} CaseListResponse
// @Router /cases [get]
func (h *Handlers) HandleGetCases() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all := h.catalog.Cases()
		out := CaseListResponse{Cases: make([]CaseSummary, len(all))}
		for i, c := range all {
			out.Cases[i] = CaseSummary{ID: c.ID, Name: c.Name, Price: c.Price, ItemCount: len(c.Items)}
		}
		respondJSON(w, http.StatusOK, out)
	}
}

// HandleGetCase returns one case with its item pool
// @Summary Get case
// @Tags cases
// @Produce json
// @Security ApiKeyAuth
// @Param caseID path string true "Case ID"
// @Success 200 {object} domain.Case
// @Failure 404 {object} ErrorResponse
// @Router /cases/{caseID} [get]
func (h *Handlers) HandleGetCase() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caseID, ok := GetPathParam(r, w, ParamCaseID)
		if !ok {
			return
		}
		c, err := h.catalog.Case(caseID)
		if err != nil {
			respondServiceError(w, r, ActionGetCase, err)
			return
		}
		respondJSON(w, http.StatusOK, c)
	}
}

// HandleOpenCase debits the case price and draws one item
// @Summary Open case
// @Description Debits the case price and grants one drawn item. Retrying with the same request id replays the first outcome.
// @Tags cases
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param caseID path string true "Case ID"
// @Param Idempotency-Key header string false "Request id; overrides request_id"
// @Param request body OpenCaseRequest true "Opening account"
// @Success 200 {object} domain.DropOutcome
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse "Insufficient balance"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /cases/{caseID}/open [post]
func (h *Handlers) HandleOpenCase() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caseID, ok := GetPathParam(r, w, ParamCaseID)
		if !ok {
			return
		}

		var req OpenCaseRequest
		if err := DecodeAndValidateRequest(r, w, &req, ActionOpenCase); err != nil {
			return
		}

		c, err := h.catalog.Case(caseID)
		if err != nil {
			respondServiceError(w, r, ActionOpenCase, err)
			return
		}

		out, err := h.service.OpenCase(r.Context(), coordinator.OpenCaseRequest{
			RequestID: requestID(r, req.RequestID),
			AccountID: req.AccountID,
			Case:      c,
		})
		if err != nil {
			respondServiceError(w, r, ActionOpenCase, err)
			return
		}

		respondJSON(w, http.StatusOK, out)
	}
}
