package handler

import (
	"net/http"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/coordinator"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
)

// ContractOutcomesResponse lists the fusion result pool
type ContractOutcomesResponse struct {
	Outcomes []domain.ContractOutcome `json:"outcomes"`
}

// FuseRequest sacrifices owned items for one fused item.
// Count and duplicates are checked by the coordinator so the client gets
// the domain error rather than a field error.
type FuseRequest struct {
	AccountID string   `json:"account_id" validate:"required,accountid"`
	RequestID string   `json:"request_id,omitempty" validate:"requestid"`
	ItemIDs   []string `json:"item_ids" validate:"required,dive,uuid"`
}

// HandleGetContractOutcomes lists the fusion result pool
// @Summary List contract outcomes
// @Tags contracts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ContractOutcomesResponse
// @Router /contracts/outcomes [get]
func (h *Handlers) HandleGetContractOutcomes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, ContractOutcomesResponse{Outcomes: h.catalog.ContractOutcomes()})
	}
}

// HandleFuseContract fuses 3 to 10 owned items into one
// @Summary Fuse contract
// @Tags contracts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param Idempotency-Key header string false "Request id; overrides request_id"
// @Param request body FuseRequest true "Items to fuse"
// @Success 200 {object} domain.FusionOutcome
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /contracts/fuse [post]
func (h *Handlers) HandleFuseContract() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FuseRequest
		if err := DecodeAndValidateRequest(r, w, &req, ActionFuseContract); err != nil {
			return
		}

		ids, err := parseItemIDs(req.ItemIDs)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidItemID)
			return
		}

		out, err := h.service.FuseContract(r.Context(), coordinator.FuseRequest{
			RequestID: requestID(r, req.RequestID),
			AccountID: req.AccountID,
			ItemIDs:   ids,
		})
		if err != nil {
			respondServiceError(w, r, ActionFuseContract, err)
			return
		}

		respondJSON(w, http.StatusOK, out)
	}
}
