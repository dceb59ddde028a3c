package handler

import (
	"net/http"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/coordinator"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
)

// OpenAccountRequest creates an account. An empty account_id gets a generated one.
type OpenAccountRequest struct {
	AccountID string `json:"account_id,omitempty" validate:"accountid"`
}

// DepositRequest tops up a balance
type DepositRequest struct {
	RequestID string `json:"request_id,omitempty" validate:"requestid"`
	Amount    int64  `json:"amount" validate:"gt=0"`
}

// SellRequest sells selected owned items for their catalog price
type SellRequest struct {
	RequestID string   `json:"request_id,omitempty" validate:"requestid"`
	ItemIDs   []string `json:"item_ids" validate:"required,min=1,unique,dive,uuid"`
}

// SellAllRequest sells the whole inventory
type SellAllRequest struct {
	RequestID string `json:"request_id,omitempty" validate:"requestid"`
}

// InventoryResponse lists owned items oldest first
type InventoryResponse struct {
	AccountID string             `json:"account_id"`
	Items     []domain.OwnedItem `json:"items"`
	Value     int64              `json:"value"`
}

// HistoryResponse lists operation records newest first
type HistoryResponse struct {
	AccountID  string                   `json:"account_id"`
	Operations []domain.OperationRecord `json:"operations"`
}

// HandleOpenAccount creates an account or returns the existing one
// @Summary Open account
// @Tags accounts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body OpenAccountRequest false "Account id"
// @Success 201 {object} domain.Account
// @Failure 400 {object} ErrorResponse
// @Router /accounts [post]
func (h *Handlers) HandleOpenAccount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OpenAccountRequest
		if r.ContentLength != 0 {
			if err := DecodeAndValidateRequest(r, w, &req, ActionOpenAccount); err != nil {
				return
			}
		}

		acct, err := h.service.OpenAccount(r.Context(), req.AccountID)
		if err != nil {
			respondServiceError(w, r, ActionOpenAccount, err)
			return
		}

		respondJSON(w, http.StatusCreated, acct)
	}
}

// HandleGetAccount returns the account balance
// @Summary Get account
// @Tags accounts
// @Produce json
// @Security ApiKeyAuth
// @Param accountID path string true "Account ID"
// @Success 200 {object} domain.Account
// @Failure 404 {object} ErrorResponse
// @Router /accounts/{accountID} [get]
func (h *Handlers) HandleGetAccount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := GetAccountIDParam(r, w)
		if !ok {
			return
		}

		acct, err := h.service.GetAccount(r.Context(), accountID)
		if err != nil {
			respondServiceError(w, r, ActionGetAccount, err)
			return
		}

		respondJSON(w, http.StatusOK, acct)
	}
}

// HandleDeposit credits an account
// @Summary Deposit
// @Tags accounts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param accountID path string true "Account ID"
// @Param Idempotency-Key header string false "Request id; overrides request_id"
// @Param request body DepositRequest true "Amount"
// @Success 200 {object} domain.DepositOutcome
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /accounts/{accountID}/deposit [post]
func (h *Handlers) HandleDeposit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := GetAccountIDParam(r, w)
		if !ok {
			return
		}

		var req DepositRequest
		if err := DecodeAndValidateRequest(r, w, &req, ActionDeposit); err != nil {
			return
		}

		out, err := h.service.Deposit(r.Context(), coordinator.DepositRequest{
			RequestID: requestID(r, req.RequestID),
			AccountID: accountID,
			Amount:    req.Amount,
		})
		if err != nil {
			respondServiceError(w, r, ActionDeposit, err)
			return
		}

		respondJSON(w, http.StatusOK, out)
	}
}

// HandleGetInventory lists owned items
// @Summary Get inventory
// @Tags accounts
// @Produce json
// @Security ApiKeyAuth
// @Param accountID path string true "Account ID"
// @Success 200 {object} InventoryResponse
// @Failure 404 {object} ErrorResponse
// @Router /accounts/{accountID}/inventory [get]
func (h *Handlers) HandleGetInventory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := GetAccountIDParam(r, w)
		if !ok {
			return
		}

		items, err := h.service.GetInventory(r.Context(), accountID)
		if err != nil {
			respondServiceError(w, r, ActionGetInventory, err)
			return
		}

		resp := InventoryResponse{AccountID: accountID, Items: items}
		if resp.Items == nil {
			resp.Items = []domain.OwnedItem{}
		}
		for _, it := range items {
			resp.Value += it.Item.Price
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleSellItems sells selected items
// @Summary Sell items
// @Tags accounts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param accountID path string true "Account ID"
// @Param Idempotency-Key header string false "Request id; overrides request_id"
// @Param request body SellRequest true "Items to sell"
// @Success 200 {object} domain.SaleOutcome
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /accounts/{accountID}/sell [post]
func (h *Handlers) HandleSellItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := GetAccountIDParam(r, w)
		if !ok {
			return
		}

		var req SellRequest
		if err := DecodeAndValidateRequest(r, w, &req, ActionSellItems); err != nil {
			return
		}

		ids, err := parseItemIDs(req.ItemIDs)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidItemID)
			return
		}

		out, err := h.service.SellItems(r.Context(), coordinator.SellRequest{
			RequestID: requestID(r, req.RequestID),
			AccountID: accountID,
			ItemIDs:   ids,
		})
		if err != nil {
			respondServiceError(w, r, ActionSellItems, err)
			return
		}

		respondJSON(w, http.StatusOK, out)
	}
}

// HandleSellAll sells the whole inventory
// @Summary Sell all items
// @Tags accounts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param accountID path string true "Account ID"
// @Param Idempotency-Key header string false "Request id; overrides request_id"
// @Param request body SellAllRequest false "Request id"
// @Success 200 {object} domain.SaleOutcome
// @Failure 422 {object} ErrorResponse "Nothing to sell"
// @Router /accounts/{accountID}/sell-all [post]
func (h *Handlers) HandleSellAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := GetAccountIDParam(r, w)
		if !ok {
			return
		}

		var req SellAllRequest
		if r.ContentLength != 0 {
			if err := DecodeAndValidateRequest(r, w, &req, ActionSellAll); err != nil {
				return
			}
		}

		out, err := h.service.SellAll(r.Context(), coordinator.SellAllRequest{
			RequestID: requestID(r, req.RequestID),
			AccountID: accountID,
		})
		if err != nil {
			respondServiceError(w, r, ActionSellAll, err)
			return
		}

		respondJSON(w, http.StatusOK, out)
	}
}

// HandleGetHistory lists recent operations
// @Summary Get history
// @Tags accounts
// @Produce json
// @Security ApiKeyAuth
// @Param accountID path string true "Account ID"
// @Param limit query int false "Max records (default 50, max 500)"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /accounts/{accountID}/history [get]
func (h *Handlers) HandleGetHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := GetAccountIDParam(r, w)
		if !ok {
			return
		}
		limit, ok := GetLimitParam(r, w)
		if !ok {
			return
		}

		recs, err := h.service.GetHistory(r.Context(), accountID, limit)
		if err != nil {
			respondServiceError(w, r, ActionGetHistory, err)
			return
		}
		if recs == nil {
			recs = []domain.OperationRecord{}
		}

		respondJSON(w, http.StatusOK, HistoryResponse{AccountID: accountID, Operations: recs})
	}
}
