package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/coordinator"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/upgrade"
)

// UpgradeTargetsResponse lists the upgrade targets
type UpgradeTargetsResponse struct {
	Targets []domain.Item `json:"targets"`
}

// UpgradeQuoteRequest asks for the chance of an upgrade, or for the target that
// best fits a chance. With neither target_id nor chance the first target
// priced above the source is quoted.
type UpgradeQuoteRequest struct {
	SourcePrice int64  `json:"source_price" validate:"gt=0"`
	TargetID    string `json:"target_id,omitempty"`
	Chance      int    `json:"chance,omitempty" validate:"omitempty,min=10,max=90"`
}

// UpgradeQuoteResponse is a target and the chance of reaching it
type UpgradeQuoteResponse struct {
	Target domain.Item `json:"target"`
	Chance int         `json:"chance"`
}

// UpgradeRequest stakes an owned item for a catalog target. Chance is the
// slider position a quote was made for; it must select target_id.
type UpgradeRequest struct {
	AccountID    string `json:"account_id" validate:"required,accountid"`
	RequestID    string `json:"request_id,omitempty" validate:"requestid"`
	SourceItemID string `json:"source_item_id" validate:"required,uuid"`
	TargetID     string `json:"target_id" validate:"required"`
	Chance       int    `json:"chance,omitempty" validate:"omitempty,min=10,max=90"`
}

// HandleGetUpgradeTargets lists the upgrade targets
// @Summary List upgrade targets
// @Tags upgrade
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} UpgradeTargetsResponse
// @Router /upgrade/targets [get]
func (h *Handlers) HandleGetUpgradeTargets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, UpgradeTargetsResponse{Targets: h.catalog.UpgradeTargets()})
	}
}

// HandleUpgradeQuote prices an upgrade without running it
// @Summary Quote upgrade
// @Description Returns the chance for a target, or the target closest to a chance
// @Tags upgrade
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body UpgradeQuoteRequest true "Quote input"
// @Success 200 {object} UpgradeQuoteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "No target fits"
// @Router /upgrade/quote [post]
func (h *Handlers) HandleUpgradeQuote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpgradeQuoteRequest
		if err := DecodeAndValidateRequest(r, w, &req, ActionUpgradeQuote); err != nil {
			return
		}

		source := domain.Item{Price: req.SourcePrice}
		targets := h.catalog.UpgradeTargets()

		var (
			quote UpgradeQuoteResponse
			found bool
		)
		switch {
		case req.TargetID != "":
			target, err := h.catalog.UpgradeTarget(req.TargetID)
			if err != nil {
				respondServiceError(w, r, ActionUpgradeQuote, err)
				return
			}
			quote = UpgradeQuoteResponse{Target: target, Chance: upgrade.CalculateChance(source.Price, target.Price)}
			found = true
		case req.Chance != 0:
			// the chance quoted is the one an upgrade to that target rolls at
			quote.Target, found = upgrade.TargetForChance(source, targets, req.Chance)
			quote.Chance = upgrade.CalculateChance(source.Price, quote.Target.Price)
		default:
			quote.Target, found = upgrade.DefaultTarget(source, targets)
			quote.Chance = upgrade.CalculateChance(source.Price, quote.Target.Price)
		}

		if !found {
			respondError(w, http.StatusUnprocessableEntity, ErrMsgQuoteNoTarget)
			return
		}
		respondJSON(w, http.StatusOK, quote)
	}
}

// HandleUpgrade runs one upgrade trial
// @Summary Upgrade item
// @Description Stakes an owned item for a pricier target at the chance derived from the two prices. A chance, when sent, must select the same target as /upgrade/quote. The source is removed whatever the result; on success a copy of the target is granted.
// @Tags upgrade
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param Idempotency-Key header string false "Request id; overrides request_id"
// @Param request body UpgradeRequest true "Upgrade details"
// @Success 200 {object} domain.UpgradeOutcome
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /upgrade [post]
func (h *Handlers) HandleUpgrade() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpgradeRequest
		if err := DecodeAndValidateRequest(r, w, &req, ActionUpgrade); err != nil {
			return
		}

		sourceID, err := uuid.Parse(req.SourceItemID)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidItemID)
			return
		}

		target, err := h.catalog.UpgradeTarget(req.TargetID)
		if err != nil {
			respondServiceError(w, r, ActionUpgrade, err)
			return
		}

		out, err := h.service.Upgrade(r.Context(), coordinator.UpgradeRequest{
			RequestID:    requestID(r, req.RequestID),
			AccountID:    req.AccountID,
			SourceItemID: sourceID,
			Target:       target,
			Chance:       req.Chance,
		})
		if err != nil {
			respondServiceError(w, r, ActionUpgrade, err)
			return
		}

		respondJSON(w, http.StatusOK, out)
	}
}
