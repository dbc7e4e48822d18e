package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
)

type creditCheckRequest struct {
	Org       string   `json:"org"`
	Campaign  string   `json:"campaign"`
	NewBudget *float64 `json:"newBudget"`
}

type creditDeniedResponse struct {
	Message       string  `json:"message"`
	DepositAmount float64 `json:"depositAmount"`
}

// handleCreditCheck serves POST /api/accounting/credit-check. Approval
// is HTTP 204 with no body; denial is HTTP 402 carrying the minimum
// deposit that would clear the deficit. A campaign that does not belong
// to the stated org is a validation failure, not a denial.
func (h *Handler) handleCreditCheck(w http.ResponseWriter, r *http.Request) {
	var req creditCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpRequestsTotal.WithLabelValues(r.Method, "/credit-check", "400").Inc()
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	var proposed *decimal.Decimal
	if req.NewBudget != nil {
		d := decimal.NewFromFloat(*req.NewBudget)
		proposed = &d
	}

	decision, err := h.credit.Check(r.Context(), requesterFrom(r), req.Org, req.Campaign, proposed)
	if err != nil {
		h.writeError(w, r, "/credit-check", err)
		return
	}

	if !decision.Approved {
		creditDecisionsTotal.WithLabelValues("denied").Inc()
		h.writeJSON(w, r, "/credit-check", http.StatusPaymentRequired, creditDeniedResponse{
			Message:       "insufficient funds",
			DepositAmount: decision.DepositAmount.Round(2).InexactFloat64(),
		})
		return
	}
	creditDecisionsTotal.WithLabelValues("approved").Inc()
	httpRequestsTotal.WithLabelValues(r.Method, "/credit-check", "204").Inc()
	w.WriteHeader(http.StatusNoContent)
}
