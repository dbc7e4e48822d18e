package httpadapter

import (
	"net/http"
	"strings"

	"adbooks/internal/core/domain"
)

// balanceResponse is the wire form of an org's stats. Monetary figures
// are emitted as plain JSON numbers rounded to cents.
type balanceResponse struct {
	Balance           float64 `json:"balance"`
	TotalSpend        float64 `json:"totalSpend"`
	OutstandingBudget float64 `json:"outstandingBudget"`
}

func toBalanceResponse(b domain.OrgBalance) balanceResponse {
	return balanceResponse{
		Balance:           b.Balance.Round(2).InexactFloat64(),
		TotalSpend:        b.TotalSpend.Round(2).InexactFloat64(),
		OutstandingBudget: b.OutstandingBudget.Round(2).InexactFloat64(),
	}
}

// handleBalance serves GET /api/accounting/balance?org=<id>. The org id
// defaults to the requester's own org; a missing id on both sides is
// HTTP 400, an org invisible to the requester is HTTP 404.
func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	requester := requesterFrom(r)
	orgID := r.URL.Query().Get("org")
	if orgID == "" {
		orgID = requester.OrgID
	}
	if orgID == "" {
		httpRequestsTotal.WithLabelValues(r.Method, "/balance", "400").Inc()
		http.Error(w, "missing org", http.StatusBadRequest)
		return
	}

	stat, err := h.stats.Balance(r.Context(), requester, orgID)
	if err != nil {
		h.writeError(w, r, "/balance", err)
		return
	}
	h.writeJSON(w, r, "/balance", http.StatusOK, toBalanceResponse(stat))
}

// handleBalances serves GET /api/accounting/balances?orgs=<id,id,...>.
// Orgs that do not resolve under the requester's scope come back as null
// entries; the response is still HTTP 200.
func (h *Handler) handleBalances(w http.ResponseWriter, r *http.Request) {
	requester := requesterFrom(r)

	var orgIDs []string
	if raw := r.URL.Query().Get("orgs"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				orgIDs = append(orgIDs, id)
			}
		}
	}

	stats, err := h.stats.Balances(r.Context(), requester, orgIDs)
	if err != nil {
		h.writeError(w, r, "/balances", err)
		return
	}

	resp := make(map[string]*balanceResponse, len(stats))
	for org, stat := range stats {
		if stat == nil {
			resp[org] = nil
			continue
		}
		converted := toBalanceResponse(*stat)
		resp[org] = &converted
	}
	h.writeJSON(w, r, "/balances", http.StatusOK, resp)
}
