package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fastprodman/cashinreward/internal/repos/users"
	"github.com/fastprodman/cashinreward/internal/services/wallet"
)

const defaultJournalLimit = 50

// WalletHandler handles GET /wallet
func (h *HandlerProvider) WalletHandler(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Profile()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, summarize(u))
}

// TransactionsHandler handles GET /wallet/transactions?filter=
func (h *HandlerProvider) TransactionsHandler(w http.ResponseWriter, r *http.Request) {
	f, err := wallet.ParseHistoryFilter(r.URL.Query().Get("filter"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	txs, err := h.svc.History(f)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"filter": f, "transactions": txs})
}

// PayoutsHandler handles GET /payouts
func (h *HandlerProvider) PayoutsHandler(w http.ResponseWriter, r *http.Request) {
	feed, err := h.svc.Payouts()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, feed)
}

// LifafaHistoryHandler handles GET /wallet/lifafa
func (h *HandlerProvider) LifafaHistoryHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.LifafaHistory()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

// WithdrawMethodsHandler handles GET /wallet/withdraw-methods
func (h *HandlerProvider) WithdrawMethodsHandler(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{"methods": h.svc.WithdrawMethods()})
}

// JournalHandler handles GET /wallet/journal?limit=
func (h *HandlerProvider) JournalHandler(w http.ResponseWriter, r *http.Request) {
	if h.journal == nil {
		h.writeError(w, http.StatusNotFound, "journal disabled")
		return
	}

	limit := defaultJournalLimit

	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}

		limit = n
	}

	userID, err := h.svc.SessionUserID()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	txs, err := h.journal.Recent(r.Context(), userID, limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	// null until the session's first journaled transaction
	var journaled *int64

	b, err := h.journal.Balance(r.Context(), userID)
	switch {
	case err == nil:
		journaled = &b
	case errors.Is(err, users.ErrUserNotFound):
	default:
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"transactions": txs, "journaledBalance": journaled})
}

type depositRequest struct {
	Amount int64 `json:"amount"`
}

// DepositHandler handles POST /wallet/deposit
func (h *HandlerProvider) DepositHandler(w http.ResponseWriter, r *http.Request) {
	var req depositRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	rc, err := h.svc.Deposit(r.Context(), req.Amount)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, rc)
}

type withdrawRequest struct {
	Method      string `json:"method"`
	Amount      int64  `json:"amount"`
	Destination string `json:"destination"`
}

// WithdrawHandler handles POST /wallet/withdraw
func (h *HandlerProvider) WithdrawHandler(w http.ResponseWriter, r *http.Request) {
	var req withdrawRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	rc, err := h.svc.Withdraw(r.Context(), wallet.WithdrawRequest{
		Method:      req.Method,
		Amount:      req.Amount,
		Destination: req.Destination,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, rc)
}
