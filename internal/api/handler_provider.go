package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/fastprodman/cashinreward/internal/auth"
	"github.com/fastprodman/cashinreward/internal/ledger"
	"github.com/fastprodman/cashinreward/internal/rules"
	"github.com/fastprodman/cashinreward/internal/services/wallet"
)

const maxBodyBytes = 1 << 20

// JournalReader exposes journaled transactions and the balance snapshot
// stored next to them. Nil when the journal is off.
type JournalReader interface {
	Recent(ctx context.Context, userID string, limit int) ([]ledger.Transaction, error)
	Balance(ctx context.Context, userID string) (int64, error)
}

// HandlerProvider wraps the wallet service and exposes HTTP handlers.
type HandlerProvider struct {
	svc     *wallet.Service
	tokens  *auth.TokenManager
	journal JournalReader
	log     *slog.Logger
}

func NewHandler(svc *wallet.Service, tokens *auth.TokenManager, journal JournalReader, log *slog.Logger) *HandlerProvider {
	if log == nil {
		log = slog.Default()
	}

	return &HandlerProvider{svc: svc, tokens: tokens, journal: journal, log: log}
}

// --- Helpers ---

func (h *HandlerProvider) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		h.log.Error("failed to encode JSON response", "error", err)
	}
}

func (h *HandlerProvider) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON reads a single JSON object, rejecting unknown fields.
func (h *HandlerProvider) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		if errors.Is(err, io.EOF) {
			h.writeError(w, http.StatusBadRequest, "empty body")
			return false
		}

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, http.StatusRequestEntityTooLarge, "body too large")
			return false
		}

		h.writeError(w, http.StatusBadRequest, "invalid JSON")

		return false
	}

	return true
}

var validationErrs = []error{
	rules.ErrRequired,
	rules.ErrBelowMinimum,
	rules.ErrInsufficientBalance,
	rules.ErrInvalidDestination,
	rules.ErrInvalidMobile,
	rules.ErrWeakPassword,
	rules.ErrUnknownMethod,
	rules.ErrInvalidOption,
	rules.ErrAmountTooLarge,
	ledger.ErrEmptyCredentials,
	ledger.ErrBalanceOverflow,
}

func statusFor(err error) int {
	for _, v := range validationErrs {
		if errors.Is(err, v) {
			return http.StatusBadRequest
		}
	}

	switch {
	case errors.Is(err, ledger.ErrNotAuthenticated), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, wallet.ErrTaskNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrTaskDone), errors.Is(err, wallet.ErrSubmissionInFlight):
		return http.StatusConflict
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail maps a service error to a response. Internal errors are logged and
// hidden from the client.
func (h *HandlerProvider) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	switch status {
	case http.StatusInternalServerError:
		h.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		h.writeError(w, status, "internal error")
	case http.StatusServiceUnavailable:
		h.writeError(w, status, "request cancelled")
	default:
		h.writeError(w, status, err.Error())
	}
}

type userSummary struct {
	ID             string `json:"id"`
	Mobile         string `json:"mobile"`
	Name           string `json:"name"`
	Avatar         string `json:"avatar"`
	Balance        int64  `json:"balance"`
	TotalEarned    int64  `json:"totalEarned"`
	TotalWithdrawn int64  `json:"totalWithdrawn"`
}

func summarize(u ledger.User) userSummary {
	return userSummary{
		ID:             u.ID,
		Mobile:         u.Mobile,
		Name:           u.Name,
		Avatar:         u.Avatar,
		Balance:        u.Balance,
		TotalEarned:    u.TotalEarned,
		TotalWithdrawn: u.TotalWithdrawn,
	}
}

func (h *HandlerProvider) issue(w http.ResponseWriter, r *http.Request, u ledger.User) {
	tok, err := h.tokens.Generate(u.ID, u.Mobile)
	if err != nil {
		h.fail(w, r, fmt.Errorf("issue token: %w", err))
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"token": tok, "user": summarize(u)})
}
