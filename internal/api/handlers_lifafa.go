package api

import (
	"net/http"

	"github.com/fastprodman/cashinreward/internal/rules"
	"github.com/fastprodman/cashinreward/internal/services/wallet"
)

type lifafaRequest struct {
	Amount   int64 `json:"amount"`
	Quantity int64 `json:"quantity"`
}

// CreateLifafaHandler handles POST /lifafa
func (h *HandlerProvider) CreateLifafaHandler(w http.ResponseWriter, r *http.Request) {
	var req lifafaRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	rc, err := h.svc.CreateLifafa(r.Context(), wallet.LifafaRequest{Amount: req.Amount, Quantity: req.Quantity})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, rc)
}

type channelLifafaRequest struct {
	Title         string         `json:"title"`
	PerUserAmount int64          `json:"perUserAmount"`
	TotalUsers    int64          `json:"totalUsers"`
	ChannelName   string         `json:"channelName"`
	RedirectLink  string         `json:"redirectLink"`
	GameType      rules.GameType `json:"gameType"`
}

// CreateChannelLifafaHandler handles POST /lifafa/channel
func (h *HandlerProvider) CreateChannelLifafaHandler(w http.ResponseWriter, r *http.Request) {
	var req channelLifafaRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	rc, err := h.svc.CreateChannelLifafa(r.Context(), wallet.ChannelLifafaRequest{
		Title:         req.Title,
		PerUserAmount: req.PerUserAmount,
		TotalUsers:    req.TotalUsers,
		ChannelName:   req.ChannelName,
		RedirectLink:  req.RedirectLink,
		Game:          req.GameType,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, rc)
}

type claimRequest struct {
	Code string `json:"code"`
}

// ClaimLifafaHandler handles POST /lifafa/claim
func (h *HandlerProvider) ClaimLifafaHandler(w http.ResponseWriter, r *http.Request) {
	var req claimRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	rc, err := h.svc.ClaimLifafa(r.Context(), req.Code)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, rc)
}

type channelClaimRequest struct {
	Mobile string `json:"mobile"`
	Code   string `json:"code"`
}

// ClaimChannelLifafaHandler handles POST /lifafa/channel/claim
func (h *HandlerProvider) ClaimChannelLifafaHandler(w http.ResponseWriter, r *http.Request) {
	var req channelClaimRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	rc, err := h.svc.ClaimChannelLifafa(r.Context(), req.Mobile, req.Code)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, rc)
}
