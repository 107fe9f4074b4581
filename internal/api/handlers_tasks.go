package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fastprodman/cashinreward/internal/rules"
	"github.com/fastprodman/cashinreward/internal/services/wallet"
)

// TasksHandler handles GET /tasks
func (h *HandlerProvider) TasksHandler(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.Tasks()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"tasks": tasks})
}

// CompleteTaskHandler handles POST /tasks/{taskId}/complete
func (h *HandlerProvider) CompleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	rc, err := h.svc.CompleteTask(r.Context(), chi.URLParam(r, "taskId"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, rc)
}

type taskChannelRequest struct {
	ChannelName  string `json:"channelName"`
	ChannelLink  string `json:"channelLink"`
	RewardAmount int64  `json:"rewardAmount"`
	TotalJoins   int64  `json:"totalJoins"`
	Description  string `json:"description"`
}

// AddTaskChannelHandler handles POST /tasks/channels
func (h *HandlerProvider) AddTaskChannelHandler(w http.ResponseWriter, r *http.Request) {
	var req taskChannelRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	listing, err := h.svc.AddTaskChannel(r.Context(), wallet.TaskChannelRequest{
		TaskChannel: rules.TaskChannel{
			ChannelName:  req.ChannelName,
			ChannelLink:  req.ChannelLink,
			RewardAmount: req.RewardAmount,
			TotalJoins:   req.TotalJoins,
		},
		Description: req.Description,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, listing)
}

type adRequest struct {
	Title        string       `json:"title"`
	AdType       rules.AdType `json:"adType"`
	Budget       int64        `json:"budget"`
	DurationDays int64        `json:"durationDays"`
	TargetLink   string       `json:"targetLink"`
}

// PostAdHandler handles POST /ads
func (h *HandlerProvider) PostAdHandler(w http.ResponseWriter, r *http.Request) {
	var req adRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	listing, err := h.svc.PostAd(r.Context(), wallet.AdRequest{
		Title:        req.Title,
		Type:         req.AdType,
		Budget:       req.Budget,
		DurationDays: req.DurationDays,
		TargetLink:   req.TargetLink,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, listing)
}
