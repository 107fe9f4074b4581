package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs a chi router with all API endpoints registered.
func NewRouter(h *HandlerProvider, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(h.log))
	r.Use(middleware.Recoverer)
	r.Use(cors(allowedOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/auth/login", h.LoginHandler)
	r.Post("/auth/register", h.RegisterHandler)

	r.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.Post("/auth/logout", h.LogoutHandler)

		r.Route("/wallet", func(r chi.Router) {
			r.Get("/", h.WalletHandler)
			r.Get("/transactions", h.TransactionsHandler)
			r.Get("/lifafa", h.LifafaHistoryHandler)
			r.Get("/withdraw-methods", h.WithdrawMethodsHandler)
			r.Get("/journal", h.JournalHandler)
			r.Post("/deposit", h.DepositHandler)
			r.Post("/withdraw", h.WithdrawHandler)
		})

		r.Route("/lifafa", func(r chi.Router) {
			r.Post("/", h.CreateLifafaHandler)
			r.Post("/channel", h.CreateChannelLifafaHandler)
			r.Post("/claim", h.ClaimLifafaHandler)
			r.Post("/channel/claim", h.ClaimChannelLifafaHandler)
		})

		r.Get("/tasks", h.TasksHandler)
		r.Post("/tasks/{taskId}/complete", h.CompleteTaskHandler)
		r.Post("/tasks/channels", h.AddTaskChannelHandler)
		r.Post("/ads", h.PostAdHandler)
		r.Get("/payouts", h.PayoutsHandler)
	})

	return r
}
