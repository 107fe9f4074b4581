package api

import "net/http"

type loginRequest struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

type registerRequest struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginHandler handles POST /auth/login
func (h *HandlerProvider) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.Login(r.Context(), req.Mobile, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.issue(w, r, u)
}

// RegisterHandler handles POST /auth/register
func (h *HandlerProvider) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.Signup(r.Context(), req.Mobile, req.Password, req.Name)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.issue(w, r, u)
}

// LogoutHandler handles POST /auth/logout
func (h *HandlerProvider) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	h.svc.Logout(r.Context())
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
