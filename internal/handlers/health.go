package handlers

import (
	"net/http"

	"github.com/alfagnish/userlist/internal/users"
	"github.com/go-chi/chi/v5"
)

// HealthHandler reports liveness of the users service.
type HealthHandler struct {
	reg *users.Registry
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(reg *users.Registry) *HealthHandler {
	return &HealthHandler{reg: reg}
}

// Routes registers the health route.
func (h *HealthHandler) Routes(r chi.Router) {
	r.Get("/", h.Health)
}

// Health returns {"status":"ok","users":N}.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"users":  h.reg.Len(),
	})
}
