package template

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/resumeforge/backend/internal/model/template"
	"github.com/resumeforge/backend/pkg/utils"
)

// Handler serves the render-template catalogue.
type Handler struct {
	templates template.Store
}

// New creates the template handler.
func New(templates template.Store) *Handler {
	return &Handler{templates: templates}
}

// RegisterRoutes mounts the template routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/templates", h.handleList)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.templates.List())
}
