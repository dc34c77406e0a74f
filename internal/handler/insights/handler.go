package insights

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/resumeforge/backend/internal/analysis/ats"
	"github.com/resumeforge/backend/internal/handler/httperr"
	"github.com/resumeforge/backend/internal/middleware"
	chatService "github.com/resumeforge/backend/internal/service/chat"
	"github.com/resumeforge/backend/pkg/utils"
)

// Handler serves the dashboard mock data and the ATS score.
type Handler struct {
	chatSvc *chatService.Service
}

// New creates the insights handler.
func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes mounts the insights routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/chats/{chatID}/score", h.handleScore)
	r.Get("/insights", h.handleSummary)
}

func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	rec, err := h.chatSvc.EnsureSession(r.Context(), chi.URLParam(r, "chatID"), middleware.UserID(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, ats.Evaluate(rec.Document))
}

// handleSummary returns the static dashboard numbers. The dashboard is a
// mock surface; these values are illustrative, not measured.
func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"profileViews":  128,
		"downloads":     23,
		"searchAppears": 46,
		"weeklyViews":   []int{12, 18, 9, 24, 31, 16, 18},
	})
}
