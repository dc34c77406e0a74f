package export

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/resumeforge/backend/internal/handler/httperr"
	"github.com/resumeforge/backend/internal/middleware"
	chatService "github.com/resumeforge/backend/internal/service/chat"
	exportService "github.com/resumeforge/backend/internal/service/export"
	"github.com/resumeforge/backend/pkg/utils"
)

// Handler serves PDF exports of a session's resume document.
type Handler struct {
	chatSvc  *chatService.Service
	exporter *exportService.Service
}

// New creates the export handler.
func New(chatSvc *chatService.Service, exporter *exportService.Service) *Handler {
	return &Handler{chatSvc: chatSvc, exporter: exporter}
}

// RegisterRoutes mounts the export routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/chats/{chatID}/export", h.handleExport)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	rec, err := h.chatSvc.EnsureSession(r.Context(), chi.URLParam(r, "chatID"), middleware.UserID(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	templateID := r.URL.Query().Get("template")
	if templateID == "" {
		templateID = rec.TemplateID
	}

	pdf, err := h.exporter.ExportPDF(r.Context(), rec.Document, templateID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "pdf rendering failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
