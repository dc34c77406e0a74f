package chat

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/resumeforge/backend/internal/handler/httperr"
	"github.com/resumeforge/backend/internal/middleware"
	chatmodel "github.com/resumeforge/backend/internal/model/chat"
	"github.com/resumeforge/backend/internal/model/resume"
	"github.com/resumeforge/backend/internal/model/template"
	chatService "github.com/resumeforge/backend/internal/service/chat"
	"github.com/resumeforge/backend/pkg/utils"
)

// Handler exposes the conversational resume endpoints.
type Handler struct {
	chatSvc   *chatService.Service
	templates template.Store
}

// New creates the chat handler.
func New(chatSvc *chatService.Service, templates template.Store) *Handler {
	return &Handler{chatSvc: chatSvc, templates: templates}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleProcessTurn)
	r.Post("/chats", h.handleNewChat)
	r.Get("/chats", h.handleListChats)
	r.Get("/chats/{chatID}", h.handleGetChat)
	r.Patch("/chats/{chatID}", h.handleRenameChat)
	r.Delete("/chats/{chatID}", h.handleDeleteChat)
	r.Put("/chats/{chatID}/template", h.handleSetTemplate)
}

// handleProcessTurn runs one assistant turn. The utterance is the trailing
// user entry of the submitted history.
func (h *Handler) handleProcessTurn(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ChatID     string           `json:"chatId"`
		History    []chatmodel.Turn `json:"history"`
		ResumeData *resume.Document `json:"resumeData"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.ChatID == "" {
		utils.RespondError(w, http.StatusBadRequest, "chatId is required")
		return
	}
	if len(payload.History) == 0 || payload.History[len(payload.History)-1].Role != chatmodel.RoleUser {
		utils.RespondError(w, http.StatusBadRequest, "history must end with a user message")
		return
	}

	doc := resume.NewDocument()
	if payload.ResumeData != nil {
		doc = *payload.ResumeData
	}

	last := len(payload.History) - 1
	result, err := h.chatSvc.ProcessTurn(
		r.Context(),
		payload.ChatID,
		middleware.UserID(r.Context()),
		payload.History[:last],
		doc,
		payload.History[last].Text(),
	)
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"response": map[string]any{
			"acknowledgement": result.Acknowledgement,
			"updatedSection":  result.UpdatedSection,
		},
		"history":    result.Transcript,
		"resumeData": result.Document,
	})
}

// handleNewChat hands out a fresh session identifier. No record is created
// until the first successful turn.
func (h *Handler) handleNewChat(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"id": uuid.NewString()})
}

func (h *Handler) handleGetChat(w http.ResponseWriter, r *http.Request) {
	rec, err := h.chatSvc.EnsureSession(r.Context(), chi.URLParam(r, "chatID"), middleware.UserID(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"id":         rec.ID,
		"title":      rec.Title,
		"history":    rec.Transcript,
		"resumeData": rec.Document,
		"templateId": rec.TemplateID,
	})
}

func (h *Handler) handleListChats(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.chatSvc.ListSessions(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, summaries)
}

func (h *Handler) handleRenameChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		NewName string `json:"newName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.chatSvc.Rename(r.Context(), chi.URLParam(r, "chatID"), middleware.UserID(r.Context()), payload.NewName)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "renamed"})
}

func (h *Handler) handleDeleteChat(w http.ResponseWriter, r *http.Request) {
	err := h.chatSvc.Delete(r.Context(), chi.URLParam(r, "chatID"), middleware.UserID(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) handleSetTemplate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		TemplateID string `json:"templateId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, ok := h.templates.FindByID(payload.TemplateID); !ok {
		utils.RespondError(w, http.StatusBadRequest, "template not found")
		return
	}

	err := h.chatSvc.SetTemplate(r.Context(), chi.URLParam(r, "chatID"), middleware.UserID(r.Context()), payload.TemplateID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
