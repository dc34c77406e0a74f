package httperr

import (
	"errors"
	"net/http"

	chatService "github.com/resumeforge/backend/internal/service/chat"
	"github.com/resumeforge/backend/internal/store"
	"github.com/resumeforge/backend/pkg/utils"
)

// Respond maps the turn processor's error taxonomy onto HTTP statuses.
func Respond(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chatService.ErrInvalidInput):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, chatService.ErrUnauthorized):
		utils.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, store.ErrNotFound):
		utils.RespondError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, store.ErrVersionConflict):
		utils.RespondError(w, http.StatusConflict, "session was modified concurrently, reload and retry")
	default:
		// Engine failures, parse failures, and persistence errors all
		// surface as 500; the client refetches the session for any
		// committed notice turns.
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
	}
}
