package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chatHandler "github.com/resumeforge/backend/internal/handler/chat"
	exportHandler "github.com/resumeforge/backend/internal/handler/export"
	insightsHandler "github.com/resumeforge/backend/internal/handler/insights"
	templateHandler "github.com/resumeforge/backend/internal/handler/template"
	middlewarePkg "github.com/resumeforge/backend/internal/middleware"
	templateModel "github.com/resumeforge/backend/internal/model/template"
	chatService "github.com/resumeforge/backend/internal/service/chat"
	exportService "github.com/resumeforge/backend/internal/service/export"
	"github.com/resumeforge/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(identity middlewarePkg.Identity, chatSvc *chatService.Service, templates templateModel.Store, exporter *exportService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(middlewarePkg.Auth(identity))

		chatHandler.New(chatSvc, templates).RegisterRoutes(api)
		templateHandler.New(templates).RegisterRoutes(api)
		insightsHandler.New(chatSvc).RegisterRoutes(api)

		if exporter != nil {
			exportHandler.New(chatSvc, exporter).RegisterRoutes(api)
		}
	})

	return r
}
