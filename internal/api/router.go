package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/scoop/internal/qaservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *qaservice.Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	r.Post("/ask", h.Ask)

	r.Get("/topics", h.ListTopics)
	r.Post("/topics", h.TeachTopic)
	r.Get("/topics/{topic}", h.GetTopic)

	r.Get("/search", h.Search)

	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
