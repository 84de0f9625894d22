package api

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/starford/scoop/internal/apperr"
	"github.com/starford/scoop/internal/qaservice"
)

// Handler holds API route handlers.
type Handler struct {
	svc *qaservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *qaservice.Service) *Handler {
	return &Handler{svc: svc}
}

// topicParam extracts the topic from the URL, accepting encoded spaces.
func topicParam(r *http.Request) string {
	raw := chi.URLParam(r, "topic")
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// Ask handles POST /api/ask.
//
//	@Summary		Ask a question or teach a definition
//	@Tags			dialogue
//	@Accept			json
//	@Produce		json
//	@Param			body	body		AskRequest	true	"Message and style"
//	@Success		200		{object}	AskResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/ask [post]
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	writeJSON(w, http.StatusOK, AskResponse{Response: h.svc.Ask(r.Context(), req.Message, req.Style)})
}

// ListTopics handles GET /api/topics.
//
//	@Summary		List known topics alphabetically
//	@Tags			topics
//	@Produce		json
//	@Success		200	{object}	TopicListResponse
//	@Security		BearerAuth
//	@Router			/topics [get]
func (h *Handler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics := h.svc.Topics(r.Context())
	writeJSON(w, http.StatusOK, TopicListResponse{Topics: topics, Total: len(topics)})
}

// GetTopic handles GET /api/topics/{topic}.
//
//	@Summary		Get the definition of a topic
//	@Tags			topics
//	@Produce		json
//	@Param			topic	path		string	true	"Topic"
//	@Param			style	query		string	false	"Response style"	Enums(plain, themed)
//	@Success		200		{object}	TopicDetail
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/topics/{topic} [get]
func (h *Handler) GetTopic(w http.ResponseWriter, r *http.Request) {
	topic := topicParam(r)
	if strings.TrimSpace(topic) == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("topic is required"))
		return
	}
	detail, err := h.svc.Definition(r.Context(), topic, r.URL.Query().Get("style"))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("get topic failed", slog.String("topic", topic), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	w.Header().Set("ETag", `"`+detail.Checksum+`"`)
	writeJSON(w, http.StatusOK, detail)
}

// TeachTopic handles POST /api/topics.
//
//	@Summary		Teach a new definition
//	@Tags			topics
//	@Accept			json
//	@Produce		json
//	@Param			body	body		TeachRequest	true	"Topic and definition"
//	@Success		201		{object}	TopicDetail
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/topics [post]
func (h *Handler) TeachTopic(w http.ResponseWriter, r *http.Request) {
	var req TeachRequest
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if strings.TrimSpace(req.Topic) == "" || strings.TrimSpace(req.Definition) == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("topic and definition are required"))
		return
	}
	detail, err := h.svc.Teach(r.Context(), req.Topic, req.Definition)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidLesson) {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		} else {
			slog.Error("teach failed", slog.String("topic", req.Topic), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusCreated, detail)
}

// Search handles GET /api/search.
//
//	@Summary		Search topics and definitions
//	@Tags			topics
//	@Produce		json
//	@Param			q		query		string	true	"Search query"
//	@Param			limit	query		int		false	"Max results"
//	@Success		200		{object}	SearchResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'q' is required"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	results, err := h.svc.Search(r.Context(), q, limit)
	if err != nil {
		slog.Error("search failed", slog.String("query", q), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, SearchResponse{Results: results})
}
