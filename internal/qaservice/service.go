// Package qaservice is the transport-neutral layer that the HTTP API, the
// MCP server and the CLI share.
package qaservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/starford/scoop/internal/apperr"
	"github.com/starford/scoop/internal/checksum"
	"github.com/starford/scoop/internal/dialogue"
	"github.com/starford/scoop/internal/knowledge"
	"github.com/starford/scoop/internal/models"
)

// EmptyMessageReply answers a blank question without consulting the engine.
const EmptyMessageReply = "Please enter a question, darling."

// DefaultSearchLimit caps search results when the caller passes no limit.
const DefaultSearchLimit = 20

// ErrEmptyQuery is returned by Search for a blank query.
var ErrEmptyQuery = errors.New("query is required")

// TopicDetail is one resolved definition.
type TopicDetail struct {
	Topic      string `json:"topic"`
	Style      string `json:"style"`
	Definition string `json:"definition"`
	Checksum   string `json:"checksum"`
}

// SearchHit is one search match.
type SearchHit struct {
	Topic      string `json:"topic"`
	Definition string `json:"definition"`
}

// Service answers questions and exposes the knowledge base.
type Service struct {
	engine *dialogue.Engine
	store  *knowledge.Store
}

// NewService creates a new service over engine and store.
func NewService(engine *dialogue.Engine, store *knowledge.Store) *Service {
	return &Service{engine: engine, store: store}
}

// Ask returns the reply to message in style. Unknown styles are themed.
func (s *Service) Ask(ctx context.Context, message, style string) string {
	if strings.TrimSpace(message) == "" {
		return EmptyMessageReply
	}
	return s.engine.Respond(ctx, message, models.ParseStyle(style))
}

// Topics lists the known topics alphabetically.
func (s *Service) Topics(_ context.Context) []string {
	return nonNilSlice(s.store.SortedTopics())
}

// Definition resolves topic for style. It returns apperr.ErrNotFound for an
// unknown topic.
func (s *Service) Definition(_ context.Context, topic, style string) (*TopicDetail, error) {
	st := models.ParseStyle(style)
	topic = models.NormalizeTopic(topic)
	def, ok := s.store.Definition(st, topic)
	if !ok {
		return nil, fmt.Errorf("qaservice: topic %q: %w", topic, apperr.ErrNotFound)
	}
	return buildDetail(topic, st, def), nil
}

// Teach stores a definition given as separate topic and text.
func (s *Service) Teach(_ context.Context, topic, definition string) (*TopicDetail, error) {
	lesson, err := s.engine.Learn(topic, definition)
	if err != nil {
		return nil, fmt.Errorf("qaservice: teach: %w: %w", apperr.ErrInvalidLesson, err)
	}
	def, ok := s.store.Definition(models.StyleThemed, lesson.Topic)
	if !ok {
		return nil, fmt.Errorf("qaservice: topic %q vanished after teach: %w", lesson.Topic, apperr.ErrNotFound)
	}
	return buildDetail(lesson.Topic, models.StyleThemed, def), nil
}

// Search finds topics whose name or themed definition contains query.
func (s *Service) Search(_ context.Context, query string, limit int) ([]SearchHit, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	entries, err := s.store.Search(query, limit)
	if err != nil {
		return nil, fmt.Errorf("qaservice: search: %w", err)
	}
	hits := make([]SearchHit, len(entries))
	for i, e := range entries {
		hits[i] = SearchHit{Topic: e.Topic, Definition: e.Definition}
	}
	return hits, nil
}

func buildDetail(topic string, style models.Style, def string) *TopicDetail {
	return &TopicDetail{
		Topic:      topic,
		Style:      string(style),
		Definition: def,
		Checksum:   checksum.String(def),
	}
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
