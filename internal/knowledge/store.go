// Package knowledge owns the topic→definition mappings that answers are built from.
package knowledge

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/starford/scoop/internal/apperr"
	"github.com/starford/scoop/internal/models"
)

// Provider persists the themed knowledge base.
type Provider interface {
	// Load returns the stored entries in their stored order.
	Load() ([]models.Entry, error)
	// Save replaces the stored entries.
	Save(entries []models.Entry) error
}

// Searcher is implemented by providers that can search definitions natively.
type Searcher interface {
	Search(query string, limit int) ([]models.Entry, error)
}

var topicRe = regexp.MustCompile(`^[a-z0-9_]+(?: [a-z0-9_]+)*$`)

// ValidTopic reports whether topic is already in canonical form.
func ValidTopic(topic string) bool {
	return topicRe.MatchString(topic)
}

// Store holds the mutable themed definitions and the fixed plain ones.
//
// Insert holds the write lock across the in-memory update and the provider
// save, so concurrent inserts never interleave their persistence.
type Store struct {
	mu       sync.RWMutex
	themed   *orderedmap.OrderedMap[string, string]
	plain    map[string]string
	provider Provider
	logger   *slog.Logger
}

// Open loads the themed knowledge base from p. A missing or unreadable store
// is replaced by DefaultThemed, which is then persisted.
func Open(p Provider, logger *slog.Logger) (*Store, error) {
	if p == nil {
		return nil, fmt.Errorf("knowledge: provider is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		themed:   orderedmap.New[string, string](),
		plain:    make(map[string]string, len(PlainDefinitions)),
		provider: p,
		logger:   logger,
	}
	for topic, def := range PlainDefinitions {
		s.plain[models.NormalizeTopic(topic)] = def
	}

	entries, err := p.Load()
	if err != nil {
		logger.Warn("knowledge: load failed, seeding defaults", slog.String("error", err.Error()))
		s.themed = buildMap(DefaultThemed, logger)
		if saveErr := p.Save(snapshot(s.themed)); saveErr != nil {
			logger.Error("knowledge: persist defaults failed", slog.String("error", saveErr.Error()))
		}
		return s, nil
	}
	s.themed = buildMap(entries, logger)
	logger.Info("knowledge: loaded", slog.Int("topics", s.themed.Len()))
	return s, nil
}

// Reload replaces the themed definitions with the provider's current contents.
// On error the in-memory state is left untouched. The write lock is held from
// Load to the swap so an Insert cannot land in between and be dropped.
func (s *Store) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.provider.Load()
	if err != nil {
		return fmt.Errorf("knowledge: reload: %w: %w", apperr.ErrStoreUnavailable, err)
	}
	m := buildMap(entries, s.logger)
	s.themed = m

	s.logger.Info("knowledge: reloaded", slog.Int("topics", m.Len()))
	return nil
}

// Insert sets the themed definition of topic and persists the knowledge base.
// The topic is normalized first; a repeated topic keeps its position and takes
// the new definition. If saving fails the entry stays in memory and an error
// wrapping apperr.ErrStoreUnavailable is returned.
func (s *Store) Insert(topic, definition string) error {
	topic = models.NormalizeTopic(topic)
	if !ValidTopic(topic) {
		return fmt.Errorf("knowledge: insert %q: %w", topic, apperr.ErrInvalidTopic)
	}
	definition = strings.TrimSpace(definition)
	if definition == "" {
		return fmt.Errorf("knowledge: insert %q: empty definition", topic)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.themed.Set(topic, definition)
	if err := s.provider.Save(snapshot(s.themed)); err != nil {
		return fmt.Errorf("knowledge: save: %w: %w", apperr.ErrStoreUnavailable, err)
	}
	return nil
}

// Topics returns the themed topics in enumeration (insertion) order.
func (s *Store) Topics() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, s.themed.Len())
	for pair := s.themed.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// SortedTopics returns the themed topics in alphabetical order.
func (s *Store) SortedTopics() []string {
	topics := s.Topics()
	sort.Strings(topics)
	return topics
}

// Definition resolves the definition of topic for style. The plain style uses
// the built-in plain definition when there is one and otherwise falls back to
// the themed definition.
func (s *Store) Definition(style models.Style, topic string) (string, bool) {
	topic = models.NormalizeTopic(topic)
	if style == models.StylePlain {
		if def, ok := s.plain[topic]; ok {
			return def, true
		}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.themed.Get(topic)
}

// Entries returns a copy of the themed entries in enumeration order.
func (s *Store) Entries() []models.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.themed)
}

// Len returns the number of themed topics.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.themed.Len()
}

// Search finds themed entries whose topic or definition contains query.
// Providers implementing Searcher answer directly.
func (s *Store) Search(query string, limit int) ([]models.Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if searcher, ok := s.provider.(Searcher); ok {
		return searcher.Search(query, limit)
	}

	needle := strings.ToLower(query)
	var out []models.Entry
	for _, e := range s.Entries() {
		if strings.Contains(e.Topic, needle) || strings.Contains(strings.ToLower(e.Definition), needle) {
			out = append(out, e)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

// buildMap normalizes and de-duplicates entries; later duplicates win.
func buildMap(entries []models.Entry, logger *slog.Logger) *orderedmap.OrderedMap[string, string] {
	m := orderedmap.New[string, string]()
	for _, e := range entries {
		topic := models.NormalizeTopic(e.Topic)
		if !ValidTopic(topic) || strings.TrimSpace(e.Definition) == "" {
			logger.Warn("knowledge: skipping invalid entry", slog.String("topic", e.Topic))
			continue
		}
		m.Set(topic, e.Definition)
	}
	return m
}

func snapshot(m *orderedmap.OrderedMap[string, string]) []models.Entry {
	out := make([]models.Entry, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, models.Entry{Topic: pair.Key, Definition: pair.Value})
	}
	return out
}
