// Package dialogue routes a message to the right handler and produces the reply text.
package dialogue

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/starford/scoop/internal/apperr"
	"github.com/starford/scoop/internal/intent"
	"github.com/starford/scoop/internal/learning"
	"github.com/starford/scoop/internal/matcher"
	"github.com/starford/scoop/internal/models"
	"github.com/starford/scoop/internal/render"
)

// MinConfidence is the match confidence a topic must exceed to be answered.
const MinConfidence = 0.3

// Knowledge is the part of knowledge.Store the engine reads and writes.
type Knowledge interface {
	Topics() []string
	Definition(style models.Style, topic string) (string, bool)
	Insert(topic, definition string) error
}

// Answerer narrows a definition to the part that answers the query.
type Answerer interface {
	Answer(ctx context.Context, query, passage string) string
}

// LearnFunc is notified after a topic was taught.
type LearnFunc func(topic string)

type passthrough struct{}

func (passthrough) Answer(_ context.Context, _, passage string) string { return passage }

// Engine answers messages. It keeps no per-conversation state.
type Engine struct {
	kb       Knowledge
	answerer Answerer
	renderer *render.Renderer
	onLearn  LearnFunc
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithAnswerer sets the span answerer; by default definitions are returned whole.
func WithAnswerer(a Answerer) Option {
	return func(e *Engine) {
		if a != nil {
			e.answerer = a
		}
	}
}

// WithRenderer sets the style renderer.
func WithRenderer(r *render.Renderer) Option {
	return func(e *Engine) {
		if r != nil {
			e.renderer = r
		}
	}
}

// WithOnLearn registers a callback fired after each successful teach.
func WithOnLearn(fn LearnFunc) Option {
	return func(e *Engine) { e.onLearn = fn }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Engine over kb.
func New(kb Knowledge, opts ...Option) *Engine {
	e := &Engine{
		kb:       kb,
		answerer: passthrough{},
		renderer: render.New(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Respond returns the reply to message in style. It always returns a usable
// string; internal failures become fallback text.
func (e *Engine) Respond(ctx context.Context, message string, style models.Style) string {
	if style != models.StylePlain {
		style = models.StyleThemed
	}

	switch intent.Classify(message) {
	case models.IntentTeach:
		return e.teach(message, style)
	case models.IntentGreeting:
		return e.renderer.Greeting(style)
	case models.IntentFarewell:
		return e.renderer.Farewell(style)
	default:
		return e.lookup(ctx, message, style)
	}
}

func (e *Engine) teach(message string, style models.Style) string {
	lesson, err := learning.Extract(message)
	if err != nil {
		e.logger.Debug("dialogue: teach request not understood", slog.String("error", err.Error()))
		return e.renderer.FormatHint(style)
	}
	if err := e.learn(lesson); err != nil {
		return e.renderer.FormatHint(style)
	}
	return e.renderer.Confirmation(style, lesson.Topic, lesson.Definition)
}

// Learn stores definition under topic the same way a teach message does:
// the topic is normalized, the lesson validated and the themed attribution
// appended. A persistence failure is logged but not returned; the topic
// stays answerable for the life of the process.
func (e *Engine) Learn(topic, definition string) (learning.Lesson, error) {
	lesson := learning.Lesson{
		Topic:      models.NormalizeTopic(topic),
		Definition: strings.TrimSpace(definition),
	}
	return lesson, e.learn(lesson)
}

func (e *Engine) learn(lesson learning.Lesson) error {
	if err := lesson.Validate(); err != nil {
		e.logger.Debug("dialogue: lesson rejected", slog.String("topic", lesson.Topic), slog.String("error", err.Error()))
		return err
	}

	err := e.kb.Insert(lesson.Topic, lesson.Attributed(e.renderer.Attribution()))
	switch {
	case errors.Is(err, apperr.ErrStoreUnavailable):
		e.logger.Error("dialogue: taught topic not persisted",
			slog.String("topic", lesson.Topic),
			slog.String("error", err.Error()))
	case err != nil:
		e.logger.Warn("dialogue: insert rejected", slog.String("topic", lesson.Topic), slog.String("error", err.Error()))
		return err
	}

	e.logger.Info("dialogue: topic learned", slog.String("topic", lesson.Topic))
	if e.onLearn != nil {
		e.onLearn(lesson.Topic)
	}
	return nil
}

func (e *Engine) lookup(ctx context.Context, message string, style models.Style) string {
	match := matcher.Match(message, e.kb.Topics())
	if !match.Found() || match.Confidence <= MinConfidence {
		return e.renderer.Fallback(style)
	}
	def, ok := e.kb.Definition(style, match.Topic)
	if !ok {
		return e.renderer.Fallback(style)
	}
	e.logger.Debug("dialogue: matched topic",
		slog.String("topic", match.Topic),
		slog.Float64("confidence", match.Confidence))

	answer := e.answerer.Answer(ctx, message, def)
	return e.renderer.Render(answer, style)
}
