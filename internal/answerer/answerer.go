// Package answerer narrows long definitions to the span most relevant to a question.
package answerer

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// Defaults for Answerer.
const (
	DefaultWordThreshold = 100
	DefaultMinScore      = 0.5
	DefaultTimeout       = 5 * time.Second
)

// SpanExtractor finds the sub-span of passage that answers question.
// score is in [0,1].
type SpanExtractor interface {
	ExtractSpan(ctx context.Context, question, passage string) (text string, score float64, err error)
}

// Answerer returns either the full context or an extracted span of it.
// Extraction is best effort: any failure yields the full context.
type Answerer struct {
	extractor     SpanExtractor
	timeout       time.Duration
	wordThreshold int
	minScore      float64
	logger        *slog.Logger
}

// Option configures an Answerer.
type Option func(*Answerer)

// WithExtractor sets the span extractor. Without one, contexts are returned whole.
func WithExtractor(e SpanExtractor) Option {
	return func(a *Answerer) { a.extractor = e }
}

// WithTimeout bounds each extractor call.
func WithTimeout(d time.Duration) Option {
	return func(a *Answerer) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithLogger sets the logger used to report extractor failures.
func WithLogger(l *slog.Logger) Option {
	return func(a *Answerer) {
		if l != nil {
			a.logger = l
		}
	}
}

// New creates an Answerer.
func New(opts ...Option) *Answerer {
	a := &Answerer{
		timeout:       DefaultTimeout,
		wordThreshold: DefaultWordThreshold,
		minScore:      DefaultMinScore,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Answer returns passage unchanged when it has fewer words than the
// threshold or when no usable span comes back from the extractor.
func (a *Answerer) Answer(ctx context.Context, query, passage string) string {
	if len(strings.Fields(passage)) < a.wordThreshold || a.extractor == nil {
		return passage
	}

	callCtx, cancel := contextWithTimeout(ctx, a.timeout)
	defer cancel()

	span, score, err := a.extract(callCtx, query, passage)
	if err != nil {
		a.logger.Debug("answerer: extractor failed, using full context", slog.String("error", err.Error()))
		return passage
	}
	span = strings.TrimSpace(span)
	if score < a.minScore || span == "" {
		a.logger.Debug("answerer: low confidence span", slog.Float64("score", score))
		return passage
	}
	return span
}

// extract runs the extractor in its own goroutine so that an implementation
// ignoring ctx still cannot hold the caller past the deadline.
func (a *Answerer) extract(ctx context.Context, query, passage string) (string, float64, error) {
	type result struct {
		span  string
		score float64
		err   error
	}
	done := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: &PanicError{Value: r}}
			}
		}()
		span, score, err := a.extractor.ExtractSpan(ctx, query, passage)
		done <- result{span, score, err}
	}()

	select {
	case r := <-done:
		return r.span, r.score, r.err
	case <-ctx.Done():
		return "", 0, ctx.Err()
	}
}

func contextWithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, d)
}
