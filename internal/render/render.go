// Package render wraps answers in the wording of a response style.
package render

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/starford/scoop/internal/models"
)

// Rand picks an index in [0, n).
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// lockedRand makes a *rand.Rand safe for concurrent use.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// NewSeededRand returns a deterministic Rand, for tests and reproducible runs.
func NewSeededRand(seed uint64) Rand {
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Renderer produces the final text for a style. It is safe for concurrent use
// as long as its Rand is.
type Renderer struct {
	rnd    Rand
	styles map[models.Style]Templates
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRand sets the randomness source used to pick templates.
func WithRand(r Rand) Option {
	return func(rn *Renderer) {
		if r != nil {
			rn.rnd = r
		}
	}
}

// WithTemplates overrides the wording of style. Empty fields keep the defaults.
func WithTemplates(style models.Style, t Templates) Option {
	return func(rn *Renderer) {
		rn.styles[style] = t.merge(rn.styles[style])
	}
}

// New creates a Renderer with the built-in plain and themed wording.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		rnd: globalRand{},
		styles: map[models.Style]Templates{
			models.StylePlain:  DefaultPlain,
			models.StyleThemed: DefaultThemed,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns body unchanged for the plain style. For the themed style it
// draws one intro and one outro independently and returns intro+body+outro.
func (r *Renderer) Render(body string, style models.Style) string {
	if style != models.StyleThemed {
		return body
	}
	t := r.styles[models.StyleThemed]
	return r.pick(t.Intros) + body + r.pick(t.Outros)
}

// Greeting returns the greeting for style; the themed one is rendered.
func (r *Renderer) Greeting(style models.Style) string {
	return r.Render(r.templates(style).Greeting, style)
}

// Farewell returns the fixed farewell for style.
func (r *Renderer) Farewell(style models.Style) string {
	return r.templates(style).Farewell
}

// Fallback returns a "no knowledge" reply, drawn at random when style has several.
func (r *Renderer) Fallback(style models.Style) string {
	return r.pick(r.templates(style).Fallbacks)
}

// Confirmation acknowledges a taught topic.
func (r *Renderer) Confirmation(style models.Style, topic, definition string) string {
	return fmt.Sprintf(r.templates(style).Confirmation, topic, definition)
}

// FormatHint explains the teaching grammar.
func (r *Renderer) FormatHint(style models.Style) string {
	return r.templates(style).FormatHint
}

// Attribution is the suffix marking user-taught themed definitions.
func (r *Renderer) Attribution() string {
	return r.styles[models.StyleThemed].Attribution
}

func (r *Renderer) templates(style models.Style) Templates {
	if t, ok := r.styles[style]; ok {
		return t
	}
	return r.styles[models.StyleThemed]
}

func (r *Renderer) pick(options []string) string {
	switch len(options) {
	case 0:
		return ""
	case 1:
		return options[0]
	default:
		return options[r.rnd.IntN(len(options))]
	}
}
