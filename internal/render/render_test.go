package render

import (
	"slices"
	"strings"
	"testing"

	"github.com/starford/scoop/internal/models"
)

type fixedRand int

func (f fixedRand) IntN(n int) int { return int(f) % n }

func TestRender_PlainIsIdentity(t *testing.T) {
	r := New()
	if got := r.Render("A bond is a loan.", models.StylePlain); got != "A bond is a loan." {
		t.Errorf("Render plain = %q", got)
	}
}

func TestRender_ThemedWrapsBody(t *testing.T) {
	r := New(WithRand(fixedRand(2)))
	got := r.Render("BODY", models.StyleThemed)
	want := DefaultThemed.Intros[2] + "BODY" + DefaultThemed.Outros[2]
	if got != want {
		t.Errorf("Render themed = %q, want %q", got, want)
	}
}

func TestRender_SeededIsDeterministic(t *testing.T) {
	a := New(WithRand(NewSeededRand(42)))
	b := New(WithRand(NewSeededRand(42)))
	for i := 0; i < 20; i++ {
		if x, y := a.Render("x", models.StyleThemed), b.Render("x", models.StyleThemed); x != y {
			t.Fatalf("draw %d differs: %q vs %q", i, x, y)
		}
	}
}

func TestRender_ThemedDrawsFromTemplates(t *testing.T) {
	r := New(WithRand(NewSeededRand(7)))
	for i := 0; i < 50; i++ {
		got := r.Render("|body|", models.StyleThemed)
		intro, rest, ok := strings.Cut(got, "|body|")
		if !ok {
			t.Fatalf("body missing from %q", got)
		}
		if !slices.Contains(DefaultThemed.Intros, intro) {
			t.Errorf("unknown intro %q", intro)
		}
		if !slices.Contains(DefaultThemed.Outros, rest) {
			t.Errorf("unknown outro %q", rest)
		}
	}
}

func TestFixedReplies(t *testing.T) {
	r := New(WithRand(fixedRand(1)))

	if got := r.Greeting(models.StylePlain); got != DefaultPlain.Greeting {
		t.Errorf("plain greeting = %q", got)
	}
	if got := r.Farewell(models.StyleThemed); got != DefaultThemed.Farewell {
		t.Errorf("themed farewell = %q", got)
	}
	if got := r.Fallback(models.StylePlain); got != DefaultPlain.Fallbacks[0] {
		t.Errorf("plain fallback = %q", got)
	}
	if got := r.Fallback(models.StyleThemed); got != DefaultThemed.Fallbacks[1] {
		t.Errorf("themed fallback = %q", got)
	}
	if got := r.Confirmation(models.StylePlain, "gamma", "an option Greek"); got != "Got it. I've learned that gamma is an option Greek" {
		t.Errorf("plain confirmation = %q", got)
	}
	if !strings.Contains(r.FormatHint(models.StyleThemed), "Learn that [topic] is [definition]") {
		t.Errorf("themed hint = %q", r.FormatHint(models.StyleThemed))
	}
	if r.Attribution() != DefaultThemed.Attribution {
		t.Errorf("attribution = %q", r.Attribution())
	}
}

func TestWithTemplates_OverridesAndMerges(t *testing.T) {
	r := New(WithTemplates(models.StylePlain, Templates{Farewell: "See ya."}))
	if got := r.Farewell(models.StylePlain); got != "See ya." {
		t.Errorf("farewell = %q", got)
	}
	if got := r.Greeting(models.StylePlain); got != DefaultPlain.Greeting {
		t.Errorf("greeting not kept from defaults: %q", got)
	}
}

func TestCheckConfirmation(t *testing.T) {
	tests := []struct {
		pattern string
		ok      bool
	}{
		{"", true},
		{DefaultThemed.Confirmation, true},
		{"Noted: %s means %s.", true},
		{"100%% sure: %s is %s", true},
		{"Learned %s.", false},
		{"Learned %s is %s, twice %s", false},
		{"Learned %d is %s", false},
		{"No verbs at all", false},
	}
	for _, tt := range tests {
		err := CheckConfirmation(tt.pattern)
		if (err == nil) != tt.ok {
			t.Errorf("CheckConfirmation(%q) = %v, want ok=%v", tt.pattern, err, tt.ok)
		}
	}
}
