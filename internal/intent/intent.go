// Package intent classifies raw messages into greeting, farewell, teach or lookup.
package intent

import (
	"regexp"
	"strings"

	"github.com/starford/scoop/internal/models"
)

// Trigger phrases per intent.
var (
	greetingPhrases = []string{"hello", "hi", "hey", "greetings", "howdy"}
	farewellPhrases = []string{"bye", "goodbye", "exit", "quit", "see you"}
	teachVerbs      = []string{"learn", "add", "teach"}
)

// pattern holds one intent and the phrases that trigger it.
type pattern struct {
	intent models.Intent
	re     *regexp.Regexp
}

// patterns are evaluated in order: teach, greeting, farewell.
var patterns = []pattern{
	{models.IntentTeach, phraseRegexp(teachVerbs)},
	{models.IntentGreeting, phraseRegexp(greetingPhrases)},
	{models.IntentFarewell, phraseRegexp(farewellPhrases)},
}

// phraseRegexp builds a case-insensitive alternation that only matches
// whole words, so "hi" does not fire on "which" and "add" not on "address".
func phraseRegexp(phrases []string) *regexp.Regexp {
	quoted := make([]string, len(phrases))
	for i, p := range phrases {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// Classify returns the intent of message. Precedence is fixed:
// teach > greeting > farewell > lookup, so "hey, teach me about bonds"
// is a teach request.
func Classify(message string) models.Intent {
	for _, p := range patterns {
		if p.re.MatchString(message) {
			return p.intent
		}
	}
	return models.IntentLookup
}
