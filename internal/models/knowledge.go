// Package models defines the domain types for Scoop.
package models

import (
	"regexp"
	"strings"
)

// Style selects how an answer is worded.
type Style string

// Supported styles.
const (
	StylePlain  Style = "plain"
	StyleThemed Style = "themed"
)

// ParseStyle maps a client-supplied style name to a Style.
// "normal" and "gossip" are accepted as aliases; anything else is themed.
func ParseStyle(s string) Style {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain", "normal":
		return StylePlain
	default:
		return StyleThemed
	}
}

// Intent is the coarse purpose of an incoming message.
type Intent string

// Intents, in classification precedence order.
const (
	IntentTeach    Intent = "teach"
	IntentGreeting Intent = "greeting"
	IntentFarewell Intent = "farewell"
	IntentLookup   Intent = "lookup"
)

// Entry is a single topic and its definition.
type Entry struct {
	Topic      string `json:"topic"`
	Definition string `json:"definition"`
}

// MatchResult is the best topic for a query. An empty Topic means no match.
type MatchResult struct {
	Topic      string  `json:"topic,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Found reports whether a topic was matched.
func (m MatchResult) Found() bool {
	return m.Topic != ""
}

var nonWordRe = regexp.MustCompile(`[^a-z0-9_ ]+`)

// NormalizeTopic returns the canonical form of a topic key: lower case,
// non-word characters replaced by spaces, whitespace collapsed and trimmed.
// "Tax-Loss  Harvesting" becomes "tax loss harvesting".
func NormalizeTopic(s string) string {
	s = nonWordRe.ReplaceAllString(strings.ToLower(s), " ")
	return strings.Join(strings.Fields(s), " ")
}
