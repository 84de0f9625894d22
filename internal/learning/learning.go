// Package learning turns "teach me" messages into validated knowledge entries.
package learning

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/scoop/internal/models"
)

// FormatHint describes the accepted teaching grammar.
const FormatHint = "Learn that [topic] is [definition]"

// Length limits for taught entries.
const (
	MaxTopicLength      = 64
	MaxDefinitionLength = 2000
)

var (
	lessonRe = regexp.MustCompile(`(?is)(?:learn|add|teach) (?:that|about) ([a-z0-9 ]+?) (?:is|are|means) (.+)`)
	topicRe  = regexp.MustCompile(`^[a-z0-9_]+(?: [a-z0-9_]+)*$`)
)

// ParseError reports a message that does not follow the teaching grammar.
type ParseError struct {
	Message string
	Hint    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("learning: cannot parse %q, expected %q", e.Message, e.Hint)
}

// Lesson is a topic and definition extracted from a teaching message.
type Lesson struct {
	Topic      string
	Definition string
}

// Validate checks the lesson against the topic invariant and size limits.
func (l Lesson) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Topic,
			validation.Required,
			validation.Length(1, MaxTopicLength),
			validation.Match(topicRe).Error("must contain only lower-case letters, digits and single spaces"),
		),
		validation.Field(&l.Definition,
			validation.Required,
			validation.Length(1, MaxDefinitionLength),
		),
	)
}

// Attributed returns the definition with suffix appended after the taught text.
func (l Lesson) Attributed(suffix string) string {
	if suffix == "" {
		return l.Definition
	}
	return l.Definition + " " + strings.TrimSpace(suffix)
}

// Extract parses message as "(learn|add|teach) (that|about) <topic> (is|are|means) <definition>".
// The topic is normalized; the definition keeps its original case.
func Extract(message string) (Lesson, error) {
	m := lessonRe.FindStringSubmatch(message)
	if m == nil {
		return Lesson{}, &ParseError{Message: message, Hint: FormatHint}
	}
	lesson := Lesson{
		Topic:      models.NormalizeTopic(m[1]),
		Definition: strings.TrimSpace(m[2]),
	}
	if lesson.Topic == "" || lesson.Definition == "" {
		return Lesson{}, &ParseError{Message: message, Hint: FormatHint}
	}
	return lesson, nil
}
