// Package matcher scores a free-text query against the known topics.
package matcher

import (
	"regexp"
	"strings"

	"github.com/starford/scoop/internal/models"
)

// ExactConfidence is reported when a topic appears verbatim in the query.
const ExactConfidence = 0.9

var wordRe = regexp.MustCompile(`\w+`)

// Match returns the topic that best fits query.
//
// A topic contained verbatim in the normalized query wins outright with
// ExactConfidence; when several do, the first in topics order is chosen.
// Otherwise each topic is scored by the share of its tokens that also occur
// in the query, and the strictly highest score wins (ties keep the earlier
// topic). Topics must already be normalized.
func Match(query string, topics []string) models.MatchResult {
	q := models.NormalizeTopic(query)
	if q == "" {
		return models.MatchResult{}
	}

	for _, topic := range topics {
		if topic != "" && strings.Contains(q, topic) {
			return models.MatchResult{Topic: topic, Confidence: ExactConfidence}
		}
	}

	queryWords := tokenSet(q)
	var best models.MatchResult
	for _, topic := range topics {
		topicWords := tokenSet(topic)
		if len(topicWords) == 0 {
			continue
		}
		common := 0
		for w := range topicWords {
			if _, ok := queryWords[w]; ok {
				common++
			}
		}
		if common == 0 {
			continue
		}
		score := float64(common) / float64(len(topicWords))
		if score > best.Confidence {
			best = models.MatchResult{Topic: topic, Confidence: score}
		}
	}
	return best
}

func tokenSet(s string) map[string]struct{} {
	words := wordRe.FindAllString(s, -1)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
