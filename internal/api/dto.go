package api

import "github.com/starford/scoop/internal/qaservice"

// AskRequest is the request body for asking a question.
type AskRequest struct {
	Message string `json:"message" example:"What is a bond?" validate:"required"`
	Style   string `json:"style" example:"plain"`
}

// AskResponse carries the rendered reply.
type AskResponse struct {
	Response string `json:"response" validate:"required"`
}

// TeachRequest is the request body for teaching a definition.
type TeachRequest struct {
	Topic      string `json:"topic" example:"gamma" validate:"required"`
	Definition string `json:"definition" example:"the rate of change of an option's delta" validate:"required"`
}

// TopicListResponse wraps the topic listing.
type TopicListResponse struct {
	Topics []string `json:"topics" validate:"required"`
	Total  int      `json:"total" example:"30" validate:"required"`
}

// TopicDetail is a resolved definition (aliased from the service layer).
type TopicDetail = qaservice.TopicDetail

// SearchResult is a single search hit (aliased from the service layer).
type SearchResult = qaservice.SearchHit

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []SearchResult `json:"results" validate:"required"`
}
