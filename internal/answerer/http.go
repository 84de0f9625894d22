package answerer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const maxResponseSize = 1 << 20

// HTTPExtractor calls a question-answering inference endpoint that accepts
// {"inputs":{"question":..,"context":..}} and replies {"answer":..,"score":..}.
type HTTPExtractor struct {
	endpoint string
	token    string
	client   *http.Client
}

// NewHTTPExtractor creates an extractor for endpoint. token, if set, is sent as a Bearer token.
func NewHTTPExtractor(endpoint, token string, client *http.Client) *HTTPExtractor {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPExtractor{endpoint: endpoint, token: token, client: client}
}

type qaRequest struct {
	Inputs qaInputs `json:"inputs"`
}

type qaInputs struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

type qaResponse struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
	Error  string  `json:"error,omitempty"`
}

// ExtractSpan implements SpanExtractor.
func (h *HTTPExtractor) ExtractSpan(ctx context.Context, question, passage string) (string, float64, error) {
	body, err := json.Marshal(qaRequest{Inputs: qaInputs{Question: question, Context: passage}})
	if err != nil {
		return "", 0, fmt.Errorf("answerer: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", 0, fmt.Errorf("answerer: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("answerer: call endpoint: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", 0, fmt.Errorf("answerer: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("answerer: endpoint returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var out qaResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", 0, fmt.Errorf("answerer: decode response: %w", err)
	}
	if out.Error != "" {
		return "", 0, fmt.Errorf("answerer: endpoint error: %s", out.Error)
	}
	return out.Answer, out.Score, nil
}
