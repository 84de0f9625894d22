package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/starford/scoop/internal/dialogue"
	"github.com/starford/scoop/internal/qaservice"
	"github.com/starford/scoop/internal/render"
	"github.com/starford/scoop/internal/testutil"
)

// testEnv builds a router over the default knowledge base. A non-empty
// authToken enables token mode.
func testEnv(t *testing.T, authToken string) http.Handler {
	t.Helper()
	return testEnvWithSSE(t, authToken, nil)
}

func testEnvWithSSE(t *testing.T, authToken string, sse http.Handler) http.Handler {
	t.Helper()
	store, _ := testutil.Store(t)
	engine := dialogue.New(store, dialogue.WithLogger(testutil.Logger()))
	svc := qaservice.NewService(engine, store)
	return NewRouter(svc, authToken != "", authToken, sse)
}

func do(t *testing.T, h http.Handler, method, target string, body any, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestAsk(t *testing.T) {
	router := testEnv(t, "")

	w := do(t, router, http.MethodPost, "/ask", AskRequest{Message: "hello", Style: "plain"})
	if w.Code != http.StatusOK {
		t.Fatalf("ask = %d, body = %s", w.Code, w.Body.String())
	}
	var resp AskResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Response != render.DefaultPlain.Greeting {
		t.Errorf("response = %q", resp.Response)
	}
}

func TestAsk_EmptyMessage(t *testing.T) {
	router := testEnv(t, "")

	w := do(t, router, http.MethodPost, "/ask", AskRequest{Message: ""})
	var resp AskResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if w.Code != http.StatusOK || resp.Response != qaservice.EmptyMessageReply {
		t.Errorf("empty ask = %d %q", w.Code, resp.Response)
	}
}

func TestAsk_InvalidJSON(t *testing.T) {
	router := testEnv(t, "")
	if w := do(t, router, http.MethodPost, "/ask", "{nope"); w.Code != http.StatusBadRequest {
		t.Errorf("invalid body = %d, want 400", w.Code)
	}
}

func TestTeachThenAsk(t *testing.T) {
	router := testEnv(t, "")

	w := do(t, router, http.MethodPost, "/ask", AskRequest{Message: "learn that gamma is an option Greek", Style: "plain"})
	var resp AskResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Response != "Got it. I've learned that gamma is an option Greek" {
		t.Fatalf("teach response = %q", resp.Response)
	}

	w = do(t, router, http.MethodPost, "/ask", AskRequest{Message: "what is gamma", Style: "themed"})
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if !strings.Contains(resp.Response, "an option Greek "+render.DefaultThemed.Attribution) {
		t.Errorf("lookup response = %q", resp.Response)
	}
}

func TestListTopics(t *testing.T) {
	router := testEnv(t, "")

	w := do(t, router, http.MethodGet, "/topics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d", w.Code)
	}
	var resp TopicListResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Total != 30 || len(resp.Topics) != 30 || resp.Topics[0] != "401k" {
		t.Errorf("topics = %+v", resp)
	}
}

func TestGetTopic(t *testing.T) {
	router := testEnv(t, "")

	w := do(t, router, http.MethodGet, "/topics/robo%20advisor?style=plain", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get = %d, body = %s", w.Code, w.Body.String())
	}
	var d TopicDetail
	_ = json.Unmarshal(w.Body.Bytes(), &d)
	if d.Topic != "robo advisor" || d.Style != "plain" || d.Definition == "" {
		t.Errorf("detail = %+v", d)
	}
	if etag := w.Header().Get("ETag"); etag != `"`+d.Checksum+`"` {
		t.Errorf("ETag = %q", etag)
	}
}

func TestGetTopic_NotFound(t *testing.T) {
	router := testEnv(t, "")
	if w := do(t, router, http.MethodGet, "/topics/gamma", nil); w.Code != http.StatusNotFound {
		t.Errorf("missing topic = %d, want 404", w.Code)
	}
}

func TestTeachTopic(t *testing.T) {
	router := testEnv(t, "")

	w := do(t, router, http.MethodPost, "/topics", TeachRequest{Topic: "Theta", Definition: "time decay"})
	if w.Code != http.StatusCreated {
		t.Fatalf("teach = %d, body = %s", w.Code, w.Body.String())
	}
	if w := do(t, router, http.MethodGet, "/topics/theta", nil); w.Code != http.StatusOK {
		t.Errorf("get after teach = %d", w.Code)
	}
}

func TestTeachTopic_BadRequest(t *testing.T) {
	router := testEnv(t, "")

	cases := []TeachRequest{
		{Topic: "", Definition: "x"},
		{Topic: "gamma", Definition: " "},
		{Topic: "!!!", Definition: "x"},
	}
	for _, c := range cases {
		if w := do(t, router, http.MethodPost, "/topics", c); w.Code != http.StatusBadRequest {
			t.Errorf("teach %+v = %d, want 400", c, w.Code)
		}
	}
}

func TestSearchEndpoint(t *testing.T) {
	router := testEnv(t, "")

	w := do(t, router, http.MethodGet, "/search?q=retirement&limit=5", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("search = %d, body = %s", w.Code, w.Body.String())
	}
	var resp SearchResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Results) == 0 {
		t.Error("expected search results")
	}
}

func TestSearchMissingQuery(t *testing.T) {
	router := testEnv(t, "")
	if w := do(t, router, http.MethodGet, "/search", nil); w.Code != http.StatusBadRequest {
		t.Errorf("search no query = %d, want 400", w.Code)
	}
}

func TestAuthMiddleware(t *testing.T) {
	router := testEnv(t, "secret123")

	cases := []struct {
		name   string
		header []string
		want   int
	}{
		{"valid", []string{"Authorization", "Bearer secret123"}, http.StatusOK},
		{"missing", nil, http.StatusUnauthorized},
		{"wrong", []string{"Authorization", "Bearer wrong"}, http.StatusUnauthorized},
		{"not bearer", []string{"Authorization", "Basic secret123"}, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if w := do(t, router, http.MethodGet, "/topics", nil, tc.header...); w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestAuthMiddleware_Disabled(t *testing.T) {
	router := testEnv(t, "")
	if w := do(t, router, http.MethodGet, "/topics", nil); w.Code != http.StatusOK {
		t.Errorf("no auth = %d, want 200", w.Code)
	}
}

func TestSSEEvents_AuthProtected(t *testing.T) {
	router := testEnvWithSSE(t, "secret", dummySSE())
	if w := do(t, router, http.MethodGet, "/events", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("SSE no auth = %d, want 401", w.Code)
	}
}

func TestSSEEvents_ValidToken(t *testing.T) {
	router := testEnvWithSSE(t, "tok", dummySSE())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	req.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("SSE with valid token = %d", w.Code)
	}
}

func dummySSE() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		<-r.Context().Done()
	})
}
