package taskmatch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	transport "github.com/kailas-cloud/taskmatch/internal/transport/chi"
	healthuc "github.com/kailas-cloud/taskmatch/internal/usecase/health"
	"github.com/kailas-cloud/taskmatch/internal/usecase/ranking"
)

func sampleRequest() Request {
	return Request{
		TaskDescription: "Need someone with python backend experience",
		PotentialAssignees: []Assignee{
			{ID: IntID(1), Name: "Alice", Skills: []string{"design", "figma"}},
			{ID: StringID("u-2"), Name: "Bob", Skills: []string{"python", "backend"}},
		},
	}
}

func newLiveServer(t *testing.T, apiKeys ...string) *httptest.Server {
	t.Helper()
	ranker := ranking.New()
	health := healthuc.New().With("ranker", ranker)
	srv := transport.NewServer(ranker, health, zap.NewNop())
	router := transport.NewRouter(srv, transport.RouterConfig{APIKeys: apiKeys}, zap.NewNop())
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)
	return ts
}

func TestNew_InvalidBaseURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:5001", "ftp://host", "http://"} {
		if _, err := New(raw); err == nil {
			t.Errorf("New(%q): expected error", raw)
		}
	}
}

func TestNew_Defaults(t *testing.T) {
	c, err := New("http://localhost:5001/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.httpClient.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", c.httpClient.Timeout, DefaultTimeout)
	}
	if c.baseURL.String() != "http://localhost:5001" {
		t.Errorf("base url = %q", c.baseURL.String())
	}
}

func TestClientOptions(t *testing.T) {
	hc := &http.Client{Timeout: time.Second}
	c, err := New("http://example.com",
		WithHTTPClient(hc),
		WithTimeout(time.Minute),
		WithAPIKey("secret"),
		WithUserAgent("test-agent"),
		WithLogger(zap.NewNop()),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.httpClient != hc {
		t.Error("expected custom http client")
	}
	if c.apiKey != "secret" {
		t.Errorf("api key = %q", c.apiKey)
	}
	if c.userAgent != "test-agent" {
		t.Errorf("user agent = %q", c.userAgent)
	}
}

func TestRecommend_LiveServer(t *testing.T) {
	ts := newLiveServer(t)
	c, err := New(ts.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := c.Recommend(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(resp.Recommendations) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(resp.Recommendations))
	}
	top := resp.Recommendations[0]
	if top.User.ID.String() != "u-2" || top.User.Name != "Bob" {
		t.Errorf("top = %+v, want Bob", top.User)
	}
	if top.Score <= 0 || top.Score > 1 {
		t.Errorf("top score = %v, want (0, 1]", top.Score)
	}
	last := resp.Recommendations[1]
	if last.User.ID.String() != "1" || last.Score != 0 {
		t.Errorf("last = %+v score %v, want Alice with 0", last.User, last.Score)
	}
	if len(last.Skills) != 2 || last.Skills[0] != "design" {
		t.Errorf("skills = %v, want original order", last.Skills)
	}
}

func TestRecommend_LiveServer_InvalidInput(t *testing.T) {
	ts := newLiveServer(t)
	c, _ := New(ts.URL)

	req := sampleRequest()
	req.TaskDescription = ""
	_, err := c.Recommend(context.Background(), req)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Message == "" {
		t.Errorf("api error = %+v", apiErr)
	}
}

func TestRecommend_LiveServer_Auth(t *testing.T) {
	ts := newLiveServer(t, "secret")

	anon, _ := New(ts.URL)
	if _, err := anon.Recommend(context.Background(), sampleRequest()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	authed, _ := New(ts.URL, WithAPIKey("secret"))
	if _, err := authed.Recommend(context.Background(), sampleRequest()); err != nil {
		t.Fatalf("authorized request failed: %v", err)
	}
}

func TestPing_LiveServer(t *testing.T) {
	ts := newLiveServer(t, "secret")
	c, _ := New(ts.URL)
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestRecommend_SendsHeaders(t *testing.T) {
	var got *http.Request
	var payload map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		_ = json.NewDecoder(r.Body).Decode(&payload)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"task":"t","recommendations":[]}`))
	}))
	defer ts.Close()

	c, _ := New(ts.URL, WithAPIKey("k"), WithUserAgent("ua"))
	if _, err := c.Recommend(context.Background(), sampleRequest()); err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if got.Method != http.MethodPost || got.URL.Path != "/recommend" {
		t.Errorf("request = %s %s", got.Method, got.URL.Path)
	}
	if h := got.Header.Get("Authorization"); h != "Bearer k" {
		t.Errorf("Authorization = %q", h)
	}
	if h := got.Header.Get("User-Agent"); h != "ua" {
		t.Errorf("User-Agent = %q", h)
	}
	assignees, ok := payload["potential_assignees"].([]any)
	if !ok || len(assignees) != 2 {
		t.Fatalf("potential_assignees = %v", payload["potential_assignees"])
	}
	first := assignees[0].(map[string]any)
	if id, ok := first["id"].(float64); !ok || id != 1 {
		t.Errorf("numeric id sent as %v (%T)", first["id"], first["id"])
	}
}

func TestRecommend_ErrorBodies(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		sentinel error
	}{
		{"coded", http.StatusBadRequest, `{"code":"invalid_input","message":"task is empty"}`, "task is empty", ErrInvalidInput},
		{"legacy error field", http.StatusBadRequest, `{"error":"Missing task description"}`, "Missing task description", nil},
		{"plain text", http.StatusBadGateway, "upstream down\n", "upstream down", nil},
		{"empty", http.StatusServiceUnavailable, "", "Service Unavailable", ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			c, _ := New(ts.URL)
			_, err := c.Recommend(context.Background(), sampleRequest())
			apiErr, ok := AsAPIError(err)
			if !ok {
				t.Fatalf("expected *APIError, got %v", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", apiErr.StatusCode, tt.status)
			}
			if apiErr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", apiErr.Message, tt.wantMsg)
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("expected errors.Is(%v)", tt.sentinel)
			}
		})
	}
}

func TestRecommend_Timeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	c, _ := New(ts.URL, WithTimeout(50*time.Millisecond))
	if _, err := c.Recommend(context.Background(), sampleRequest()); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestID_JSON(t *testing.T) {
	var a Assignee
	if err := json.Unmarshal([]byte(`{"id":42,"name":"x","skills":[]}`), &a); err != nil {
		t.Fatalf("unmarshal numeric id: %v", err)
	}
	if a.ID.String() != "42" {
		t.Errorf("id = %q, want 42", a.ID.String())
	}
	if err := json.Unmarshal([]byte(`{"id":"abc"}`), &a); err != nil {
		t.Fatalf("unmarshal string id: %v", err)
	}
	if a.ID.String() != "abc" {
		t.Errorf("id = %q, want abc", a.ID.String())
	}
	if err := json.Unmarshal([]byte(`{"id":{"nested":true}}`), &a); err == nil {
		t.Error("expected error for object id")
	}

	out, _ := json.Marshal(User{ID: StringID("q\"x"), Name: "n"})
	if string(out) != `{"id":"q\"x","name":"n"}` {
		t.Errorf("marshal = %s", out)
	}
	out, _ = json.Marshal(User{Name: "n"})
	if string(out) != `{"id":null,"name":"n"}` {
		t.Errorf("zero id marshal = %s", out)
	}
}
