package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"product-approval-ai/backend/internal/ai"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newMockServer(t *testing.T) *Server {
	t.Helper()
	server, err := NewServer(Config{UseMockAI: true})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return server
}

func doReview(t *testing.T, server *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/review", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	server.Router().ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return out
}

func TestHealthEndpoint(t *testing.T) {
	server := newMockServer(t)
	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	health := decodeBody[HealthResponse](t, w)
	if health.Status != "healthy" || !health.MockMode {
		t.Fatalf("unexpected health payload: %+v", health)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected a request id header")
	}
}

func TestReviewMockMode(t *testing.T) {
	server := newMockServer(t)

	tests := []struct {
		name     string
		body     string
		decision string
	}{
		{
			"suspicious product rejected",
			`{"product_name": "Keto Mastery E-Book", "sales_page": "Lose 15kg in 21 days! 100% guaranteed."}`,
			"reject",
		},
		{
			"educational product approved",
			`{"product_name": "Mindful Productivity Course", "sales_page": "Evidence-based strategies backed by psychology and behavioral science."}`,
			"approve",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doReview(t, server, tc.body)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
			}
			resp := decodeBody[ReviewResponse](t, w)
			if resp.Decision != tc.decision {
				t.Fatalf("expected %s got %s", tc.decision, resp.Decision)
			}
			if n := len(resp.Explanation); n < 10 || n > 500 {
				t.Fatalf("explanation length %d out of bounds", n)
			}
		})
	}
}

func TestReviewValidation(t *testing.T) {
	server := newMockServer(t)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"missing sales page", `{"product_name": "Course"}`, http.StatusUnprocessableEntity},
		{"missing product name", `{"sales_page": "Some sales page content."}`, http.StatusUnprocessableEntity},
		{"short sales page", `{"product_name": "Course", "sales_page": "short"}`, http.StatusUnprocessableEntity},
		{"whitespace product name", `{"product_name": "   ", "sales_page": "Some sales page content."}`, http.StatusUnprocessableEntity},
		{"whitespace sales page", `{"product_name": "Course", "sales_page": "          "}`, http.StatusUnprocessableEntity},
		{"not json", `not json`, http.StatusUnprocessableEntity},
		{"oversized product name", `{"product_name": "` + strings.Repeat("x", 201) + `", "sales_page": "Some sales page content."}`, http.StatusUnprocessableEntity},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doReview(t, server, tc.body)
			if w.Code != tc.status {
				t.Fatalf("expected %d got %d: %s", tc.status, w.Code, w.Body.String())
			}
			resp := decodeBody[ErrorResponse](t, w)
			if resp.Error == "" {
				t.Fatal("error responses must carry an error field")
			}
		})
	}
}

func TestReviewContentLengthLimit(t *testing.T) {
	server, err := NewServer(Config{UseMockAI: true, MaxContentLength: 50})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	body := `{"product_name": "Course", "sales_page": "` + strings.Repeat("a", 60) + `"}`
	w := doReview(t, server, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeBody[ErrorResponse](t, w)
	if !strings.Contains(resp.Detail, "too long") {
		t.Fatalf("unexpected detail %q", resp.Detail)
	}
}

func TestTruncateIsRuneSafe(t *testing.T) {
	got := truncate(strings.Repeat("€", 60), 50)
	if !utf8.ValidString(got) {
		t.Fatalf("truncate produced invalid UTF-8: %q", got)
	}
	if n := len([]rune(got)); n != 50 {
		t.Fatalf("expected 50 runes got %d", n)
	}
	if short := truncate("Café", 50); short != "Café" {
		t.Fatalf("short strings must pass through, got %q", short)
	}
}

// newBackendServer wires a real AI client against a stand-in completion
// endpoint so the failure mapping is exercised end to end.
func newBackendServer(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *Server {
	t.Helper()
	backend := httptest.NewServer(handler)
	t.Cleanup(backend.Close)

	server, err := NewServer(Config{
		AIConfig: ai.Config{
			APIKey:  "test-key",
			BaseURL: backend.URL,
			Timeout: timeout,
		},
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return server
}

func TestReviewBackendFailureMapping(t *testing.T) {
	body := `{"product_name": "Course", "sales_page": "Some sales page content."}`

	t.Run("timeout maps to 504", func(t *testing.T) {
		server := newBackendServer(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
		}, 30*time.Millisecond)
		w := doReview(t, server, body)
		if w.Code != http.StatusGatewayTimeout {
			t.Fatalf("expected 504 got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("backend error maps to 503", func(t *testing.T) {
		server := newBackendServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}, time.Second)
		w := doReview(t, server, body)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503 got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("broken envelope maps to 500", func(t *testing.T) {
		server := newBackendServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}, time.Second)
		w := doReview(t, server, body)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500 got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("backend verdict flows through", func(t *testing.T) {
		server := newBackendServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices": [{"message": {"content": "{\"decision\": \"approve\", \"explanation\": \"Professional and realistic offer.\"}"}}]}`))
		}, time.Second)
		w := doReview(t, server, body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
		}
		resp := decodeBody[ReviewResponse](t, w)
		if resp.Decision != "approve" {
			t.Fatalf("expected approve got %s", resp.Decision)
		}
	})
}
