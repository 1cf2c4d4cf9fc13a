package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testRouter() *gin.Engine {
	// Handlers that reach the service layer are exercised in the service
	// integration tests; these tests cover routing, auth, and binding.
	s := NewServer(nil, nil, nil, nil, "test-pod")
	return s.Router()
}

func TestRequireIdentity_MissingHeaders(t *testing.T) {
	router := testRouter()

	cases := []struct {
		name    string
		headers map[string]string
	}{
		{"no headers", nil},
		{"user only", map[string]string{"X-Forwarded-User": "alice"}},
		{"email only", map[string]string{"X-Forwarded-Email": "alice@example.com"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/research", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "identity")
		})
	}
}

func TestStartResearch_InvalidBody(t *testing.T) {
	router := testRouter()

	cases := []struct {
		name string
		body string
	}{
		{"not json", "not-json"},
		{"missing prompt", `{}`},
		{"empty prompt", `{"prompt": ""}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/research", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Forwarded-User", "alice")
			req.Header.Set("X-Forwarded-Email", "alice@example.com")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSubmitAnswer_InvalidBody(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/research/some-id/answers",
		strings.NewReader(`{"question_id": "q1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-User", "alice")
	req.Header.Set("X-Forwarded-Email", "alice@example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSecurityHeaders(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/research", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
}
