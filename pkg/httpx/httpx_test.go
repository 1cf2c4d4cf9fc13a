package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type statusErr struct{ code int }

func (e *statusErr) Error() string       { return fmt.Sprintf("http %d", e.code) }
func (e *statusErr) HTTPStatusCode() int { return e.code }

func TestIsRetryableHTTPStatus(t *testing.T) {
	assert.True(t, IsRetryableHTTPStatus(http.StatusTooManyRequests))
	assert.True(t, IsRetryableHTTPStatus(http.StatusRequestTimeout))
	assert.True(t, IsRetryableHTTPStatus(http.StatusInternalServerError))
	assert.True(t, IsRetryableHTTPStatus(http.StatusBadGateway))

	assert.False(t, IsRetryableHTTPStatus(http.StatusOK))
	assert.False(t, IsRetryableHTTPStatus(http.StatusBadRequest))
	assert.False(t, IsRetryableHTTPStatus(http.StatusUnauthorized))
	assert.False(t, IsRetryableHTTPStatus(http.StatusNotFound))
}

func TestIsRetryableError(t *testing.T) {
	assert.False(t, IsRetryableError(nil))
	assert.False(t, IsRetryableError(errors.New("plain error")))
	assert.True(t, IsRetryableError(&statusErr{code: 503}))
	assert.False(t, IsRetryableError(&statusErr{code: 400}))
	assert.True(t, IsRetryableError(fmt.Errorf("wrapped: %w", &statusErr{code: 429})))
}

func TestRetryAfterDuration(t *testing.T) {
	fallback := 2 * time.Second

	t.Run("nil response uses fallback", func(t *testing.T) {
		assert.Equal(t, fallback, RetryAfterDuration(nil, fallback, 10*time.Second))
	})

	t.Run("honors Retry-After header", func(t *testing.T) {
		resp := &http.Response{Header: http.Header{"Retry-After": []string{"5"}}}
		assert.Equal(t, 5*time.Second, RetryAfterDuration(resp, fallback, 10*time.Second))
	})

	t.Run("caps at max", func(t *testing.T) {
		resp := &http.Response{Header: http.Header{"Retry-After": []string{"120"}}}
		assert.Equal(t, 10*time.Second, RetryAfterDuration(resp, fallback, 10*time.Second))
	})

	t.Run("ignores malformed header", func(t *testing.T) {
		resp := &http.Response{Header: http.Header{"Retry-After": []string{"soon"}}}
		assert.Equal(t, fallback, RetryAfterDuration(resp, fallback, 10*time.Second))
	})
}

func TestJitter(t *testing.T) {
	base := time.Second
	for i := 0; i < 100; i++ {
		got := Jitter(base)
		assert.GreaterOrEqual(t, got, 800*time.Millisecond)
		assert.LessOrEqual(t, got, 1200*time.Millisecond)
	}

	assert.Equal(t, time.Duration(0), Jitter(0))
	assert.Equal(t, time.Duration(0), Jitter(-time.Second))
}
