package ports

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Amund211/roster/internal/ratelimiting"
	"github.com/stretchr/testify/require"
)

type mockedRateLimiter struct {
	t           *testing.T
	allow       bool
	expectedKey string
}

func (m *mockedRateLimiter) Consume(key string) bool {
	m.t.Helper()
	require.Equal(m.t, m.expectedKey, key)
	return m.allow
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Parallel()

	for _, allow := range []bool{true, false} {
		t.Run(map[bool]string{true: "allowed", false: "limited"}[allow], func(t *testing.T) {
			t.Parallel()

			handlerCalled := false
			ipRateLimiter := ratelimiting.NewRequestBasedRateLimiter(
				&mockedRateLimiter{t: t, allow: allow, expectedKey: "ip: 169.254.169.126"},
				ratelimiting.IPKeyFunc,
			)

			handler := NewRateLimitMiddleware(ipRateLimiter, rateLimitExceeded)(
				func(w http.ResponseWriter, r *http.Request) {
					handlerCalled = true
					w.WriteHeader(http.StatusOK)
				},
			)

			req := httptest.NewRequest(http.MethodPost, "/players", nil)
			req.RemoteAddr = "169.254.169.126:58418"
			req.Header.Set("X-Forwarded-For", "12.12.123.123,34.111.7.239")
			w := httptest.NewRecorder()

			handler(w, req)

			require.Equal(t, allow, handlerCalled)
			if allow {
				require.Equal(t, http.StatusOK, w.Code)
			} else {
				require.Equal(t, http.StatusTooManyRequests, w.Code)
			}
		})
	}
}

func TestComposeMiddlewares(t *testing.T) {
	t.Parallel()

	var calls []string
	record := func(name string) middlewareFunc {
		return func(next http.HandlerFunc) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name+" pre")
				next(w, r)
				calls = append(calls, name+" post")
			}
		}
	}

	handler := ComposeMiddlewares(record("outer"), record("middle"), record("inner"))(
		func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, "handler")
		},
	)

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{
		"outer pre",
		"middle pre",
		"inner pre",
		"handler",
		"inner post",
		"middle post",
		"outer post",
	}, calls)
}
