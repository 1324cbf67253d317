package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"immo_backend/internal/auth"
	"immo_backend/internal/metrics"
	"immo_backend/internal/models"
	"immo_backend/internal/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(tokens *auth.TokenManager, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware(tokens)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c), "role": GetRole(c)})
	})
	r.GET("/me", handlers...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	r := newRouter(tokens)

	token, err := tokens.GenerateToken(42, models.UserRoleBuyer)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"без заголовка", "", http.StatusUnauthorized},
		{"без Bearer", token, http.StatusUnauthorized},
		{"мусорный токен", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"валидный токен", "Bearer " + token, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.JSONEq(t, `{"user_id":42,"role":"buyer"}`, w.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_ForeignSecret(t *testing.T) {
	other := auth.NewTokenManager("other-secret", time.Hour)
	token, err := other.GenerateToken(1, models.UserRoleSeller)
	require.NoError(t, err)

	r := newRouter(auth.NewTokenManager("test-secret", time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	r := newRouter(tokens, RateLimitMiddleware(ratelimit.NewPerMinute(1, 2, time.Minute)))
	token, err := tokens.GenerateToken(5, models.UserRoleBuyer)
	require.NoError(t, err)

	var codes []int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRequestIDAndMetrics(t *testing.T) {
	m := metrics.New()
	r := gin.New()
	r.Use(RequestIDMiddleware(), MetricsMiddleware(m))
	r.GET("/ping/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ping/7", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/ping/:id", "204")))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping/8", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "сгенерирован, если не передан")
}
