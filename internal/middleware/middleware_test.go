package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"anoa.com/casetrack/pkg/auth"
	"anoa.com/casetrack/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(tokens *auth.TokenManager) *gin.Engine {
	m := NewAuthMiddleware(tokens)
	r := gin.New()
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }

	r.GET("/any", m.RequireAuth(), ok)
	r.GET("/admin", m.RequireAuth(), m.RequireRole("admin"), ok)
	r.GET("/writers", m.RequireAuth(), m.RequireRole("admin", "staff"), ok)
	r.GET("/maybe", m.OptionalAuth(), func(c *gin.Context) {
		if id, err := response.GetIdentity(c); err == nil {
			c.String(http.StatusOK, id.Role)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	return r
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthGuard(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	r := newRouter(tokens)

	staff, _, err := tokens.Generate(2, "s@x.org", "staff")
	require.NoError(t, err)
	admin, _, err := tokens.Generate(1, "a@x.org", "admin")
	require.NoError(t, err)
	foreign, _, err := auth.NewTokenManager("other", time.Hour).Generate(1, "a@x.org", "admin")
	require.NoError(t, err)

	tests := []struct {
		path  string
		token string
		want  int
	}{
		{"/any", "", http.StatusUnauthorized},
		{"/any", "garbage", http.StatusUnauthorized},
		{"/any", foreign, http.StatusUnauthorized},
		{"/any", staff, http.StatusOK},
		{"/admin", staff, http.StatusForbidden},
		{"/admin", admin, http.StatusOK},
		{"/admin", "", http.StatusUnauthorized},
		{"/writers", staff, http.StatusOK},
		{"/writers", admin, http.StatusOK},
	}
	for _, tt := range tests {
		w := do(r, tt.path, tt.token)
		assert.Equal(t, tt.want, w.Code, "%s with token %q", tt.path, tt.token)
	}

	w := do(r, "/admin", staff)
	assert.Contains(t, w.Body.String(), `"error":"Forbidden"`)
}

func TestOptionalAuth(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	r := newRouter(tokens)
	staff, _, _ := tokens.Generate(2, "s@x.org", "staff")

	assert.Equal(t, "anonymous", do(r, "/maybe", "").Body.String())
	assert.Equal(t, "anonymous", do(r, "/maybe", "garbage").Body.String())
	assert.Equal(t, "staff", do(r, "/maybe", staff).Body.String())
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := do(r, "/x", "")
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(requestIDHeader, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(requestIDHeader))
}

func TestMetrics_CountsByRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	r := gin.New()
	r.Use(m.Handler())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	do(r, "/items/1", "")
	do(r, "/items/2", "")
	do(r, "/nowhere", "")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/items/:id", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("unmatched", "GET", "404")))

	count, err := testutil.GatherAndCount(reg, "casetrack_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
