package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func limitedRouter(t *testing.T, perMin int, trusted []string) *gin.Engine {
	t.Helper()
	r := gin.New()
	require.NoError(t, r.SetTrustedProxies(trusted))
	r.Use(RateLimitMiddleware(perMin))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func requestFrom(r *gin.Engine, remote, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remote
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitMiddleware(t *testing.T) {
	r := limitedRouter(t, 2, nil)

	assert.Equal(t, http.StatusNoContent, requestFrom(r, "10.0.0.1:1000", ""))
	assert.Equal(t, http.StatusNoContent, requestFrom(r, "10.0.0.1:1001", ""))
	assert.Equal(t, http.StatusTooManyRequests, requestFrom(r, "10.0.0.1:1002", ""))
	assert.Equal(t, http.StatusNoContent, requestFrom(r, "10.0.0.2:1000", ""), "limits are per IP")
}

func TestRateLimitIgnoresForwardedForFromUntrustedPeers(t *testing.T) {
	r := limitedRouter(t, 2, nil)

	assert.Equal(t, http.StatusNoContent, requestFrom(r, "203.0.113.5:1", "1.1.1.1"))
	assert.Equal(t, http.StatusNoContent, requestFrom(r, "203.0.113.5:1", "2.2.2.2"))
	assert.Equal(t, http.StatusTooManyRequests, requestFrom(r, "203.0.113.5:1", "3.3.3.3"),
		"rotating X-Forwarded-For must not reset the limit")
}

func TestRateLimitHonorsForwardedForFromTrustedProxy(t *testing.T) {
	r := limitedRouter(t, 1, []string{"10.0.0.0/8"})

	assert.Equal(t, http.StatusNoContent, requestFrom(r, "10.1.2.3:1", "198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, requestFrom(r, "10.1.2.3:1", "198.51.100.1"))
	assert.Equal(t, http.StatusNoContent, requestFrom(r, "10.1.2.3:1", "198.51.100.2"))
}

func TestRateLimiterForgetsIdleClients(t *testing.T) {
	store := newRateLimiterStore(1)
	now := time.Now()
	store.now = func() time.Time { return now }

	for _, ip := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
		require.True(t, store.getLimiter(ip).Allow())
	}
	assert.Equal(t, 3, store.size())

	now = now.Add(limiterIdle / 2)
	store.getLimiter("1.1.1.1")
	assert.Equal(t, 3, store.size())

	now = now.Add(limiterIdle)
	store.getLimiter("4.4.4.4")
	assert.Equal(t, 1, store.size(), "every earlier client has been idle past the window")
}

func sessionRouter() *gin.Engine {
	r := gin.New()
	r.Use(SessionMiddleware("sid", 30*time.Minute, false))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, SessionID(c)) })
	return r
}

func TestSessionMiddlewareIssuesCookie(t *testing.T) {
	w := httptest.NewRecorder()
	sessionRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(w.Body.String())
	require.NoError(t, err)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.Equal(t, w.Body.String(), cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSessionMiddlewareKeepsValidCookie(t *testing.T) {
	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: id})
	w := httptest.NewRecorder()
	sessionRouter().ServeHTTP(w, req)

	assert.Equal(t, id, w.Body.String())
}

func TestSessionMiddlewareReplacesGarbageCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "../../etc/passwd"})
	w := httptest.NewRecorder()
	sessionRouter().ServeHTTP(w, req)

	assert.NotEqual(t, "../../etc/passwd", w.Body.String())
	_, err := uuid.Parse(w.Body.String())
	assert.NoError(t, err)
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/", func(c *gin.Context) {
		_, ok := c.Get("logger")
		assert.True(t, ok)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
