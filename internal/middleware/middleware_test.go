package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopeactionjeunesse/hope-site/internal/domain/content"
	"github.com/hopeactionjeunesse/hope-site/internal/models"
	"github.com/hopeactionjeunesse/hope-site/internal/ratelimit"
	"github.com/hopeactionjeunesse/hope-site/internal/session"
)

type stubUsers map[string]*models.User

func (s stubUsers) UpsertByIdentityKey(context.Context, content.UserUpsert) error { return nil }

func (s stubUsers) GetByIdentityKey(_ context.Context, openID string) (*models.User, error) {
	return s[openID], nil
}

func newSessions(t *testing.T) *session.Manager {
	t.Helper()
	m, err := session.NewManager(session.Options{Secret: "secret", TTL: time.Hour})
	require.NoError(t, err)
	return m
}

func adminRouter(t *testing.T, sessions *session.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	users := stubUsers{
		"admin-1": {OpenID: "admin-1", Role: models.RoleAdmin},
		"user-1":  {OpenID: "user-1", Role: models.RoleUser},
	}
	r := gin.New()
	r.Use(SessionMiddleware(sessions, users))
	r.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.String(http.StatusOK, CurrentUser(c).OpenID)
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	sessions := newSessions(t)
	r := adminRouter(t, sessions)

	token := func(openID string) string {
		tok, _, err := sessions.Issue(openID, "")
		require.NoError(t, err)
		return tok
	}

	cases := []struct {
		name   string
		setup  func(*http.Request)
		status int
	}{
		{"anonymous", func(*http.Request) {}, http.StatusUnauthorized},
		{"garbage token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized},
		{"unknown user", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: sessions.CookieName(), Value: token("ghost")})
		}, http.StatusUnauthorized},
		{"plain user", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: sessions.CookieName(), Value: token("user-1")})
		}, http.StatusForbidden},
		{"admin cookie", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: sessions.CookieName(), Value: token("admin-1")})
		}, http.StatusOK},
		{"admin bearer", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+token("admin-1"))
		}, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			tc.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://hope.example.org/"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://hope.example.org")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://hope.example.org", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Len(t, w.Header().Get(HeaderRequestID), 36)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/contact", RateLimit(ratelimit.NewMemory(2, time.Hour), "contact"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.POST("/open", RateLimit(failingLimiter{}, "open"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/contact", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/open", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBodyLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/echo", BodyLimit(16), func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			var tooLarge *http.MaxBytesError
			require.ErrorAs(t, err, &tooLarge)
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusNoContent)
	})

	send := func(body string, knownLength bool) int {
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
		if !knownLength {
			req.ContentLength = -1
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, send("small", true))
	assert.Equal(t, http.StatusRequestEntityTooLarge, send(strings.Repeat("x", 64), true))
	assert.Equal(t, http.StatusRequestEntityTooLarge, send(strings.Repeat("x", 64), false))
}
