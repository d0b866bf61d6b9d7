package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(Options{Secret: "test-secret", AppID: "hope", TTL: time.Hour})
	require.NoError(t, err)
	return m
}

func TestIssueAndParse(t *testing.T) {
	m := newManager(t)

	token, expiry, err := m.Issue("user-42", "Awa")
	require.NoError(t, err)
	assert.True(t, expiry.After(time.Now()))

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.OpenID)
	assert.Equal(t, "hope", claims.AppID)
	assert.Equal(t, "Awa", claims.Name)
}

func TestParseRejectsForeignSignature(t *testing.T) {
	other, err := NewManager(Options{Secret: "other-secret"})
	require.NoError(t, err)
	token, _, err := other.Issue("user-42", "")
	require.NoError(t, err)

	_, err = newManager(t).Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	m := newManager(t)
	claims := Claims{
		OpenID: "user-42",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestNewManagerRequiresSecret(t *testing.T) {
	_, err := NewManager(Options{Secret: "  "})
	assert.Error(t, err)
}

func TestTokenFromCookieOrBearer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := newManager(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: "app_session_id", Value: "from-cookie"})
	c.Request.Header.Set("Authorization", "Bearer from-header")
	assert.Equal(t, "from-cookie", m.TokenFrom(c))

	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "bearer from-header")
	assert.Equal(t, "from-header", m.TokenFrom(c))

	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, m.TokenFrom(c))
}

func TestSetAndClearCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := newManager(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	m.SetCookie(c, "tok")
	m.ClearCookie(c)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	assert.Equal(t, -1, cookies[1].MaxAge)
}
