// Package session issues and verifies the signed session token carried in the
// session cookie.
package session

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims identify the signed-in user by identity key.
type Claims struct {
	OpenID string `json:"openId"`
	AppID  string `json:"appId"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

type Options struct {
	Secret     string
	AppID      string
	CookieName string
	TTL        time.Duration
	Secure     bool
}

type Manager struct {
	secret     []byte
	appID      string
	cookieName string
	ttl        time.Duration
	secure     bool
}

func NewManager(opts Options) (*Manager, error) {
	secret := strings.TrimSpace(opts.Secret)
	if secret == "" {
		return nil, errors.New("session secret must not be empty")
	}
	if opts.TTL <= 0 {
		opts.TTL = 365 * 24 * time.Hour
	}
	if opts.CookieName == "" {
		opts.CookieName = "app_session_id"
	}
	return &Manager{
		secret:     []byte(secret),
		appID:      opts.AppID,
		cookieName: opts.CookieName,
		ttl:        opts.TTL,
		secure:     opts.Secure,
	}, nil
}

// Secure reports whether cookies are restricted to HTTPS.
func (m *Manager) Secure() bool {
	return m.secure
}

func (m *Manager) CookieName() string {
	return m.cookieName
}

// Issue signs a token for openID valid for the configured TTL.
func (m *Manager) Issue(openID, name string) (string, time.Time, error) {
	if openID == "" {
		return "", time.Time{}, errors.New("openId is required")
	}
	now := time.Now().UTC()
	expiry := now.Add(m.ttl)

	claims := Claims{
		OpenID: openID,
		AppID:  m.appID,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   openID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiry, nil
}

func (m *Manager) Parse(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.OpenID == "" {
		return nil, errors.New("invalid session claims")
	}
	return claims, nil
}

// TokenFrom returns the session cookie, falling back to a Bearer header.
func (m *Manager) TokenFrom(c *gin.Context) string {
	if v, err := c.Cookie(m.cookieName); err == nil && v != "" {
		return v
	}
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func (m *Manager) SetCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, token, int(m.ttl/time.Second), "/", "", m.secure, true)
}

func (m *Manager) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
}
