package handlers

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/hopeactionjeunesse/hope-site/internal/domain/content"
	"github.com/hopeactionjeunesse/hope-site/internal/httperr"
	"github.com/hopeactionjeunesse/hope-site/internal/httpresp"
	"github.com/hopeactionjeunesse/hope-site/internal/middleware"
	"github.com/hopeactionjeunesse/hope-site/internal/oauth"
	"github.com/hopeactionjeunesse/hope-site/internal/session"
)

type AuthHandler struct {
	users    content.UserRepository
	sessions *session.Manager
	oauth    *oauth.Client

	ownerOpenID       string
	localPasswordHash string
}

func NewAuthHandler(
	users content.UserRepository,
	sessions *session.Manager,
	oauthClient *oauth.Client,
	ownerOpenID string,
	localPasswordHash string,
) *AuthHandler {
	return &AuthHandler{
		users:             users,
		sessions:          sessions,
		oauth:             oauthClient,
		ownerOpenID:       ownerOpenID,
		localPasswordHash: localPasswordHash,
	}
}

const (
	OAuthStateCookie = "oauth_state"
	oauthStateTTL    = 10 * time.Minute
)

// --------- Requests ---------

type LocalLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// --------- Session ---------

// Me returns the signed-in user, or null.
func (h *AuthHandler) Me(c *gin.Context) {
	httpresp.OK(c, middleware.CurrentUser(c))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.ClearCookie(c)
	httpresp.Success(c)
}

// --------- External login ---------

// OAuthLogin sends the browser to the identity provider. The state parameter
// carries a nonce, also kept in a short-lived cookie, and the return path.
func (h *AuthHandler) OAuthLogin(c *gin.Context) {
	if !h.oauth.Enabled() {
		httperr.NotFound(c, "oauth_disabled", "Connexion externe non configurée.")
		return
	}

	nonce := strings.ReplaceAll(uuid.NewString(), "-", "")
	redirect := base64.RawURLEncoding.EncodeToString([]byte(safeRedirect(c.Query("redirect"))))
	h.setStateCookie(c, nonce, int(oauthStateTTL/time.Second))
	c.Redirect(http.StatusFound, h.oauth.AuthCodeURL(nonce+"."+redirect))
}

func (h *AuthHandler) OAuthCallback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		httperr.BadRequest(c, "invalid_request", "Paramètres code et state requis.")
		return
	}

	nonce, encodedRedirect, _ := strings.Cut(state, ".")
	expected, cookieErr := c.Cookie(OAuthStateCookie)
	h.setStateCookie(c, "", -1)
	if cookieErr != nil || nonce == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(nonce)) != 1 {
		httperr.BadRequest(c, "invalid_state", "La demande de connexion a expiré, veuillez réessayer.")
		return
	}

	info, err := h.oauth.Exchange(c.Request.Context(), code)
	if err != nil {
		logrus.WithError(err).Warn("[auth] oauth exchange failed")
		httperr.Write(c, http.StatusBadGateway, "oauth_failed", "La connexion a échoué.")
		return
	}

	now := time.Now()
	if err := h.users.UpsertByIdentityKey(c.Request.Context(), content.UserUpsert{
		OpenID:       info.OpenID,
		Name:         nonEmpty(info.Name),
		Email:        nonEmpty(info.Email),
		LoginMethod:  nonEmpty(info.LoginMethod),
		LastSignedIn: &now,
	}); err != nil {
		httperr.FromError(c, err)
		return
	}

	if !h.startSession(c, info.OpenID, info.Name) {
		return
	}

	target := "/"
	if raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(encodedRedirect, "=")); err == nil {
		target = safeRedirect(string(raw))
	}
	c.Redirect(http.StatusFound, target)
}

func (h *AuthHandler) setStateCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(OAuthStateCookie, value, maxAge, "/api/oauth", "", h.sessions.Secure(), true)
}

// --------- Local login ---------

// LocalLogin signs the owner in with the configured bcrypt password hash.
func (h *AuthHandler) LocalLogin(c *gin.Context) {
	if h.localPasswordHash == "" || h.ownerOpenID == "" {
		httperr.NotFound(c, "local_login_disabled", "Connexion locale désactivée.")
		return
	}

	var req LocalLoginRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.localPasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Mot de passe incorrect.")
		return
	}

	now := time.Now()
	method := "local"
	if err := h.users.UpsertByIdentityKey(c.Request.Context(), content.UserUpsert{
		OpenID:       h.ownerOpenID,
		LoginMethod:  &method,
		LastSignedIn: &now,
	}); err != nil {
		httperr.FromError(c, err)
		return
	}

	if !h.startSession(c, h.ownerOpenID, "") {
		return
	}
	httpresp.Success(c)
}

func (h *AuthHandler) startSession(c *gin.Context, openID, name string) bool {
	token, _, err := h.sessions.Issue(openID, name)
	if err != nil {
		logrus.WithError(err).Error("[auth] failed to sign session")
		httperr.Internal(c, "failed_to_create_session", "Impossible de créer la session.")
		return false
	}
	h.sessions.SetCookie(c, token)
	return true
}

// safeRedirect keeps only same-site absolute paths.
func safeRedirect(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.Contains(p, `\`) {
		return "/"
	}
	return p
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
