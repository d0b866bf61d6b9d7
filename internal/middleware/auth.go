package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hopeactionjeunesse/hope-site/internal/domain/content"
	"github.com/hopeactionjeunesse/hope-site/internal/httperr"
	"github.com/hopeactionjeunesse/hope-site/internal/models"
	"github.com/hopeactionjeunesse/hope-site/internal/session"
)

const ContextUser = "currentUser"

// SessionMiddleware resolves the session token to a user row. Requests with
// no token, an invalid token or an unknown user continue anonymously.
func SessionMiddleware(sessions *session.Manager, users content.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessions.TokenFrom(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := sessions.Parse(token)
		if err != nil {
			logrus.WithError(err).Debug("ignoring invalid session token")
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, err := users.GetByIdentityKey(ctx, claims.OpenID)
		if err != nil {
			logrus.WithError(err).WithField("open_id", claims.OpenID).Warn("failed to load session user")
		}
		if user != nil {
			c.Set(ContextUser, user)
		}

		c.Next()
	}
}

// RequireAdmin rejects anonymous requests with 401 and non-admin users with 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			httperr.Unauthorized(c, "unauthorized", "Veuillez vous connecter.")
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			httperr.Forbidden(c, "forbidden", "Accès réservé aux administrateurs.")
			c.Abort()
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextUser)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
