package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hopeactionjeunesse/hope-site/internal/audit"
	"github.com/hopeactionjeunesse/hope-site/internal/httperr"
	"github.com/hopeactionjeunesse/hope-site/internal/middleware"
)

// parseID reads a positive integer :id path parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.PayloadTooLarge(c, "payload_too_large", "La requête est trop volumineuse.")
			return false
		}
		httperr.BadRequest(c, "invalid_request", "Données invalides : "+err.Error())
		return false
	}
	return true
}

func actor(c *gin.Context) string {
	if u := middleware.CurrentUser(c); u != nil {
		return u.OpenID
	}
	return ""
}

func dispatch(c *gin.Context, d *audit.Dispatcher, action, entity string, id *uint) {
	d.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   action,
		Entity:   entity,
		EntityID: id,
	})
}
