package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hopeactionjeunesse/hope-site/internal/db"
)

type HealthHandler struct {
	handle *db.Handle
}

func NewHealthHandler(handle *db.Handle) *HealthHandler {
	return &HealthHandler{handle: handle}
}

// Health answers 200 even when the datastore is down; public reads degrade
// to empty results in that case.
func (h *HealthHandler) Health(c *gin.Context) {
	database := "up"
	if _, err := h.handle.Get(c.Request.Context()); err != nil {
		database = "unavailable"
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": database})
}
