package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hopeactionjeunesse/hope-site/internal/httperr"
)

// BodyLimit caps the request body at max bytes. Reads past the cap fail with
// *http.MaxBytesError.
func BodyLimit(max int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > max {
			httperr.PayloadTooLarge(c, "payload_too_large", "La requête est trop volumineuse.")
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, max)
		}
		c.Next()
	}
}
