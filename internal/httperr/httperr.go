package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hopeactionjeunesse/hope-site/internal/domain/content"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func TooManyRequests(c *gin.Context, code, message string) {
	Write(c, http.StatusTooManyRequests, code, message)
}

func PayloadTooLarge(c *gin.Context, code, message string) {
	Write(c, http.StatusRequestEntityTooLarge, code, message)
}

func Unavailable(c *gin.Context, code, message string) {
	Write(c, http.StatusServiceUnavailable, code, message)
}

// FromError maps domain and business errors to a response. Unknown errors are
// logged and reported as 500.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	switch {
	case errors.As(err, &be):
		msg := be.Message
		if msg == "" {
			msg = "Requête invalide."
		}
		BadRequest(c, be.Code, msg)
	case errors.Is(err, content.ErrUnavailable):
		Unavailable(c, "datastore_unavailable", "Service temporairement indisponible, réessayez plus tard.")
	case errors.Is(err, content.ErrInvalidFolder):
		BadRequest(c, "invalid_folder", "Le dossier doit être services, projects ou team.")
	case errors.Is(err, content.ErrNotImage):
		BadRequest(c, "not_an_image", "Le fichier envoyé n'est pas une image valide.")
	case errors.Is(err, content.ErrEmptyPayload):
		BadRequest(c, "empty_file", "Le fichier envoyé est vide.")
	default:
		logrus.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		Internal(c, "internal_error", "Une erreur interne est survenue.")
	}
}
