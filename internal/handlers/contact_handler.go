package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hopeactionjeunesse/hope-site/internal/audit"
	"github.com/hopeactionjeunesse/hope-site/internal/domain/content"
	"github.com/hopeactionjeunesse/hope-site/internal/httperr"
	"github.com/hopeactionjeunesse/hope-site/internal/httpresp"
	"github.com/hopeactionjeunesse/hope-site/internal/middleware"
	"github.com/hopeactionjeunesse/hope-site/internal/models"
	"github.com/hopeactionjeunesse/hope-site/internal/ratelimit"
	"github.com/hopeactionjeunesse/hope-site/internal/validators"
)

type ContactHandler struct {
	repo    content.ContactMessageRepository
	audit   *audit.Dispatcher
	limiter ratelimit.Limiter

	// checkEmailDomain enables a DNS lookup of the sender's domain.
	checkEmailDomain bool
}

func NewContactHandler(
	repo content.ContactMessageRepository,
	audit *audit.Dispatcher,
	limiter ratelimit.Limiter,
	checkEmailDomain bool,
) *ContactHandler {
	return &ContactHandler{repo: repo, audit: audit, limiter: limiter, checkEmailDomain: checkEmailDomain}
}

type SendContactRequest struct {
	Name    string  `json:"name" binding:"required,max=255"`
	Email   string  `json:"email" binding:"required,email,max=320"`
	Subject *string `json:"subject" binding:"omitempty,max=255"`
	Message string  `json:"message" binding:"required,max=10000"`
}

// Send stores a visitor's message. Anyone may call it; only valid submissions
// count against the per-IP limit.
func (h *ContactHandler) Send(c *gin.Context) {
	var req SendContactRequest
	if !bindJSON(c, &req) {
		return
	}

	email := strings.TrimSpace(req.Email)
	if h.checkEmailDomain && !validators.IsEmailDomainValid(c.Request.Context(), email) {
		httperr.BadRequest(c, "invalid_email_domain", "Le domaine de l'adresse e-mail ne semble pas valide.")
		return
	}

	if !middleware.Throttle(c, h.limiter, "contact") {
		return
	}

	msg := models.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.repo.Create(c.Request.Context(), &msg); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Success(c)
}

func (h *ContactHandler) ListAll(c *gin.Context) {
	messages, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, messages)
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.MarkRead(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	dispatch(c, h.audit, "contact_message_read", "contact_message", &id)
	httpresp.Success(c)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	dispatch(c, h.audit, "contact_message_deleted", "contact_message", &id)
	httpresp.Success(c)
}
