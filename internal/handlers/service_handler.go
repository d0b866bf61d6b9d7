package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hopeactionjeunesse/hope-site/internal/audit"
	"github.com/hopeactionjeunesse/hope-site/internal/domain/content"
	"github.com/hopeactionjeunesse/hope-site/internal/httperr"
	"github.com/hopeactionjeunesse/hope-site/internal/httpresp"
	"github.com/hopeactionjeunesse/hope-site/internal/models"
)

type ServiceHandler struct {
	repo  content.ServiceRepository
	audit *audit.Dispatcher
}

func NewServiceHandler(repo content.ServiceRepository, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{repo: repo, audit: audit}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Title          *string `json:"title" binding:"required"`
	Description    *string `json:"description" binding:"required"`
	Flower         *string `json:"flower" binding:"required"`
	FlowerMeaning  *string `json:"flowerMeaning" binding:"required"`
	TargetAudience *string `json:"targetAudience" binding:"required"`
	Duration       *string `json:"duration" binding:"required"`
	Price          *string `json:"price" binding:"required"`
	Details        *string `json:"details"`
	ImageURL       *string `json:"imageUrl"`
	DisplayOrder   *int    `json:"displayOrder"`
	IsActive       *bool   `json:"isActive"`
}

type UpdateServiceRequest struct {
	Title          *string `json:"title,omitempty"`
	Description    *string `json:"description,omitempty"`
	Flower         *string `json:"flower,omitempty"`
	FlowerMeaning  *string `json:"flowerMeaning,omitempty"`
	TargetAudience *string `json:"targetAudience,omitempty"`
	Duration       *string `json:"duration,omitempty"`
	Price          *string `json:"price,omitempty"`
	Details        *string `json:"details,omitempty"`
	ImageURL       *string `json:"imageUrl,omitempty"`
	DisplayOrder   *int    `json:"displayOrder,omitempty"`
	IsActive       *bool   `json:"isActive,omitempty"`
}

// --------- Public ---------

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.repo.ListActive(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	service, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, service)
}

// --------- Admin ---------

func (h *ServiceHandler) ListAll(c *gin.Context) {
	services, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	service := models.Service{
		Title:          deref(req.Title),
		Description:    deref(req.Description),
		Flower:         deref(req.Flower),
		FlowerMeaning:  deref(req.FlowerMeaning),
		TargetAudience: deref(req.TargetAudience),
		Duration:       deref(req.Duration),
		Price:          deref(req.Price),
		Details:        req.Details,
		ImageURL:       req.ImageURL,
		DisplayOrder:   intOr(req.DisplayOrder, 0),
		IsActive:       boolOr(req.IsActive, true),
	}

	if err := h.repo.Create(c.Request.Context(), &service); err != nil {
		httperr.FromError(c, err)
		return
	}

	dispatch(c, h.audit, "service_created", "service", &service.ID)
	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	patch := content.ServicePatch{
		Title:          req.Title,
		Description:    req.Description,
		Flower:         req.Flower,
		FlowerMeaning:  req.FlowerMeaning,
		TargetAudience: req.TargetAudience,
		Duration:       req.Duration,
		Price:          req.Price,
		Details:        req.Details,
		ImageURL:       req.ImageURL,
		DisplayOrder:   req.DisplayOrder,
		IsActive:       req.IsActive,
	}

	if err := h.repo.Update(c.Request.Context(), id, patch); err != nil {
		httperr.FromError(c, err)
		return
	}

	dispatch(c, h.audit, "service_updated", "service", &id)
	httpresp.Success(c)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	dispatch(c, h.audit, "service_deleted", "service", &id)
	httpresp.Success(c)
}

// deref reads a required create field. Binding guarantees it is present; it
// may still be empty.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
