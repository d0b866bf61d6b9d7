package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hopeactionjeunesse/hope-site/internal/audit"
	"github.com/hopeactionjeunesse/hope-site/internal/domain/content"
	"github.com/hopeactionjeunesse/hope-site/internal/httperr"
	"github.com/hopeactionjeunesse/hope-site/internal/httpresp"
	"github.com/hopeactionjeunesse/hope-site/internal/models"
	"github.com/hopeactionjeunesse/hope-site/internal/timezone"
)

type ProjectHandler struct {
	repo     content.ProjectRepository
	audit    *audit.Dispatcher
	timezone string
}

func NewProjectHandler(repo content.ProjectRepository, audit *audit.Dispatcher, tz string) *ProjectHandler {
	return &ProjectHandler{repo: repo, audit: audit, timezone: tz}
}

// --------- Requests ---------

type CreateProjectRequest struct {
	Title        *string `json:"title" binding:"required"`
	Location     *string `json:"location" binding:"required"`
	Description  *string `json:"description" binding:"required"`
	ImageURL     *string `json:"imageUrl"`
	Date         *string `json:"date"` // YYYY-MM-DD or RFC 3339
	DisplayOrder *int    `json:"displayOrder"`
	IsActive     *bool   `json:"isActive"`
}

type UpdateProjectRequest struct {
	Title        *string `json:"title,omitempty"`
	Location     *string `json:"location,omitempty"`
	Description  *string `json:"description,omitempty"`
	ImageURL     *string `json:"imageUrl,omitempty"`
	Date         *string `json:"date,omitempty"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
	IsActive     *bool   `json:"isActive,omitempty"`
}

// --------- Public ---------

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.repo.ListActive(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, projects)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	project, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, project)
}

// --------- Admin ---------

func (h *ProjectHandler) ListAll(c *gin.Context) {
	projects, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, projects)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	date, ok := h.parseDate(c, req.Date)
	if !ok {
		return
	}

	project := models.Project{
		Title:        deref(req.Title),
		Location:     deref(req.Location),
		Description:  deref(req.Description),
		ImageURL:     req.ImageURL,
		Date:         date,
		DisplayOrder: intOr(req.DisplayOrder, 0),
		IsActive:     boolOr(req.IsActive, true),
	}

	if err := h.repo.Create(c.Request.Context(), &project); err != nil {
		httperr.FromError(c, err)
		return
	}

	dispatch(c, h.audit, "project_created", "project", &project.ID)
	httpresp.Created(c, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	date, ok := h.parseDate(c, req.Date)
	if !ok {
		return
	}

	patch := content.ProjectPatch{
		Title:        req.Title,
		Location:     req.Location,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Date:         date,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	}

	if err := h.repo.Update(c.Request.Context(), id, patch); err != nil {
		httperr.FromError(c, err)
		return
	}

	dispatch(c, h.audit, "project_updated", "project", &id)
	httpresp.Success(c)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	dispatch(c, h.audit, "project_deleted", "project", &id)
	httpresp.Success(c)
}

func (h *ProjectHandler) parseDate(c *gin.Context, raw *string) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	t, err := timezone.ParseDate(*raw, h.timezone)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date invalide, format attendu AAAA-MM-JJ.")
		return nil, false
	}
	return &t, true
}
