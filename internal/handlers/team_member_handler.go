package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hopeactionjeunesse/hope-site/internal/audit"
	"github.com/hopeactionjeunesse/hope-site/internal/domain/content"
	"github.com/hopeactionjeunesse/hope-site/internal/httperr"
	"github.com/hopeactionjeunesse/hope-site/internal/httpresp"
	"github.com/hopeactionjeunesse/hope-site/internal/models"
)

type TeamMemberHandler struct {
	repo  content.TeamMemberRepository
	audit *audit.Dispatcher
}

func NewTeamMemberHandler(repo content.TeamMemberRepository, audit *audit.Dispatcher) *TeamMemberHandler {
	return &TeamMemberHandler{repo: repo, audit: audit}
}

type CreateTeamMemberRequest struct {
	Name         *string `json:"name" binding:"required"`
	Role         *string `json:"role" binding:"required"`
	Bio          *string `json:"bio"`
	ImageURL     *string `json:"imageUrl"`
	DisplayOrder *int    `json:"displayOrder"`
	IsActive     *bool   `json:"isActive"`
}

type UpdateTeamMemberRequest struct {
	Name         *string `json:"name,omitempty"`
	Role         *string `json:"role,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	ImageURL     *string `json:"imageUrl,omitempty"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
	IsActive     *bool   `json:"isActive,omitempty"`
}

func (h *TeamMemberHandler) List(c *gin.Context) {
	members, err := h.repo.ListActive(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, members)
}

func (h *TeamMemberHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	member, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, member)
}

func (h *TeamMemberHandler) ListAll(c *gin.Context) {
	members, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, members)
}

func (h *TeamMemberHandler) Create(c *gin.Context) {
	var req CreateTeamMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member := models.TeamMember{
		Name:         deref(req.Name),
		Role:         deref(req.Role),
		Bio:          req.Bio,
		ImageURL:     req.ImageURL,
		DisplayOrder: intOr(req.DisplayOrder, 0),
		IsActive:     boolOr(req.IsActive, true),
	}

	if err := h.repo.Create(c.Request.Context(), &member); err != nil {
		httperr.FromError(c, err)
		return
	}

	dispatch(c, h.audit, "team_member_created", "team_member", &member.ID)
	httpresp.Created(c, member)
}

func (h *TeamMemberHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateTeamMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	patch := content.TeamMemberPatch{
		Name:         req.Name,
		Role:         req.Role,
		Bio:          req.Bio,
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	}

	if err := h.repo.Update(c.Request.Context(), id, patch); err != nil {
		httperr.FromError(c, err)
		return
	}

	dispatch(c, h.audit, "team_member_updated", "team_member", &id)
	httpresp.Success(c)
}

func (h *TeamMemberHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	dispatch(c, h.audit, "team_member_deleted", "team_member", &id)
	httpresp.Success(c)
}
