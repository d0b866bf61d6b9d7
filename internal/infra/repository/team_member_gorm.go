package repository

import (
	"context"

	"github.com/hopeactionjeunesse/hope-site/internal/db"
	"github.com/hopeactionjeunesse/hope-site/internal/domain/content"
	"github.com/hopeactionjeunesse/hope-site/internal/models"
)

type TeamMemberGormRepository struct {
	rows listing[models.TeamMember]
}

func NewTeamMemberGormRepository(h *db.Handle) *TeamMemberGormRepository {
	return &TeamMemberGormRepository{rows: listing[models.TeamMember]{base: base{handle: h}, entity: "team_members"}}
}

var _ content.TeamMemberRepository = (*TeamMemberGormRepository)(nil)

func (r *TeamMemberGormRepository) ListAll(ctx context.Context) ([]models.TeamMember, error) {
	return r.rows.listAll(ctx)
}

func (r *TeamMemberGormRepository) ListActive(ctx context.Context) ([]models.TeamMember, error) {
	return r.rows.listActive(ctx)
}

func (r *TeamMemberGormRepository) GetByID(ctx context.Context, id uint) (*models.TeamMember, error) {
	return r.rows.getByID(ctx, id)
}

func (r *TeamMemberGormRepository) Create(ctx context.Context, m *models.TeamMember) error {
	return r.rows.create(ctx, m)
}

func (r *TeamMemberGormRepository) Update(ctx context.Context, id uint, patch content.TeamMemberPatch) error {
	return r.rows.update(ctx, id, patch.ToMap())
}

func (r *TeamMemberGormRepository) Delete(ctx context.Context, id uint) error {
	return r.rows.delete(ctx, id)
}
