package repository

import (
	"context"

	"github.com/hopeactionjeunesse/hope-site/internal/db"
	"github.com/hopeactionjeunesse/hope-site/internal/domain/content"
	"github.com/hopeactionjeunesse/hope-site/internal/models"
)

type ProjectGormRepository struct {
	rows listing[models.Project]
}

func NewProjectGormRepository(h *db.Handle) *ProjectGormRepository {
	return &ProjectGormRepository{rows: listing[models.Project]{base: base{handle: h}, entity: "projects"}}
}

var _ content.ProjectRepository = (*ProjectGormRepository)(nil)

func (r *ProjectGormRepository) ListAll(ctx context.Context) ([]models.Project, error) {
	return r.rows.listAll(ctx)
}

func (r *ProjectGormRepository) ListActive(ctx context.Context) ([]models.Project, error) {
	return r.rows.listActive(ctx)
}

func (r *ProjectGormRepository) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	return r.rows.getByID(ctx, id)
}

func (r *ProjectGormRepository) Create(ctx context.Context, p *models.Project) error {
	return r.rows.create(ctx, p)
}

func (r *ProjectGormRepository) Update(ctx context.Context, id uint, patch content.ProjectPatch) error {
	return r.rows.update(ctx, id, patch.ToMap())
}

func (r *ProjectGormRepository) Delete(ctx context.Context, id uint) error {
	return r.rows.delete(ctx, id)
}
