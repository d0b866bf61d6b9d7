package repository

import (
	"context"

	"github.com/hopeactionjeunesse/hope-site/internal/db"
	"github.com/hopeactionjeunesse/hope-site/internal/domain/content"
	"github.com/hopeactionjeunesse/hope-site/internal/models"
)

type ServiceGormRepository struct {
	rows listing[models.Service]
}

func NewServiceGormRepository(h *db.Handle) *ServiceGormRepository {
	return &ServiceGormRepository{rows: listing[models.Service]{base: base{handle: h}, entity: "services"}}
}

var _ content.ServiceRepository = (*ServiceGormRepository)(nil)

func (r *ServiceGormRepository) ListAll(ctx context.Context) ([]models.Service, error) {
	return r.rows.listAll(ctx)
}

func (r *ServiceGormRepository) ListActive(ctx context.Context) ([]models.Service, error) {
	return r.rows.listActive(ctx)
}

func (r *ServiceGormRepository) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	return r.rows.getByID(ctx, id)
}

func (r *ServiceGormRepository) Create(ctx context.Context, s *models.Service) error {
	return r.rows.create(ctx, s)
}

func (r *ServiceGormRepository) Update(ctx context.Context, id uint, patch content.ServicePatch) error {
	return r.rows.update(ctx, id, patch.ToMap())
}

func (r *ServiceGormRepository) Delete(ctx context.Context, id uint) error {
	return r.rows.delete(ctx, id)
}
