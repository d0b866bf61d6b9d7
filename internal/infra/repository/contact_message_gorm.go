package repository

import (
	"context"

	"github.com/hopeactionjeunesse/hope-site/internal/db"
	"github.com/hopeactionjeunesse/hope-site/internal/domain/content"
	"github.com/hopeactionjeunesse/hope-site/internal/models"
)

type ContactMessageGormRepository struct {
	rows listing[models.ContactMessage]
}

func NewContactMessageGormRepository(h *db.Handle) *ContactMessageGormRepository {
	return &ContactMessageGormRepository{rows: listing[models.ContactMessage]{base: base{handle: h}, entity: "contact_messages"}}
}

var _ content.ContactMessageRepository = (*ContactMessageGormRepository)(nil)

func (r *ContactMessageGormRepository) Create(ctx context.Context, m *models.ContactMessage) error {
	return r.rows.create(ctx, m)
}

// ListAll returns every message, oldest first.
func (r *ContactMessageGormRepository) ListAll(ctx context.Context) ([]models.ContactMessage, error) {
	q := r.rows.reader(ctx, "contact_messages.list_all")
	if q == nil {
		return []models.ContactMessage{}, nil
	}

	messages := []models.ContactMessage{}
	if err := q.
		Order("created_at ASC").
		Order("id ASC").
		Find(&messages).Error; err != nil {
		if db.IsUnavailable(err) {
			degraded("contact_messages.list_all", err)
			return []models.ContactMessage{}, nil
		}
		return nil, err
	}
	return messages, nil
}

func (r *ContactMessageGormRepository) GetByID(ctx context.Context, id uint) (*models.ContactMessage, error) {
	return r.rows.getByID(ctx, id)
}

func (r *ContactMessageGormRepository) MarkRead(ctx context.Context, id uint) error {
	q, err := r.rows.writer(ctx)
	if err != nil {
		return err
	}
	return writeErr(q.Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Update("is_read", true).Error)
}

func (r *ContactMessageGormRepository) Delete(ctx context.Context, id uint) error {
	return r.rows.delete(ctx, id)
}
