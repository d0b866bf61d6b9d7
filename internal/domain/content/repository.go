package content

import (
	"context"

	"github.com/hopeactionjeunesse/hope-site/internal/models"
)

// Read methods return an empty slice or nil record when the datastore is
// unavailable; write methods return ErrUnavailable. A missing id is never an
// error: GetByID returns nil and Update/Delete do nothing.

type ServiceRepository interface {
	ListAll(ctx context.Context) ([]models.Service, error)
	ListActive(ctx context.Context) ([]models.Service, error)
	GetByID(ctx context.Context, id uint) (*models.Service, error)
	Create(ctx context.Context, s *models.Service) error
	Update(ctx context.Context, id uint, patch ServicePatch) error
	Delete(ctx context.Context, id uint) error
}

type ProjectRepository interface {
	ListAll(ctx context.Context) ([]models.Project, error)
	ListActive(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id uint) (*models.Project, error)
	Create(ctx context.Context, p *models.Project) error
	Update(ctx context.Context, id uint, patch ProjectPatch) error
	Delete(ctx context.Context, id uint) error
}

type TeamMemberRepository interface {
	ListAll(ctx context.Context) ([]models.TeamMember, error)
	ListActive(ctx context.Context) ([]models.TeamMember, error)
	GetByID(ctx context.Context, id uint) (*models.TeamMember, error)
	Create(ctx context.Context, m *models.TeamMember) error
	Update(ctx context.Context, id uint, patch TeamMemberPatch) error
	Delete(ctx context.Context, id uint) error
}

type ContactMessageRepository interface {
	Create(ctx context.Context, m *models.ContactMessage) error
	ListAll(ctx context.Context) ([]models.ContactMessage, error)
	GetByID(ctx context.Context, id uint) (*models.ContactMessage, error)
	MarkRead(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

type UserRepository interface {
	UpsertByIdentityKey(ctx context.Context, u UserUpsert) error
	GetByIdentityKey(ctx context.Context, openID string) (*models.User, error)
}
