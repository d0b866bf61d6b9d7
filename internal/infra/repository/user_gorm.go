package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hopeactionjeunesse/hope-site/internal/db"
	"github.com/hopeactionjeunesse/hope-site/internal/domain/content"
	"github.com/hopeactionjeunesse/hope-site/internal/models"
)

var ErrMissingIdentityKey = errors.New("openId is required")

type UserGormRepository struct {
	base
	ownerOpenID string
}

// NewUserGormRepository returns a user repository. Logins for ownerOpenID
// that carry no explicit role are stored as admin.
func NewUserGormRepository(h *db.Handle, ownerOpenID string) *UserGormRepository {
	return &UserGormRepository{base: base{handle: h}, ownerOpenID: ownerOpenID}
}

var _ content.UserRepository = (*UserGormRepository)(nil)

// UpsertByIdentityKey inserts the user or updates only the supplied fields.
// With nothing to update, last_signed_in is refreshed.
func (r *UserGormRepository) UpsertByIdentityKey(ctx context.Context, u content.UserUpsert) error {
	if u.OpenID == "" {
		return ErrMissingIdentityKey
	}

	q, err := r.writer(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	row := models.User{
		OpenID:       u.OpenID,
		Name:         u.Name,
		Email:        u.Email,
		LoginMethod:  u.LoginMethod,
		Role:         models.RoleUser,
		LastSignedIn: now,
	}

	updates := make(map[string]any)
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.Email != nil {
		updates["email"] = *u.Email
	}
	if u.LoginMethod != nil {
		updates["login_method"] = *u.LoginMethod
	}
	if u.LastSignedIn != nil {
		row.LastSignedIn = *u.LastSignedIn
		updates["last_signed_in"] = *u.LastSignedIn
	}

	switch {
	case u.Role != nil:
		row.Role = *u.Role
		updates["role"] = *u.Role
	case r.ownerOpenID != "" && u.OpenID == r.ownerOpenID:
		row.Role = models.RoleAdmin
		updates["role"] = models.RoleAdmin
	}

	if len(updates) == 0 {
		updates["last_signed_in"] = now
	}
	updates["updated_at"] = now

	return writeErr(q.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "open_id"}},
		DoUpdates: clause.Assignments(updates),
	}).Create(&row).Error)
}

func (r *UserGormRepository) GetByIdentityKey(ctx context.Context, openID string) (*models.User, error) {
	q := r.reader(ctx, "users.get_by_identity_key")
	if q == nil {
		return nil, nil
	}

	var user models.User
	if err := q.Where("open_id = ?", openID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if db.IsUnavailable(err) {
			degraded("users.get_by_identity_key", err)
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
