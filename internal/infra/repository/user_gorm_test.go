package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopeactionjeunesse/hope-site/internal/domain/content"
	"github.com/hopeactionjeunesse/hope-site/internal/models"
	"github.com/hopeactionjeunesse/hope-site/internal/testutil"
)

func TestUserUpsertInsertsThenUpdates(t *testing.T) {
	ctx := context.Background()
	repo := NewUserGormRepository(testutil.NewHandle(t), "")

	require.NoError(t, repo.UpsertByIdentityKey(ctx, content.UserUpsert{
		OpenID: "u-1",
		Name:   testutil.Ptr("Alice"),
		Email:  testutil.Ptr("alice@example.org"),
	}))

	u, err := repo.GetByIdentityKey(ctx, "u-1")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, models.RoleUser, u.Role)
	require.NotNil(t, u.Name)
	assert.Equal(t, "Alice", *u.Name)

	require.NoError(t, repo.UpsertByIdentityKey(ctx, content.UserUpsert{
		OpenID: "u-1",
		Name:   testutil.Ptr("Alice B."),
	}))

	u, err = repo.GetByIdentityKey(ctx, "u-1")
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotNil(t, u.Name)
	assert.Equal(t, "Alice B.", *u.Name)
	require.NotNil(t, u.Email)
	assert.Equal(t, "alice@example.org", *u.Email)

	var count int64
	require.NoError(t, testutil.Gorm(t, repo.handle).Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserUpsertPromotesOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewUserGormRepository(testutil.NewHandle(t), "owner")

	require.NoError(t, repo.UpsertByIdentityKey(ctx, content.UserUpsert{OpenID: "owner"}))
	require.NoError(t, repo.UpsertByIdentityKey(ctx, content.UserUpsert{OpenID: "someone"}))

	owner, err := repo.GetByIdentityKey(ctx, "owner")
	require.NoError(t, err)
	assert.True(t, owner.IsAdmin())

	other, err := repo.GetByIdentityKey(ctx, "someone")
	require.NoError(t, err)
	assert.False(t, other.IsAdmin())
}

func TestUserUpsertExplicitRoleWins(t *testing.T) {
	ctx := context.Background()
	repo := NewUserGormRepository(testutil.NewHandle(t), "owner")

	require.NoError(t, repo.UpsertByIdentityKey(ctx, content.UserUpsert{
		OpenID: "owner",
		Role:   testutil.Ptr(models.RoleUser),
	}))

	owner, err := repo.GetByIdentityKey(ctx, "owner")
	require.NoError(t, err)
	require.NotNil(t, owner)
	assert.Equal(t, models.RoleUser, owner.Role)
}

func TestUserUpsertWithoutFieldsRefreshesLastSignedIn(t *testing.T) {
	ctx := context.Background()
	repo := NewUserGormRepository(testutil.NewHandle(t), "")

	earlier := time.Now().Add(-48 * time.Hour)
	require.NoError(t, repo.UpsertByIdentityKey(ctx, content.UserUpsert{
		OpenID:       "u-2",
		LastSignedIn: &earlier,
	}))
	require.NoError(t, repo.UpsertByIdentityKey(ctx, content.UserUpsert{OpenID: "u-2"}))

	u, err := repo.GetByIdentityKey(ctx, "u-2")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.True(t, u.LastSignedIn.After(earlier.Add(time.Hour)))
}

func TestUserUpsertRequiresIdentityKey(t *testing.T) {
	repo := NewUserGormRepository(testutil.NewHandle(t), "")
	err := repo.UpsertByIdentityKey(context.Background(), content.UserUpsert{})
	assert.ErrorIs(t, err, ErrMissingIdentityKey)
}

func TestUserUnavailableDatastore(t *testing.T) {
	ctx := context.Background()
	repo := NewUserGormRepository(testutil.UnavailableHandle(), "")

	u, err := repo.GetByIdentityKey(ctx, "u-1")
	require.NoError(t, err)
	assert.Nil(t, u)

	err = repo.UpsertByIdentityKey(ctx, content.UserUpsert{OpenID: "u-1"})
	assert.ErrorIs(t, err, content.ErrUnavailable)
}
