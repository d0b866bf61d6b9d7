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

func TestProjectLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectGormRepository(testutil.NewHandle(t))

	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	p := &models.Project{
		Title:       "Distribution alimentaire",
		Location:    "Bruxelles",
		Description: "Collecte et distribution",
		Date:        &date,
		IsActive:    true,
	}
	require.NoError(t, repo.Create(ctx, p))
	require.NotZero(t, p.ID)

	require.NoError(t, repo.Update(ctx, p.ID, content.ProjectPatch{
		Location:     testutil.Ptr("Liège"),
		DisplayOrder: testutil.Ptr(4),
	}))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Liège", got.Location)
	assert.Equal(t, 4, got.DisplayOrder)
	assert.Equal(t, "Distribution alimentaire", got.Title)
	require.NotNil(t, got.Date)
	assert.True(t, date.Equal(*got.Date))

	require.NoError(t, repo.Delete(ctx, p.ID))
	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestProjectUnavailableDatastore(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectGormRepository(testutil.UnavailableHandle())

	list, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	err = repo.Create(ctx, &models.Project{Title: "x", Location: "y", Description: "z"})
	assert.ErrorIs(t, err, content.ErrUnavailable)
}

func TestProjectUpdateRefreshesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectGormRepository(testutil.NewHandle(t))

	p := &models.Project{Title: "Maraude", Location: "Mons", Description: "Soutien", IsActive: true}
	require.NoError(t, repo.Create(ctx, p))
	before, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, before)

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, repo.Update(ctx, p.ID, content.ProjectPatch{Location: testutil.Ptr("Charleroi")}))

	after, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt), "updated_at %v not after %v", after.UpdatedAt, before.UpdatedAt)
}
