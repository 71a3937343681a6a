package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-dev/venue-reserve/internal/model"
)

func TestStore_ReadMissingKey(t *testing.T) {
	store := NewMemStore()
	_, err := store.Read(context.Background(), KeyConfig)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConfigRepo_DefaultAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewConfigRepo(NewMemStore())

	// Unset storage yields the built-in default, and reading twice
	// without a save returns equal values.
	first, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSiteConfig(), first)

	second, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Save then read returns exactly what was saved.
	custom := model.SiteConfig{
		Name:           "Trattoria Nove",
		Description:    "Family-run kitchen.",
		WelcomeMessage: "Reserve your table.",
		PrimaryColor:   "emerald",
		ContactPhone:   "+1 (555) 111-2222",
		Address:        "9 Harbor Road",
	}
	require.NoError(t, repo.Save(ctx, custom))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, custom, got)
}

func TestReservationRepo_PrependNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewReservationRepo(NewMemStore())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	first := model.Reservation{ID: "a", Name: "John", Phone: "555", Date: "2025-01-01", Time: "19:00", Guests: 4, Status: model.ReservationPending, CreatedAt: 1}
	second := model.Reservation{ID: "b", Name: "Mary", Phone: "556", Date: "2025-01-02", Time: "20:00", Guests: 2, Status: model.ReservationPending, CreatedAt: 2}

	require.NoError(t, repo.Prepend(ctx, first))
	require.NoError(t, repo.Prepend(ctx, second))

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID, "newest entry must be at the head")
	assert.Equal(t, "a", list[1].ID)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestStatsRepo_IncrementMonotonic(t *testing.T) {
	ctx := context.Background()
	repo := NewStatsRepo(NewMemStore())

	stats, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Visitors)

	const n = 5
	for i := 1; i <= n; i++ {
		total, err := repo.IncrementVisitors(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(i), total)
	}

	stats, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(n), stats.Visitors)
}

func TestAuthRepo_ExistsAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewAuthRepo(NewMemStore())

	exists, err := repo.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	creds := model.AdminCredentials{Username: "admin", PasswordHash: "$2a$10$fake"}
	require.NoError(t, repo.Put(ctx, creds))

	exists, err = repo.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, creds, got)
}
