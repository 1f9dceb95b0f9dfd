//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"weekly-menu/internal/infra"
	"weekly-menu/internal/infra/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dishColumns = []string{"id", "name", "category", "is_active", "created_at"}

func TestDishReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	dishID := uuid.New()

	t.Run("success: returns snapshot", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, name, category, is_active, created_at FROM dishes").
			WithArgs(dishID).
			WillReturnRows(pgxmock.NewRows(dishColumns).
				AddRow(dishID, "Kabuli Pulao", "rice", true, time.Now()))

		store := readstore.NewDishReadStore(mock)
		snap, err := store.FindByID(ctx, dishID)

		require.NoError(t, err)
		assert.Equal(t, dishID, snap.ID)
		assert.Equal(t, "Kabuli Pulao", snap.Name)
		assert.Equal(t, "rice", snap.Category)
		assert.True(t, snap.Active)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, name, category, is_active, created_at FROM dishes").
			WithArgs(dishID).
			WillReturnError(pgx.ErrNoRows)

		store := readstore.NewDishReadStore(mock)
		snap, err := store.FindByID(ctx, dishID)

		require.Error(t, err)
		assert.Nil(t, snap)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDishReadStore_ListActive(t *testing.T) {
	ctx := context.Background()

	t.Run("success: returns dishes in name order", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		now := time.Now()
		mock.ExpectQuery("SELECT id, name, category, is_active, created_at FROM dishes").
			WithArgs(true).
			WillReturnRows(pgxmock.NewRows(dishColumns).
				AddRow(uuid.New(), "Ashak", "regular", true, now).
				AddRow(uuid.New(), "Kabuli Pulao", "rice", true, now))

		store := readstore.NewDishReadStore(mock)
		views, err := store.ListActive(ctx)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "Ashak", views[0].Name)
		assert.Equal(t, "Kabuli Pulao", views[1].Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: empty catalog yields empty slice", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, name, category, is_active, created_at FROM dishes").
			WithArgs(true).
			WillReturnRows(pgxmock.NewRows(dishColumns))

		store := readstore.NewDishReadStore(mock)
		views, err := store.ListActive(ctx)

		require.NoError(t, err)
		assert.Empty(t, views)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
