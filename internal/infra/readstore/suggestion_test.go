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

var suggestionColumns = []string{"id", "dish_id", "dish_name", "category", "day", "suggested_by", "status", "vote_count", "created_at"}

func TestSuggestionReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	suggestionID := uuid.New()
	dishID := uuid.New()
	userID := uuid.New()

	t.Run("success: existing dish suggestion has nil status", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM meal_suggestions").
			WithArgs(suggestionID).
			WillReturnRows(pgxmock.NewRows(suggestionColumns).
				AddRow(suggestionID, dishID, "Kabuli Pulao", "rice", "monday", userID, (*string)(nil), int32(2), time.Now()))

		store := readstore.NewSuggestionReadStore(mock)
		view, err := store.FindByID(ctx, suggestionID)

		require.NoError(t, err)
		assert.Equal(t, suggestionID, view.ID)
		assert.Equal(t, "Kabuli Pulao", view.DishName)
		assert.Equal(t, "monday", view.Day)
		assert.Nil(t, view.Status)
		assert.Equal(t, int32(2), view.VoteCount)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: new dish suggestion carries pending status", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		pending := "pending"
		mock.ExpectQuery("SELECT .+ FROM meal_suggestions").
			WithArgs(suggestionID).
			WillReturnRows(pgxmock.NewRows(suggestionColumns).
				AddRow(suggestionID, dishID, "Shorba", "regular", "friday", userID, &pending, int32(0), time.Now()))

		store := readstore.NewSuggestionReadStore(mock)
		view, err := store.FindByID(ctx, suggestionID)

		require.NoError(t, err)
		require.NotNil(t, view.Status)
		assert.Equal(t, "pending", *view.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM meal_suggestions").
			WithArgs(suggestionID).
			WillReturnError(pgx.ErrNoRows)

		store := readstore.NewSuggestionReadStore(mock)
		view, err := store.FindByID(ctx, suggestionID)

		require.Error(t, err)
		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSuggestionReadStore_ListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success: returns suggestions in creation order", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		earlier := time.Now().Add(-time.Hour)
		later := time.Now()
		first := uuid.New()
		second := uuid.New()

		mock.ExpectQuery("SELECT .+ FROM meal_suggestions").
			WillReturnRows(pgxmock.NewRows(suggestionColumns).
				AddRow(first, uuid.New(), "Chalow", "rice", "monday", uuid.New(), (*string)(nil), int32(1), earlier).
				AddRow(second, uuid.New(), "Bolani", "regular", "tuesday", uuid.New(), (*string)(nil), int32(0), later))

		store := readstore.NewSuggestionReadStore(mock)
		views, err := store.ListAll(ctx)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, first, views[0].ID)
		assert.Equal(t, second, views[1].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
