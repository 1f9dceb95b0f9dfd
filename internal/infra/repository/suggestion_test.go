//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"weekly-menu/internal/infra"
	"weekly-menu/internal/infra/repository"
	"weekly-menu/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		isNew      bool
		setupMock  func(mock pgxmock.PgxPoolIface, id uuid.UUID)
		expectErr  bool
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: suggestion for existing dish",
			setupMock: func(mock pgxmock.PgxPoolIface, id uuid.UUID) {
				mock.ExpectQuery("INSERT INTO meal_suggestions").
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
			},
		},
		{
			name:  "success: suggestion for new dish carries pending status",
			isNew: true,
			setupMock: func(mock pgxmock.PgxPoolIface, id uuid.UUID) {
				mock.ExpectQuery("INSERT INTO meal_suggestions").
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
			},
		},
		{
			name: "error: database failure",
			setupMock: func(mock pgxmock.PgxPoolIface, _ uuid.UUID) {
				mock.ExpectQuery("INSERT INTO meal_suggestions").
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(errors.New("connection refused"))
			},
			expectErr:  true,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			sug, err := builder.NewSuggestionBuilder().
				With(func(b *builder.SuggestionBuilder) { b.IsNew = tc.isNew }).
				BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mock, sug.ID())

			repo := repository.NewSuggestionRepository()
			id, err := repo.Create(ctx, mock, sug)

			if tc.expectErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, sug.ID(), id)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSuggestionRepository_IncrementVoteCount(t *testing.T) {
	ctx := context.Background()
	suggestionID := uuid.New()

	testCases := []struct {
		name       string
		setupMock  func(mock pgxmock.PgxPoolIface)
		expectErr  bool
		expectKind infra.RepositoryErrorKind
		wantCount  int32
	}{
		{
			name: "success: returns post-increment tally",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("UPDATE meal_suggestions").
					WithArgs(suggestionID).
					WillReturnRows(pgxmock.NewRows([]string{"vote_count"}).AddRow(int32(3)))
			},
			wantCount: 3,
		},
		{
			name: "error: suggestion missing",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("UPDATE meal_suggestions").
					WithArgs(suggestionID).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr:  true,
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database failure",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("UPDATE meal_suggestions").
					WithArgs(suggestionID).
					WillReturnError(errors.New("connection reset"))
			},
			expectErr:  true,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tc.setupMock(mock)

			repo := repository.NewSuggestionRepository()
			count, err := repo.IncrementVoteCount(ctx, mock, suggestionID)

			if tc.expectErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantCount, count)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
