//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"weekly-menu/internal/infra"
	"weekly-menu/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteRepository_Record(t *testing.T) {
	ctx := context.Background()
	suggestionID := uuid.New()
	voterID := uuid.New()
	now := time.Now()

	testCases := []struct {
		name       string
		setupMock  func(mock pgxmock.PgxPoolIface)
		expectErr  bool
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: vote recorded",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO votes").
					WithArgs(suggestionID, voterID, now).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "error: duplicate vote surfaces unique violation",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.ExpectExec("INSERT INTO votes").
					WithArgs(suggestionID, voterID, now).
					WillReturnError(dup)
			},
			expectErr:  true,
			expectKind: infra.KindDuplicateKey,
		},
		{
			name: "error: unknown suggestion surfaces FK violation",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				fk := &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"}
				mock.ExpectExec("INSERT INTO votes").
					WithArgs(suggestionID, voterID, now).
					WillReturnError(fk)
			},
			expectErr:  true,
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name: "error: database failure",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("INSERT INTO votes").
					WithArgs(suggestionID, voterID, now).
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

			tc.setupMock(mock)

			repo := repository.NewVoteRepository()
			err = repo.Record(ctx, mock, suggestionID, voterID, now)

			if tc.expectErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
