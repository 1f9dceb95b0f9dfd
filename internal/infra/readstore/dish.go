package readstore

import (
	"context"
	"time"

	"weekly-menu/internal/infra"
	"weekly-menu/internal/infra/db"
	"weekly-menu/internal/usecase/queries"
	"weekly-menu/internal/usecase/shared"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

type DishReadStore struct {
	q db.Querier
}

func NewDishReadStore(q db.Querier) *DishReadStore {
	return &DishReadStore{q: q}
}

type dishRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Category  string    `db:"category"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *DishReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.DishSnapshot, error) {
	sql, args, err := psql.
		Select("id", "name", "category", "is_active", "created_at").
		From("dishes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build dish query", err)
	}

	var row dishRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		return nil, infra.WrapRepoErr("failed to get dish by id", err)
	}
	return &shared.DishSnapshot{
		ID:       row.ID,
		Name:     row.Name,
		Category: row.Category,
		Active:   row.IsActive,
	}, nil
}

func (r *DishReadStore) ListActive(ctx context.Context) ([]*queries.DishView, error) {
	sql, args, err := psql.
		Select("id", "name", "category", "is_active", "created_at").
		From("dishes").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build dish list query", err)
	}

	var rows []dishRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, infra.WrapRepoErr("failed to list active dishes", err)
	}

	result := make([]*queries.DishView, len(rows))
	for i, row := range rows {
		result[i] = &queries.DishView{
			ID:        row.ID,
			Name:      row.Name,
			Category:  row.Category,
			IsActive:  row.IsActive,
			CreatedAt: row.CreatedAt,
		}
	}
	return result, nil
}
