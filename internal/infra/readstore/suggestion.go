package readstore

import (
	"context"
	"time"

	"weekly-menu/internal/infra"
	"weekly-menu/internal/infra/db"
	"weekly-menu/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

type SuggestionReadStore struct {
	q db.Querier
}

func NewSuggestionReadStore(q db.Querier) *SuggestionReadStore {
	return &SuggestionReadStore{q: q}
}

type suggestionRow struct {
	ID          uuid.UUID `db:"id"`
	DishID      uuid.UUID `db:"dish_id"`
	DishName    string    `db:"dish_name"`
	Category    string    `db:"category"`
	Day         string    `db:"day"`
	SuggestedBy uuid.UUID `db:"suggested_by"`
	Status      *string   `db:"status"`
	VoteCount   int32     `db:"vote_count"`
	CreatedAt   time.Time `db:"created_at"`
}

func suggestionColumns() []string {
	return []string{"id", "dish_id", "dish_name", "category", "day", "suggested_by", "status", "vote_count", "created_at"}
}

func (r *SuggestionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SuggestionView, error) {
	sql, args, err := psql.
		Select(suggestionColumns()...).
		From("meal_suggestions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build suggestion query", err)
	}

	var row suggestionRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		return nil, infra.WrapRepoErr("failed to get suggestion by id", err)
	}
	return mapSuggestionRow(row), nil
}

// created_at is the sole ordering key for suggestion listings.
func (r *SuggestionReadStore) ListAll(ctx context.Context) ([]*queries.SuggestionView, error) {
	sql, args, err := psql.
		Select(suggestionColumns()...).
		From("meal_suggestions").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build suggestion list query", err)
	}

	var rows []suggestionRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, infra.WrapRepoErr("failed to list suggestions", err)
	}

	result := make([]*queries.SuggestionView, len(rows))
	for i, row := range rows {
		result[i] = mapSuggestionRow(row)
	}
	return result, nil
}

func mapSuggestionRow(row suggestionRow) *queries.SuggestionView {
	return &queries.SuggestionView{
		ID:          row.ID,
		DishID:      row.DishID,
		DishName:    row.DishName,
		Category:    row.Category,
		Day:         row.Day,
		SuggestedBy: row.SuggestedBy,
		Status:      row.Status,
		VoteCount:   row.VoteCount,
		CreatedAt:   row.CreatedAt,
	}
}
