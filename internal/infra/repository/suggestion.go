package repository

import (
	"context"

	domsuggestion "weekly-menu/internal/domain/suggestion"
	"weekly-menu/internal/infra"
	"weekly-menu/internal/infra/db"

	"github.com/google/uuid"
)

const insertSuggestionSQL = `
INSERT INTO meal_suggestions (id, dish_id, dish_name, category, day, suggested_by, status, vote_count, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

// Single atomic statement: the tally is never read before writing, so
// concurrent voters cannot under-count.
const incrementVoteCountSQL = `
UPDATE meal_suggestions
SET vote_count = vote_count + 1
WHERE id = $1
RETURNING vote_count`

type SuggestionRepository struct{}

func NewSuggestionRepository() *SuggestionRepository {
	return &SuggestionRepository{}
}

func (r *SuggestionRepository) Create(ctx context.Context, q db.Querier, s *domsuggestion.Suggestion) (uuid.UUID, error) {
	var status *string
	if s.Status() != nil {
		v := s.Status().String()
		status = &v
	}

	var id uuid.UUID
	err := q.QueryRow(ctx, insertSuggestionSQL,
		s.ID(), s.DishID(), s.DishName(), s.Category().String(), s.Day().String(),
		s.SuggestedBy(), status, s.VoteCount(), s.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create suggestion", err)
	}
	return id, nil
}

func (r *SuggestionRepository) IncrementVoteCount(ctx context.Context, q db.Querier, id uuid.UUID) (int32, error) {
	var count int32
	err := q.QueryRow(ctx, incrementVoteCountSQL, id).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to increment vote count", err)
	}
	return count, nil
}
