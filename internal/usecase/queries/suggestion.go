package queries

import (
	"context"
	"time"

	"weekly-menu/internal/infra"
	"weekly-menu/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSuggestionNotFound = errs.New("suggestion not found")

type SuggestionView struct {
	ID          uuid.UUID `json:"id"`
	DishID      uuid.UUID `json:"dish_id"`
	DishName    string    `json:"dish_name"`
	Category    string    `json:"category"`
	Day         string    `json:"day"`
	SuggestedBy uuid.UUID `json:"suggested_by"`
	Status      *string   `json:"status"`
	VoteCount   int32     `json:"vote_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type SuggestionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SuggestionView, error)
	ListAll(ctx context.Context) ([]*SuggestionView, error)
}

// SuggestionQueries serves the read-only suggestion collaborator:
// suggestions ordered by creation time. Day/category filtering is the
// caller's concern.
type SuggestionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SuggestionView, error)
	List(ctx context.Context) ([]*SuggestionView, error)
}

type suggestionQueriesImpl struct {
	repo SuggestionReadStore
}

func NewSuggestionQueries(repo SuggestionReadStore) SuggestionQueries {
	return &suggestionQueriesImpl{repo: repo}
}

func (q *suggestionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SuggestionView, error) {
	sv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSuggestionNotFound
		}
		return nil, err
	}
	return sv, nil
}

func (q *suggestionQueriesImpl) List(ctx context.Context) ([]*SuggestionView, error) {
	return q.repo.ListAll(ctx)
}
