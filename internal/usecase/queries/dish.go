package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type DishView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type DishReadStore interface {
	ListActive(ctx context.Context) ([]*DishView, error)
}

// DishQueries serves the read-only catalog collaborator: active dishes
// ordered by name. Category filtering is left to the caller.
type DishQueries interface {
	ListActive(ctx context.Context) ([]*DishView, error)
}

type dishQueriesImpl struct {
	repo DishReadStore
}

func NewDishQueries(repo DishReadStore) DishQueries {
	return &dishQueriesImpl{repo: repo}
}

func (q *dishQueriesImpl) ListActive(ctx context.Context) ([]*DishView, error) {
	return q.repo.ListActive(ctx)
}
