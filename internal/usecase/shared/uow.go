package shared

import (
	"context"
	"time"

	"weekly-menu/internal/domain/dish"
	"weekly-menu/internal/domain/suggestion"
	"weekly-menu/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, q db.Querier) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Dishes() DishRepository
	Suggestions() SuggestionRepository
	Votes() VoteRepository
	Reads() CommandReads
	DB() db.Querier
}

type CommandReads interface {
	DishByID(ctx context.Context, id uuid.UUID) (*DishSnapshot, error)
}

// Minimal snapshot for command read operations
type DishSnapshot struct {
	ID       uuid.UUID
	Name     string
	Category string
	Active   bool
}

type DishRepository interface {
	Create(ctx context.Context, q db.Querier, d *dish.Dish) (uuid.UUID, error)
}

type SuggestionRepository interface {
	Create(ctx context.Context, q db.Querier, s *suggestion.Suggestion) (uuid.UUID, error)
	// IncrementVoteCount applies the tally bump as a single atomic UPDATE
	// and returns the post-increment value.
	IncrementVoteCount(ctx context.Context, q db.Querier, id uuid.UUID) (int32, error)
}

type VoteRepository interface {
	Record(ctx context.Context, q db.Querier, suggestionID, voterID uuid.UUID, at time.Time) error
}
