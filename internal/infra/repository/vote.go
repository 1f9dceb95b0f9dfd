package repository

import (
	"context"
	"time"

	"weekly-menu/internal/infra"
	"weekly-menu/internal/infra/db"

	"github.com/google/uuid"
)

// The composite primary key (suggestion_id, voter_id) enforces the
// at-most-one-vote invariant; a duplicate surfaces as a unique violation
// here, not as a pre-read check.
const insertVoteSQL = `
INSERT INTO votes (suggestion_id, voter_id, created_at)
VALUES ($1, $2, $3)`

type VoteRepository struct{}

func NewVoteRepository() *VoteRepository {
	return &VoteRepository{}
}

func (r *VoteRepository) Record(ctx context.Context, q db.Querier, suggestionID, voterID uuid.UUID, at time.Time) error {
	if _, err := q.Exec(ctx, insertVoteSQL, suggestionID, voterID, at); err != nil {
		return infra.WrapRepoErr("failed to record vote", err)
	}
	return nil
}
