package commands

import (
	"context"

	"weekly-menu/internal/domain/dish"
	domsuggestion "weekly-menu/internal/domain/suggestion"
	"weekly-menu/internal/infra"
	"weekly-menu/internal/pkg/clock"
	"weekly-menu/internal/pkg/errs"
	"weekly-menu/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDishNotFound         = errs.New("dish not found")
	ErrSuggestionNotFound   = errs.New("suggestion not found")
	ErrAlreadyVoted         = errs.New("already voted for this suggestion")
	ErrSuggestionProcessing = errs.New("failed to process suggestion")
)

type SubmitSuggestionRequest struct {
	DishID   *uuid.UUID
	Name     *string
	Category string
	Day      string
}

type SubmitSuggestionResult struct {
	SuggestionID uuid.UUID
}

type CastVoteResult struct {
	SuggestionID uuid.UUID
	VoteCount    int32
}

type SuggestionCommands interface {
	Submit(ctx context.Context, req SubmitSuggestionRequest, actorID uuid.UUID) (*SubmitSuggestionResult, error)
	CastVote(ctx context.Context, suggestionID, voterID uuid.UUID) (*CastVoteResult, error)
}

type suggestionUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSuggestionCommands(uow shared.UnitOfWork, clk clock.Clock) SuggestionCommands {
	return &suggestionUseCaseImpl{uow: uow, clock: clk}
}

// Submit resolves the request to a catalog dish (creating an inactive one
// for a brand-new name) and persists the suggestion in the same
// transaction. If the transaction fails after a dish was minted, the dish
// insert rolls back with it; a dish only ever outlives a failed
// suggestion when the caller abandons the request between transactions,
// which is accepted.
func (uc *suggestionUseCaseImpl) Submit(ctx context.Context, req SubmitSuggestionRequest, actorID uuid.UUID) (*SubmitSuggestionResult, error) {
	category, err := dish.NewCategory(req.Category)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	day, err := domsuggestion.NewDay(req.Day)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ref, derr := uc.resolveDish(ctx, tx, req, category, actorID)
		if derr != nil {
			return derr
		}

		sug, derr := domsuggestion.New(ref, category, day, actorID, uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}

		id, derr := tx.Suggestions().Create(ctx, tx.DB(), sug)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &SubmitSuggestionResult{SuggestionID: createdID}, nil
}

// resolveDish produces the canonical dish reference: an existing catalog
// entry looked up by id (name snapshotted as of now), or a freshly minted
// inactive entry for a new name. New names are not deduplicated against
// the catalog; two users proposing the same name get distinct rows.
func (uc *suggestionUseCaseImpl) resolveDish(ctx context.Context, tx shared.Tx, req SubmitSuggestionRequest, category dish.Category, actorID uuid.UUID) (domsuggestion.DishRef, error) {
	if req.DishID != nil {
		snap, err := tx.Reads().DishByID(ctx, *req.DishID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return domsuggestion.DishRef{}, ErrDishNotFound
			}
			return domsuggestion.DishRef{}, err
		}
		return domsuggestion.DishRef{ID: snap.ID, Name: snap.Name}, nil
	}

	var name string
	if req.Name != nil {
		name = *req.Name
	}
	d, err := dish.NewSuggested(name, category, actorID, uc.clock.Now())
	if err != nil {
		return domsuggestion.DishRef{}, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := tx.Dishes().Create(ctx, tx.DB(), d)
	if err != nil {
		return domsuggestion.DishRef{}, err
	}
	return domsuggestion.DishRef{ID: id, Name: d.Name().String(), IsNew: true}, nil
}

// CastVote records a ledger entry for the (suggestion, voter) pair and
// bumps the denormalized tally inside one transaction. The ledger's
// primary key is the sole serialization point: a concurrent duplicate
// surfaces as a unique violation and the tally is never touched.
func (uc *suggestionUseCaseImpl) CastVote(ctx context.Context, suggestionID, voterID uuid.UUID) (*CastVoteResult, error) {
	var voteCount int32
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Votes().Record(ctx, tx.DB(), suggestionID, voterID, uc.clock.Now()); derr != nil {
			switch {
			case infra.IsKind(derr, infra.KindDuplicateKey):
				return ErrAlreadyVoted
			case infra.IsKind(derr, infra.KindForeignKeyViolated):
				return ErrSuggestionNotFound
			}
			return derr
		}

		count, derr := tx.Suggestions().IncrementVoteCount(ctx, tx.DB(), suggestionID)
		if derr != nil {
			return derr
		}
		voteCount = count
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CastVoteResult{SuggestionID: suggestionID, VoteCount: voteCount}, nil
}
