package request

import (
	"strings"

	"weekly-menu/internal/pkg/errs"
	"weekly-menu/internal/usecase/commands"

	"github.com/google/uuid"
)

var (
	ErrDishRefMissing   = errs.New("either dish_id or name must be provided")
	ErrDishRefAmbiguous = errs.New("dish_id and name are mutually exclusive")
)

type SubmitSuggestionRequest struct {
	DishID   *uuid.UUID `json:"dish_id,omitempty"`
	Name     *string    `json:"name,omitempty" binding:"omitempty,max=100"`
	Category string     `json:"category" binding:"required,oneof=regular meat rice sabzi"`
	Day      string     `json:"day" binding:"required,oneof=monday tuesday wednesday thursday friday"`
}

// Validate enforces the exactly-one-of constraint on the dish reference.
// It runs before any store access.
func (r SubmitSuggestionRequest) Validate() error {
	hasDishID := r.DishID != nil && *r.DishID != uuid.Nil
	hasName := r.Name != nil && strings.TrimSpace(*r.Name) != ""

	switch {
	case !hasDishID && !hasName:
		return ErrDishRefMissing
	case hasDishID && hasName:
		return ErrDishRefAmbiguous
	}
	return nil
}

func (r SubmitSuggestionRequest) ToCommand() commands.SubmitSuggestionRequest {
	return commands.SubmitSuggestionRequest{
		DishID:   r.DishID,
		Name:     r.Name,
		Category: r.Category,
		Day:      r.Day,
	}
}

type CastVoteRequest struct {
	SuggestionID uuid.UUID `json:"suggestion_id" binding:"required"`
}
