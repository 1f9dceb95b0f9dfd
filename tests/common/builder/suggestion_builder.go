//go:build unit || e2e

package builder

import (
	"time"

	domdish "weekly-menu/internal/domain/dish"
	domsuggestion "weekly-menu/internal/domain/suggestion"
	reqdto "weekly-menu/internal/handler/dto/request"
	"weekly-menu/internal/usecase/queries"

	"github.com/google/uuid"
)

type SuggestionBuilder struct {
	DishID      uuid.UUID
	DishName    string
	IsNew       bool
	Category    domdish.Category
	Day         domsuggestion.Day
	SuggestedBy uuid.UUID
	VoteCount   int32
	CreatedAt   time.Time
}

func NewSuggestionBuilder() *SuggestionBuilder {
	return &SuggestionBuilder{
		DishID:      uuid.New(),
		DishName:    "Kabuli Pulao",
		IsNew:       false,
		Category:    domdish.CategoryRice,
		Day:         domsuggestion.DayMonday,
		SuggestedBy: uuid.New(),
		VoteCount:   0,
		CreatedAt:   time.Now(),
	}
}

func (b *SuggestionBuilder) With(mutate func(*SuggestionBuilder)) *SuggestionBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *SuggestionBuilder) BuildDomain() (*domsuggestion.Suggestion, error) {
	ref := domsuggestion.DishRef{ID: b.DishID, Name: b.DishName, IsNew: b.IsNew}
	return domsuggestion.New(ref, b.Category, b.Day, b.SuggestedBy, b.CreatedAt)
}

func (b *SuggestionBuilder) BuildSubmitRequestDTO() reqdto.SubmitSuggestionRequest {
	dishID := b.DishID
	return reqdto.SubmitSuggestionRequest{
		DishID:   &dishID,
		Category: b.Category.String(),
		Day:      b.Day.String(),
	}
}

func (b *SuggestionBuilder) BuildSubmitNewDishRequestDTO() reqdto.SubmitSuggestionRequest {
	name := b.DishName
	return reqdto.SubmitSuggestionRequest{
		Name:     &name,
		Category: b.Category.String(),
		Day:      b.Day.String(),
	}
}

func (b *SuggestionBuilder) BuildView() *queries.SuggestionView {
	var status *string
	if b.IsNew {
		s := domsuggestion.StatusPending.String()
		status = &s
	}
	return &queries.SuggestionView{
		ID:          uuid.New(),
		DishID:      b.DishID,
		DishName:    b.DishName,
		Category:    b.Category.String(),
		Day:         b.Day.String(),
		SuggestedBy: b.SuggestedBy,
		Status:      status,
		VoteCount:   b.VoteCount,
		CreatedAt:   b.CreatedAt,
	}
}
