//go:build unit || e2e

package builder

import (
	"time"

	domdish "weekly-menu/internal/domain/dish"
	"weekly-menu/internal/usecase/queries"
	"weekly-menu/internal/usecase/shared"

	"github.com/google/uuid"
)

type DishBuilder struct {
	Name      string
	Category  domdish.Category
	CreatedBy uuid.UUID
	CreatedAt time.Time
}

func NewDishBuilder() *DishBuilder {
	return &DishBuilder{
		Name:      "Kabuli Pulao",
		Category:  domdish.CategoryRice,
		CreatedBy: uuid.New(),
		CreatedAt: time.Now(),
	}
}

func (b *DishBuilder) With(mutate func(*DishBuilder)) *DishBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *DishBuilder) BuildSuggested() (*domdish.Dish, error) {
	return domdish.NewSuggested(b.Name, b.Category, b.CreatedBy, b.CreatedAt)
}

func (b *DishBuilder) BuildSeeded() (*domdish.Dish, error) {
	return domdish.NewSeeded(b.Name, b.Category, b.CreatedAt)
}

func (b *DishBuilder) BuildSnapshot() *shared.DishSnapshot {
	return &shared.DishSnapshot{
		ID:       uuid.New(),
		Name:     b.Name,
		Category: b.Category.String(),
		Active:   true,
	}
}

func (b *DishBuilder) BuildView() *queries.DishView {
	return &queries.DishView{
		ID:        uuid.New(),
		Name:      b.Name,
		Category:  b.Category.String(),
		IsActive:  true,
		CreatedAt: b.CreatedAt,
	}
}
