package repository

import (
	"context"

	"weekly-menu/internal/domain/dish"
	"weekly-menu/internal/infra"
	"weekly-menu/internal/infra/db"

	"github.com/google/uuid"
)

const insertDishSQL = `
INSERT INTO dishes (id, name, category, is_active, created_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

type DishRepository struct{}

func NewDishRepository() *DishRepository {
	return &DishRepository{}
}

func (r *DishRepository) Create(ctx context.Context, q db.Querier, d *dish.Dish) (uuid.UUID, error) {
	var id uuid.UUID
	err := q.QueryRow(ctx, insertDishSQL,
		d.ID(), d.Name().String(), d.Category().String(), d.Active(), d.CreatedBy(), d.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create dish", err)
	}
	return id, nil
}
