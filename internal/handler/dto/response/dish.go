package response

import (
	"weekly-menu/internal/usecase/queries"
)

type DishResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	IsActive  bool   `json:"is_active"`
	CreatedAt int64  `json:"created_at"`
}

func FromDishView(v *queries.DishView) *DishResponse {
	return &DishResponse{
		ID:        v.ID.String(),
		Name:      v.Name,
		Category:  v.Category,
		IsActive:  v.IsActive,
		CreatedAt: v.CreatedAt.Unix(),
	}
}

func FromDishList(items []*queries.DishView) []*DishResponse {
	res := make([]*DishResponse, len(items))
	for i, it := range items {
		res[i] = FromDishView(it)
	}
	return res
}
