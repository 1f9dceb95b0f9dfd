package api

import (
	"net/http"

	resdto "weekly-menu/internal/handler/dto/response"
	"weekly-menu/internal/handler/httperr"
	"weekly-menu/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DishHandler struct {
	q queries.DishQueries
}

func NewDishHandler(q queries.DishQueries) *DishHandler {
	return &DishHandler{q: q}
}

// @Summary List active dishes
// @Description List the active dish catalog ordered by name
// @Tags dishes
// @Produce json
// @Success 200 {object} map[string][]resdto.DishResponse
// @Failure 500 {object} map[string]string
// @Router /dishes [get]
func (h *DishHandler) List(c *gin.Context) {
	items, err := h.q.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list dishes", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dishes": resdto.FromDishList(items)})
}
