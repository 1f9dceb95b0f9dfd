package api

import (
	"errors"
	"net/http"

	reqdto "weekly-menu/internal/handler/dto/request"
	resdto "weekly-menu/internal/handler/dto/response"
	"weekly-menu/internal/handler/httperr"
	"weekly-menu/internal/handler/middleware"
	"weekly-menu/internal/pkg/errs"
	"weekly-menu/internal/usecase/commands"
	"weekly-menu/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SuggestionHandler struct {
	cmds commands.SuggestionCommands
	q    queries.SuggestionQueries
}

func NewSuggestionHandler(cmds commands.SuggestionCommands, q queries.SuggestionQueries) *SuggestionHandler {
	return &SuggestionHandler{cmds: cmds, q: q}
}

// @Summary Submit suggestion
// @Description Suggest a dish for a weekday menu slot, referencing an existing catalog dish or proposing a new one
// @Tags suggestions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitSuggestionRequest true "Submit suggestion request"
// @Success 201 {object} resdto.SuggestionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /suggestions [post]
func (h *SuggestionHandler) Submit(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.SubmitSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := req.Validate(); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), req.ToCommand(), actorID)
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
		// Downstream failures (dish fetch/creation, suggestion insert) all
		// surface as Internal; no partial success is reported even though a
		// freshly minted dish may persist.
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create suggestion", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.SuggestionID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load suggestion", nil)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"suggestion": resdto.FromSuggestionView(view)})
}

// @Summary Cast vote
// @Description Vote for a suggestion; each user may vote at most once per suggestion
// @Tags suggestions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CastVoteRequest true "Cast vote request"
// @Success 200 {object} resdto.VoteResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /votes [post]
func (h *SuggestionHandler) Vote(c *gin.Context) {
	voterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CastVote(c.Request.Context(), req.SuggestionID, voterID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAlreadyVoted):
			// Expected outcome of the duplicate-vote race, not an error to log.
			httperr.AbortWithError(c, http.StatusConflict, err, "You have already voted on this suggestion", nil)
		case errors.Is(err, commands.ErrSuggestionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Suggestion not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to submit vote", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromVoteResult(result.SuggestionID.String(), result.VoteCount))
}

// @Summary List suggestions
// @Description List all suggestions ordered by creation time
// @Tags suggestions
// @Produce json
// @Success 200 {object} map[string][]resdto.SuggestionResponse
// @Failure 500 {object} map[string]string
// @Router /suggestions [get]
func (h *SuggestionHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list suggestions", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": resdto.FromSuggestionList(items)})
}
