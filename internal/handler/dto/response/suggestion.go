package response

import (
	"weekly-menu/internal/usecase/queries"
)

type SuggestionResponse struct {
	ID          string  `json:"id"`
	DishID      string  `json:"dish_id"`
	DishName    string  `json:"dish_name"`
	Category    string  `json:"category"`
	Day         string  `json:"day"`
	SuggestedBy string  `json:"suggested_by"`
	Status      *string `json:"status,omitempty"`
	VoteCount   int32   `json:"vote_count"`
	CreatedAt   int64   `json:"created_at"`
}

func FromSuggestionView(v *queries.SuggestionView) *SuggestionResponse {
	return &SuggestionResponse{
		ID:          v.ID.String(),
		DishID:      v.DishID.String(),
		DishName:    v.DishName,
		Category:    v.Category,
		Day:         v.Day,
		SuggestedBy: v.SuggestedBy.String(),
		Status:      v.Status,
		VoteCount:   v.VoteCount,
		CreatedAt:   v.CreatedAt.Unix(),
	}
}

func FromSuggestionList(items []*queries.SuggestionView) []*SuggestionResponse {
	res := make([]*SuggestionResponse, len(items))
	for i, it := range items {
		res[i] = FromSuggestionView(it)
	}
	return res
}

// VoteResponse carries the authoritative post-write tally.
type VoteResponse struct {
	Suggestion VoteSuggestion `json:"suggestion"`
}

type VoteSuggestion struct {
	ID        string `json:"id"`
	VoteCount int32  `json:"vote_count"`
}

func FromVoteResult(suggestionID string, voteCount int32) *VoteResponse {
	return &VoteResponse{
		Suggestion: VoteSuggestion{
			ID:        suggestionID,
			VoteCount: voteCount,
		},
	}
}
