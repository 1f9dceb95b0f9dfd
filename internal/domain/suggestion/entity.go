package suggestion

import (
	"time"

	"weekly-menu/internal/domain/dish"

	"github.com/google/uuid"
)

// DishRef is the canonical dish reference produced by the resolver: the
// dish id plus a name snapshot taken at resolution time. Later renames of
// the catalog entry do not retroactively update suggestions.
type DishRef struct {
	ID    uuid.UUID
	Name  string
	IsNew bool
}

// Suggestion proposes serving a dish on a given weekday/category slot.
// vote_count is a denormalized cache of the vote ledger size; it is
// mutated only by the ledger's atomic increment, never here.
type Suggestion struct {
	id          uuid.UUID
	dishID      uuid.UUID
	dishName    string
	category    dish.Category
	day         Day
	suggestedBy uuid.UUID
	status      *Status
	voteCount   int32
	createdAt   time.Time
}

func New(ref DishRef, category dish.Category, day Day, suggestedBy uuid.UUID, now time.Time) (*Suggestion, error) {
	if !category.IsValid() {
		return nil, dish.ErrInvalidCategory
	}
	if !day.IsValid() {
		return nil, ErrInvalidDay
	}

	var status *Status
	if ref.IsNew {
		// Brand-new dishes need moderation before they reach the menu.
		s := StatusPending
		status = &s
	}

	return &Suggestion{
		id:          uuid.New(),
		dishID:      ref.ID,
		dishName:    ref.Name,
		category:    category,
		day:         day,
		suggestedBy: suggestedBy,
		status:      status,
		voteCount:   0,
		createdAt:   now,
	}, nil
}

func (s *Suggestion) ID() uuid.UUID           { return s.id }
func (s *Suggestion) DishID() uuid.UUID       { return s.dishID }
func (s *Suggestion) DishName() string        { return s.dishName }
func (s *Suggestion) Category() dish.Category { return s.category }
func (s *Suggestion) Day() Day                { return s.day }
func (s *Suggestion) SuggestedBy() uuid.UUID  { return s.suggestedBy }
func (s *Suggestion) Status() *Status         { return s.status }
func (s *Suggestion) VoteCount() int32        { return s.voteCount }
func (s *Suggestion) CreatedAt() time.Time    { return s.createdAt }
