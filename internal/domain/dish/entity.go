package dish

import (
	"time"

	"weekly-menu/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName   = errs.New("dish name must not be empty")
	ErrNameTooLong = errs.New("dish name is too long")
)

// Dish is a catalog entry for a meal option, independent of any day.
// User-submitted dishes start inactive; activation is a moderation action
// performed outside this service.
type Dish struct {
	id        uuid.UUID
	name      Name
	category  Category
	active    bool
	createdBy *uuid.UUID
	createdAt time.Time
}

// NewSuggested creates an inactive dish minted on first mention of a new
// name by the suggestion resolver.
func NewSuggested(name string, category Category, createdBy uuid.UUID, now time.Time) (*Dish, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	return &Dish{
		id:        uuid.New(),
		name:      n,
		category:  category,
		active:    false,
		createdBy: &createdBy,
		createdAt: now,
	}, nil
}

// NewSeeded creates an active dish inserted by the administrative seed
// process. Seeded dishes have no creator.
func NewSeeded(name string, category Category, now time.Time) (*Dish, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	return &Dish{
		id:        uuid.New(),
		name:      n,
		category:  category,
		active:    true,
		createdAt: now,
	}, nil
}

func (d *Dish) ID() uuid.UUID         { return d.id }
func (d *Dish) Name() Name            { return d.name }
func (d *Dish) Category() Category    { return d.category }
func (d *Dish) Active() bool          { return d.active }
func (d *Dish) CreatedBy() *uuid.UUID { return d.createdBy }
func (d *Dish) CreatedAt() time.Time  { return d.createdAt }
