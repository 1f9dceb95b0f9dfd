package dish

import "weekly-menu/internal/pkg/errs"

var ErrInvalidCategory = errs.New("invalid dish category")

type Category string

const (
	CategoryRegular Category = "regular"
	CategoryMeat    Category = "meat"
	CategoryRice    Category = "rice"
	CategorySabzi   Category = "sabzi"
)

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryRegular, CategoryMeat, CategoryRice, CategorySabzi:
		return true
	}
	return false
}
