//go:build unit

package dish_test

import (
	"strings"
	"testing"
	"time"

	"weekly-menu/internal/domain/dish"
	"weekly-menu/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.DishBuilder)
	errIs  error
}

func TestDish(t *testing.T) {
	t.Run("suggested dish starts inactive with creator", func(t *testing.T) {
		creator := uuid.New()
		actual, err := builder.NewDishBuilder().
			With(func(b *builder.DishBuilder) { b.CreatedBy = creator }).
			BuildSuggested()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.False(t, actual.Active())
		require.NotNil(t, actual.CreatedBy())
		assert.Equal(t, creator, *actual.CreatedBy())
		assert.Equal(t, "Kabuli Pulao", actual.Name().String())
		assert.Equal(t, dish.CategoryRice, actual.Category())
	})

	t.Run("seeded dish starts active without creator", func(t *testing.T) {
		actual, err := builder.NewDishBuilder().BuildSeeded()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.True(t, actual.Active())
		assert.Nil(t, actual.CreatedBy())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "single character name",
				mutate: func(b *builder.DishBuilder) { b.Name = "a" },
			},
			{
				name:   "maximum length name",
				mutate: func(b *builder.DishBuilder) { b.Name = strings.Repeat("a", dish.MaxNameLength) },
			},
			{
				name:   "empty name",
				mutate: func(b *builder.DishBuilder) { b.Name = "" },
				errIs:  dish.ErrEmptyName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.DishBuilder) { b.Name = "   " },
				errIs:  dish.ErrEmptyName,
			},
			{
				name:   "name exceeds maximum length",
				mutate: func(b *builder.DishBuilder) { b.Name = strings.Repeat("a", dish.MaxNameLength+1) },
				errIs:  dish.ErrNameTooLong,
			},
		})
	})

	t.Run("category validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "meat category",
				mutate: func(b *builder.DishBuilder) { b.Category = dish.CategoryMeat },
			},
			{
				name:   "sabzi category",
				mutate: func(b *builder.DishBuilder) { b.Category = dish.CategorySabzi },
			},
			{
				name:   "unknown category",
				mutate: func(b *builder.DishBuilder) { b.Category = dish.Category("dessert") },
				errIs:  dish.ErrInvalidCategory,
			},
		})
	})

	t.Run("name trimming", func(t *testing.T) {
		actual, err := dish.NewSeeded("  Mantu  ", dish.CategoryRegular, time.Now())
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "Mantu", actual.Name().String())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		now := time.Now()

		dish1, err1 := dish.NewSeeded("Bolani", dish.CategoryRegular, now)
		dish2, err2 := dish.NewSeeded("Bolani", dish.CategoryRegular, now)

		require.NoError(t, err1)
		require.NoError(t, err2)
		require.NotNil(t, dish1)
		require.NotNil(t, dish2)

		assert.NotEqual(t, dish1.ID(), dish2.ID())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewDishBuilder().With(c.mutate).BuildSuggested()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
