package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodikal/ordering-go/internal/ordering"
)

func TestValidCategory(t *testing.T) {
	for _, c := range ordering.Categories {
		assert.True(t, ordering.ValidCategory(c), c)
	}

	assert.False(t, ordering.ValidCategory("Десерты"))
	assert.False(t, ordering.ValidCategory(""))
}

func TestGroupByCategory(t *testing.T) {
	t.Run("buckets items and keeps empty categories", func(t *testing.T) {
		items := []ordering.MenuItem{
			{ID: 1, Name: "Цезарь", Category: "Салат"},
			{ID: 2, Name: "Оливье", Category: "Салат"},
			{ID: 3, Name: "Плов", Category: "Горячее"},
		}

		grouped := ordering.GroupByCategory(items)

		assert.Len(t, grouped, len(ordering.Categories))
		assert.Len(t, grouped["Салат"], 2)
		assert.Len(t, grouped["Горячее"], 1)
		assert.Empty(t, grouped["Канапе"])
	})

	t.Run("drops items with unknown categories", func(t *testing.T) {
		items := []ordering.MenuItem{
			{ID: 1, Name: "Тирамису", Category: "Десерты"},
		}

		grouped := ordering.GroupByCategory(items)

		assert.Len(t, grouped, len(ordering.Categories))
		for _, c := range ordering.Categories {
			assert.Empty(t, grouped[c])
		}
	})
}
