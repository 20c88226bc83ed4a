package fooditems

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/sensitivv/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() *InMemoryRepository {
	return NewInMemoryRepository(
		models.FoodItem{Name: "Peanut", Category: "nuts", ReactionType: "critic"},
		models.FoodItem{Name: "Milk", Category: "dairy", ReactionType: "critic"},
		models.FoodItem{Name: "Cheese", Category: "dairy", ReactionType: "sensitiv"},
	)
}

func TestInMemoryList_Filters(t *testing.T) {
	repo := seeded()
	ctx := context.Background()

	all, err := repo.List(ctx, models.FoodFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Cheese", all[0].Name, "sorted by name")

	dairy, err := repo.List(ctx, models.FoodFilter{Category: "dairy"})
	require.NoError(t, err)
	assert.Len(t, dairy, 2)

	critical, err := repo.List(ctx, models.FoodFilter{Category: "dairy", ReactionType: "critic"})
	require.NoError(t, err)
	require.Len(t, critical, 1)
	assert.Equal(t, "Milk", critical[0].Name)

	none, err := repo.List(ctx, models.FoodFilter{Category: "fruit"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestInMemoryAdd_AssignsID(t *testing.T) {
	repo := NewInMemoryRepository()

	it, err := repo.Add(context.Background(), &models.FoodItem{Name: "Egg"})
	require.NoError(t, err)
	assert.NotEmpty(t, it.ID)
}

func TestFilterDocument(t *testing.T) {
	assert.Empty(t, filterDocument(models.FoodFilter{}))
	q := filterDocument(models.FoodFilter{Category: "dairy", ReactionType: "critic"})
	assert.Equal(t, "dairy", q["category"])
	assert.Equal(t, "critic", q["reactionType"])
}
