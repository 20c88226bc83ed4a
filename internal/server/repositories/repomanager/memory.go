package repomanager

import (
	"context"

	"github.com/dmitrijs2005/sensitivv/internal/server/models"
	"github.com/dmitrijs2005/sensitivv/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/sensitivv/internal/server/repositories/fooditems"
)

// InMemoryRepositoryManager keeps everything in process memory. Data is lost
// on restart; intended for development and tests.
type InMemoryRepositoryManager struct {
	accounts *accounts.InMemoryRepository
	food     *fooditems.InMemoryRepository
}

// NewInMemoryRepositoryManager returns a manager whose food catalog is
// pre-populated with a few sample items.
func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		accounts: accounts.NewInMemoryRepository(),
		food:     fooditems.NewInMemoryRepository(sampleFoodItems()...),
	}
}

func (m *InMemoryRepositoryManager) Accounts() accounts.Repository   { return m.accounts }
func (m *InMemoryRepositoryManager) FoodItems() fooditems.Repository { return m.food }

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }
func (m *InMemoryRepositoryManager) Close(ctx context.Context) error         { return nil }

func sampleFoodItems() []models.FoodItem {
	return []models.FoodItem{
		{Name: "Milk", Category: "dairy", ReactionType: "critic", Emoji: "🥛"},
		{Name: "Cheese", Category: "dairy", ReactionType: "sensitiv", Emoji: "🧀"},
		{Name: "Peanut", Category: "nuts", ReactionType: "critic", Emoji: "🥜"},
		{Name: "Bread", Category: "grains", ReactionType: "sensitiv", Emoji: "🍞"},
		{Name: "Apple", Category: "fruits", ReactionType: "safe", Emoji: "🍎"},
		{Name: "Rice", Category: "grains", ReactionType: "safe", Emoji: "🍚"},
	}
}
