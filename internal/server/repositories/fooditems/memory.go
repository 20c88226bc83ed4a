package fooditems

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/sensitivv/internal/server/models"
	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu    sync.RWMutex
	items []models.FoodItem
}

func NewInMemoryRepository(seed ...models.FoodItem) *InMemoryRepository {
	r := &InMemoryRepository{}
	for i := range seed {
		_, _ = r.Add(context.Background(), &seed[i])
	}
	return r
}

func (r *InMemoryRepository) List(ctx context.Context, filter models.FoodFilter) ([]models.FoodItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.FoodItem, 0, len(r.items))
	for _, it := range r.items {
		if filter.Category != "" && it.Category != filter.Category {
			continue
		}
		if filter.ReactionType != "" && it.ReactionType != filter.ReactionType {
			continue
		}
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryRepository) Add(ctx context.Context, item *models.FoodItem) (*models.FoodItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	r.items = append(r.items, *item)
	return item, nil
}
