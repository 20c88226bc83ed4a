// Package fooditems stores the food catalog served to the mobile client.
package fooditems

import (
	"context"

	"github.com/dmitrijs2005/sensitivv/internal/server/models"
)

type Repository interface {
	// List returns the items matching every non-empty field of filter.
	List(ctx context.Context, filter models.FoodFilter) ([]models.FoodItem, error)
	Add(ctx context.Context, item *models.FoodItem) (*models.FoodItem, error)
}
