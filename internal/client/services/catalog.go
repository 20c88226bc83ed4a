package services

import (
	"context"

	"github.com/dmitrijs2005/sensitivv/internal/client/client"
	"github.com/dmitrijs2005/sensitivv/internal/client/models"
)

// CatalogService reads the public food catalog.
type CatalogService struct {
	client client.Client
}

func NewCatalogService(c client.Client) *CatalogService {
	return &CatalogService{client: c}
}

// FoodItems lists catalog items; empty arguments do not filter.
func (s *CatalogService) FoodItems(ctx context.Context, category, reactionType string) ([]models.FoodItem, error) {
	return s.client.FoodItems(ctx, category, reactionType)
}
