package services

import (
	"context"

	"github.com/dmitrijs2005/sensitivv/internal/common"
	"github.com/dmitrijs2005/sensitivv/internal/logging"
	"github.com/dmitrijs2005/sensitivv/internal/server/models"
	"github.com/dmitrijs2005/sensitivv/internal/server/repositories/fooditems"
)

type FoodItemService struct {
	repo   fooditems.Repository
	logger logging.Logger
}

func NewFoodItemService(repo fooditems.Repository, logger logging.Logger) *FoodItemService {
	return &FoodItemService{repo: repo, logger: logger.With("module", "fooditems")}
}

// List returns catalog items; empty filter fields match everything.
func (s *FoodItemService) List(ctx context.Context, filter models.FoodFilter) ([]models.FoodItem, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error(ctx, "list food items failed", "error", err)
		return nil, common.ErrorInternal
	}
	return items, nil
}
