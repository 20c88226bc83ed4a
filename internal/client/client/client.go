package client

import (
	"context"

	"github.com/dmitrijs2005/sensitivv/internal/client/models"
)

type Client interface {
	Register(ctx context.Context, email, password, name string) (*models.AuthResult, error)
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	// ValidateSession returns the user id the server associates with token.
	ValidateSession(ctx context.Context, token string) (string, error)
	Profile(ctx context.Context, token string) (*models.Profile, error)
	FoodItems(ctx context.Context, category, reactionType string) ([]models.FoodItem, error)
	Ping(ctx context.Context) error
}
