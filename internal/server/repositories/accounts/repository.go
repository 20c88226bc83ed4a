// Package accounts is the credential store: account identity plus password
// hash, keyed by a unique email.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/sensitivv/internal/server/models"
)

// Repository persists accounts. Implementations must enforce email
// uniqueness themselves and report a violation as common.ErrConflict;
// missing records are common.ErrNotFound.
type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	// FindByID returns the account without its password hash.
	FindByID(ctx context.Context, id string) (*models.Account, error)
}
