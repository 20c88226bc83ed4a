package accounts

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/sensitivv/internal/common"
	"github.com/dmitrijs2005/sensitivv/internal/server/models"
	"github.com/google/uuid"
)

// InMemoryRepository keeps accounts in process memory. The email index is
// checked and updated under one lock, so uniqueness holds under concurrent
// registrations.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]models.Account
	byEmail map[string]string
	now     func() time.Time
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID:    make(map[string]models.Account),
		byEmail: make(map[string]string),
		now:     time.Now,
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[account.Email]; exists {
		return nil, common.ErrConflict
	}

	account.ID = uuid.NewString()
	account.CreatedAt = r.now().UTC()

	r.byID[account.ID] = *account
	r.byEmail[account.Email] = account.ID

	return account, nil
}

func (r *InMemoryRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	a := r.byID[id]
	return &a, nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	a.PasswordHash = ""
	return &a, nil
}
