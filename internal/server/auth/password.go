package auth

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/sensitivv/internal/common"
	"golang.org/x/crypto/bcrypt"
)

const DefaultBcryptCost = 10

// maxPasswordBytes is the most bcrypt reads. Longer passwords are cut to it
// before both hashing and comparing, so they stay usable.
const maxPasswordBytes = 72

func bcryptInput(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// PasswordHasher wraps bcrypt with a fixed cost.
type PasswordHasher struct {
	cost int

	dummyOnce sync.Once
	dummy     []byte
}

// NewPasswordHasher returns a hasher using cost, or DefaultBcryptCost when
// cost is outside bcrypt's accepted range.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(bcryptInput(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// Compare returns common.ErrUnauthorized when password does not match hash.
func (h *PasswordHasher) Compare(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), bcryptInput(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return common.ErrUnauthorized
		}
		return fmt.Errorf("compare password: %w", err)
	}
	return nil
}

// CompareDummy spends the same work as Compare against a throwaway hash.
// Login calls it for unknown emails so response time does not reveal
// whether an account exists.
func (h *PasswordHasher) CompareDummy(password string) {
	h.dummyOnce.Do(func() {
		h.dummy, _ = bcrypt.GenerateFromPassword([]byte("sensitivv-dummy-password"), h.cost)
	})
	_ = bcrypt.CompareHashAndPassword(h.dummy, bcryptInput(password))
}
