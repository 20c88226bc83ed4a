// Package services holds the server's business rules, independent of
// transport and storage.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sensitivv/internal/common"
	"github.com/dmitrijs2005/sensitivv/internal/logging"
	"github.com/dmitrijs2005/sensitivv/internal/server/auth"
	"github.com/dmitrijs2005/sensitivv/internal/server/models"
	"github.com/dmitrijs2005/sensitivv/internal/server/repositories/accounts"
	validation "github.com/go-ozzo/ozzo-validation"
)

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	Issue(accountID, email string) (string, error)
	Verify(token string) (*auth.Claims, error)
}

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
	CompareDummy(password string)
}

// Credentials is the input of Register and Login. Name is only used by
// Register.
type Credentials struct {
	Email    string
	Password string
	Name     string
}

func (c Credentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, validation.Required),
		validation.Field(&c.Password, validation.Required),
	)
}

// SessionResult is what a client needs to establish a session.
type SessionResult struct {
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Token    string `json:"token"`
	Language string `json:"language"`
}

type AccountService struct {
	repo   accounts.Repository
	tokens TokenIssuer
	hasher PasswordHasher
	logger logging.Logger
}

func NewAccountService(repo accounts.Repository, tokens TokenIssuer, hasher PasswordHasher, logger logging.Logger) *AccountService {
	return &AccountService{
		repo:   repo,
		tokens: tokens,
		hasher: hasher,
		logger: logger.With("module", "accounts"),
	}
}

// Register creates an account and returns a fresh session for it.
// Errors: common.ErrValidation, common.ErrConflict, common.ErrorInternal.
func (s *AccountService) Register(ctx context.Context, in Credentials) (*SessionResult, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	_, err := s.repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, common.ErrConflict
	case !errors.Is(err, common.ErrNotFound):
		s.logger.Error(ctx, "lookup account failed", "error", err)
		return nil, common.ErrorInternal
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.logger.Error(ctx, "hash password failed", "error", err)
		return nil, common.ErrorInternal
	}

	name := in.Name
	if name == "" {
		name = common.EmailLocalPart(in.Email)
	}

	account, err := s.repo.Create(ctx, &models.Account{
		Email:        in.Email,
		PasswordHash: hash,
		Name:         name,
		Language:     common.DefaultLanguage,
	})
	if err != nil {
		// Lost a race with a concurrent registration of the same email.
		if errors.Is(err, common.ErrConflict) {
			return nil, common.ErrConflict
		}
		s.logger.Error(ctx, "create account failed", "error", err)
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "account registered", "user_id", account.ID)
	return s.session(ctx, account)
}

// Login checks credentials and returns a fresh session.
// Unknown email and wrong password are indistinguishable: both are
// common.ErrUnauthorized.
func (s *AccountService) Login(ctx context.Context, in Credentials) (*SessionResult, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	account, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.hasher.CompareDummy(in.Password)
			return nil, common.ErrUnauthorized
		}
		s.logger.Error(ctx, "lookup account failed", "error", err)
		return nil, common.ErrorInternal
	}

	if err := s.hasher.Compare(account.PasswordHash, in.Password); err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return nil, common.ErrUnauthorized
		}
		s.logger.Error(ctx, "compare password failed", "error", err)
		return nil, common.ErrorInternal
	}

	return s.session(ctx, account)
}

// Profile returns the public profile of the account with id.
func (s *AccountService) Profile(ctx context.Context, id string) (*models.Profile, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		s.logger.Error(ctx, "lookup profile failed", "error", err)
		return nil, common.ErrorInternal
	}
	p := account.Profile()
	if p.Language == "" {
		p.Language = common.DefaultLanguage
	}
	return &p, nil
}

// Authenticate verifies a bearer token and returns its claims.
func (s *AccountService) Authenticate(token string) (*auth.Claims, error) {
	return s.tokens.Verify(token)
}

func (s *AccountService) session(ctx context.Context, a *models.Account) (*SessionResult, error) {
	token, err := s.tokens.Issue(a.ID, a.Email)
	if err != nil {
		s.logger.Error(ctx, "issue token failed", "error", err)
		return nil, common.ErrorInternal
	}

	lang := a.Language
	if lang == "" {
		lang = common.DefaultLanguage
	}

	return &SessionResult{UserID: a.ID, Name: a.Name, Token: token, Language: lang}, nil
}
