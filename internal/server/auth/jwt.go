// Package auth issues and verifies session tokens and hashes passwords.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sensitivv/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenValidity is how long an issued token stays valid.
const DefaultTokenValidity = 7 * 24 * time.Hour

// Claims carries the standard registered claims plus the account identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Issuer signs and verifies HS256 session tokens.
type Issuer struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

func NewIssuer(secret []byte, validity time.Duration) *Issuer {
	if validity <= 0 {
		validity = DefaultTokenValidity
	}
	return &Issuer{secret: secret, validity: validity, now: time.Now}
}

// WithClock replaces the time source; used by tests.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

func (i *Issuer) Issue(accountID, email string) (string, error) {
	issuedAt := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(i.validity)),
		},
		UserID: accountID,
		Email:  email,
	})

	s, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}

// Verify checks signature, algorithm and expiry and returns the claims.
// Every failure matches common.ErrInvalidToken; an expired token also
// matches common.ErrTokenExpired.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)

	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, common.ErrTokenExpired)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
