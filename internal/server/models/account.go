// Package models defines the server-side persistent records.
package models

import "time"

// Account is a registered identity. Email is the unique, case-sensitive
// lookup key; PasswordHash is a bcrypt hash and never leaves the server.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	Language     string
}

// Profile is the public projection of an Account.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Language  string    `json:"language"`
}

// Profile strips the password hash.
func (a *Account) Profile() Profile {
	return Profile{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
		Language:  a.Language,
	}
}
