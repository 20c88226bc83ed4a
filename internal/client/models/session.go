// Package models holds the client-side view of the API's payloads.
package models

import "time"

// AuthResult is returned by login and register.
type AuthResult struct {
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Token    string `json:"token"`
	Language string `json:"language"`
}

type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Language  string    `json:"language"`
}
