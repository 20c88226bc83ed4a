// Package client contains client-side building blocks for Sensitivv.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Register, Login, ValidateSession, Profile, FoodItems and Ping.
//  2. A concrete JSON-over-HTTP implementation (see HTTPClient) that adds
//     the bearer token to protected calls and maps HTTP status codes to
//     sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) opening the
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Server rejections are returned as *APIError, which carries the server's
// message and matches one of ErrBadRequest, ErrUnauthorized, ErrForbidden,
// ErrNotFound, ErrConflict or ErrServer under errors.Is. Transport failures
// match ErrUnavailable.
//
// All operations accept context.Context and honor cancellation.
package client
