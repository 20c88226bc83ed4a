// Package metadata is the client's string key/value store, persisted in the
// local SQLite database.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns the value for key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// GetMany returns the present subset of keys.
	GetMany(ctx context.Context, keys ...string) (map[string]string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
