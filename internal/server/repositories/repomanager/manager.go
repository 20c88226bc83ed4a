// Package repomanager opens the configured storage backend and vends the
// repositories built on top of it.
package repomanager

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sensitivv/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/sensitivv/internal/server/repositories/fooditems"
)

const (
	StoragePostgres = "postgres"
	StorageMongo    = "mongo"
	StorageMemory   = "memory"
)

var ErrUnknownStorage = errors.New("unknown storage backend")

type RepositoryManager interface {
	// RunMigrations brings the schema (or indexes) up to date.
	RunMigrations(ctx context.Context) error
	Accounts() accounts.Repository
	FoodItems() fooditems.Repository
	Close(ctx context.Context) error
}

// Options selects and parameterizes a backend.
type Options struct {
	Storage       string
	DatabaseDSN   string
	MongoURI      string
	MongoDatabase string
}

// New opens the backend named by opts.Storage.
func New(ctx context.Context, opts Options) (RepositoryManager, error) {
	switch opts.Storage {
	case StoragePostgres:
		return NewPostgresRepositoryManager(ctx, opts.DatabaseDSN)
	case StorageMongo:
		return NewMongoRepositoryManager(ctx, opts.MongoURI, opts.MongoDatabase)
	case StorageMemory:
		return NewInMemoryRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorage, opts.Storage)
	}
}
