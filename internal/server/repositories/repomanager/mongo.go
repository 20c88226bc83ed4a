package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sensitivv/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/sensitivv/internal/server/repositories/fooditems"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

type MongoRepositoryManager struct {
	client   *mongo.Client
	accounts *accounts.MongoRepository
	food     *fooditems.MongoRepository
}

func NewMongoRepositoryManager(ctx context.Context, uri, database string) (*MongoRepositoryManager, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect error: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping error: %w", err)
	}

	db := client.Database(database)
	return &MongoRepositoryManager{
		client:   client,
		accounts: accounts.NewMongoRepository(db),
		food:     fooditems.NewMongoRepository(db),
	}, nil
}

func (m *MongoRepositoryManager) Accounts() accounts.Repository   { return m.accounts }
func (m *MongoRepositoryManager) FoodItems() fooditems.Repository { return m.food }

// RunMigrations creates the indexes the repositories rely on. Collections
// themselves are created lazily by MongoDB.
func (m *MongoRepositoryManager) RunMigrations(ctx context.Context) error {
	return m.accounts.EnsureIndexes(ctx)
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
