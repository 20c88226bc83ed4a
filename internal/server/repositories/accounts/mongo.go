package accounts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sensitivv/internal/common"
	"github.com/dmitrijs2005/sensitivv/internal/server/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CollectionName is the MongoDB collection holding accounts.
const CollectionName = "users"

// accountDocument mirrors the stored BSON layout.
type accountDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Email     string        `bson:"email"`
	Password  string        `bson:"password,omitempty"`
	Name      string        `bson:"name"`
	CreatedAt time.Time     `bson:"createdAt"`
	Language  string        `bson:"language"`
}

func (d *accountDocument) toModel() *models.Account {
	return &models.Account{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		PasswordHash: d.Password,
		Name:         d.Name,
		CreatedAt:    d.CreatedAt,
		Language:     d.Language,
	}
}

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(CollectionName)}
}

// EnsureIndexes creates the unique email index that backs ErrConflict.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *MongoRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	doc := accountDocument{
		ID:        bson.NewObjectID(),
		Email:     account.Email,
		Password:  account.PasswordHash,
		Name:      account.Name,
		CreatedAt: time.Now().UTC(),
		Language:  account.Language,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	account.ID = doc.ID.Hex()
	account.CreatedAt = doc.CreatedAt
	return account, nil
}

func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	var doc accountDocument
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doc.toModel(), nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*models.Account, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}

	opts := options.FindOne().SetProjection(bson.M{"password": 0})

	var doc accountDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doc.toModel(), nil
}
