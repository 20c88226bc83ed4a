package fooditems

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sensitivv/internal/server/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const CollectionName = "fooditems"

type foodItemDocument struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Name         string        `bson:"name"`
	Category     string        `bson:"category"`
	ReactionType string        `bson:"reactionType"`
	Emoji        string        `bson:"emoji"`
}

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(CollectionName)}
}

// filterDocument translates filter into a Mongo query document.
func filterDocument(filter models.FoodFilter) bson.M {
	q := bson.M{}
	if filter.Category != "" {
		q["category"] = filter.Category
	}
	if filter.ReactionType != "" {
		q["reactionType"] = filter.ReactionType
	}
	return q
}

func (r *MongoRepository) List(ctx context.Context, filter models.FoodFilter) ([]models.FoodItem, error) {
	cur, err := r.coll.Find(ctx, filterDocument(filter), options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer cur.Close(ctx)

	var docs []foodItemDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	items := make([]models.FoodItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, models.FoodItem{
			ID:           d.ID.Hex(),
			Name:         d.Name,
			Category:     d.Category,
			ReactionType: d.ReactionType,
			Emoji:        d.Emoji,
		})
	}
	return items, nil
}

func (r *MongoRepository) Add(ctx context.Context, item *models.FoodItem) (*models.FoodItem, error) {
	doc := foodItemDocument{
		ID:           bson.NewObjectID(),
		Name:         item.Name,
		Category:     item.Category,
		ReactionType: item.ReactionType,
		Emoji:        item.Emoji,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	item.ID = doc.ID.Hex()
	return item, nil
}
