package store

import (
	"context"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ISHAsolanki/property-final/config"
	"github.com/ISHAsolanki/property-final/models"
)

type CategoryStore struct {
	collection *mongo.Collection
}

func NewCategoryStore() *CategoryStore {
	collectionName := os.Getenv("MONGODB_COLLECTION_CATEGORIES")
	if collectionName == "" {
		collectionName = "propertycategories"
	}
	return &CategoryStore{collection: config.GetCollection(collectionName)}
}

// EnsureDefaults lazily creates any missing default category. The read path
// calls this before listing, so "Residential" and "Commercial" always exist.
func (s *CategoryStore) EnsureDefaults(ctx context.Context) error {
	for _, name := range models.DefaultCategories {
		count, err := s.collection.CountDocuments(ctx, bson.M{"name": name})
		if err != nil {
			return err
		}
		if count == 0 {
			if _, err := s.Create(ctx, name); err != nil && err != ErrDuplicate {
				return err
			}
		}
	}
	return nil
}

func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	for cursor.Next(ctx) {
		var c models.Category
		if err := cursor.Decode(&c); err != nil {
			continue
		}
		categories = append(categories, c)
	}
	return categories, cursor.Err()
}

func (s *CategoryStore) Create(ctx context.Context, name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	count, err := s.collection.CountDocuments(ctx, bson.M{"name": name})
	if err != nil {
		return models.Category{}, err
	}
	if count > 0 {
		return models.Category{}, ErrDuplicate
	}
	category := models.Category{
		ID:        primitive.NewObjectID(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	if _, err := s.collection.InsertOne(ctx, category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}
