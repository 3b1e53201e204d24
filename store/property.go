package store

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ISHAsolanki/property-final/config"
	"github.com/ISHAsolanki/property-final/models"
)

type PropertyStore struct {
	collection *mongo.Collection
}

func NewPropertyStore() *PropertyStore {
	collectionName := os.Getenv("MONGODB_COLLECTION_PROPERTIES")
	if collectionName == "" {
		collectionName = "properties"
	}
	return &PropertyStore{collection: config.GetCollection(collectionName)}
}

// List returns every property, newest first.
func (s *PropertyStore) List(ctx context.Context) ([]models.Property, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	for cursor.Next(ctx) {
		var p models.Property
		if err := cursor.Decode(&p); err != nil {
			continue
		}
		p.Normalize()
		properties = append(properties, p)
	}
	return properties, cursor.Err()
}

func (s *PropertyStore) Get(ctx context.Context, id string) (models.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Property{}, ErrNotFound
	}
	var p models.Property
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return models.Property{}, ErrNotFound
	}
	p.Normalize()
	return p, err
}

// CreateProperty assigns the identifier and both timestamps.
func (s *PropertyStore) CreateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	if _, err := s.collection.InsertOne(ctx, p); err != nil {
		return models.Property{}, err
	}
	return p, nil
}

// UpdateProperty replaces the whole document, keeping the original createdAt
// and refreshing updatedAt.
func (s *PropertyStore) UpdateProperty(ctx context.Context, id string, p models.Property) (models.Property, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return models.Property{}, err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": existing.ID}, p); err != nil {
		return models.Property{}, err
	}
	return p, nil
}

func (s *PropertyStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
