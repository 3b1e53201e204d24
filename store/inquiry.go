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

type InquiryStore struct {
	collection *mongo.Collection
}

func NewInquiryStore() *InquiryStore {
	collectionName := os.Getenv("MONGODB_COLLECTION_INQUIRIES")
	if collectionName == "" {
		collectionName = "inquiries"
	}
	return &InquiryStore{collection: config.GetCollection(collectionName)}
}

func (s *InquiryStore) Create(ctx context.Context, inquiry models.Inquiry) (models.Inquiry, error) {
	inquiry.ID = primitive.NewObjectID()
	inquiry.CreatedAt = time.Now()
	if _, err := s.collection.InsertOne(ctx, inquiry); err != nil {
		return models.Inquiry{}, err
	}
	return inquiry, nil
}

func (s *InquiryStore) List(ctx context.Context) ([]models.Inquiry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	inquiries := []models.Inquiry{}
	for cursor.Next(ctx) {
		var i models.Inquiry
		if err := cursor.Decode(&i); err != nil {
			continue
		}
		inquiries = append(inquiries, i)
	}
	return inquiries, cursor.Err()
}
