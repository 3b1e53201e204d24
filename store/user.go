package store

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ISHAsolanki/property-final/config"
	"github.com/ISHAsolanki/property-final/models"
)

type UserStore struct {
	collection *mongo.Collection
}

func NewUserStore() *UserStore {
	collectionName := os.Getenv("MONGODB_COLLECTION_USERS")
	if collectionName == "" {
		collectionName = "users"
	}
	return &UserStore{collection: config.GetCollection(collectionName)}
}

func (s *UserStore) Create(ctx context.Context, user models.User) (models.User, error) {
	count, err := s.collection.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return models.User{}, err
	}
	if count > 0 {
		return models.User{}, ErrDuplicate
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	if _, err := s.collection.InsertOne(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNotFound
	}
	return user, err
}

// Count gates registration: only the first admin may self-register.
func (s *UserStore) Count(ctx context.Context) (int64, error) {
	return s.collection.CountDocuments(ctx, bson.M{})
}
