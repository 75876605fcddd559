package user

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
)

const usersCollection = "users"

// MongoStore reads user accounts from the users collection.
type MongoStore struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		collection: db.Collection(usersCollection),
		logger:     zap.L(),
	}
}

func (s *MongoStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		s.logger.Error("User lookup failed",
			zap.String("collection", usersCollection),
			zap.Error(err))
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}
