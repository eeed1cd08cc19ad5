package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/cloudkit/pkg/storage"
)

// Strategy adapts a mongo collection to the storage.Strategy contract.
// Each key maps to one document: {_id: <key>, value: <string>}.
type Strategy struct {
	coll *mongo.Collection
}

// NewStrategy wraps an existing collection.
func NewStrategy(coll *mongo.Collection) *Strategy {
	return &Strategy{coll: coll}
}

type kvDocument struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// Get returns an empty string when no document exists for the key.
func (s *Strategy) Get(ctx context.Context, key string) (string, error) {
	var doc kvDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", errors.Join(storage.ErrFailure, err)
	}
	return doc.Value, nil
}

func (s *Strategy) Set(ctx context.Context, key, value string) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": key},
		kvDocument{Key: key, Value: value},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return errors.Join(storage.ErrFailure, err)
	}
	return nil
}

func (s *Strategy) Delete(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return errors.Join(storage.ErrFailure, err)
	}
	return nil
}

var _ storage.Strategy = (*Strategy)(nil)
