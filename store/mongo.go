package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "collections"

type document[T any] struct {
	Id    string `bson:"_id"`
	Items []T    `bson:"items"`
}

// MongoBackend stores the whole collection in a single document, so saves are
// atomic without a transaction.
type MongoBackend[T any] struct {
	collection *mongo.Collection
	key        string
}

var _ Backend[struct{}] = &MongoBackend[struct{}]{}

func NewMongoBackend[T any](db *mongo.Database, key string) *MongoBackend[T] {
	return &MongoBackend[T]{
		collection: db.Collection(CollectionName),
		key:        key,
	}
}

func (m *MongoBackend[T]) Load(ctx context.Context) ([]T, error) {
	doc := document[T]{}
	err := m.collection.FindOne(ctx, bson.M{"_id": m.key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []T{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("unable to load %s: %w", m.key, err)
	}
	if doc.Items == nil {
		doc.Items = []T{}
	}

	return doc.Items, nil
}

func (m *MongoBackend[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	doc := document[T]{
		Id:    m.key,
		Items: items,
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := m.collection.ReplaceOne(ctx, bson.M{"_id": m.key}, doc, opts); err != nil {
		if IsDuplicateKeyError(err) {
			return fmt.Errorf("unable to save %s: %w", m.key, ErrConflict)
		}
		return fmt.Errorf("unable to save %s: %w", m.key, err)
	}

	return nil
}
