package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo dials the cluster and pings it so a dead URI fails fast
// at startup instead of on the first write.
func ConnectMongo(ctx context.Context, uri, database string) (*mongo.Database, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client.Database(database), nil
}

// MongoStore persists documents to a MongoDB database, one collection
// per record type.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Save(ctx context.Context, collection string, doc interface{}) error {
	if _, err := s.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert into %s: %w", collection, err)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context, collection, sortKey string, limit int64) ([]Record, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: sortKey, Value: -1}}).
		SetLimit(limit)

	cur, err := s.db.Collection(collection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	var docs []Record
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s documents: %w", collection, err)
	}
	return docs, nil
}
