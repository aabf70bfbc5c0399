package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDB struct {
	Client   *mongo.Client
	Cities   *mongo.Collection
	Shops    *mongo.Collection
	Products *mongo.Collection
	Users    *mongo.Collection
}

func OpenMongoDB(ctx context.Context, uri, dbName string) (*MongoDB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	return &MongoDB{
		Client:   client,
		Cities:   db.Collection("cities"),
		Shops:    db.Collection("shops"),
		Products: db.Collection("products"),
		Users:    db.Collection("users"),
	}, nil
}

// EnsureIndexes declares every index the queries below rely on: unique city
// name, unique lowercased user email, the shop city and 2dsphere indexes, and
// the composite text index backing free-text product search.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	_, err := m.Cities.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = m.Users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = m.Shops.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
	})
	if err != nil {
		return err
	}

	_, err = m.Products.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "shop", Value: 1}}},
		{Keys: bson.D{
			{Key: "name", Value: "text"},
			{Key: "description", Value: "text"},
			{Key: "category", Value: "text"},
		}},
	})
	return err
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
