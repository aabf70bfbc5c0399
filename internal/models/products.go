package models

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IncProductViews is the product counterpart of IncShopViews: a single
// find-and-increment returning the updated record, ErrNoRecord otherwise.
func (m *MongoDB) IncProductViews(ctx context.Context, id string) (*Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNoRecord
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p Product
	err = m.Products.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"views": 1}}, opts).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoRecord
		}
		return nil, err
	}
	return &p, nil
}

func (m *MongoDB) ProductsByShop(ctx context.Context, shopID primitive.ObjectID) ([]*Product, error) {
	cur, err := m.Products.Find(ctx, bson.M{"shop": shopID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var products []*Product
	err = cur.All(ctx, &products)
	return products, err
}
