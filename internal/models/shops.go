package models

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// shopSummaryProjection restricts joined shop data to what product pages and
// search results are allowed to show.
var shopSummaryProjection = bson.M{
	"name":     1,
	"address":  1,
	"phone":    1,
	"city":     1,
	"location": 1,
}

// IncShopViews bumps the view counter and returns the post-increment shop in
// one store operation, so concurrent detail-page reads never lose an update.
// A malformed or unknown id yields ErrNoRecord without mutating anything.
func (m *MongoDB) IncShopViews(ctx context.Context, id string) (*Shop, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNoRecord
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var s Shop
	err = m.Shops.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"views": 1}}, opts).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoRecord
		}
		return nil, err
	}
	return &s, nil
}

// ShopIDsByCity resolves the identifiers of every shop in the given city.
// An unknown city returns an empty, non-nil slice.
func (m *MongoDB) ShopIDsByCity(ctx context.Context, city string) ([]primitive.ObjectID, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})

	cur, err := m.Shops.Find(ctx, bson.M{"city": city}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

func (m *MongoDB) ShopSummaryByID(ctx context.Context, id primitive.ObjectID) (*ShopSummary, error) {
	opts := options.FindOne().SetProjection(shopSummaryProjection)

	var s ShopSummary
	err := m.Shops.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoRecord
		}
		return nil, err
	}
	return &s, nil
}

func (m *MongoDB) shopSummariesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]ShopSummary, error) {
	summaries := make(map[primitive.ObjectID]ShopSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	opts := options.Find().SetProjection(shopSummaryProjection)
	cur, err := m.Shops.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []ShopSummary
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, d := range docs {
		d.Location = nil
		summaries[d.ID] = d
	}
	return summaries, nil
}
