package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const searchPageSize = 20

type SearchParams struct {
	Query    string
	City     string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Page     int
	Sort     string
}

type ProductWithShop struct {
	Product `bson:",inline"`
	Shop    ShopSummary `bson:"-"`
}

type SearchResult struct {
	Products   []*ProductWithShop
	TotalCount int64
	TotalPages int
	Page       int
}

// searchPlan is the filter + sort + pagination plan a SearchParams compiles
// down to, kept separate from execution so it can be inspected directly.
type searchPlan struct {
	filter     bson.M
	sort       bson.D
	projection bson.M
	skip       int64
	limit      int64
}

var sortFields = map[string]bson.D{
	"price_asc":  {{Key: "price", Value: 1}},
	"price_desc": {{Key: "price", Value: -1}},
	"name_asc":   {{Key: "name", Value: 1}},
	"newest":     {{Key: "created_at", Value: -1}},
}

func buildSearchPlan(p SearchParams, shopIDs []primitive.ObjectID, cityGiven bool) searchPlan {
	filter := bson.M{}

	// A city with no shops must keep the $in clause so the filter matches
	// nothing, rather than falling back to every shop.
	if cityGiven {
		if shopIDs == nil {
			shopIDs = []primitive.ObjectID{}
		}
		filter["shop"] = bson.M{"$in": shopIDs}
	}
	if p.Query != "" {
		filter["$text"] = bson.M{"$search": p.Query}
	}
	if p.Category != "" {
		filter["category"] = p.Category
	}
	if p.MinPrice != nil || p.MaxPrice != nil {
		price := bson.M{}
		if p.MinPrice != nil {
			price["$gte"] = *p.MinPrice
		}
		if p.MaxPrice != nil {
			price["$lte"] = *p.MaxPrice
		}
		filter["price"] = price
	}

	plan := searchPlan{filter: filter}

	// Text relevance wins only when no explicit sort was asked for. Sort
	// values outside the known set are ignored, leaving store default order.
	if p.Query != "" && p.Sort == "" {
		plan.projection = bson.M{"score": bson.M{"$meta": "textScore"}}
		plan.sort = bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}}
	} else if s, ok := sortFields[p.Sort]; ok {
		plan.sort = s
	}

	page := p.Page
	if page < 1 {
		page = 1
	}
	plan.skip = int64(page-1) * searchPageSize
	plan.limit = searchPageSize
	return plan
}

func totalPages(totalCount int64) int {
	n := int((totalCount + searchPageSize - 1) / searchPageSize)
	if n < 1 {
		n = 1
	}
	return n
}

// SearchProducts runs the full search pipeline: resolve the city's shops,
// compile the plan, fetch one page, count the full match set and join each
// product with its shop summary. Any store error fails the whole search.
func (m *MongoDB) SearchProducts(ctx context.Context, p SearchParams) (*SearchResult, error) {
	cityGiven := p.City != ""

	var shopIDs []primitive.ObjectID
	if cityGiven {
		ids, err := m.ShopIDsByCity(ctx, p.City)
		if err != nil {
			return nil, err
		}
		shopIDs = ids
	}

	plan := buildSearchPlan(p, shopIDs, cityGiven)

	opts := options.Find().SetSkip(plan.skip).SetLimit(plan.limit)
	if plan.sort != nil {
		opts.SetSort(plan.sort)
	}
	if plan.projection != nil {
		opts.SetProjection(plan.projection)
	}

	cur, err := m.Products.Find(ctx, plan.filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []*ProductWithShop
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}

	// Count over the same filter, independent of the page slice.
	total, err := m.Products.CountDocuments(ctx, plan.filter)
	if err != nil {
		return nil, err
	}

	if err := m.attachShopSummaries(ctx, items); err != nil {
		return nil, err
	}

	page := p.Page
	if page < 1 {
		page = 1
	}
	return &SearchResult{
		Products:   items,
		TotalCount: total,
		TotalPages: totalPages(total),
		Page:       page,
	}, nil
}

func (m *MongoDB) attachShopSummaries(ctx context.Context, items []*ProductWithShop) error {
	if len(items) == 0 {
		return nil
	}

	seen := make(map[primitive.ObjectID]bool, len(items))
	var ids []primitive.ObjectID
	for _, it := range items {
		if !seen[it.ShopID] {
			seen[it.ShopID] = true
			ids = append(ids, it.ShopID)
		}
	}

	summaries, err := m.shopSummariesByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, it := range items {
		it.Shop = summaries[it.ShopID]
	}
	return nil
}
