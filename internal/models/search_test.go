package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func f64(v float64) *float64 { return &v }

func TestBuildSearchPlanDefaults(t *testing.T) {
	t.Parallel()

	plan := buildSearchPlan(SearchParams{}, nil, false)

	assert.Equal(t, bson.M{}, plan.filter)
	assert.Nil(t, plan.sort)
	assert.Nil(t, plan.projection)
	assert.Equal(t, int64(0), plan.skip)
	assert.Equal(t, int64(20), plan.limit)
}

func TestBuildSearchPlanCityWithNoShopsMatchesNothing(t *testing.T) {
	t.Parallel()

	plan := buildSearchPlan(SearchParams{City: "Atlantis"}, nil, true)

	require.Contains(t, plan.filter, "shop")
	assert.Equal(t, bson.M{"$in": []primitive.ObjectID{}}, plan.filter["shop"])
}

func TestBuildSearchPlanCityWithShops(t *testing.T) {
	t.Parallel()

	ids := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}
	plan := buildSearchPlan(SearchParams{City: "Mumbai"}, ids, true)

	assert.Equal(t, bson.M{"$in": ids}, plan.filter["shop"])
}

func TestBuildSearchPlanNoCityHasNoShopClause(t *testing.T) {
	t.Parallel()

	plan := buildSearchPlan(SearchParams{Query: "atta"}, nil, false)

	assert.NotContains(t, plan.filter, "shop")
}

func TestBuildSearchPlanTextAndCategory(t *testing.T) {
	t.Parallel()

	plan := buildSearchPlan(SearchParams{Query: "atta", Category: "kirana"}, nil, false)

	assert.Equal(t, bson.M{"$search": "atta"}, plan.filter["$text"])
	assert.Equal(t, "kirana", plan.filter["category"])
}

func TestBuildSearchPlanPriceBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		min  *float64
		max  *float64
		want bson.M
	}{
		{name: "min only", min: f64(10), want: bson.M{"$gte": 10.0}},
		{name: "max only", max: f64(99), want: bson.M{"$lte": 99.0}},
		{name: "both", min: f64(10), max: f64(99), want: bson.M{"$gte": 10.0, "$lte": 99.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := buildSearchPlan(SearchParams{MinPrice: tt.min, MaxPrice: tt.max}, nil, false)
			assert.Equal(t, tt.want, plan.filter["price"])
		})
	}
}

func TestBuildSearchPlanNoPriceClauseWithoutBounds(t *testing.T) {
	t.Parallel()

	plan := buildSearchPlan(SearchParams{}, nil, false)
	assert.NotContains(t, plan.filter, "price")
}

func TestBuildSearchPlanSortPrecedence(t *testing.T) {
	t.Parallel()

	// Free text with no explicit sort ranks by text relevance.
	plan := buildSearchPlan(SearchParams{Query: "atta"}, nil, false)
	require.NotNil(t, plan.sort)
	assert.Equal(t, bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}}, plan.sort)
	assert.Equal(t, bson.M{"score": bson.M{"$meta": "textScore"}}, plan.projection)

	// An explicit sort beats text relevance.
	plan = buildSearchPlan(SearchParams{Query: "atta", Sort: "price_asc"}, nil, false)
	assert.Equal(t, bson.D{{Key: "price", Value: 1}}, plan.sort)
	assert.Nil(t, plan.projection)

	plan = buildSearchPlan(SearchParams{Sort: "price_desc"}, nil, false)
	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, plan.sort)

	plan = buildSearchPlan(SearchParams{Sort: "name_asc"}, nil, false)
	assert.Equal(t, bson.D{{Key: "name", Value: 1}}, plan.sort)

	plan = buildSearchPlan(SearchParams{Sort: "newest"}, nil, false)
	assert.Equal(t, bson.D{{Key: "created_at", Value: -1}}, plan.sort)

	// Unknown sort values are ignored, not rejected.
	plan = buildSearchPlan(SearchParams{Sort: "views_desc"}, nil, false)
	assert.Nil(t, plan.sort)
}

func TestBuildSearchPlanPagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     int
		wantSkip int64
	}{
		{name: "zero clamps to first page", page: 0, wantSkip: 0},
		{name: "negative clamps to first page", page: -5, wantSkip: 0},
		{name: "first page", page: 1, wantSkip: 0},
		{name: "third page", page: 3, wantSkip: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := buildSearchPlan(SearchParams{Page: tt.page}, nil, false)
			assert.Equal(t, tt.wantSkip, plan.skip)
			assert.Equal(t, int64(20), plan.limit)
		})
	}
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total int64
		want  int
	}{
		{total: 0, want: 1},
		{total: 1, want: 1},
		{total: 20, want: 1},
		{total: 21, want: 2},
		{total: 40, want: 2},
		{total: 41, want: 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, totalPages(tt.total), "totalPages(%d)", tt.total)
	}
}
