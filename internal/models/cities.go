package models

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Shown on the landing page when neither shops nor manually added cities
// exist yet.
var defaultCities = []string{"Delhi", "Mumbai", "Bengaluru", "Kolkata", "Chennai", "Bareilly"}

// CityNames merges the distinct cities shops live in with the manually added
// city records, deduplicated and sorted.
func (m *MongoDB) CityNames(ctx context.Context) ([]string, error) {
	shopCities, err := m.Shops.Distinct(ctx, "city", bson.M{})
	if err != nil {
		return nil, err
	}
	manual, err := m.Cities.Distinct(ctx, "name", bson.M{})
	if err != nil {
		return nil, err
	}
	return mergeCityNames(distinctStrings(shopCities), distinctStrings(manual)), nil
}

func (m *MongoDB) CreateCity(ctx context.Context, name string) error {
	city := City{
		ID:        primitive.NewObjectID(),
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now(),
	}

	_, err := m.Cities.InsertOne(ctx, city)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateCity
	}
	return err
}

func distinctStrings(values []interface{}) []string {
	var out []string
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func mergeCityNames(groups ...[]string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, g := range groups {
		for _, name := range g {
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		names = append(names, defaultCities...)
	}
	sort.Strings(names)
	return names
}
