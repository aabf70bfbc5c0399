package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrDuplicateCity      = errors.New("models: duplicate city")
)

type City struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	CreatedAt time.Time          `bson:"created_at"`
}

// GeoPoint is a GeoJSON point, coordinates ordered [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

type Shop struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	City         string             `bson:"city"`
	Address      string             `bson:"address"`
	Phone        string             `bson:"phone"`
	Whatsapp     string             `bson:"whatsapp,omitempty"`
	Location     *GeoPoint          `bson:"location,omitempty"`
	Categories   []string           `bson:"categories"`
	Images       []string           `bson:"images"`
	OpeningHours string             `bson:"opening_hours,omitempty"`
	OwnerUserID  primitive.ObjectID `bson:"owner_user_id,omitempty"`
	Verified     bool               `bson:"verified"`
	Views        int64              `bson:"views"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// ShopSummary is the restricted projection of a shop attached to product
// pages and search results. Location is only filled in on detail pages.
type ShopSummary struct {
	ID       primitive.ObjectID `bson:"_id"`
	Name     string             `bson:"name"`
	Address  string             `bson:"address"`
	Phone    string             `bson:"phone"`
	City     string             `bson:"city"`
	Location *GeoPoint          `bson:"location,omitempty"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ShopID      primitive.ObjectID `bson:"shop"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Category    string             `bson:"category,omitempty"`
	Price       float64            `bson:"price"`
	Image       string             `bson:"image,omitempty"`
	SKU         string             `bson:"sku,omitempty"`
	InStock     bool               `bson:"in_stock"`
	Views       int64              `bson:"views"`
	CreatedAt   time.Time          `bson:"created_at"`
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    time.Time          `bson:"created_at"`
}
