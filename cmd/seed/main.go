// Command seed wipes and repopulates the directory with sample cities, shops
// and products so the search and detail pages have data to serve.
package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"citydirectory/internal/models"
	"citydirectory/internal/validator"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

var sampleShops = []models.Shop{
	{
		Name:         "Gupta General Store",
		City:         "Delhi",
		Address:      "123, Main Bazaar, Karol Bagh",
		Phone:        "+911234567890",
		Whatsapp:     "+911234567890",
		Location:     &models.GeoPoint{Type: "Point", Coordinates: []float64{77.1900, 28.6500}},
		Categories:   []string{"kirana", "general"},
		Images:       []string{"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=600"},
		OpeningHours: "Mon-Sun 9:00 AM - 9:00 PM",
	},
	{
		Name:         "Mumbai Kirana Mart",
		City:         "Mumbai",
		Address:      "456, SV Road, Bandra West",
		Phone:        "+912234567890",
		Whatsapp:     "+912234567890",
		Location:     &models.GeoPoint{Type: "Point", Coordinates: []float64{72.8400, 19.0600}},
		Categories:   []string{"kirana", "snacks"},
		Images:       []string{"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=600"},
		OpeningHours: "Mon-Sun 8:00 AM - 10:00 PM",
	},
	{
		Name:         "Bareilly Super Store",
		City:         "Bareilly",
		Address:      "789, Civil Lines, Near Railway Station",
		Phone:        "+915812345678",
		Whatsapp:     "+915812345678",
		Location:     &models.GeoPoint{Type: "Point", Coordinates: []float64{79.4304, 28.3670}},
		Categories:   []string{"kirana", "household", "toiletries"},
		Images:       []string{"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=600"},
		OpeningHours: "Mon-Sun 7:00 AM - 11:00 PM",
	},
	{
		Name:         "Bengaluru Tech Store",
		City:         "Bengaluru",
		Address:      "321, MG Road, Brigade Road",
		Phone:        "+918012345678",
		Whatsapp:     "+918012345678",
		Location:     &models.GeoPoint{Type: "Point", Coordinates: []float64{77.5946, 12.9716}},
		Categories:   []string{"general", "beverages"},
		Images:       []string{"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=600"},
		OpeningHours: "Mon-Sun 9:00 AM - 9:30 PM",
	},
}

var sampleProducts = []models.Product{
	{Name: "Aashirvaad Atta 5kg", Description: "Whole wheat flour, 5kg pack", Category: "kirana", Price: 220, Image: "https://images.unsplash.com/photo-1574323347407-f5e1ad6d020b?w=300", SKU: "ATT5KG", InStock: true},
	{Name: "Parle-G Biscuit 800g", Description: "Classic Parle-G value pack", Category: "snacks", Price: 75, Image: "https://images.unsplash.com/photo-1558961363-fa8fdf82db35?w=300", SKU: "PG800", InStock: true},
	{Name: "Tata Salt 1kg", Description: "Iodized salt, 1kg pack", Category: "kirana", Price: 25, Image: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300", SKU: "SALT1KG", InStock: true},
	{Name: "Maggi Noodles 12-pack", Description: "2-minute noodles variety pack", Category: "snacks", Price: 144, Image: "https://images.unsplash.com/photo-1585032226651-759b368d7246?w=300", SKU: "MAG12", InStock: true},
	{Name: "Colgate Toothpaste 200g", Description: "Total advanced health toothpaste", Category: "toiletries", Price: 85, Image: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=300", SKU: "COL200", InStock: true},
	{Name: "Coca Cola 2L", Description: "Refreshing cola drink, 2 liter bottle", Category: "beverages", Price: 90, Image: "https://images.unsplash.com/photo-1561758033-d89a9ad46330?w=300", SKU: "COKE2L", InStock: true},
	{Name: "Surf Excel 1kg", Description: "Matic front load detergent powder", Category: "household", Price: 180, Image: "https://images.unsplash.com/photo-1583947215259-38e31be8751f?w=300", SKU: "SURF1KG", InStock: true},
	{Name: "Amul Milk 1L", Description: "Full cream fresh milk, 1 liter", Category: "dairy", Price: 60, Image: "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=300", SKU: "MILK1L", InStock: true},
}

var sampleCities = []string{"Delhi", "Mumbai", "Bengaluru", "Kolkata", "Chennai", "Bareilly", "Pune", "Hyderabad"}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://127.0.0.1:27017"
	}
	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "citydirectory"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := models.OpenMongoDB(ctx, uri, dbName)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close(ctx)

	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatal(err)
	}

	validateSamples()

	if err := seed(ctx, db); err != nil {
		log.Fatal(err)
	}
	log.Printf("Seeded %d shops, %d products, %d cities", len(sampleShops), len(sampleProducts), len(sampleCities))
}

// validateSamples runs the sample data through the same rules user input is
// held to, so the seed can never plant records the handlers would reject.
func validateSamples() {
	for _, s := range sampleShops {
		errs := validator.ValidateShop(validator.ShopInput{
			Name: s.Name, City: s.City, Address: s.Address,
			Phone: s.Phone, Whatsapp: s.Whatsapp,
		})
		if len(errs) > 0 {
			log.Fatalf("invalid sample shop %q: %s", s.Name, strings.Join(errs, "; "))
		}
	}
	for _, p := range sampleProducts {
		errs := validator.ValidateProduct(validator.ProductInput{
			Name: p.Name, Description: p.Description,
			Category: p.Category, Price: p.Price,
		})
		if len(errs) > 0 {
			log.Fatalf("invalid sample product %q: %s", p.Name, strings.Join(errs, "; "))
		}
	}
}

func seed(ctx context.Context, db *models.MongoDB) error {
	if err := clear(ctx, db); err != nil {
		return err
	}

	now := time.Now()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		docs := make([]interface{}, 0, len(sampleCities))
		for _, name := range sampleCities {
			docs = append(docs, models.City{ID: primitive.NewObjectID(), Name: name, CreatedAt: now})
		}
		_, err := db.Cities.InsertMany(ctx, docs)
		return err
	})

	g.Go(func() error {
		shopDocs := make([]interface{}, 0, len(sampleShops))
		for i := range sampleShops {
			sampleShops[i].ID = primitive.NewObjectID()
			sampleShops[i].CreatedAt = now
			shopDocs = append(shopDocs, sampleShops[i])
		}
		if _, err := db.Shops.InsertMany(ctx, shopDocs); err != nil {
			return err
		}

		// Products are assigned to shops round-robin.
		productDocs := make([]interface{}, 0, len(sampleProducts))
		for i := range sampleProducts {
			sampleProducts[i].ID = primitive.NewObjectID()
			sampleProducts[i].ShopID = sampleShops[i%len(sampleShops)].ID
			sampleProducts[i].CreatedAt = now
			productDocs = append(productDocs, sampleProducts[i])
		}
		_, err := db.Products.InsertMany(ctx, productDocs)
		return err
	})

	return g.Wait()
}

func clear(ctx context.Context, db *models.MongoDB) error {
	if _, err := db.Shops.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if _, err := db.Products.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	_, err := db.Cities.DeleteMany(ctx, bson.M{})
	return err
}
