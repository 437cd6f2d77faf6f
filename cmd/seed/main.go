// Command seed wipes the services collection and loads the Ontario sample
// data set. Development use only.
package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/FatemeGhalandari/ontario-service-finder/internal/config"
	mongodoc "github.com/FatemeGhalandari/ontario-service-finder/internal/infrastructure/mongo"
)

type seedService struct {
	name       string
	address    string
	city       string
	category   string
	phone      string
	website    string
	postalCode string
	latitude   float64
	longitude  float64
}

var seedServices = []seedService{
	{
		name:       "Downtown Community Health Centre",
		address:    "123 Queen St W",
		city:       "Toronto",
		category:   "Health",
		phone:      "416-555-1001",
		website:    "https://example-health-toronto.ca",
		postalCode: "M5H 2M9",
		latitude:   43.65107,
		longitude:  -79.347015,
	},
	{
		name:       "Parkdale Community Legal Clinic",
		address:    "220 Cowan Ave",
		city:       "Toronto",
		category:   "Legal",
		phone:      "416-555-2002",
		website:    "https://example-legal-parkdale.ca",
		postalCode: "M6K 2N6",
		latitude:   43.639,
		longitude:  -79.4305,
	},
	{
		name:       "Eastside Food Bank",
		address:    "45 Main St",
		city:       "Hamilton",
		category:   "Food Bank",
		phone:      "905-555-3003",
		postalCode: "L8H 1A1",
		latitude:   43.2557,
		longitude:  -79.8711,
	},
	{
		name:       "Ottawa Community Housing Resource Centre",
		address:    "750 Somerset St W",
		city:       "Ottawa",
		category:   "Housing",
		phone:      "613-555-4004",
		website:    "ottawa-housing-example.ca",
		postalCode: "K1R 6P9",
		latitude:   45.4215,
		longitude:  -75.6972,
	},
	{
		name:       "North York Youth Employment Hub",
		address:    "10 Finch Ave W",
		city:       "Toronto",
		category:   "Employment",
		phone:      "416-555-5005",
		postalCode: "M2N 6L9",
		latitude:   43.7805,
		longitude:  -79.4156,
	},
	{
		name:       "Scarborough Women's Shelter",
		address:    "Confidential Location",
		city:       "Toronto",
		category:   "Shelter",
		phone:      "416-555-6006",
		postalCode: "M1P 4X1",
		latitude:   43.7735,
		longitude:  -79.251,
	},
	{
		name:       "Waterloo Newcomer Settlement Centre",
		address:    "55 King St S",
		city:       "Waterloo",
		category:   "Settlement",
		phone:      "519-555-7007",
		website:    "https://waterloo-newcomers-example.ca",
		postalCode: "N2J 1P2",
		latitude:   43.4643,
		longitude:  -80.5204,
	},
	{
		name:       "Mississauga Seniors Recreation Centre",
		address:    "100 Lakeshore Rd W",
		city:       "Mississauga",
		category:   "Seniors",
		phone:      "905-555-8008",
		postalCode: "L5H 1G3",
		latitude:   43.5527,
		longitude:  -79.5937,
	},
	{
		name:       "Downtown Toronto Public Library Branch",
		address:    "789 Yonge St",
		city:       "Toronto",
		category:   "Library",
		phone:      "416-555-9009",
		website:    "torontopubliclibrary.ca",
		postalCode: "M4W 2G8",
		latitude:   43.6712,
		longitude:  -79.3868,
	},
	{
		name:       "Kingston Mental Health Support Centre",
		address:    "300 Princess St",
		city:       "Kingston",
		category:   "Mental Health",
		phone:      "613-555-1010",
		postalCode: "K7L 1B4",
		latitude:   44.2312,
		longitude:  -76.486,
	},
}

func main() {
	cfg := config.Load()
	logger := cfg.ServerLog

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Printf("error while disconnecting MongoDB: %v", err)
		}
	}()

	database := client.Database(cfg.MongoDatabase)
	services := database.Collection(cfg.ServiceCollection)
	counters := database.Collection(cfg.CounterCollection)

	logger.Printf("seeding services into %s.%s", cfg.MongoDatabase, cfg.ServiceCollection)

	if _, err := services.DeleteMany(ctx, bson.M{}); err != nil {
		logger.Fatalf("failed to clear services: %v", err)
	}
	// Restart id assignment from 1 so the sample data set is predictable.
	if _, err := counters.DeleteOne(ctx, bson.M{"_id": mongodoc.ServiceCounterName}); err != nil {
		logger.Fatalf("failed to reset service counter: %v", err)
	}

	now := time.Now().UTC()
	docs := make([]any, 0, len(seedServices))
	for i, seed := range seedServices {
		docs = append(docs, mongodoc.ServiceDocument{
			ID:         int64(i + 1),
			Name:       seed.name,
			Address:    seed.address,
			City:       seed.city,
			Category:   optional(seed.category),
			Phone:      optional(seed.phone),
			Website:    optional(seed.website),
			PostalCode: optional(seed.postalCode),
			Latitude:   &seedServices[i].latitude,
			Longitude:  &seedServices[i].longitude,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	if _, err := services.InsertMany(ctx, docs); err != nil {
		logger.Fatalf("failed to insert services: %v", err)
	}
	if _, err := counters.InsertOne(ctx, mongodoc.CounterDocument{
		ID:  mongodoc.ServiceCounterName,
		Seq: int64(len(seedServices)),
	}); err != nil {
		logger.Fatalf("failed to seed service counter: %v", err)
	}

	logger.Printf("inserted %d services", len(docs))
}

// optional maps the empty string onto a stored null.
func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
