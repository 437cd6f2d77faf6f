package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	admindomain "github.com/FatemeGhalandari/ontario-service-finder/internal/admin/domain"
)

// StatsRepository computes whole-store aggregates for the admin dashboard.
type StatsRepository struct {
	collection *mongo.Collection
}

// NewStatsRepository binds the services collection.
func NewStatsRepository(db *mongo.Database, collectionName string) *StatsRepository {
	return &StatsRepository{collection: db.Collection(collectionName)}
}

// Overview counts the whole unfiltered collection and groups it by city and
// by category. Records without a category land in the Uncategorized bucket
// rather than being dropped.
func (r *StatsRepository) Overview(ctx context.Context) (*admindomain.StatsOverview, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	byCity, err := r.groupCounts(ctx, "$city")
	if err != nil {
		return nil, err
	}

	byCategory, err := r.groupCounts(ctx, bson.M{"$ifNull": bson.A{"$category", admindomain.UncategorizedLabel}})
	if err != nil {
		return nil, err
	}

	return &admindomain.StatsOverview{
		TotalServices: total,
		ByCity:        byCity,
		ByCategory:    byCategory,
	}, nil
}

// groupCounts runs a $group/$sum aggregation keyed by the given expression.
func (r *StatsRepository) groupCounts(ctx context.Context, keyExpr any) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   keyExpr,
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int64)
	for cursor.Next(ctx) {
		var row struct {
			Key   string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.Key] = row.Count
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
