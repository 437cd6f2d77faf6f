package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/FatemeGhalandari/ontario-service-finder/internal/public/application"
)

// buildServiceFilter translates the application filter into a Mongo
// predicate. Both the count and the windowed fetch must consume the same
// output so page totals stay consistent with page contents.
func buildServiceFilter(filter application.ServiceFilter) bson.M {
	clauses := make(bson.A, 0, 3)

	if filter.Query != "" {
		regex := substringInsensitive(filter.Query)
		clauses = append(clauses, bson.M{"$or": bson.A{
			bson.M{"name": regex},
			bson.M{"address": regex},
			bson.M{"city": regex},
			bson.M{"category": regex},
			bson.M{"postalCode": regex},
		}})
	}
	if filter.City != "" {
		clauses = append(clauses, bson.M{"city": exactInsensitive(filter.City)})
	}
	if filter.Category != "" {
		clauses = append(clauses, bson.M{"category": exactInsensitive(filter.Category)})
	}

	switch len(clauses) {
	case 0:
		return bson.M{}
	case 1:
		return clauses[0].(bson.M)
	default:
		return bson.M{"$and": clauses}
	}
}

// substringInsensitive matches the value anywhere in the field, case-insensitively.
func substringInsensitive(value string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
}

// exactInsensitive matches the whole field value, case-insensitively.
func exactInsensitive(value string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}
}

// buildSortDocument maps the resolved sort keys onto a Mongo sort document.
// A trailing ascending _id key keeps the store-side ordering fully
// deterministic even when every resolved key compares equal.
func buildSortDocument(keys []application.SortKey) bson.D {
	doc := make(bson.D, 0, len(keys)+1)
	for _, key := range keys {
		direction := 1
		if key.Descending {
			direction = -1
		}
		doc = append(doc, bson.E{Key: sortColumn(key.Field), Value: direction})
	}
	return append(doc, bson.E{Key: "_id", Value: 1})
}

func sortColumn(field application.SortField) string {
	switch field {
	case application.SortByName:
		return "name"
	case application.SortByCity:
		return "city"
	case application.SortByCategory:
		return "category"
	default:
		return "createdAt"
	}
}
