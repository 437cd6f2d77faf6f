package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/FatemeGhalandari/ontario-service-finder/internal/public/application"
	"github.com/FatemeGhalandari/ontario-service-finder/internal/public/domain"
)

// ServiceRepository implements application.ServiceRepository using MongoDB.
type ServiceRepository struct {
	collection *mongo.Collection
}

// NewServiceRepository creates a new Mongo-backed service repository.
func NewServiceRepository(db *mongo.Database, collectionName string) *ServiceRepository {
	return &ServiceRepository{collection: db.Collection(collectionName)}
}

// FindPage runs the count and the windowed fetch against the identical
// predicate and returns the page in sort order plus the unpaginated total.
func (r *ServiceRepository) FindPage(ctx context.Context, filter application.ServiceFilter, sort []application.SortKey, paging application.Paging) ([]domain.Service, int64, error) {
	mongoFilter := buildServiceFilter(filter)

	total, err := r.collection.CountDocuments(ctx, mongoFilter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(buildSortDocument(sort)).
		SetSkip(int64(paging.Skip())).
		SetLimit(int64(paging.PageSize))
	services, err := r.findServices(ctx, mongoFilter, opts)
	if err != nil {
		return nil, 0, err
	}
	return services, total, nil
}

// FindAll returns every matching record in sort order, with no window. Used
// by the CSV export, which must never silently truncate.
func (r *ServiceRepository) FindAll(ctx context.Context, filter application.ServiceFilter, sort []application.SortKey) ([]domain.Service, error) {
	opts := options.Find().SetSort(buildSortDocument(sort))
	return r.findServices(ctx, buildServiceFilter(filter), opts)
}

// FindByID returns a single service by its integer identifier.
func (r *ServiceRepository) FindByID(ctx context.Context, id int64) (*domain.Service, error) {
	var doc ServiceDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, err
	}
	service := mapServiceDocument(doc)
	return &service, nil
}

func (r *ServiceRepository) findServices(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Service, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	services := make([]domain.Service, 0)
	for cursor.Next(ctx) {
		var doc ServiceDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		services = append(services, mapServiceDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return services, nil
}

func mapServiceDocument(doc ServiceDocument) domain.Service {
	return domain.Service{
		ID:         doc.ID,
		Name:       doc.Name,
		Address:    doc.Address,
		City:       doc.City,
		Category:   doc.Category,
		Phone:      doc.Phone,
		Website:    doc.Website,
		PostalCode: doc.PostalCode,
		Latitude:   doc.Latitude,
		Longitude:  doc.Longitude,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}
