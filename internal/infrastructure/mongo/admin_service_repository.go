package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	adminapp "github.com/FatemeGhalandari/ontario-service-finder/internal/admin/application"
	publicdomain "github.com/FatemeGhalandari/ontario-service-finder/internal/public/domain"
)

// AdminServiceRepository は管理者向けサービス書き込みの Mongo 実装。
// Identifiers come from a counters collection so they stay integer,
// monotonic and immutable for the lifetime of the store.
type AdminServiceRepository struct {
	services *mongo.Collection
	counters *mongo.Collection
}

// NewAdminServiceRepository binds the services and counters collections.
func NewAdminServiceRepository(db *mongo.Database, serviceCollection, counterCollection string) *AdminServiceRepository {
	return &AdminServiceRepository{
		services: db.Collection(serviceCollection),
		counters: db.Collection(counterCollection),
	}
}

// Create assigns the next id and inserts a fully populated document. Both
// timestamps start equal so updatedAt >= createdAt holds from birth.
func (r *AdminServiceRepository) Create(ctx context.Context, cmd adminapp.CreateServiceCommand) (*publicdomain.Service, error) {
	id, err := r.nextServiceID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := ServiceDocument{
		ID:         id,
		Name:       cmd.Name,
		Address:    cmd.Address,
		City:       cmd.City,
		Category:   cmd.Category,
		Phone:      cmd.Phone,
		Website:    cmd.Website,
		PostalCode: cmd.PostalCode,
		Latitude:   cmd.Latitude,
		Longitude:  cmd.Longitude,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := r.services.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	service := mapServiceDocument(doc)
	return &service, nil
}

// Update applies only the fields the command marks as set, so an omitted key
// leaves the stored value untouched while an explicit null clears it. Returns
// mongo.ErrNoDocuments when the id does not exist.
func (r *AdminServiceRepository) Update(ctx context.Context, id int64, cmd adminapp.UpdateServiceCommand) (*publicdomain.Service, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if cmd.Name.Set {
		set["name"] = *cmd.Name.Value
	}
	if cmd.Address.Set {
		set["address"] = *cmd.Address.Value
	}
	if cmd.City.Set {
		set["city"] = *cmd.City.Value
	}
	if cmd.Category.Set {
		set["category"] = cmd.Category.Value
	}
	if cmd.Phone.Set {
		set["phone"] = cmd.Phone.Value
	}
	if cmd.Website.Set {
		set["website"] = cmd.Website.Value
	}
	if cmd.PostalCode.Set {
		set["postalCode"] = cmd.PostalCode.Value
	}
	if cmd.Latitude.Set {
		set["latitude"] = cmd.Latitude.Value
	}
	if cmd.Longitude.Set {
		set["longitude"] = cmd.Longitude.Value
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc ServiceDocument
	if err := r.services.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		return nil, err
	}

	service := mapServiceDocument(doc)
	return &service, nil
}

// Delete removes the record. Deleting a missing id reports
// mongo.ErrNoDocuments so the handler can answer 404 instead of pretending
// success.
func (r *AdminServiceRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.services.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// nextServiceID bumps the service counter atomically and returns the new
// value. The upsert seeds the counter on first use.
func (r *AdminServiceRepository) nextServiceID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var counter CounterDocument
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": ServiceCounterName},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
