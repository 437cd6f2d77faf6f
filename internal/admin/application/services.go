package application

import (
	"context"

	admindomain "github.com/FatemeGhalandari/ontario-service-finder/internal/admin/domain"
	publicdomain "github.com/FatemeGhalandari/ontario-service-finder/internal/public/domain"
)

// ServiceRepository abstracts write access to the services collection.
// ServiceRepository は管理コンテキストでサービスを書き込むためのポート。
type ServiceRepository interface {
	Create(ctx context.Context, cmd CreateServiceCommand) (*publicdomain.Service, error)
	Update(ctx context.Context, id int64, cmd UpdateServiceCommand) (*publicdomain.Service, error)
	Delete(ctx context.Context, id int64) error
}

// StatsRepository abstracts the whole-store aggregation.
type StatsRepository interface {
	Overview(ctx context.Context) (*admindomain.StatsOverview, error)
}

// CreateServiceCommand carries a fully validated create payload. Optional
// fields are nil when not provided; empty strings have already been
// normalized to null.
type CreateServiceCommand struct {
	Name       string
	Address    string
	City       string
	Category   *string
	Phone      *string
	Website    *string
	PostalCode *string
	Latitude   *float64
	Longitude  *float64
}

// FieldUpdate is a presence-aware text field of a partial update: Set
// distinguishes "key present" from "key absent", and a nil Value with Set
// true is an explicit null that clears the column.
type FieldUpdate struct {
	Set   bool
	Value *string
}

// CoordinateUpdate is the presence-aware counterpart for latitude/longitude.
type CoordinateUpdate struct {
	Set   bool
	Value *float64
}

// UpdateServiceCommand carries a validated partial update. Only fields with
// Set true are touched; required columns never carry a nil Value here.
type UpdateServiceCommand struct {
	Name       FieldUpdate
	Address    FieldUpdate
	City       FieldUpdate
	Category   FieldUpdate
	Phone      FieldUpdate
	Website    FieldUpdate
	PostalCode FieldUpdate
	Latitude   CoordinateUpdate
	Longitude  CoordinateUpdate
}

// Empty reports whether the update touches no field at all.
func (c UpdateServiceCommand) Empty() bool {
	return !c.Name.Set && !c.Address.Set && !c.City.Set && !c.Category.Set &&
		!c.Phone.Set && !c.Website.Set && !c.PostalCode.Set &&
		!c.Latitude.Set && !c.Longitude.Set
}

// ServiceService describes the administrative write use-cases.
type ServiceService interface {
	Create(ctx context.Context, cmd CreateServiceCommand) (*publicdomain.Service, error)
	Update(ctx context.Context, id int64, cmd UpdateServiceCommand) (*publicdomain.Service, error)
	Delete(ctx context.Context, id int64) error
}

// StatsService describes the aggregate read use-case.
type StatsService interface {
	Overview(ctx context.Context) (*admindomain.StatsOverview, error)
}
