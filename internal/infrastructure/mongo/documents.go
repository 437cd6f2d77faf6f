package mongo

import "time"

// ServiceDocument は MongoDB 上でのサービススキーマを Go 構造体として表現したもの。
// The collection is keyed by an application-assigned integer _id so the
// public API exposes plain integer identifiers.
type ServiceDocument struct {
	ID         int64     `bson:"_id"`
	Name       string    `bson:"name"`
	Address    string    `bson:"address"`
	City       string    `bson:"city"`
	Category   *string   `bson:"category,omitempty"`
	Phone      *string   `bson:"phone,omitempty"`
	Website    *string   `bson:"website,omitempty"`
	PostalCode *string   `bson:"postalCode,omitempty"`
	Latitude   *float64  `bson:"latitude,omitempty"`
	Longitude  *float64  `bson:"longitude,omitempty"`
	CreatedAt  time.Time `bson:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt"`
}

// CounterDocument backs monotonic integer id assignment. One document per
// counter name; seq only ever moves forward.
type CounterDocument struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// ServiceCounterName is the counter document that feeds service ids.
const ServiceCounterName = "services"
