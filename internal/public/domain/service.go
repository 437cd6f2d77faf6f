package domain

import "time"

// Service represents one record of the community-service directory.
// Optional columns are pointers so that null survives the round trip to the
// store and back out as JSON null, exactly as the clients expect.
type Service struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	Category   *string   `json:"category"`
	Phone      *string   `json:"phone"`
	Website    *string   `json:"website"`
	PostalCode *string   `json:"postalCode"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
