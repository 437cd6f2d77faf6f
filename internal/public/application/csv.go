package application

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/FatemeGhalandari/ontario-service-finder/internal/public/domain"
)

// csvHeader fixes the exported column set and order.
var csvHeader = []string{
	"id", "name", "address", "city", "category", "phone", "website",
	"postalCode", "latitude", "longitude", "createdAt", "updatedAt",
}

// WriteServicesCSV serializes the services into CSV in input order: one
// header row, one row per record, RFC 4180 quoting, null fields rendered as
// the empty string and timestamps as RFC 3339 text.
func WriteServicesCSV(w io.Writer, services []domain.Service) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, service := range services {
		if err := writer.Write(serviceCSVRow(service)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func serviceCSVRow(service domain.Service) []string {
	return []string{
		strconv.FormatInt(service.ID, 10),
		service.Name,
		service.Address,
		service.City,
		stringCell(service.Category),
		stringCell(service.Phone),
		stringCell(service.Website),
		stringCell(service.PostalCode),
		floatCell(service.Latitude),
		floatCell(service.Longitude),
		service.CreatedAt.UTC().Format(time.RFC3339),
		service.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func stringCell(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func floatCell(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}
