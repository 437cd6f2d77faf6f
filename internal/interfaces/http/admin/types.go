package admin

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// optionalString decodes a JSON field that may be absent, null, or a string.
// UnmarshalJSON only runs when the key is present, which is what makes the
// absent/null distinction observable. Type mismatches are recorded instead
// of failing the whole decode so the response can name the offending field.
type optionalString struct {
	set     bool
	invalid bool
	value   *string
}

func (f *optionalString) UnmarshalJSON(data []byte) error {
	f.set = true
	if bytes.Equal(data, []byte("null")) {
		f.value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		f.invalid = true
		return nil
	}
	f.value = &s
	return nil
}

// coordinateField decodes latitude/longitude values, which clients send as
// numbers, numeric strings, empty strings, or null. Empty string and null
// both mean "no coordinate". Anything unparseable is recorded as invalid.
type coordinateField struct {
	set     bool
	null    bool
	invalid bool
	value   float64
}

func (f *coordinateField) UnmarshalJSON(data []byte) error {
	f.set = true
	if bytes.Equal(data, []byte("null")) {
		f.null = true
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		f.value = num
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		f.invalid = true
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		f.null = true
		return nil
	}
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		f.invalid = true
		return nil
	}
	f.value = parsed
	return nil
}

type serviceCreateRequest struct {
	Name       string          `json:"name"`
	Address    string          `json:"address"`
	City       string          `json:"city"`
	Category   optionalString  `json:"category"`
	Phone      optionalString  `json:"phone"`
	Website    optionalString  `json:"website"`
	PostalCode optionalString  `json:"postalCode"`
	Latitude   coordinateField `json:"latitude"`
	Longitude  coordinateField `json:"longitude"`
}

type serviceUpdateRequest struct {
	Name       optionalString  `json:"name"`
	Address    optionalString  `json:"address"`
	City       optionalString  `json:"city"`
	Category   optionalString  `json:"category"`
	Phone      optionalString  `json:"phone"`
	Website    optionalString  `json:"website"`
	PostalCode optionalString  `json:"postalCode"`
	Latitude   coordinateField `json:"latitude"`
	Longitude  coordinateField `json:"longitude"`
}

type statsResponse struct {
	TotalServices int64            `json:"totalServices"`
	ByCity        map[string]int64 `json:"byCity"`
	ByCategory    map[string]int64 `json:"byCategory"`
}
