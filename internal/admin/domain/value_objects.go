package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FieldError reports one invalid field as a machine-readable path + message.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Path + ": " + e.Message
}

// ValidationErrors collects every field failure of one request so the client
// gets the full list in a single 400 response.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, fieldErr := range e {
		messages = append(messages, fieldErr.Error())
	}
	return strings.Join(messages, "; ")
}

// Field bounds of the service record. Lengths are counted in runes.
const (
	MinNameRunes       = 2
	MaxNameRunes       = 200
	MinAddressRunes    = 5
	MaxAddressRunes    = 300
	MinCityRunes       = 2
	MaxCityRunes       = 100
	MaxCategoryRunes   = 100
	MaxPhoneRunes      = 50
	MaxWebsiteRunes    = 300
	MaxPostalCodeRunes = 20
)

// ValidateName checks the required name field. The empty string fails the
// minimum length; absence is never conflated with emptiness upstream.
func ValidateName(value string) *FieldError {
	return validateRequiredText("name", value, MinNameRunes, MaxNameRunes,
		"Name must be at least 2 characters", "Name is too long")
}

// ValidateAddress checks the required address field.
func ValidateAddress(value string) *FieldError {
	return validateRequiredText("address", value, MinAddressRunes, MaxAddressRunes,
		"Address must be at least 5 characters", "Address is too long")
}

// ValidateCity checks the required city field.
func ValidateCity(value string) *FieldError {
	return validateRequiredText("city", value, MinCityRunes, MaxCityRunes,
		"City must be at least 2 characters", "City is too long")
}

func validateRequiredText(path, value string, min, max int, tooShort, tooLong string) *FieldError {
	length := utf8.RuneCountInString(value)
	if length < min {
		return &FieldError{Path: path, Message: tooShort}
	}
	if length > max {
		return &FieldError{Path: path, Message: tooLong}
	}
	return nil
}

// NormalizeOptionalText validates an optional text field and normalizes
// empty/whitespace input to null. A nil value means the field was explicitly
// cleared or never provided, which is always valid.
func NormalizeOptionalText(path string, value *string, max int, tooLong string) (*string, *FieldError) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > max {
		return nil, &FieldError{Path: path, Message: tooLong}
	}
	return &trimmed, nil
}

// NormalizeCategory validates the optional category field.
func NormalizeCategory(value *string) (*string, *FieldError) {
	return NormalizeOptionalText("category", value, MaxCategoryRunes, "Category is too long")
}

// NormalizePhone validates the optional phone field.
func NormalizePhone(value *string) (*string, *FieldError) {
	return NormalizeOptionalText("phone", value, MaxPhoneRunes, "Phone is too long")
}

// NormalizeWebsite validates the optional website field.
func NormalizeWebsite(value *string) (*string, *FieldError) {
	return NormalizeOptionalText("website", value, MaxWebsiteRunes, "Website is too long")
}

// NormalizePostalCode validates the optional postal code field.
func NormalizePostalCode(value *string) (*string, *FieldError) {
	return NormalizeOptionalText("postalCode", value, MaxPostalCodeRunes, "Postal code is too long")
}

// Coordinate ranges. Latitude and longitude are independently nullable; a
// record may legitimately carry one without the other.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ValidateLatitude checks an optional latitude. nil means "not provided" and
// is always valid.
func ValidateLatitude(value *float64) *FieldError {
	return validateCoordinate("latitude", value, MinLatitude, MaxLatitude)
}

// ValidateLongitude checks an optional longitude.
func ValidateLongitude(value *float64) *FieldError {
	return validateCoordinate("longitude", value, MinLongitude, MaxLongitude)
}

func validateCoordinate(path string, value *float64, min, max float64) *FieldError {
	if value == nil {
		return nil
	}
	if *value < min || *value > max {
		return &FieldError{
			Path:    path,
			Message: fmt.Sprintf("%s must be between %g and %g", fieldLabel(path), min, max),
		}
	}
	return nil
}

// NotANumberError reports a coordinate value that could not be parsed.
func NotANumberError(path string) FieldError {
	return FieldError{Path: path, Message: fieldLabel(path) + " must be a number"}
}

// NullRequiredError reports an explicit null sent for a required column.
func NullRequiredError(path string) FieldError {
	return FieldError{Path: path, Message: fieldLabel(path) + " cannot be null"}
}

// NotAStringError reports a non-string value sent for a text field.
func NotAStringError(path string) FieldError {
	return FieldError{Path: path, Message: fieldLabel(path) + " must be a string"}
}

func fieldLabel(path string) string {
	if path == "" {
		return path
	}
	return strings.ToUpper(path[:1]) + path[1:]
}
