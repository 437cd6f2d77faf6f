package common

import (
	"strconv"
	"strings"
)

// ParseIntOrDefault parses value as an integer, falling back when the value
// is empty or malformed. Range clamping is the caller's business.
func ParseIntOrDefault(value string, fallback int) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
