package inventory

import (
	"strconv"
	"strings"
)

// Field names reported in ValidationError
const (
	FieldName     = "name"
	FieldQuantity = "quantity"
)

// NormalizeName trims surrounding whitespace and rejects an empty item name
func NormalizeName(text string) (string, error) {
	name := strings.TrimSpace(text)
	if name == "" {
		return "", &ValidationError{Field: FieldName, Reason: "required"}
	}
	return name, nil
}

// ParseQuantity parses quantity text as a positive integer
func ParseQuantity(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, &ValidationError{Field: FieldQuantity, Reason: "required"}
	}

	qty, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &ValidationError{Field: FieldQuantity, Reason: "not a whole number"}
	}
	if qty <= 0 {
		return 0, &ValidationError{Field: FieldQuantity, Reason: "must be positive"}
	}
	return qty, nil
}
