package utils

import "strconv"

// StrToInt64 converts a string to an int64, typically a path parameter.
// Returns 0 and an error if the conversion fails.
func StrToInt64(s string) (int64, error) {
	num, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return num, nil
}

// NewNullString is a helper for optional string fields, returning nil when
// the string is empty so the field is omitted from JSON.
func NewNullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
