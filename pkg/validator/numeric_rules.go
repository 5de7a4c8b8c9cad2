package validator

import (
	"strconv"
	"strings"
)

// Positive validates that a numeric value is strictly greater than zero.
func Positive[T Numeric](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool {
			return value > zero
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be greater than zero",
		},
	}
}

// ValidIntString validates that a string holds a base-10 integer that fits in
// 32 bits. An optional sign and surrounding whitespace are accepted.
func ValidIntString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := ParseInt(value)
			return err == nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be an integer",
		},
	}
}

// ParseInt parses value the same way ValidIntString checks it.
func ParseInt(value string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
