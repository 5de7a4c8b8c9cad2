package validator

import (
	"errors"
	"fmt"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError describes a failed rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// First executes rules in order and returns the first failure as a
// ValidationError. Rules after the failing one are not evaluated.
func First(rules ...Rule) error {
	for _, rule := range rules {
		if !rule.Check() {
			return rule.Error
		}
	}
	return nil
}

// ExtractValidationError returns the ValidationError in err's chain.
func ExtractValidationError(err error) (ValidationError, bool) {
	var verr ValidationError
	if err == nil || !errors.As(err, &verr) {
		return ValidationError{}, false
	}
	return verr, true
}
