package validator

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidAbsoluteURL validates that a string is an absolute URL with a host.
// When schemes are given, the URL scheme must match one of them, compared
// case-insensitively.
func ValidAbsoluteURL(field, value string, schemes ...string) Rule {
	message := "must be an absolute URL"
	if len(schemes) > 0 {
		message = fmt.Sprintf("must be an absolute URL with scheme: %s", strings.Join(schemes, ", "))
	}

	return Rule{
		Check: func() bool {
			value := strings.TrimSpace(value)
			if value == "" {
				return false
			}

			u, err := url.Parse(value)
			if err != nil || !u.IsAbs() || u.Host == "" {
				return false
			}

			if len(schemes) == 0 {
				return true
			}
			for _, scheme := range schemes {
				if strings.EqualFold(u.Scheme, scheme) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: message,
		},
	}
}
