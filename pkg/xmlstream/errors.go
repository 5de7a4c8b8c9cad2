package xmlstream

import "errors"

var (
	// ErrMalformed is returned for any well-formedness violation: syntax errors,
	// unclosed tags, a missing root element or content after the root element.
	ErrMalformed = errors.New("malformed xml document")

	// ErrUnsupportedCharset is returned when the document declares an encoding
	// that cannot be decoded. It is always joined with ErrMalformed.
	ErrUnsupportedCharset = errors.New("unsupported charset")
)
