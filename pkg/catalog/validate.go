package catalog

import "github.com/dmitrymomot/bookcatalog/pkg/validator"

var allowedPublisherSchemes = []string{"http", "https"}

// Validate classifies raw. Year is checked first; the publisher is only checked
// when the year passed. Validate never fails and has no side effects.
func Validate(raw RawRecord) Result {
	yearText, _ := raw.Year.Get()
	publisher, _ := raw.Publisher.Get()

	year, _ := validator.ParseInt(yearText)

	err := validator.First(
		validator.ValidIntString(string(FieldYear), yearText),
		validator.Positive(string(FieldYear), year),
		validator.ValidAbsoluteURL(string(FieldPublisher), publisher, allowedPublisherSchemes...),
	)
	if verr, ok := validator.ExtractValidationError(err); ok {
		return Rejected(RejectedRecord{
			Title:  raw.Title.Ptr(),
			Reason: reasonFor(Field(verr.Field)),
		})
	}

	return Accepted(ValidatedRecord{
		Title:     raw.Title.OrEmpty(),
		Author:    raw.Author.OrEmpty(),
		Genre:     raw.Genre.OrEmpty(),
		Year:      year,
		Publisher: publisher,
	})
}

func reasonFor(f Field) Reason {
	if f == FieldPublisher {
		return ReasonInvalidPublisher
	}
	return ReasonInvalidYear
}
