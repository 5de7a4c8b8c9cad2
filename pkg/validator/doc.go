// Package validator provides small, declarative validation rules.
//
// A Rule couples a Check function with the ValidationError reported when the
// check fails. First evaluates rules in order and stops at the first failure;
// checks are closures, so rules after the failing one never run.
//
//	err := validator.First(
//		validator.ValidIntString("year", year),
//		validator.Positive("year", parsed),
//		validator.ValidAbsoluteURL("publisher", publisher, "http", "https"),
//	)
//	if verr, ok := validator.ExtractValidationError(err); ok {
//		field := verr.Field
//		// ...
//	}
package validator
