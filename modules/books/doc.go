// Package books serves the catalog validation endpoint.
//
// Service reads the configured catalog document from a file.Storage, runs it
// through a catalog.Processor and renders the result:
//
//	svc := books.NewService(cfg, storage, books.WithLogger(log), books.WithMetrics(m))
//	r.Mount("/books", svc.Handle())
//
// GET /books/valid answers 200 with {"validBooks": [...], "invalidBooks": [...]}.
// A missing document answers 404 with "<file> NOT FOUND", a malformed one 500
// with code malformed_input. A client that goes away gets 499 and an expired
// processing timeout 504.
package books
