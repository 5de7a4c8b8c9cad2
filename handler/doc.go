// Package handler provides type-safe HTTP handlers for JSON APIs.
//
// A HandlerFunc receives a Context (the request, its response writer and the
// request's context.Context) plus a typed request value, and returns a
// Response that knows how to render itself. Wrap turns it into an
// http.HandlerFunc usable with any router:
//
//	func valid(ctx handler.Context, _ struct{}) handler.Response {
//		set, err := svc.Catalog(ctx)
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.RawJSON(set)
//	}
//
//	r.Get("/books/valid", handler.Wrap(valid,
//		handler.WithErrorHandler[struct{}](handler.NewErrorHandler(log)),
//	))
//
// # Responses
//
//	handler.RawJSON(v)    // v as the whole body
//	handler.JSONError(err) // {"error": {"code": ..., "message": ...}}
//	handler.Error(err)    // delegate to the ErrorHandler
//
// JSON bodies are encoded with github.com/goccy/go-json.
//
// # Errors
//
// HTTPError carries a status code, a stable key and an optional message.
// JSONError and NewErrorHandler look for one in the error chain. Anything else
// becomes a 500 whose text is never sent to the client.
//
// # Decorators
//
// Decorators wrap a HandlerFunc for cross-cutting concerns. Logging is
// provided; the first decorator given to WithDecorators is the outermost.
package handler
