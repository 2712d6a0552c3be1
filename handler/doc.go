// Package handler adapts typed request handlers to net/http.
//
// Wrap binds the request into a value of type R with the first applicable
// binder, calls the handler and renders the Response it returns. Templ
// responses render full pages for regular requests and stream datastar
// element patches when the request comes from the datastar client, so the
// same handler serves progressive enhancement and plain form posts.
//
//	http.HandleFunc("POST /contact", handler.Wrap(submitContact,
//		handler.WithBinders[handler.Context, contactRequest](binder.Signals(), binder.Form()),
//		handler.WithErrorHandler[handler.Context, contactRequest](errorHandler),
//	))
//
// Errors are classified once: validation errors map to 422, binder errors
// to 400 or 415, HTTPError values keep their status and anything else is
// a 500 whose text is never shown to the client.
package handler
