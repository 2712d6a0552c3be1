// Package site serves the agency website on top of the contact service and
// the registry.
//
// Pages render through Views, a set of templ components that can be replaced
// wholesale with WithViews. Forms work without JavaScript: a POST answers
// with the full page, using 422 for field errors and 503 when delivery
// fails. With datastar loaded, the same endpoints stream element patches
// instead, and each field is checked on blur through /contact/validate.
// Signals are namespaced by form kind so the full and compact forms can share
// a page.
//
// The /api routes expose the same operations as JSON wrapped in a
// {"data": ...} or {"error": ...} envelope.
//
//	web := site.New(reg, svc, site.WithLogger(log), site.WithEnvironment(env))
//	srv.Run(ctx, web.Handler())
package site
