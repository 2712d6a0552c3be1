// Package binder decodes HTTP requests into typed request structs.
//
// Form reads url-encoded and multipart bodies via `form` tags, JSON decodes
// strict JSON bodies and Signals reads the datastar signal store. Each binder
// returns ErrNotApplicable for requests it does not handle, so a handler can
// list them in order and the first applicable one wins.
package binder
