package binder

import (
	"net/http"
)

// Query binds URL query parameters into struct fields tagged
// `query:"name"`. Only GET and HEAD requests are bound; other methods
// return ErrNotApplicable so a body binder can take over.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			return ErrNotApplicable
		}
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
