package binder

import (
	"fmt"
	"net/http"
)

// DefaultMaxMemory bounds multipart form parsing.
const DefaultMaxMemory = 1 << 20

// Form binds application/x-www-form-urlencoded and multipart/form-data
// values into struct fields tagged `form:"name"`. Other media types
// return ErrNotApplicable.
//
//	type ContactRequest struct {
//		Name    string   `form:"name"`
//		Touched []string `form:"touched"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		var values map[string][]string

		switch mt := mediaType(r); mt {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.PostForm
		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.MultipartForm.Value
		case "":
			return fmt.Errorf("%w: expected form data", ErrMissingContentType)
		default:
			return ErrNotApplicable
		}

		return bindToStruct(v, "form", values, ErrFailedToParseForm)
	}
}
