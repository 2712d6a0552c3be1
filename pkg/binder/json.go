package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxJSONSize bounds JSON request bodies.
const DefaultMaxJSONSize = 64 << 10

// JSON decodes an application/json body in strict mode: unknown fields and
// trailing data are rejected. Datastar requests and other media types
// return ErrNotApplicable so Signals can handle them.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if IsDataStarRequest(r) {
			return ErrNotApplicable
		}
		switch mediaType(r) {
		case "application/json":
		case "":
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		default:
			return ErrNotApplicable
		}

		dec := json.NewDecoder(io.LimitReader(r.Body, DefaultMaxJSONSize))
		dec.DisallowUnknownFields()

		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}
		if dec.More() {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}
		return nil
	}
}
