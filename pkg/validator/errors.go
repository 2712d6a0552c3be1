package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownField is returned by Schema.Lookup for a field the schema does not declare.
	ErrUnknownField = errors.New("unknown field")

	// ErrMalformedSchema is the panic value wrapped when a schema is built from invalid parts.
	ErrMalformedSchema = errors.New("malformed schema")
)
