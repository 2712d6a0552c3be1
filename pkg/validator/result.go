package validator

import (
	"encoding/json"
	"maps"
)

// Record is a candidate form submission keyed by field name.
type Record map[string]string

// Get returns the value for field, or "" when it is missing.
func (r Record) Get(field string) string {
	return r[field]
}

// Result is the outcome of ValidateForm: either accepted with the normalized
// record, or rejected with exactly one message per failing field.
type Result struct {
	values Record
	errors ValidationErrors
}

// Accepted returns a passing result carrying values.
func Accepted(values Record) Result {
	if values == nil {
		values = Record{}
	}
	return Result{values: values}
}

// Rejected returns a failing result. An empty error list is replaced with a
// generic entry so a rejected result never looks accepted.
func Rejected(errs ValidationErrors) Result {
	if errs.IsEmpty() {
		errs = ValidationErrors{{Message: ErrValidationFailed.Error()}}
	}
	return Result{errors: errs}
}

func (r Result) Valid() bool {
	return r.errors.IsEmpty()
}

// Values returns a copy of the normalized record; nil when rejected.
func (r Result) Values() Record {
	if !r.Valid() {
		return nil
	}
	return maps.Clone(r.values)
}

// Errors returns the field errors in schema declaration order.
func (r Result) Errors() ValidationErrors {
	return r.errors
}

// Message returns the error reported for field, or "".
func (r Result) Message(field string) string {
	return r.errors.Get(field)
}

// Err returns the field errors as an error, or nil when accepted.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return r.errors
}

type resultJSON struct {
	Valid  bool             `json:"valid"`
	Values Record           `json:"values,omitempty"`
	Errors ValidationErrors `json:"errors,omitempty"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Valid:  r.Valid(),
		Values: r.values,
		Errors: r.errors,
	})
}
