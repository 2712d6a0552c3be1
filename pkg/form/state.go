package form

import (
	"sync"

	"github.com/dmitrymomot/agencysite/pkg/validator"
)

// Status is the submission lifecycle of a form.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// State tracks what a visitor has typed into one form, which fields they
// have left, the current field errors and the submission status.
// Errors are only shown for touched fields so a pristine form renders clean.
type State struct {
	mu      sync.Mutex
	schema  *validator.Schema
	values  validator.Record
	touched map[string]bool
	errs    map[string]string
	status  Status
	err     error
}

// New returns an idle State for schema.
func New(schema *validator.Schema) *State {
	if schema == nil {
		panic(validator.ErrMalformedSchema)
	}
	return &State{
		schema:  schema,
		values:  validator.Record{},
		touched: map[string]bool{},
		errs:    map[string]string{},
	}
}

// Restore rebuilds a State from a posted record and the fields the client
// reports as touched. Errors are recomputed for touched fields.
func Restore(schema *validator.Schema, values validator.Record, touched []string) *State {
	s := New(schema)
	for field, v := range values {
		s.values[field] = v
	}
	for _, field := range touched {
		s.Blur(field)
	}
	return s
}

func (s *State) Schema() *validator.Schema { return s.schema }

// Change stores value and clears the field's error; the field is
// re-validated on the next Blur or Submit.
func (s *State) Change(field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[field] = value
	delete(s.errs, field)
}

// Blur marks field touched and validates it. It returns the field's error
// message, or "" when valid.
func (s *State) Blur(field string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched[field] = true
	msg := validator.ValidateField(s.schema, field, s.values[field])
	s.setError(field, msg)
	return msg
}

// Submit marks every schema field touched and validates the whole form.
func (s *State) Submit() validator.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, field := range s.schema.Fields() {
		s.touched[field] = true
	}
	res := validator.ValidateForm(s.schema, s.values)
	s.errs = map[string]string{}
	for _, e := range res.Errors() {
		if e.Field != "" {
			s.errs[e.Field] = e.Message
		}
	}
	return res
}

// VisibleError returns the field's error only when the field is touched.
func (s *State) VisibleError(field string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.touched[field] {
		return ""
	}
	return s.errs[field]
}

// VisibleErrors returns the visible error of every schema field that has one,
// in declaration order.
func (s *State) VisibleErrors() validator.ValidationErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out validator.ValidationErrors
	for _, field := range s.schema.Fields() {
		if msg := s.errs[field]; msg != "" && s.touched[field] {
			out.Add(validator.ValidationError{Field: field, Message: msg})
		}
	}
	return out
}

// Begin moves the form to submitting. A second call before Complete
// returns ErrSubmissionInFlight.
func (s *State) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == StatusSubmitting {
		return ErrSubmissionInFlight
	}
	s.status = StatusSubmitting
	s.err = nil
	return nil
}

// Complete finishes a submission. A nil err resets the form to a clean
// success state. Validation errors in err are shown on their fields;
// other errors only set the error status.
func (s *State) Complete(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err == nil {
		s.status = StatusSuccess
		s.err = nil
		s.values = validator.Record{}
		s.touched = map[string]bool{}
		s.errs = map[string]string{}
		return
	}

	s.status = StatusError
	s.err = err
	for _, e := range validator.ExtractValidationErrors(err) {
		if e.Field != "" {
			s.touched[e.Field] = true
			s.errs[e.Field] = e.Message
		}
	}
}

func (s *State) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Err returns the error passed to the last failed Complete.
func (s *State) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *State) Value(field string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[field]
}

// Values returns a copy of the current values.
func (s *State) Values() validator.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(validator.Record, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

func (s *State) Touched(field string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touched[field]
}

func (s *State) setError(field, msg string) {
	if msg == "" {
		delete(s.errs, field)
		return
	}
	s.errs[field] = msg
}
