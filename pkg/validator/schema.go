package validator

import (
	"fmt"
	"slices"
	"strings"
)

// FieldRule is the rule chain for one named field together with the
// normalizers applied to the raw value before the chain runs.
type FieldRule struct {
	name        string
	required    bool
	normalizers []func(string) string
	rules       []Rule
}

// Field declares the rule chain for a field. Rules must be given in
// evaluation order: required, min length, max length, then pattern or
// predicate rules. NewSchema panics on any other order.
//
// A field without a Required rule is optional: an empty value skips the
// whole chain.
func Field(name string, rules ...Rule) *FieldRule {
	f := &FieldRule{name: name, rules: rules}
	for _, r := range rules {
		if r.Kind == KindRequired {
			f.required = true
		}
	}
	return f
}

// Normalize appends value normalizers, applied in order before validation.
func (f *FieldRule) Normalize(fns ...func(string) string) *FieldRule {
	f.normalizers = append(f.normalizers, fns...)
	return f
}

// Trim is shorthand for Normalize(strings.TrimSpace).
func (f *FieldRule) Trim() *FieldRule {
	return f.Normalize(strings.TrimSpace)
}

func (f *FieldRule) Name() string { return f.name }

// IsRequired reports whether the chain starts with a Required rule.
func (f *FieldRule) IsRequired() bool { return f.required }

// Normalized applies the field's normalizers to value.
func (f *FieldRule) Normalized(value string) string {
	for _, fn := range f.normalizers {
		value = fn(value)
	}
	return value
}

// check normalizes value and returns it together with the first failing
// rule's message.
func (f *FieldRule) check(value string) (string, string) {
	value = f.Normalized(value)
	if !f.required && value == "" {
		return value, ""
	}
	return value, Apply(value, f.rules...)
}

func (f *FieldRule) clone() *FieldRule {
	return &FieldRule{
		name:        f.name,
		required:    f.required,
		normalizers: slices.Clone(f.normalizers),
		rules:       slices.Clone(f.rules),
	}
}

func (f *FieldRule) verify() {
	if f.name == "" {
		panic(fmt.Errorf("%w: field with empty name", ErrMalformedSchema))
	}

	prev := Kind(0)
	minLen, maxLen := -1, -1
	for i, r := range f.rules {
		if r.Check == nil {
			panic(fmt.Errorf("%w: field %q rule %d has no check", ErrMalformedSchema, f.name, i))
		}
		if r.Kind < KindRequired || r.Kind > KindPattern {
			panic(fmt.Errorf("%w: field %q rule %d has unknown kind %s", ErrMalformedSchema, f.name, i, r.Kind))
		}
		if r.Kind < prev || (r.Kind == prev && r.Kind != KindPattern) {
			panic(fmt.Errorf("%w: field %q declares %s after %s", ErrMalformedSchema, f.name, r.Kind, prev))
		}
		switch r.Kind {
		case KindMinLen:
			minLen = r.limit
		case KindMaxLen:
			maxLen = r.limit
		}
		prev = r.Kind
	}
	if minLen >= 0 && maxLen >= 0 && minLen > maxLen {
		panic(fmt.Errorf("%w: field %q min length %d exceeds max length %d", ErrMalformedSchema, f.name, minLen, maxLen))
	}
	for _, fn := range f.normalizers {
		if fn == nil {
			panic(fmt.Errorf("%w: field %q has a nil normalizer", ErrMalformedSchema, f.name))
		}
	}
}

// Schema is an immutable, ordered set of uniquely named field rules.
// Schemas are safe for concurrent use.
type Schema struct {
	name   string
	fields []*FieldRule
	index  map[string]int
}

// NewSchema builds a schema from copies of fields, so changing a FieldRule
// afterwards does not affect the schema. Schemas are static program data, so
// malformed input panics with an error wrapping ErrMalformedSchema.
func NewSchema(name string, fields ...*FieldRule) *Schema {
	s := &Schema{
		name:   name,
		fields: make([]*FieldRule, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if f == nil {
			panic(fmt.Errorf("%w: schema %q has a nil field", ErrMalformedSchema, name))
		}
		f = f.clone()
		f.verify()
		if _, dup := s.index[f.name]; dup {
			panic(fmt.Errorf("%w: schema %q declares field %q twice", ErrMalformedSchema, name, f.name))
		}
		s.index[f.name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s
}

func (s *Schema) Name() string { return s.name }

// Fields returns the field names in declaration order.
func (s *Schema) Fields() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

func (s *Schema) Has(field string) bool {
	_, ok := s.index[field]
	return ok
}

// Lookup returns a copy of the rule chain for field or ErrUnknownField.
func (s *Schema) Lookup(field string) (*FieldRule, error) {
	f, err := s.field(field)
	if err != nil {
		return nil, err
	}
	return f.clone(), nil
}

func (s *Schema) field(name string) (*FieldRule, error) {
	i, ok := s.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in schema %q", ErrUnknownField, name, s.name)
	}
	return s.fields[i], nil
}

// Pick derives a schema holding only the named fields, in the order given.
// Picking a field the schema does not declare panics.
func (s *Schema) Pick(name string, fields ...string) *Schema {
	picked := make([]*FieldRule, 0, len(fields))
	for _, field := range fields {
		f, err := s.field(field)
		if err != nil {
			panic(fmt.Errorf("%w: %w", ErrMalformedSchema, err))
		}
		picked = append(picked, f)
	}
	return NewSchema(name, picked...)
}

// ValidateField evaluates only the chain declared for field and returns the
// first violated rule's message. Fields the schema does not declare have no
// rules and therefore never fail.
func ValidateField(s *Schema, field, value string) string {
	f, err := s.field(field)
	if err != nil {
		return ""
	}
	_, msg := f.check(value)
	return msg
}

// ValidateForm evaluates every declared field against rec. Missing values are
// treated as empty strings. The result is Accepted with normalized values
// only when every field passes.
func ValidateForm(s *Schema, rec Record) Result {
	values := make(Record, len(s.fields))
	var errs ValidationErrors
	for _, f := range s.fields {
		value, msg := f.check(rec[f.name])
		if msg != "" {
			errs.Add(ValidationError{Field: f.name, Message: msg})
			continue
		}
		values[f.name] = value
	}
	if !errs.IsEmpty() {
		return Rejected(errs)
	}
	return Accepted(values)
}
