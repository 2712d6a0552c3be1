package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents the single message reported for one field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects field errors in schema declaration order.
// Schemas produce at most one entry per field.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the message reported for field, or "" when the field passed.
func (ve ValidationErrors) Get(field string) string {
	for _, err := range ve {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}

func (ve ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(ve))
	seen := make(map[string]bool, len(ve))
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Map returns the errors keyed by field name.
func (ve ValidationErrors) Map() map[string]string {
	m := make(map[string]string, len(ve))
	for _, err := range ve {
		if _, ok := m[err.Field]; !ok {
			m[err.Field] = err.Message
		}
	}
	return m
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Kind is the evaluation slot a rule occupies inside a field's chain.
// Chains are evaluated in ascending Kind order.
type Kind int

const (
	KindRequired Kind = iota + 1
	KindMinLen
	KindMaxLen
	KindPattern
)

func (k Kind) String() string {
	switch k {
	case KindRequired:
		return "required"
	case KindMinLen:
		return "min"
	case KindMaxLen:
		return "max"
	case KindPattern:
		return "pattern"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Rule is a single predicate and the message reported when it fails.
type Rule struct {
	Kind    Kind
	Check   func(value string) bool
	Message string

	// limit holds the bound of length rules so schemas can reject min > max.
	limit int
}

// Apply evaluates rules against value in order and returns the message of
// the first rule that fails, or "" when every rule passes.
func Apply(value string, rules ...Rule) string {
	for _, rule := range rules {
		if !rule.Check(value) {
			return rule.Message
		}
	}
	return ""
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
