package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Required fails for values that are empty after trimming whitespace.
func Required(message string) Rule {
	if message == "" {
		message = "field is required"
	}
	return Rule{
		Kind: KindRequired,
		Check: func(value string) bool {
			return strings.TrimSpace(value) != ""
		},
		Message: message,
	}
}

// MinLen fails for values shorter than min characters.
func MinLen(min int, message string) Rule {
	if message == "" {
		message = fmt.Sprintf("must be at least %d characters long", min)
	}
	return Rule{
		Kind: KindMinLen,
		Check: func(value string) bool {
			return utf8.RuneCountInString(value) >= min
		},
		Message: message,
		limit:   min,
	}
}

// MaxLen fails for values longer than max characters.
func MaxLen(max int, message string) Rule {
	if message == "" {
		message = fmt.Sprintf("must be at most %d characters long", max)
	}
	return Rule{
		Kind: KindMaxLen,
		Check: func(value string) bool {
			return utf8.RuneCountInString(value) <= max
		},
		Message: message,
		limit:   max,
	}
}

// Func adapts an arbitrary predicate into the pattern slot of a chain.
func Func(check func(value string) bool, message string) Rule {
	if message == "" {
		message = "invalid value"
	}
	return Rule{
		Kind:    KindPattern,
		Check:   check,
		Message: message,
	}
}
