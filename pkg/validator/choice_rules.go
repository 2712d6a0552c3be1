package validator

import (
	"fmt"
	"slices"
	"strings"
)

// OneOf fails for values that are not exactly equal to one of allowed.
// The allowed list is copied, so later changes to the caller's slice do not
// leak into the rule.
func OneOf(allowed []string, message string) Rule {
	allowed = slices.Clone(allowed)
	if message == "" {
		message = fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", "))
	}
	return Rule{
		Kind: KindPattern,
		Check: func(value string) bool {
			return slices.Contains(allowed, value)
		},
		Message: message,
	}
}
