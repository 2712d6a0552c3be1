package validator

import (
	"fmt"
	"regexp"
)

// Matches fails for values that do not match re. The expression is compiled
// once by the caller; a nil expression is a programming error.
func Matches(re *regexp.Regexp, message string) Rule {
	if re == nil {
		panic(fmt.Errorf("%w: nil pattern", ErrMalformedSchema))
	}
	if message == "" {
		message = "has an invalid format"
	}
	return Rule{
		Kind: KindPattern,
		Check: func(value string) bool {
			return re.MatchString(value)
		},
		Message: message,
	}
}
