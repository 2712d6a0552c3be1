package validator

import (
	"net/mail"
	"strings"
)

// Email validates the shape of a bare address (no display name) using RFC 5322
// parsing plus the extra constraints typical for web forms.
func Email(message string) Rule {
	if message == "" {
		message = "must be a valid email address"
	}
	return Rule{
		Kind:    KindPattern,
		Check:   isEmail,
		Message: message,
	}
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	localPart, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || localPart == "" || strings.Contains(domain, "@") {
		return false
	}

	// Domain must contain at least one dot and cannot start/end with dot
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// IsEmail reports whether value is a bare, well-formed email address.
func IsEmail(value string) bool {
	return isEmail(value)
}
