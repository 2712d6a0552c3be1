package contact

// Kind identifies one of the forms on the site.
type Kind string

const (
	KindContact    Kind = "contact"
	KindCompact    Kind = "compact"
	KindNewsletter Kind = "newsletter"
)

// ParseKind returns the Kind named by s or ErrUnknownForm.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindContact, KindCompact, KindNewsletter:
		return k, nil
	default:
		return "", ErrUnknownForm
	}
}

func (k Kind) String() string { return string(k) }
