package contact

import (
	"regexp"

	"github.com/dmitrymomot/agencysite/pkg/registry"
	"github.com/dmitrymomot/agencysite/pkg/sanitizer"
	"github.com/dmitrymomot/agencysite/pkg/validator"
)

// Field names shared by the HTML forms, the JSON API and the schemas.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldCompany     = "company"
	FieldServiceType = "serviceType"
	FieldMessage     = "message"
)

const (
	NameMinLen    = 2
	NameMaxLen    = 100
	EmailMaxLen   = 254
	CompanyMaxLen = 100
	MessageMinLen = 10
	MessageMaxLen = 2000
)

// User-facing messages, one per rule.
const (
	MsgNameRequired    = "Name is required"
	MsgNameTooShort    = "Name must be at least 2 characters"
	MsgNameTooLong     = "Name must be less than 100 characters"
	MsgNameInvalid     = "Name can only contain letters, spaces, hyphens, and apostrophes"
	MsgEmailRequired   = "Email is required"
	MsgEmailTooLong    = "Email must be less than 254 characters"
	MsgEmailInvalid    = "Please enter a valid email address"
	MsgCompanyTooLong  = "Company name must be less than 100 characters"
	MsgServiceInvalid  = "Please select a valid service"
	MsgMessageRequired = "Message is required"
	MsgMessageTooShort = "Message must be at least 10 characters"
	MsgMessageTooLong  = "Message must be less than 2000 characters"
)

// namePattern accepts Latin letters (accented included), the Arabic and
// Arabic Supplement blocks (letters and harakat), whitespace, hyphens and
// straight or curly apostrophes.
var namePattern = regexp.MustCompile(`^[\p{Latin}\x{0600}-\x{06FF}\x{0750}-\x{077F}\s'’-]+$`)

var (
	normalizeName = sanitizer.Compose(
		sanitizer.RemoveControlChars,
		sanitizer.NormalizeUnicode,
		sanitizer.RemoveExtraWhitespace,
	)
	normalizeLine = sanitizer.Compose(
		sanitizer.RemoveControlChars,
		sanitizer.NormalizeUnicode,
		sanitizer.SingleLine,
	)
	normalizeMessage = sanitizer.Compose(
		sanitizer.RemoveControlChars,
		sanitizer.NormalizeLineBreaks,
		sanitizer.NormalizeUnicode,
		sanitizer.Trim,
	)
)

func nameField() *validator.FieldRule {
	return validator.Field(FieldName,
		validator.Required(MsgNameRequired),
		validator.MinLen(NameMinLen, MsgNameTooShort),
		validator.MaxLen(NameMaxLen, MsgNameTooLong),
		validator.Matches(namePattern, MsgNameInvalid),
	).Normalize(normalizeName)
}

func emailField() *validator.FieldRule {
	return validator.Field(FieldEmail,
		validator.Required(MsgEmailRequired),
		validator.MaxLen(EmailMaxLen, MsgEmailTooLong),
		validator.Email(MsgEmailInvalid),
	).Trim()
}

func companyField() *validator.FieldRule {
	return validator.Field(FieldCompany,
		validator.MaxLen(CompanyMaxLen, MsgCompanyTooLong),
	).Normalize(normalizeLine)
}

func serviceTypeField(titles []string) *validator.FieldRule {
	return validator.Field(FieldServiceType,
		validator.OneOf(titles, MsgServiceInvalid),
	).Trim()
}

func messageField() *validator.FieldRule {
	return validator.Field(FieldMessage,
		validator.Required(MsgMessageRequired),
		validator.MinLen(MessageMinLen, MsgMessageTooShort),
		validator.MaxLen(MessageMaxLen, MsgMessageTooLong),
	).Normalize(normalizeMessage)
}

// NewContactSchema builds the full contact form schema. The service type
// must be empty or one of the registry's service titles.
func NewContactSchema(reg *registry.Registry) *validator.Schema {
	return validator.NewSchema(string(KindContact),
		nameField(),
		emailField(),
		companyField(),
		serviceTypeField(reg.ServiceTitles()),
		messageField(),
	)
}

// NewEmailSchema builds the single-field newsletter/CTA schema.
func NewEmailSchema() *validator.Schema {
	return validator.NewSchema(string(KindNewsletter), emailField())
}

// Schemas groups the schemas of every form on the site.
type Schemas struct {
	Contact    *validator.Schema
	Compact    *validator.Schema
	Newsletter *validator.Schema
}

// NewSchemas builds all form schemas from reg. The compact form is the full
// contact schema without the company field.
func NewSchemas(reg *registry.Registry) Schemas {
	full := NewContactSchema(reg)
	return Schemas{
		Contact:    full,
		Compact:    full.Pick(string(KindCompact), FieldName, FieldEmail, FieldServiceType, FieldMessage),
		Newsletter: NewEmailSchema(),
	}
}

// For returns the schema backing kind.
func (s Schemas) For(kind Kind) (*validator.Schema, error) {
	switch kind {
	case KindContact:
		return s.Contact, nil
	case KindCompact:
		return s.Compact, nil
	case KindNewsletter:
		return s.Newsletter, nil
	default:
		return nil, ErrUnknownForm
	}
}
