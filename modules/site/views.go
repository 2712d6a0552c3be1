package site

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/agencysite/pkg/contact"
	"github.com/dmitrymomot/agencysite/pkg/form"
	"github.com/dmitrymomot/agencysite/pkg/registry"
)

// Views renders every page and fragment of the site. Forms are separate
// from pages so datastar requests can patch just the form.
type Views struct {
	HomePage       func(HomePageParams) templ.Component
	AboutPage      func(AboutPageParams) templ.Component
	ServicesPage   func(ServicesPageParams) templ.Component
	ContactPage    func(ContactPageParams) templ.Component
	NewsletterPage func(NewsletterPageParams) templ.Component
	ErrorPage      func(ErrorPageParams) templ.Component

	ContactForm    func(ContactFormParams) templ.Component
	NewsletterForm func(NewsletterFormParams) templ.Component
	FieldError     func(FieldErrorParams) templ.Component
}

// ContactFormParams drives both the full and the compact contact form.
type ContactFormParams struct {
	Kind     contact.Kind
	Action   string
	State    *form.State
	Services []registry.ServiceOffering
	Company  registry.CompanyInfo
}

type NewsletterFormParams struct {
	State *form.State
}

type HomePageParams struct {
	Company    registry.CompanyInfo
	Services   []registry.ServiceOffering
	Compact    ContactFormParams
	Newsletter NewsletterFormParams
}

type AboutPageParams struct {
	Company    registry.CompanyInfo
	Offices    []registry.OfficeLocation
	Newsletter NewsletterFormParams
}

type ServicesPageParams struct {
	Company    registry.CompanyInfo
	Services   []registry.ServiceOffering
	Newsletter NewsletterFormParams
}

type ContactPageParams struct {
	Company    registry.CompanyInfo
	Offices    []registry.OfficeLocation
	Form       ContactFormParams
	Newsletter NewsletterFormParams
}

// NewsletterPageParams renders the newsletter result for browsers without
// JavaScript.
type NewsletterPageParams struct {
	Company    registry.CompanyInfo
	Newsletter NewsletterFormParams
}

type FieldErrorParams struct {
	Kind    contact.Kind
	Field   string
	Message string
}

type ErrorPageParams struct {
	Company registry.CompanyInfo
	Status  int
	Message string
}

// FormID is the DOM id of the form of kind.
func FormID(kind contact.Kind) string {
	return fmt.Sprintf("%s-form", kind)
}

// FieldErrorID is the DOM id of the error slot of one field.
func FieldErrorID(kind contact.Kind, field string) string {
	return fmt.Sprintf("%s-%s-error", kind, field)
}
