package site

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/agencysite/handler"
	"github.com/dmitrymomot/agencysite/pkg/contact"
	"github.com/dmitrymomot/agencysite/pkg/form"
	"github.com/dmitrymomot/agencysite/pkg/validator"
)

// formResponse patches the form for datastar clients and re-renders the
// whole page otherwise. Plain posts get 422 for invalid input and 503 when
// delivery failed.
func formResponse(err error, partial, full templ.Component) handler.Response {
	resp := handler.TemplPartial(partial, full)
	switch {
	case err == nil:
		return resp
	case validator.IsValidationError(err):
		return handler.WithStatus(http.StatusUnprocessableEntity, resp)
	default:
		return handler.WithStatus(http.StatusServiceUnavailable, resp)
	}
}

// run drives one submission through st: every field is touched and
// validated, and only a valid form reaches deliver.
func run(st *form.State, deliver func() error) error {
	if err := st.Begin(); err != nil {
		return err
	}
	res := st.Submit()
	if !res.Valid() {
		st.Complete(res.Err())
		return res.Err()
	}
	err := deliver()
	st.Complete(err)
	return err
}

func (m *Module) submitContact(kind contact.Kind) handler.HandlerFunc[handler.Context, contactInput] {
	return func(ctx handler.Context, in contactInput) handler.Response {
		schema, err := m.svc.Schemas().For(kind)
		if err != nil {
			return errorResponse{err}
		}

		req := in.request()
		st := form.Restore(schema, req.Record(), in.Touched)
		err = run(st, func() error {
			_, err := m.svc.Submit(ctx, kind, req)
			return err
		})

		full := m.views.ContactPage(m.contactPageParams(st))
		if kind == contact.KindCompact {
			full = m.views.HomePage(m.homePage(st))
		}
		return formResponse(err, m.views.ContactForm(m.contactFormParams(kind, st)), full)
	}
}

func (m *Module) subscribe(ctx handler.Context, in contactInput) handler.Response {
	req := in.newsletter()
	st := form.Restore(m.svc.Schemas().Newsletter, req.Record(), in.Touched)
	err := run(st, func() error {
		_, err := m.svc.Subscribe(ctx, req)
		return err
	})

	params := m.newsletterParams(st)
	return formResponse(err,
		m.views.NewsletterForm(params),
		m.views.NewsletterPage(NewsletterPageParams{Company: m.reg.CompanyInfo(), Newsletter: params}),
	)
}

// FieldResult is the blur validation answer for clients without datastar.
type FieldResult struct {
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// validateField runs the chain of one field when the visitor leaves it.
// The field's message is shown because the field is now touched.
func (m *Module) validateField(ctx handler.Context, in contactInput) handler.Response {
	q := ctx.Request().URL.Query()
	kind, err := contact.ParseKind(q.Get("form"))
	if err != nil {
		return errorResponse{handler.ErrNotFound}
	}
	schema, err := m.svc.Schemas().For(kind)
	if err != nil {
		return errorResponse{err}
	}
	field := q.Get("field")
	if !schema.Has(field) {
		return errorResponse{handler.ErrBadRequest}
	}

	st := form.Restore(schema, in.request().Record(), in.Touched)
	msg := st.Blur(field)

	if ctx.IsDataStar() {
		return handler.Templ(
			m.views.FieldError(FieldErrorParams{Kind: kind, Field: field, Message: msg}),
			handler.WithTarget("#"+FieldErrorID(kind, field)),
		)
	}
	return handler.JSON(FieldResult{Field: field, Valid: msg == "", Message: msg})
}
