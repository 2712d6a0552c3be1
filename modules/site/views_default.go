package site

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/agencysite/pkg/contact"
	"github.com/dmitrymomot/agencysite/pkg/form"
	"github.com/dmitrymomot/agencysite/pkg/registry"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) rawf(format string, args ...any) {
	h.raw(fmt.Sprintf(format, args...))
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) render(c templ.Component) {
	if h.err == nil && c != nil {
		h.err = c.Render(h.ctx, h.w)
	}
}

func component(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}
		fn(h)
		return h.err
	})
}

// DefaultViews returns plain server-rendered views enhanced with datastar.
func DefaultViews() *Views {
	v := &Views{
		ContactForm:    contactForm,
		NewsletterForm: newsletterForm,
		FieldError:     fieldError,
	}

	v.HomePage = func(p HomePageParams) templ.Component {
		return layout(p.Company, p.Company.Name, v.NewsletterForm(p.Newsletter), component(func(h *htmlWriter) {
			h.raw(`<section class="hero"><h1>`)
			h.text(p.Company.Tagline)
			h.raw(`</h1></section><section class="services"><h2>What we do</h2>`)
			serviceList(h, p.Services)
			h.raw(`</section><section class="cta"><h2>Start a project</h2>`)
			h.render(v.ContactForm(p.Compact))
			h.raw(`</section>`)
		}))
	}

	v.AboutPage = func(p AboutPageParams) templ.Component {
		return layout(p.Company, "About", v.NewsletterForm(p.Newsletter), component(func(h *htmlWriter) {
			h.raw(`<h1>About `)
			h.text(p.Company.Name)
			h.raw(`</h1><p>`)
			h.text(p.Company.Tagline)
			h.raw(`</p>`)
			officeList(h, p.Offices)
		}))
	}

	v.ServicesPage = func(p ServicesPageParams) templ.Component {
		return layout(p.Company, "Services", v.NewsletterForm(p.Newsletter), component(func(h *htmlWriter) {
			h.raw(`<h1>Services</h1>`)
			serviceList(h, p.Services)
		}))
	}

	v.ContactPage = func(p ContactPageParams) templ.Component {
		return layout(p.Company, "Contact", v.NewsletterForm(p.Newsletter), component(func(h *htmlWriter) {
			h.raw(`<h1>Tell us about your project</h1><p>`)
			h.text(p.Company.ResponseTimeLabel)
			h.raw(`</p>`)
			h.render(v.ContactForm(p.Form))
			officeList(h, p.Offices)
		}))
	}

	v.NewsletterPage = func(p NewsletterPageParams) templ.Component {
		return layout(p.Company, "Newsletter", nil, component(func(h *htmlWriter) {
			h.raw(`<h1>Newsletter</h1>`)
			h.render(v.NewsletterForm(p.Newsletter))
		}))
	}

	v.ErrorPage = func(p ErrorPageParams) templ.Component {
		return layout(p.Company, http.StatusText(p.Status), nil, component(func(h *htmlWriter) {
			h.rawf(`<h1>%d</h1><p>`, p.Status)
			h.text(p.Message)
			h.raw(`</p><p><a href="/">Back to the home page</a></p>`)
		}))
	}

	return v
}

func layout(company registry.CompanyInfo, title string, footer, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(title)
		if title != company.Name {
			h.raw(` | `)
			h.text(company.Name)
		}
		h.rawf(`</title><script type="module" src="%s"></script></head><body>`, datastarScript)
		h.raw(`<nav><a href="/">Home</a> <a href="/about">About</a> <a href="/services">Services</a> <a href="/contact">Contact</a></nav><main>`)
		h.render(body)
		h.raw(`</main><footer>`)
		h.render(footer)
		h.raw(`<p><a href="mailto:`)
		h.text(company.MainEmail)
		h.raw(`">`)
		h.text(company.MainEmail)
		h.raw(`</a></p></footer></body></html>`)
	})
}

func serviceList(h *htmlWriter, services []registry.ServiceOffering) {
	h.raw(`<ul class="service-list">`)
	for _, svc := range services {
		h.raw(`<li><a href="/contact?service=`)
		h.text(svc.ID)
		h.raw(`">`)
		h.text(svc.Title)
		h.raw(`</a>`)
		if svc.Description != "" {
			h.raw(` <span class="service-description">`)
			h.text(svc.Description)
			h.raw(`</span>`)
		}
		h.raw(`</li>`)
	}
	h.raw(`</ul>`)
}

func officeList(h *htmlWriter, offices []registry.OfficeLocation) {
	h.raw(`<section class="offices">`)
	for _, o := range offices {
		h.raw(`<address><strong>`)
		h.text(o.OfficeName)
		h.raw(`</strong> `)
		h.text(o.CountryLabel)
		h.raw(`<br><a href="mailto:`)
		h.text(o.Email)
		h.raw(`">`)
		h.text(o.Email)
		h.raw(`</a><br>`)
		h.text(o.Phone)
		h.raw(`<br>`)
		h.text(o.Hours)
		h.raw(`</address>`)
	}
	h.raw(`</section>`)
}

// formSignals is the datastar signal store of one form, namespaced by kind
// so several forms can share a page.
func formSignals(kind contact.Kind, st *form.State) string {
	fields := map[string]any{}
	touched := []string{}
	for _, field := range st.Schema().Fields() {
		fields[field] = st.Value(field)
		if st.Touched(field) {
			touched = append(touched, field)
		}
	}
	fields["touched"] = touched
	data, _ := json.Marshal(map[string]any{string(kind): fields})
	return string(data)
}

func openForm(h *htmlWriter, kind contact.Kind, action string, st *form.State) {
	h.raw(`<form id="`)
	h.text(FormID(kind))
	h.raw(`" method="post" action="`)
	h.text(action)
	h.raw(`" novalidate data-signals="`)
	h.text(formSignals(kind, st))
	h.raw(`" data-on:submit__prevent="`)
	h.text(fmt.Sprintf("@post('%s')", action))
	h.raw(`" data-indicator="`)
	h.text(string(kind) + "Submitting")
	h.raw(`">`)
	for _, field := range st.Schema().Fields() {
		if st.Touched(field) {
			h.raw(`<input type="hidden" name="touched" value="`)
			h.text(field)
			h.raw(`">`)
		}
	}
}

func statusBanner(h *htmlWriter, st *form.State, success, failure string) {
	switch st.Status() {
	case form.StatusSuccess:
		h.raw(`<p class="form-success" role="status">`)
		h.text(success)
		h.raw(`</p>`)
	case form.StatusError:
		if len(st.VisibleErrors()) > 0 {
			h.raw(`<p class="form-error" role="alert">Please correct the highlighted fields.</p>`)
			return
		}
		h.raw(`<p class="form-error" role="alert">`)
		h.text(failure)
		h.raw(`</p>`)
	}
}

func fieldAttrs(h *htmlWriter, kind contact.Kind, field string, st *form.State) {
	id := string(kind) + "-" + field
	h.raw(` id="`)
	h.text(id)
	h.raw(`" name="`)
	h.text(field)
	h.raw(`" data-bind="`)
	h.text(string(kind) + "." + field)
	h.raw(`" data-on:blur="`)
	h.text(fmt.Sprintf(
		"$%[1]s.touched = [...new Set([...$%[1]s.touched, '%[2]s'])]; @post('/contact/validate?form=%[1]s&field=%[2]s')",
		kind, field,
	))
	h.raw(`"`)
	if msg := st.VisibleError(field); msg != "" {
		h.raw(` aria-invalid="true" aria-describedby="`)
		h.text(FieldErrorID(kind, field))
		h.raw(`"`)
	}
}

func label(h *htmlWriter, kind contact.Kind, field, text string, st *form.State) {
	h.raw(`<label for="`)
	h.text(string(kind) + "-" + field)
	h.raw(`">`)
	h.text(text)
	if f, err := st.Schema().Lookup(field); err == nil && f.IsRequired() {
		h.raw(` <span aria-hidden="true">*</span>`)
	}
	h.raw(`</label>`)
}

func input(h *htmlWriter, kind contact.Kind, field, typ, text string, st *form.State) {
	h.raw(`<div class="field">`)
	label(h, kind, field, text, st)
	h.raw(`<input type="`)
	h.text(typ)
	h.raw(`" value="`)
	h.text(st.Value(field))
	h.raw(`"`)
	fieldAttrs(h, kind, field, st)
	h.raw(`>`)
	h.render(fieldError(FieldErrorParams{Kind: kind, Field: field, Message: st.VisibleError(field)}))
	h.raw(`</div>`)
}

func contactForm(p ContactFormParams) templ.Component {
	return component(func(h *htmlWriter) {
		st := p.State
		openForm(h, p.Kind, p.Action, st)
		statusBanner(h, st,
			"Thanks! Your message is on its way. "+p.Company.ResponseTimeLabel,
			"We could not send your message right now. Please try again or email us at "+p.Company.MainEmail+".",
		)

		input(h, p.Kind, contact.FieldName, "text", "Name", st)
		input(h, p.Kind, contact.FieldEmail, "email", "Email", st)

		if st.Schema().Has(contact.FieldCompany) {
			input(h, p.Kind, contact.FieldCompany, "text", "Company", st)
		}

		if st.Schema().Has(contact.FieldServiceType) {
			h.raw(`<div class="field">`)
			label(h, p.Kind, contact.FieldServiceType, "Service", st)
			h.raw(`<select`)
			fieldAttrs(h, p.Kind, contact.FieldServiceType, st)
			h.raw(`><option value="">Select a service</option>`)
			selected := st.Value(contact.FieldServiceType)
			for _, svc := range p.Services {
				h.raw(`<option value="`)
				h.text(svc.Title)
				h.raw(`"`)
				if svc.Title == selected {
					h.raw(` selected`)
				}
				h.raw(`>`)
				h.text(svc.Title)
				h.raw(`</option>`)
			}
			h.raw(`</select>`)
			h.render(fieldError(FieldErrorParams{Kind: p.Kind, Field: contact.FieldServiceType, Message: st.VisibleError(contact.FieldServiceType)}))
			h.raw(`</div>`)
		}

		h.raw(`<div class="field">`)
		label(h, p.Kind, contact.FieldMessage, "Message", st)
		h.raw(`<textarea rows="6"`)
		fieldAttrs(h, p.Kind, contact.FieldMessage, st)
		h.raw(`>`)
		h.text(st.Value(contact.FieldMessage))
		h.raw(`</textarea>`)
		h.render(fieldError(FieldErrorParams{Kind: p.Kind, Field: contact.FieldMessage, Message: st.VisibleError(contact.FieldMessage)}))
		h.raw(`</div>`)

		h.raw(`<button type="submit" data-attr:disabled="$`)
		h.text(string(p.Kind) + "Submitting")
		h.raw(`">Send message</button></form>`)
	})
}

func newsletterForm(p NewsletterFormParams) templ.Component {
	return component(func(h *htmlWriter) {
		st := p.State
		openForm(h, contact.KindNewsletter, "/newsletter", st)
		statusBanner(h, st, "You are subscribed. Thanks!", "We could not subscribe you right now. Please try again later.")
		input(h, contact.KindNewsletter, contact.FieldEmail, "email", "Email", st)
		h.raw(`<button type="submit">Subscribe</button></form>`)
	})
}

// fieldError always renders its slot, empty when valid, so blur patches
// have a stable target.
func fieldError(p FieldErrorParams) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<p class="field-error" id="`)
		h.text(FieldErrorID(p.Kind, p.Field))
		h.raw(`"`)
		if p.Message != "" {
			h.raw(` role="alert"`)
		}
		h.raw(`>`)
		h.text(p.Message)
		h.raw(`</p>`)
	})
}

