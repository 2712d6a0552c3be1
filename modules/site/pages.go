package site

import (
	"github.com/dmitrymomot/agencysite/handler"
	"github.com/dmitrymomot/agencysite/pkg/contact"
	"github.com/dmitrymomot/agencysite/pkg/form"
)

func (m *Module) newsletterParams(st *form.State) NewsletterFormParams {
	if st == nil {
		st = form.New(m.svc.Schemas().Newsletter)
	}
	return NewsletterFormParams{State: st}
}

func (m *Module) contactFormParams(kind contact.Kind, st *form.State) ContactFormParams {
	action := "/contact"
	if kind == contact.KindCompact {
		action = "/contact/compact"
	}
	return ContactFormParams{
		Kind:     kind,
		Action:   action,
		State:    st,
		Services: m.reg.ListServices(),
		Company:  m.reg.CompanyInfo(),
	}
}

func (m *Module) homePage(compact *form.State) HomePageParams {
	return HomePageParams{
		Company:    m.reg.CompanyInfo(),
		Services:   m.reg.ListServices(),
		Compact:    m.contactFormParams(contact.KindCompact, compact),
		Newsletter: m.newsletterParams(nil),
	}
}

func (m *Module) contactPageParams(st *form.State) ContactPageParams {
	return ContactPageParams{
		Company:    m.reg.CompanyInfo(),
		Offices:    m.reg.ListOfficeLocations(),
		Form:       m.contactFormParams(contact.KindContact, st),
		Newsletter: m.newsletterParams(nil),
	}
}

func (m *Module) home(handler.Context, struct{}) handler.Response {
	return handler.Templ(m.views.HomePage(m.homePage(form.New(m.svc.Schemas().Compact))))
}

func (m *Module) about(handler.Context, struct{}) handler.Response {
	return handler.Templ(m.views.AboutPage(AboutPageParams{
		Company:    m.reg.CompanyInfo(),
		Offices:    m.reg.ListOfficeLocations(),
		Newsletter: m.newsletterParams(nil),
	}))
}

func (m *Module) services(handler.Context, struct{}) handler.Response {
	return handler.Templ(m.views.ServicesPage(ServicesPageParams{
		Company:    m.reg.CompanyInfo(),
		Services:   m.reg.ListServices(),
		Newsletter: m.newsletterParams(nil),
	}))
}

// contactPage renders a pristine contact form. ?service=<id> preselects a
// service from the services page.
func (m *Module) contactPage(_ handler.Context, in contactInput) handler.Response {
	st := form.New(m.svc.Schemas().Contact)
	if in.Service != "" {
		if svc, ok := m.reg.ServiceByID(in.Service); ok {
			st.Change(contact.FieldServiceType, svc.Title)
		}
	}
	return handler.Templ(m.views.ContactPage(m.contactPageParams(st)))
}
