package site

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dmitrymomot/agencysite/handler"
	"github.com/dmitrymomot/agencysite/pkg/clientip"
	"github.com/dmitrymomot/agencysite/pkg/contact"
	"github.com/dmitrymomot/agencysite/pkg/environment"
	"github.com/dmitrymomot/agencysite/pkg/httpserver"
	"github.com/dmitrymomot/agencysite/pkg/logger"
	"github.com/dmitrymomot/agencysite/pkg/registry"
	"github.com/dmitrymomot/agencysite/pkg/requestid"
)

// Module serves the agency website: pages, form posts, blur validation and
// the JSON API.
type Module struct {
	reg          *registry.Registry
	svc          *contact.Service
	views        *Views
	log          *slog.Logger
	env          environment.Environment
	serviceName  string
	errorHandler handler.ErrorHandler[handler.Context]
}

type Option func(*Module)

func WithViews(v *Views) Option {
	return func(m *Module) {
		if v != nil {
			m.views = v
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Module) {
		if l != nil {
			m.log = l
		}
	}
}

func WithEnvironment(env environment.Environment) Option {
	return func(m *Module) {
		m.env = env
	}
}

// WithServiceName names the otel server spans.
func WithServiceName(name string) Option {
	return func(m *Module) {
		if name != "" {
			m.serviceName = name
		}
	}
}

func New(reg *registry.Registry, svc *contact.Service, opts ...Option) *Module {
	m := &Module{
		reg:         reg,
		svc:         svc,
		views:       DefaultViews(),
		log:         logger.Discard(),
		env:         environment.Development,
		serviceName: "agencysite",
	}
	for _, opt := range opts {
		opt(m)
	}
	m.errorHandler = handler.NewErrorHandler[handler.Context](
		m.log.With(logger.Component("site")),
		handler.ErrorHandlerConfig{Page: m.errorPage},
	)
	return m
}

// Handler returns the site routes behind the request middleware stack.
func (m *Module) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(m.env),
		requestLogger(m.log),
		middleware.Recoverer,
	)
	// Set before Route so the /api subrouter inherits them.
	r.NotFound(m.wrapPage(func(handler.Context, struct{}) handler.Response {
		return errorResponse{handler.ErrNotFound}
	}))
	r.MethodNotAllowed(m.wrapPage(func(handler.Context, struct{}) handler.Response {
		return errorResponse{handler.ErrMethodNotAllowed}
	}))

	r.Get("/healthz", httpserver.HealthCheckHandler(m.log))
	r.Get("/readyz", httpserver.HealthCheckHandler(m.log, m.ready))

	r.Get("/", m.wrapPage(m.home))
	r.Get("/about", m.wrapPage(m.about))
	r.Get("/services", m.wrapPage(m.services))
	r.Get("/contact", handler.Wrap(m.contactPage, m.contactOptions(fixedKind(contact.KindContact))...))
	r.Get("/contact-us", func(w http.ResponseWriter, r *http.Request) {
		_ = handler.RedirectWithCode("/contact", http.StatusPermanentRedirect).Render(w, r)
	})

	r.Post("/contact", handler.Wrap(m.submitContact(contact.KindContact), m.contactOptions(fixedKind(contact.KindContact))...))
	r.Post("/contact/compact", handler.Wrap(m.submitContact(contact.KindCompact), m.contactOptions(fixedKind(contact.KindCompact))...))
	r.Post("/newsletter", handler.Wrap(m.subscribe, m.contactOptions(fixedKind(contact.KindNewsletter))...))
	r.Post("/contact/validate", handler.Wrap(m.validateField, m.contactOptions(queryKind)...))

	r.Route("/api", func(api chi.Router) {
		api.Get("/services", m.wrapPage(m.apiServices))
		api.Get("/offices", m.wrapPage(m.apiOffices))
		api.Get("/company", m.wrapPage(m.apiCompany))
		api.Post("/validate/{form}", handler.Wrap(m.apiValidate, m.recordOptions()...))
		api.Post("/contact/{form}", handler.Wrap(m.apiSubmit, m.contactOptions(fixedKind(contact.KindContact))...))
		api.Post("/newsletter", handler.Wrap(m.apiSubscribe, m.contactOptions(fixedKind(contact.KindNewsletter))...))
	})

	return otelhttp.NewHandler(r, m.serviceName,
		otelhttp.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/healthz" && r.URL.Path != "/readyz"
		}),
	)
}

func (m *Module) ready(context.Context) error {
	if len(m.reg.ListServices()) == 0 {
		return errors.New("registry has no services")
	}
	return nil
}

func (m *Module) wrapPage(h handler.HandlerFunc[handler.Context, struct{}]) http.HandlerFunc {
	return handler.Wrap(h, handler.WithErrorHandler[handler.Context, struct{}](m.errorHandler))
}

func (m *Module) errorPage(status int, message string) handler.Response {
	return handler.WithStatus(status, handler.Templ(m.views.ErrorPage(ErrorPageParams{
		Company: m.reg.CompanyInfo(),
		Status:  status,
		Message: message,
	})))
}

// errorResponse hands err to the error handler from inside a handler.
type errorResponse struct{ err error }

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error { return e.err }
