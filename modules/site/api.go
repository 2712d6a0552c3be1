package site

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/agencysite/handler"
	"github.com/dmitrymomot/agencysite/pkg/contact"
	"github.com/dmitrymomot/agencysite/pkg/validator"
)

func (m *Module) apiServices(handler.Context, struct{}) handler.Response {
	return handler.JSON(m.reg.ListServices())
}

func (m *Module) apiOffices(handler.Context, struct{}) handler.Response {
	return handler.JSON(m.reg.ListOfficeLocations())
}

func (m *Module) apiCompany(handler.Context, struct{}) handler.Response {
	return handler.JSON(m.reg.CompanyInfo())
}

// apiValidate validates a record without submitting it. A rejected record
// is still a successful call, so the status is 200 either way.
func (m *Module) apiValidate(ctx handler.Context, rec validator.Record) handler.Response {
	kind, err := contact.ParseKind(chi.URLParam(ctx.Request(), "form"))
	if err != nil {
		return errorResponse{handler.ErrNotFound}
	}
	res, err := m.svc.Validate(kind, rec)
	if err != nil {
		return errorResponse{err}
	}
	return handler.JSON(res)
}

func (m *Module) apiSubmit(ctx handler.Context, in contactInput) handler.Response {
	kind, err := contact.ParseKind(chi.URLParam(ctx.Request(), "form"))
	if err != nil || kind == contact.KindNewsletter {
		return errorResponse{handler.ErrNotFound}
	}
	sub, err := m.svc.Submit(ctx, kind, in.request())
	if err != nil {
		return apiError(err)
	}
	return handler.JSON(sub, handler.WithJSONStatus(http.StatusCreated))
}

func (m *Module) apiSubscribe(ctx handler.Context, in contactInput) handler.Response {
	sub, err := m.svc.Subscribe(ctx, in.newsletter())
	if err != nil {
		return apiError(err)
	}
	return handler.JSON(sub, handler.WithJSONStatus(http.StatusCreated))
}

// apiError answers validation failures directly and hands everything else
// to the error handler so it gets logged.
func apiError(err error) handler.Response {
	if validator.IsValidationError(err) {
		return handler.JSONError(err)
	}
	if errors.Is(err, contact.ErrDeliveryFailed) {
		return errorResponse{fmt.Errorf("%w: %w", handler.ErrServiceUnavailable, err)}
	}
	return errorResponse{err}
}
