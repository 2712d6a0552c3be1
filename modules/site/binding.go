package site

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/agencysite/handler"
	"github.com/dmitrymomot/agencysite/pkg/binder"
	"github.com/dmitrymomot/agencysite/pkg/contact"
	"github.com/dmitrymomot/agencysite/pkg/validator"
)

// contactInput is what every form posts. Regular posts send touched as
// repeated hidden inputs, datastar sends it as a signal array.
type contactInput struct {
	Name        string   `form:"name" json:"name"`
	Email       string   `form:"email" json:"email"`
	Company     string   `form:"company" json:"company"`
	ServiceType string   `form:"serviceType" json:"serviceType"`
	Message     string   `form:"message" json:"message"`
	Touched     []string `form:"touched" json:"touched"`
	Service     string   `form:"-" json:"-" query:"service"`
}

func (in contactInput) request() contact.Request {
	return contact.Request{
		Name:        in.Name,
		Email:       in.Email,
		Company:     in.Company,
		ServiceType: in.ServiceType,
		Message:     in.Message,
	}
}

func (in contactInput) newsletter() contact.NewsletterRequest {
	return contact.NewsletterRequest{Email: in.Email}
}

// signalsUnder binds the datastar signals stored under the namespace
// returned by key, since each form keeps its signals under its kind.
func signalsUnder(key func(*http.Request) string) handler.Bind {
	read := binder.Signals()
	return func(r *http.Request, v any) error {
		var all map[string]json.RawMessage
		if err := read(r, &all); err != nil {
			return err
		}
		ns := key(r)
		raw, ok := all[ns]
		if !ok {
			return fmt.Errorf("%w: no signals for %q", binder.ErrFailedToParseSignals, ns)
		}
		if err := json.Unmarshal(raw, v); err != nil {
			return fmt.Errorf("%w: %v", binder.ErrFailedToParseSignals, err)
		}
		return nil
	}
}

func fixedKind(kind contact.Kind) func(*http.Request) string {
	return func(*http.Request) string { return string(kind) }
}

func queryKind(r *http.Request) string {
	return r.URL.Query().Get("form")
}

func (m *Module) contactOptions(key func(*http.Request) string) []handler.WrapOption[handler.Context, contactInput] {
	return []handler.WrapOption[handler.Context, contactInput]{
		handler.WithBinders[handler.Context, contactInput](
			binder.Query(),
			signalsUnder(key),
			binder.Form(),
			binder.JSON(),
		),
		handler.WithErrorHandler[handler.Context, contactInput](m.errorHandler),
	}
}

func (m *Module) recordOptions() []handler.WrapOption[handler.Context, validator.Record] {
	return []handler.WrapOption[handler.Context, validator.Record]{
		handler.WithBinders[handler.Context, validator.Record](binder.JSON()),
		handler.WithErrorHandler[handler.Context, validator.Record](m.errorHandler),
	}
}
