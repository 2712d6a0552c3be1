package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/agencysite/handler"
	"github.com/dmitrymomot/agencysite/pkg/binder"
	"github.com/dmitrymomot/agencysite/pkg/validator"
)

type subscribeRequest struct {
	Email string `json:"email" form:"email"`
}

func html(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func echo(ctx handler.Context, req subscribeRequest) handler.Response {
	return handler.JSON(req)
}

func binders() handler.WrapOption[handler.Context, subscribeRequest] {
	return handler.WithBinders[handler.Context, subscribeRequest](binder.Signals(), binder.JSON(), binder.Form())
}

func TestWrap_FirstApplicableBinder(t *testing.T) {
	t.Parallel()
	h := handler.Wrap(echo, binders())

	tests := []struct {
		name    string
		body    string
		headers map[string]string
	}{
		{"json", `{"email":"a@b.co"}`, map[string]string{"Content-Type": "application/json"}},
		{"form", "email=a%40b.co", map[string]string{"Content-Type": "application/x-www-form-urlencoded"}},
		{"datastar signals", `{"email":"a@b.co","other":1}`, map[string]string{"Content-Type": "application/json", "Datastar-Request": "true"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/newsletter", strings.NewReader(tt.body))
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			h(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"data":{"email":"a@b.co"}}`, rec.Body.String())
		})
	}
}

func TestWrap_BindingErrors(t *testing.T) {
	t.Parallel()
	h := handler.Wrap(echo, binders())

	t.Run("no binder applies", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("email"))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		h(rec, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		h(rec, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}

func TestWrap_WithoutBinders(t *testing.T) {
	t.Parallel()
	called := false
	h := handler.Wrap(func(ctx handler.Context, _ struct{}) handler.Response {
		called = true
		assert.Equal(t, "/about", ctx.Request().URL.Path)
		return handler.Templ(html("<p>about</p>"))
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/about", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<p>about</p>", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestWrap_NilResponse(t *testing.T) {
	t.Parallel()
	var got error
	h := handler.Wrap(
		func(handler.Context, struct{}) handler.Response { return nil },
		handler.WithErrorHandler[handler.Context, struct{}](func(ctx handler.Context, err error) {
			got = err
			ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
		}),
	)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.ErrorIs(t, got, handler.ErrNilResponse)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestWrap_Decorators(t *testing.T) {
	t.Parallel()
	var order []string
	mark := func(name string) handler.Decorator[handler.Context, struct{}] {
		return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
			return func(ctx handler.Context, req struct{}) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(
		func(handler.Context, struct{}) handler.Response {
			order = append(order, "handler")
			return handler.JSON(nil)
		},
		handler.WithDecorators(mark("outer"), mark("inner")),
	)
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestWrap_DefaultErrorHandlerHidesInternalErrors(t *testing.T) {
	t.Parallel()
	h := handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return failingResponse{err: errors.New("db password is hunter2")}
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hunter2")
}

type failingResponse struct{ err error }

func (f failingResponse) Render(http.ResponseWriter, *http.Request) error { return f.err }

func TestJSONError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "validation errors",
			err:    validator.ValidationErrors{{Field: "email", Message: "Please enter a valid email address"}},
			status: http.StatusUnprocessableEntity,
			body:   `{"error":{"code":"validation_failed","message":"Please correct the highlighted fields.","details":{"email":"Please enter a valid email address"}}}`,
		},
		{
			name:   "http error",
			err:    handler.ErrNotFound,
			status: http.StatusNotFound,
			body:   `{"error":{"code":"not_found","message":"Not Found"}}`,
		},
		{
			name:   "internal",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			body:   `{"error":{"code":"internal_server_error","message":"Something went wrong. Please try again later."}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			require.NoError(t, handler.JSONError(tt.err).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}
