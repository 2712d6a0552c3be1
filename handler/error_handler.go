package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/agencysite/pkg/binder"
	"github.com/dmitrymomot/agencysite/pkg/logger"
	"github.com/dmitrymomot/agencysite/pkg/validator"
)

type errorInfo struct {
	StatusCode int
	Code       string
	Message    string
}

// classifyError maps err to a status code and a message that is safe to
// show. Internal errors never leak their text.
func classifyError(err error) errorInfo {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return errorInfo{http.StatusUnprocessableEntity, "validation_failed", "Please correct the highlighted fields."}
	}

	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return errorInfo{http.StatusUnsupportedMediaType, ErrUnsupportedMediaType.Key, "Unsupported content type."}
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseForm),
		errors.Is(err, binder.ErrFailedToParseSignals),
		errors.Is(err, binder.ErrFailedToParseQuery):
		return errorInfo{http.StatusBadRequest, ErrBadRequest.Key, "The request could not be read."}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		msg := http.StatusText(httpErr.Code)
		if msg == "" {
			msg = httpErr.Key
		}
		return errorInfo{httpErr.Code, httpErr.Key, msg}
	}

	return errorInfo{http.StatusInternalServerError, ErrInternalServerError.Key, "Something went wrong. Please try again later."}
}

// ErrorHandlerConfig controls how errors are rendered for HTML clients.
type ErrorHandlerConfig struct {
	// Page renders a full error page. Nil falls back to plain text.
	Page func(status int, message string) Response
}

// NewErrorHandler returns an ErrorHandler that logs err and answers with the
// JSON envelope for API requests or the configured error page otherwise.
// Request-scoped attributes come from the logger's context extractors.
// 5xx errors log at error level, everything else at warn.
func NewErrorHandler[C Context](log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[C] {
	if log == nil {
		log = logger.Discard()
	}
	return func(ctx C, err error) {
		info := classifyError(err)
		r := ctx.Request()
		w := ctx.ResponseWriter()

		level := slog.LevelWarn
		if info.StatusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.LogAttrs(ctx, level, "request failed",
			logger.Error(err),
			slog.Int("status", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		var resp Response
		switch {
		case wantsJSON(r):
			resp = JSONError(err)
		case cfg.Page != nil && !IsDataStar(r):
			resp = cfg.Page(info.StatusCode, info.Message)
		default:
			http.Error(w, info.Message, info.StatusCode)
			return
		}

		if rerr := resp.Render(w, r); rerr != nil {
			log.LogAttrs(ctx, slog.LevelError, "failed to render error response", logger.Error(rerr))
		}
	}
}

func wantsJSON(r *http.Request) bool {
	if IsDataStar(r) {
		return false
	}
	if ct, _, _ := strings.Cut(r.Header.Get("Content-Type"), ";"); strings.TrimSpace(ct) == "application/json" {
		return true
	}
	return strings.HasPrefix(r.Header.Get("Accept"), "application/json") || strings.HasPrefix(r.URL.Path, "/api/")
}
