package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/agencysite/pkg/validator"
)

// JSONResponse is the envelope of every JSON API response.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

// JSON wraps v in the data envelope.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err in the error envelope with a status derived from
// its type: validation errors become 422 with per-field details,
// HTTPError keeps its code, anything else is a 500 with a generic message.
func JSONError(err error, opts ...JSONOption) Response {
	info := classifyError(err)
	detail := &ErrorDetail{Code: info.Code, Message: info.Message}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		detail.Details = verrs.Map()
	}

	r := &jsonResponse{status: info.StatusCode, body: JSONResponse{Error: detail}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
