package handler

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

type redirectResponse struct {
	url  string
	code int
}

// Render answers datastar requests with an SSE redirect script and everything
// else with a Location header.
func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	if IsDataStar(req) {
		return datastar.NewSSE(w, req).Redirect(r.url)
	}
	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect sends the client to url with 303 See Other, so a redirect after a
// form POST is followed with GET.
func Redirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusSeeOther}
}

// RedirectWithCode is Redirect with an explicit 3xx status. Any other code
// falls back to 303.
//
//	r.Get("/contact-us", func(w http.ResponseWriter, r *http.Request) {
//		_ = handler.RedirectWithCode("/contact", http.StatusPermanentRedirect).Render(w, r)
//	})
func RedirectWithCode(url string, code int) Response {
	if code < 300 || code > 399 {
		code = http.StatusSeeOther
	}
	return redirectResponse{url: url, code: code}
}
