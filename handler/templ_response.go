package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption configures how a component is patched into the page.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector to patch.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is a component with its own patch options, for TemplMulti.
type TemplPatch struct {
	Component templ.Component
	Options   []TemplOption
}

func Patch(component templ.Component, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

type templResponse struct {
	status  int
	partial []TemplPatch
	full    templ.Component
}

// Render streams the partial patches to datastar clients and writes the full
// component as HTML to everyone else.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) && len(t.partial) > 0 {
		sse := datastar.NewSSE(w, r)
		for _, p := range t.partial {
			if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
				return err
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	return t.full.Render(r.Context(), w)
}

// Templ renders component as a full HTML response, or as a single datastar
// patch with opts.
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templResponse{full: component, partial: []TemplPatch{Patch(component, opts...)}}
}

// TemplPartial sends partial to datastar clients and full to regular
// requests, so a form post works with and without JavaScript.
func TemplPartial(partial, full templ.Component, opts ...TemplOption) Response {
	return templResponse{full: full, partial: []TemplPatch{Patch(partial, opts...)}}
}

// TemplMulti sends several patches to datastar clients and full otherwise.
func TemplMulti(full templ.Component, patches ...TemplPatch) Response {
	return templResponse{full: full, partial: patches}
}

// WithStatus sets the status code of the full HTML response. Datastar
// streams always answer 200.
func WithStatus(status int, resp Response) Response {
	if t, ok := resp.(templResponse); ok {
		t.status = status
		return t
	}
	return resp
}
