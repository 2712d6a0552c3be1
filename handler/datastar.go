package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/agencysite/pkg/binder"
)

const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchReplace = datastar.ElementPatchModeReplace
	PatchPrepend = datastar.ElementPatchModePrepend
	PatchAppend  = datastar.ElementPatchModeAppend
)

// IsDataStar reports whether r came from the datastar client and expects an
// SSE stream of patches instead of a full page.
func IsDataStar(r *http.Request) bool {
	if binder.IsDataStarRequest(r) {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/event-stream")
}
