package binder

import (
	"mime"
	"net/http"
	"strings"
)

// mediaType returns the request media type without parameters, lower-cased.
func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		if idx := strings.Index(ct, ";"); idx != -1 {
			ct = ct[:idx]
		}
		return strings.ToLower(strings.TrimSpace(ct))
	}
	return mt
}

// IsDataStarRequest reports whether r was issued by the datastar client,
// which marks its fetches with a Datastar-Request header.
func IsDataStarRequest(r *http.Request) bool {
	return r.Header.Get("Datastar-Request") == "true"
}
