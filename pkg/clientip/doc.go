// Package clientip resolves the address a contact form submission came from
// when the site runs behind Cloudflare or another reverse proxy, and makes it
// available to handlers and log records through the request context.
//
// Headers are consulted in order and the first valid address wins:
//
//	CF-Connecting-IP, X-Forwarded-For (leftmost valid entry), X-Real-IP, RemoteAddr
//
//	r := chi.NewRouter()
//	r.Use(clientip.Middleware)
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
package clientip
