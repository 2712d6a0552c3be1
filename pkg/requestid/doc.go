// Package requestid correlates every log line of a single HTTP request,
// including form validation and email delivery, through an X-Request-ID
// header stored in the request context.
package requestid
