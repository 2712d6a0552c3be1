// Package email delivers transactional messages for the site's forms.
//
// EmailSender is implemented by a Postmark client for production and by
// DevSender, which writes each message to disk as HTML plus JSON metadata.
// NewSender picks one based on Config. Bodies are templ components rendered
// with templates.Render.
package email
