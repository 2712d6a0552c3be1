package contact

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/agencysite/pkg/email"
	"github.com/dmitrymomot/agencysite/pkg/email/templates"
	"github.com/dmitrymomot/agencysite/pkg/registry"
	"github.com/dmitrymomot/agencysite/pkg/sanitizer"
)

// MailNotifier delivers submissions to the agency inbox by email.
type MailNotifier struct {
	sender  email.EmailSender
	inbox   string
	company registry.CompanyInfo
}

// NewMailNotifier returns a Notifier that emails inbox. Replies go straight
// to the visitor who filled in the form.
func NewMailNotifier(sender email.EmailSender, inbox string, company registry.CompanyInfo) *MailNotifier {
	return &MailNotifier{sender: sender, inbox: inbox, company: company}
}

func (n *MailNotifier) NotifyContact(ctx context.Context, s Submission) error {
	body, err := templates.Render(ctx, contactEmail(n.company, s))
	if err != nil {
		return fmt.Errorf("render contact email: %w", err)
	}
	return n.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   n.inbox,
		ReplyTo:  s.Email,
		Subject:  fmt.Sprintf("New enquiry from %s", sanitizer.SingleLine(s.Name)),
		BodyHTML: body,
		Tag:      "contact-" + string(s.Kind),
	})
}

func (n *MailNotifier) NotifySubscription(ctx context.Context, s Subscription) error {
	body, err := templates.Render(ctx, subscriptionEmail(n.company, s))
	if err != nil {
		return fmt.Errorf("render subscription email: %w", err)
	}
	return n.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   n.inbox,
		ReplyTo:  s.Email,
		Subject:  "New newsletter subscriber",
		BodyHTML: body,
		Tag:      "newsletter",
	})
}

// htmlWriter keeps the first write error so templates read top to bottom.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// paragraphs writes plain text with markup stripped and line breaks kept.
func (h *htmlWriter) paragraphs(s string) {
	lines := strings.Split(sanitizer.StripHTML(s), "\n")
	for i, line := range lines {
		if i > 0 {
			h.raw("<br>")
		}
		h.text(line)
	}
}

func (h *htmlWriter) row(label, value string) {
	h.raw(`<tr><th align="left">`)
	h.text(label)
	h.raw(`</th><td>`)
	h.text(value)
	h.raw(`</td></tr>`)
}

func contactEmail(company registry.CompanyInfo, s Submission) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html><body><h2>New `)
		h.text(string(s.Kind))
		h.raw(` enquiry for `)
		h.text(company.Name)
		h.raw(`</h2><table>`)
		h.row("Reference", s.ID.String())
		h.row("Name", sanitizer.StripHTML(s.Name))
		h.row("Email", s.Email)
		h.row("Company", sanitizer.StripHTML(s.Company.OrElse("—")))
		h.row("Service", s.ServiceType.OrElse("Not specified"))
		h.row("Received", s.ReceivedAt.UTC().Format("2006-01-02 15:04 MST"))
		h.raw(`</table><h3>Message</h3><p>`)
		h.paragraphs(s.Message)
		h.raw(`</p></body></html>`)
		return h.err
	})
}

func subscriptionEmail(company registry.CompanyInfo, s Subscription) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html><body><h2>New subscriber for `)
		h.text(company.Name)
		h.raw(`</h2><table>`)
		h.row("Reference", s.ID.String())
		h.row("Email", s.Email)
		h.row("Received", s.ReceivedAt.UTC().Format("2006-01-02 15:04 MST"))
		h.raw(`</table></body></html>`)
		return h.err
	})
}
