package mailer

import "fmt"

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email represents a fully-prepared email message ready for sending.
type Email struct {
	Subject string   // Email subject
	HTML    string   // HTML body content
	Text    string   // Plain text alternative
	From    string   // Override default sender (if provider allows)
	To      []string // Recipients (at least one required)
}

// Validate reports whether the email carries the minimum fields required
// for delivery. Providers call this before contacting their API.
func (e *Email) Validate() error {
	if len(e.To) == 0 {
		return ErrNoRecipient
	}
	if e.Subject == "" {
		return ErrNoSubject
	}
	if e.HTML == "" && e.Text == "" {
		return ErrNoContent
	}
	return nil
}
