package mailer

import "context"

// Terminal send statuses reported by providers. A send attempt is terminal
// once the provider reports one of these; no further transitions occur.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Receipt is the terminal outcome of a single send attempt.
type Receipt struct {
	// OperationID is the provider's opaque identifier for this send attempt,
	// used for correlation and support lookups, not for retry addressing.
	OperationID string

	// Status is the terminal status reported by the provider.
	Status string

	// Detail carries the provider's error detail when Status is not succeeded.
	Detail string
}

// Succeeded reports whether the provider accepted the email for delivery.
func (r Receipt) Succeeded() bool {
	return r.Status == StatusSucceeded
}

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully-prepared Email and handles the actual delivery.
type Sender interface {
	// Send delivers an email message, blocking until the provider reports a
	// terminal state, and returns the resulting Receipt. A non-nil error
	// means the attempt could not be made at all; a delivery failure
	// reported by the provider is a Receipt with a failed status.
	Send(ctx context.Context, email *Email) (Receipt, error)
}
