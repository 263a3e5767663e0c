package resend

import (
	"context"
	"errors"
	"sync"

	"github.com/resend/resend-go/v3"

	"github.com/JoeThomas01/deviceloans-notify-service/pkg/mailer"
)

var (
	// ErrMissingAPIKey indicates the Resend API key is not configured.
	ErrMissingAPIKey = errors.New("resend: api key is not configured")

	// ErrMissingSender indicates the sender email address is not configured.
	ErrMissingSender = errors.New("resend: sender email is not configured")
)

// Sender implements mailer.Sender using the Resend API.
// The underlying client is created once, on first send, and reused for the
// lifetime of the process. It is immutable after construction, so it is
// safe to share across concurrent requests without further locking.
type Sender struct {
	config  Config
	once    sync.Once
	client  *resend.Client
	initErr error
}

// New creates a new Resend sender. Configuration is not validated here;
// missing credentials surface as an error from the first Send call.
func New(cfg Config) *Sender {
	return &Sender{config: cfg}
}

// Send implements mailer.Sender. It blocks until the Resend API reports a
// terminal state for the attempt. A rejection reported by the provider is
// returned as a failed Receipt; a non-nil error means the attempt could not
// be made at all (misconfiguration, unusable message). No retries.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (mailer.Receipt, error) {
	if err := email.Validate(); err != nil {
		return mailer.Receipt{}, err
	}

	client, err := s.clientHandle()
	if err != nil {
		return mailer.Receipt{}, err
	}

	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
	}

	sent, err := client.Emails.SendWithContext(ctx, req)
	if err != nil {
		// Terminal failure reported by the provider for this attempt.
		return mailer.Receipt{
			Status: mailer.StatusFailed,
			Detail: err.Error(),
		}, nil
	}

	return mailer.Receipt{
		Status:      mailer.StatusSucceeded,
		OperationID: sent.Id,
	}, nil
}

// clientHandle returns the process-wide Resend client, creating it on first
// use. Configuration problems surface here rather than at startup.
func (s *Sender) clientHandle() (*resend.Client, error) {
	s.once.Do(func() {
		switch {
		case s.config.APIKey == "":
			s.initErr = ErrMissingAPIKey
		case s.config.SenderEmail == "":
			s.initErr = ErrMissingSender
		default:
			s.client = resend.NewClient(s.config.APIKey)
		}
	})
	return s.client, s.initErr
}
