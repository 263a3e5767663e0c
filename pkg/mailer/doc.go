// Package mailer provides a universal email sending interface.
//
// The package separates the email message shape from the provider that
// delivers it, allowing providers to be swapped (or mocked in tests) behind
// the Sender interface.
//
// # Usage
//
// Basic usage with the built-in Resend provider:
//
//	import (
//		"context"
//		"os"
//
//		"github.com/JoeThomas01/deviceloans-notify-service/pkg/mailer"
//		"github.com/JoeThomas01/deviceloans-notify-service/pkg/mailer/resend"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		sender := resend.New(resend.Config{
//			APIKey:      os.Getenv("RESEND_API_KEY"),
//			SenderEmail: "team@example.com",
//			SenderName:  "Team",
//		})
//
//		receipt, err := sender.Send(ctx, &mailer.Email{
//			To:      []string{"user@example.com"},
//			Subject: "Welcome",
//			Text:    "Hello!",
//			HTML:    "<p>Hello!</p>",
//		})
//		if err != nil {
//			panic(err)
//		}
//		if !receipt.Succeeded() {
//			// receipt.Detail carries the provider's error detail
//		}
//	}
//
// # Outcomes
//
// Send blocks until the provider reports a terminal state and returns a
// Receipt with the terminal status, the provider's opaque operation
// identifier, and an error detail when delivery failed. A non-nil error is
// reserved for attempts that could not be made at all (misconfiguration,
// unusable input); a delivery failure reported by the provider is a failed
// Receipt, not an error. Providers do not retry; a single failed attempt is
// a single reported failure.
//
// # Custom Providers
//
// Implement the Sender interface to add support for other email providers:
//
//	type MySender struct{}
//
//	func (s *MySender) Send(ctx context.Context, email *mailer.Email) (mailer.Receipt, error) {
//		// Deliver using your provider's API and map the outcome.
//		return mailer.Receipt{Status: mailer.StatusSucceeded}, nil
//	}
package mailer
