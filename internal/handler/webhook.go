package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/JoeThomas01/deviceloans-notify-service/internal/notification"
	"github.com/JoeThomas01/deviceloans-notify-service/pkg/mailer"
)

// ProductUpdated returns the handler for the product-updated webhook.
// It validates the payload, sends the notification email through the given
// sender, and maps the outcome to a response:
//
//   - 400 ValidationError: unparseable body or violated field rules
//   - 202 accepted: provider reported a successful terminal state
//   - 500 EmailSendFailed: provider reported a failed terminal state
//   - 500 InternalServerError: anything else, including missing configuration
//
// The send is awaited; no job is created and nothing is retried here.
func ProductUpdated(log *slog.Logger, sender mailer.Sender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, internalErrorResponse{
				Error:   errKindInternal,
				Message: err.Error(),
			})
			return
		}

		update, violations := notification.ParseUpdate(body)
		if len(violations) > 0 {
			log.InfoContext(ctx, "webhook payload rejected",
				slog.Any("details", violations),
			)
			writeJSON(w, http.StatusBadRequest, validationErrorResponse{
				Error:   errKindValidation,
				Details: violations,
			})
			return
		}

		email, err := notification.BuildEmail(update)
		if err != nil {
			log.ErrorContext(ctx, "failed to build notification email",
				slog.String("error", err.Error()),
			)
			writeJSON(w, http.StatusInternalServerError, internalErrorResponse{
				Error:   errKindInternal,
				Message: err.Error(),
			})
			return
		}

		receipt, err := sender.Send(ctx, email)
		if err != nil {
			log.ErrorContext(ctx, "email send attempt failed",
				slog.String("error", err.Error()),
			)
			writeJSON(w, http.StatusInternalServerError, internalErrorResponse{
				Error:   errKindInternal,
				Message: err.Error(),
			})
			return
		}

		if !receipt.Succeeded() {
			log.ErrorContext(ctx, "email provider reported failure",
				slog.String("status", receipt.Status),
				slog.String("operation_id", receipt.OperationID),
				slog.String("details", receipt.Detail),
			)
			writeJSON(w, http.StatusInternalServerError, sendFailedResponse{
				Error:       errKindSendFailed,
				Status:      receipt.Status,
				OperationID: receipt.OperationID,
				Details:     receipt.Detail,
			})
			return
		}

		log.InfoContext(ctx, "notification sent",
			slog.String("product_id", update.ID),
			slog.String("operation_id", receipt.OperationID),
		)
		writeJSON(w, http.StatusAccepted, acceptedResponse{
			Message:     "accepted",
			Status:      receipt.Status,
			OperationID: receipt.OperationID,
		})
	}
}
