package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JoeThomas01/deviceloans-notify-service/internal/handler"
	"github.com/JoeThomas01/deviceloans-notify-service/pkg/logger"
	"github.com/JoeThomas01/deviceloans-notify-service/pkg/mailer"
)

// MockSender is a mock implementation of mailer.Sender.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, email *mailer.Email) (mailer.Receipt, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(mailer.Receipt), args.Error(1)
}

const validPayload = `{
	"id": "1",
	"name": "Widget",
	"pricePence": 500,
	"updatedAt": "2024-01-01T00:00:00.000Z",
	"recipientEmail": "a@b.com"
}`

func postWebhook(t *testing.T, sender mailer.Sender, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/integration/events/product-updated", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ProductUpdated(logger.NewNope(), sender)(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestProductUpdated_Accepted(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.MatchedBy(func(email *mailer.Email) bool {
		return email.To[0] == "a@b.com" &&
			email.Subject == "Product updated: Widget" &&
			len(email.Text) > 0 &&
			len(email.HTML) > 0
	})).Return(mailer.Receipt{Status: mailer.StatusSucceeded, OperationID: "op-123"}, nil)

	rec := postWebhook(t, sender, validPayload)

	require.Equal(t, http.StatusAccepted, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "accepted", body["message"])
	assert.Equal(t, "succeeded", body["status"])
	assert.Equal(t, "op-123", body["operationId"])
	sender.AssertExpectations(t)
}

func TestProductUpdated_ValidationError(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}

	rec := postWebhook(t, sender, `{"pricePence":-5,"recipientEmail":"nope"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ValidationError", body["error"])

	details, ok := body["details"].([]any)
	require.True(t, ok)
	assert.Len(t, details, 5)
	assert.Equal(t, "id is required", details[0])

	// No send attempt may occur for an invalid payload.
	sender.AssertNotCalled(t, "Send")
}

func TestProductUpdated_InvalidJSON(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}

	rec := postWebhook(t, sender, `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ValidationError", body["error"])
	assert.Equal(t, []any{"request body must be valid JSON"}, body["details"])
	sender.AssertNotCalled(t, "Send")
}

func TestProductUpdated_EmailSendFailed(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.Anything).Return(mailer.Receipt{
		Status:      mailer.StatusFailed,
		OperationID: "op-456",
		Detail:      "mailbox unavailable",
	}, nil)

	rec := postWebhook(t, sender, validPayload)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "EmailSendFailed", body["error"])
	assert.Equal(t, "failed", body["status"])
	assert.Equal(t, "op-456", body["operationId"])
	assert.Equal(t, "mailbox unavailable", body["details"])
	sender.AssertExpectations(t)
}

func TestProductUpdated_InternalError(t *testing.T) {
	t.Parallel()

	// Missing configuration surfaces lazily, as an error from the sender.
	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.Anything).
		Return(mailer.Receipt{}, errors.New("resend: api key is not configured"))

	rec := postWebhook(t, sender, validPayload)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "InternalServerError", body["error"])
	assert.Equal(t, "resend: api key is not configured", body["message"])
}
