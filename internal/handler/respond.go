package handler

import (
	"encoding/json"
	"net/http"
)

// Error envelope kinds. Each maps to a fixed HTTP status and JSON shape.
const (
	errKindValidation = "ValidationError"
	errKindSendFailed = "EmailSendFailed"
	errKindInternal   = "InternalServerError"
)

// validationErrorResponse is the 400 envelope: one message per violated
// rule, in rule order.
type validationErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details"`
}

// sendFailedResponse is the 500 envelope for a provider-reported failure,
// echoing the provider's terminal status, operation id, and error detail.
type sendFailedResponse struct {
	Error       string `json:"error"`
	Status      string `json:"status"`
	OperationID string `json:"operationId"`
	Details     string `json:"details"`
}

// internalErrorResponse is the 500 envelope for everything unexpected,
// including missing configuration.
type internalErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// acceptedResponse is the 202 envelope for a successful send, echoing the
// provider's terminal status and operation id.
type acceptedResponse struct {
	Message     string `json:"message"`
	Status      string `json:"status"`
	OperationID string `json:"operationId"`
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
