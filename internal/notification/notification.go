package notification

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// descriptionPlaceholder is shown in the email body when the payload
// carries no description.
const descriptionPlaceholder = "-"

// Update is the "product updated" notification built from a webhook
// payload. It is transient: created per request, never persisted.
type Update struct {
	ID             string
	Name           string
	Description    string
	UpdatedAt      string
	RecipientEmail string
	PricePence     int64
}

// payload mirrors the inbound JSON shape without trusting any field types.
// Fields are coerced individually so every validation rule can be checked
// and reported in one pass.
type payload struct {
	ID             any `json:"id"`
	Name           any `json:"name"`
	PricePence     any `json:"pricePence"`
	Description    any `json:"description"`
	UpdatedAt      any `json:"updatedAt"`
	RecipientEmail any `json:"recipientEmail"`
}

// Violation messages, one per validation rule, reported in rule order.
const (
	msgInvalidJSON  = "request body must be valid JSON"
	msgMissingID    = "id is required"
	msgMissingName  = "name is required"
	msgInvalidPrice = "pricePence must be a non-negative integer"
	msgInvalidEmail = "recipientEmail must be a valid email address"
	msgInvalidDate  = "updatedAt must be a valid ISO-8601 timestamp"
)

// ParseUpdate parses a raw JSON webhook body into a validated Update.
// It returns either the validated value or the full list of violated rules
// in rule order: id, name, pricePence, recipientEmail, updatedAt. All rules
// are checked; failures are collected, not short-circuited. An unparseable
// body yields a single generic violation.
func ParseUpdate(data []byte) (*Update, []string) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, []string{msgInvalidJSON}
	}

	var (
		id        = strings.TrimSpace(asString(p.ID))
		name      = strings.TrimSpace(asString(p.Name))
		price     = asNumber(p.PricePence)
		email     = strings.TrimSpace(asString(p.RecipientEmail))
		updatedAt = strings.TrimSpace(asString(p.UpdatedAt))
	)

	var violations []string
	if id == "" {
		violations = append(violations, msgMissingID)
	}
	if name == "" {
		violations = append(violations, msgMissingName)
	}
	if math.IsNaN(price) || price < 0 || price != math.Trunc(price) {
		violations = append(violations, msgInvalidPrice)
	}
	if !strings.Contains(email, "@") {
		violations = append(violations, msgInvalidEmail)
	}
	if !validTimestamp(updatedAt) {
		violations = append(violations, msgInvalidDate)
	}
	if len(violations) > 0 {
		return nil, violations
	}

	description := strings.TrimSpace(asString(p.Description))
	if description == "" {
		description = descriptionPlaceholder
	}

	return &Update{
		ID:             id,
		Name:           name,
		Description:    description,
		UpdatedAt:      updatedAt,
		RecipientEmail: email,
		PricePence:     int64(price),
	}, nil
}

// asString coerces a decoded JSON value to a string. Anything that is not
// a JSON string becomes the empty string.
func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asNumber coerces a decoded JSON value to a float64. Strings go through a
// numeric parse; anything unparseable yields NaN so a single rule rejects
// missing, malformed, and non-numeric values alike.
func asNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// timestampLayouts are tried in order. The separate "T" check keeps the
// contract that the value is ISO-8601-like, not merely parseable.
var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05"}

func validTimestamp(s string) bool {
	if !strings.Contains(s, "T") {
		return false
	}
	for _, layout := range timestampLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
