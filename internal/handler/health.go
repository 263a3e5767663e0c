package handler

import "net/http"

// healthResponse is the liveness probe body.
type healthResponse struct {
	OK bool `json:"ok"`
}

// Health returns an http.HandlerFunc that always responds 200 {"ok":true}.
// Use for platform liveness probes to indicate the process is running; it
// has no dependencies and reflects no other system state.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{OK: true})
	}
}
