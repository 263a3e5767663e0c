package middleware

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
)

// recoverStackSize is the maximum stack trace size captured on panic.
const recoverStackSize = 4096

// panicResponse is the InternalServerError envelope written when a handler
// panics. It matches the shape handlers use for unexpected errors, so
// nothing ever escapes the request boundary unformatted.
type panicResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Recover returns middleware that recovers from panics.
// The panic and stack are logged; the caller receives a 500 with the
// InternalServerError JSON shape.
func Recover(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					stack := make([]byte, recoverStackSize)
					n := runtime.Stack(stack, false)

					log.ErrorContext(r.Context(), "panic recovered",
						slog.Any("panic", rec),
						slog.String("stack", string(stack[:n])),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(panicResponse{
						Error:   "InternalServerError",
						Message: fmt.Sprint(rec),
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
