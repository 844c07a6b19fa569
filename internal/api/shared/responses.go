package shared

import (
	"fmt"
	"log/slog"
	"net/http"
)

// RespondWithData writes payload as a success envelope with status 200.
func RespondWithData[T any](w http.ResponseWriter, r *http.Request, payload T) {
	BuildSuccess(payload).Write(w)
}

// RespondWithError writes an error envelope with the given status code and
// message, logging it alongside the request's trace ID.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithErrorAndLog(w, r, status, message, nil)
}

// RespondWithErrorAndLog writes an error envelope and also logs the underlying
// error. This is useful when the full error belongs in the logs but only a
// safe message should reach the client.
//
// Log level strategy:
// - 5xx errors: logged at ERROR level
// - 429 Too Many Requests: logged at WARN level (operational concern)
// - everything else: logged at DEBUG level
func RespondWithErrorAndLog(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	// Get trace ID from context if available
	traceID := GetTraceID(r.Context())

	// Set up common log attributes
	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", message),
	}

	// Include the error details, but only in the logs
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	// Set appropriate log level based on status code
	logLevel := slog.LevelDebug
	switch {
	case status >= http.StatusInternalServerError:
		logLevel = slog.LevelError
	case status == http.StatusTooManyRequests:
		logLevel = slog.LevelWarn
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	// Send the envelope with only the safe message
	BuildError(message, status).Write(w)
}
