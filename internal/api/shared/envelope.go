package shared

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// ContentTypeJSON is the content type of every envelope response.
const ContentTypeJSON = "application/json"

// Envelope is the uniform wrapper for all API responses. Exactly one of Data
// and Error is non-nil; the other serializes as null.
type Envelope[T any] struct {
	Data  *T      `json:"data"`
	Error *string `json:"error"`
}

// Response is a serialized envelope ready to be written.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// EmptyPayloadMessage is sent when a success payload encodes to null.
const EmptyPayloadMessage = "Empty response payload"

// BuildSuccess wraps payload in a success envelope with status 200.
// If payload cannot be encoded the body is left empty. A payload that
// encodes to null (nil pointer, map or slice) would leave both sides of the
// envelope empty, so it yields a 500 error envelope instead.
func BuildSuccess[T any](payload T) Response {
	// Encode the payload on its own first so a null result can be caught
	// before it reaches the envelope.
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to encode response payload",
			"error", err,
			"status_code", http.StatusOK)
		return Response{
			Status:      http.StatusOK,
			ContentType: ContentTypeJSON,
		}
	}

	if bytes.Equal(data, []byte("null")) {
		slog.Error("refusing to send null success payload",
			"payload_type", fmt.Sprintf("%T", payload))
		return BuildError(EmptyPayloadMessage, http.StatusInternalServerError)
	}

	raw := json.RawMessage(data)
	return build(http.StatusOK, Envelope[json.RawMessage]{Data: &raw})
}

// BuildError wraps message in an error envelope with the given status.
// If the envelope cannot be encoded the body is left empty.
func BuildError(message string, status int) Response {
	return build(status, Envelope[struct{}]{Error: &message})
}

func build[T any](status int, envelope Envelope[T]) Response {
	body, err := json.Marshal(envelope)
	if err != nil {
		slog.Error("failed to encode response envelope",
			"error", err,
			"status_code", status)
		body = nil
	}
	return Response{
		Status:      status,
		ContentType: ContentTypeJSON,
		Body:        body,
	}
}

// Write sends the response. Write errors are logged, not returned, since
// the status line has already gone out by then.
func (resp Response) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", resp.ContentType)
	w.WriteHeader(resp.Status)
	if len(resp.Body) == 0 {
		return
	}
	if _, err := w.Write(resp.Body); err != nil {
		slog.Error("failed to write response body", "error", err)
	}
}
