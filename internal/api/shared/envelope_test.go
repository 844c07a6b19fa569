package shared

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listing struct {
	Posts []string `json:"posts"`
	After *string  `json:"after"`
}

// decodeEnvelope decodes a body into its raw top-level keys.
func decodeEnvelope(t *testing.T, body []byte) map[string]json.RawMessage {
	t.Helper()
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &raw))
	return raw
}

func TestBuildSuccess(t *testing.T) {
	after := "t3_abc"
	resp := BuildSuccess(listing{Posts: []string{"a", "b"}, After: &after})

	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "application/json", resp.ContentType)
	assert.JSONEq(t, `{"data":{"posts":["a","b"],"after":"t3_abc"},"error":null}`, string(resp.Body))
}

func TestBuildError(t *testing.T) {
	resp := BuildError("not found", http.StatusNotFound)

	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "application/json", resp.ContentType)
	assert.JSONEq(t, `{"data":null,"error":"not found"}`, string(resp.Body))
}

func TestEnvelopeHasExactlyOneSide(t *testing.T) {
	responses := map[string]Response{
		"success string": BuildSuccess("ok"),
		"success struct": BuildSuccess(listing{}),
		"success number": BuildSuccess(42),
		"error 400":      BuildError("bad", http.StatusBadRequest),
		"error 500":      BuildError("", http.StatusInternalServerError),
	}

	for name, resp := range responses {
		t.Run(name, func(t *testing.T) {
			raw := decodeEnvelope(t, resp.Body)
			require.Len(t, raw, 2)
			require.Contains(t, raw, "data")
			require.Contains(t, raw, "error")

			dataNull := string(raw["data"]) == "null"
			errorNull := string(raw["error"]) == "null"
			assert.NotEqual(t, dataNull, errorNull, "exactly one of data/error must be set")
		})
	}
}

func TestBuildSuccessEncodingFailure(t *testing.T) {
	tests := map[string]Response{
		"channel payload": BuildSuccess(make(chan int)),
		"NaN payload":     BuildSuccess(math.NaN()),
	}

	for name, resp := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusOK, resp.Status)
			assert.Equal(t, "application/json", resp.ContentType)
			assert.Empty(t, resp.Body)
		})
	}
}

func TestBuildSuccessNullPayload(t *testing.T) {
	tests := map[string]Response{
		"nil pointer": BuildSuccess((*listing)(nil)),
		"nil map":     BuildSuccess(map[string]int(nil)),
		"nil slice":   BuildSuccess([]string(nil)),
		"nil any":     BuildSuccess[any](nil),
	}

	for name, resp := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusInternalServerError, resp.Status)
			assert.Equal(t, "application/json", resp.ContentType)
			assert.JSONEq(t, `{"data":null,"error":"Empty response payload"}`, string(resp.Body))
		})
	}
}

func TestBuildSuccessEmptyButNonNilPayload(t *testing.T) {
	resp := BuildSuccess([]string{})

	assert.Equal(t, http.StatusOK, resp.Status)
	assert.JSONEq(t, `{"data":[],"error":null}`, string(resp.Body))
}

func TestResponseWrite(t *testing.T) {
	t.Run("writes headers and body", func(t *testing.T) {
		w := httptest.NewRecorder()
		BuildError("gone", http.StatusGone).Write(w)

		assert.Equal(t, http.StatusGone, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"data":null,"error":"gone"}`, w.Body.String())
	})

	t.Run("empty body keeps status and content type", func(t *testing.T) {
		w := httptest.NewRecorder()
		BuildSuccess(make(chan int)).Write(w)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.Empty(t, w.Body.String())
	})
}
