package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeWithTraceID(h *Handler, traceIDHeaderValue string) (*httptest.ResponseRecorder, *http.Request) {
	var capturedReq *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if traceIDHeaderValue != "" {
		req.Header.Set(traceIDHeader, traceIDHeaderValue)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, capturedReq
}

func TestWithTraceID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	t.Run("incoming id is reused", func(t *testing.T) {
		rr, req := executeWithTraceID(h, "my-custom-trace-id")

		require.NotNil(t, req)
		assert.Equal(t, "my-custom-trace-id", rr.Header().Get(traceIDHeader))
	})

	t.Run("missing id is generated", func(t *testing.T) {
		rr, req := executeWithTraceID(h, "")

		require.NotNil(t, req)
		_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
		assert.NoError(t, err)
	})

	t.Run("logger attached to context", func(t *testing.T) {
		_, req := executeWithTraceID(h, "abc")

		assert.NotNil(t, logger.FromRequest(req))
	})
}
