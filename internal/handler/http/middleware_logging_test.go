package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// injectLogger puts l into the request context the same way withTraceID
// does.
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	return r.WithContext(l.WithContext(r.Context()))
}

func runLogged(t *testing.T, method, target string, next http.Handler) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	h := NewHandler(&service.Services{}, logger.Nop())

	req := injectLogger(httptest.NewRequest(method, target, nil), zerolog.New(&buf))
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	return entry
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		status     int
		body       string
		wantStatus float64
		wantSize   float64
	}{
		{name: "GET 200", method: http.MethodGet, target: "/books", status: http.StatusOK, body: "[]", wantStatus: 200, wantSize: 2},
		{name: "POST 201", method: http.MethodPost, target: "/authors", status: http.StatusCreated, body: `{"id":"1"}`, wantStatus: 201, wantSize: 10},
		{name: "DELETE 403", method: http.MethodDelete, target: "/books/1", status: http.StatusForbidden, wantStatus: 403},
		{name: "query kept in uri", method: http.MethodGet, target: "/auth/me?token=x", status: http.StatusOK, wantStatus: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := runLogged(t, tt.method, tt.target, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			}))

			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.target, entry["uri"])
			assert.Equal(t, tt.wantStatus, entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Contains(t, entry, "duration")
			assert.Contains(t, entry, "remote_addr")
		})
	}
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	entry := runLogged(t, http.MethodGet, "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, float64(0), entry["size"])
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
