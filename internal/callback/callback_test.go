package callback

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-vault-keeper/internal/app"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestListener() *Listener {
	return NewListener("127.0.0.1:0", logger.Nop())
}

func serve(l *Listener, method, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	l.Init().ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

// ── callback ─────────────────────────────────────────────────────────────────

func TestCallback_ForwardsQuery(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   url.Values
	}{
		{
			name:   "login path with both markers",
			target: "/login?token=tok&user_id=u-1",
			want:   url.Values{"token": {"tok"}, "user_id": {"u-1"}},
		},
		{
			name:   "auth callback with user id only",
			target: "/auth/callback?user_id=u-2",
			want:   url.Values{"user_id": {"u-2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestListener()

			rr := serve(l, http.MethodGet, tt.target)
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), app.MsgLoginComplete)
			assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

			select {
			case got := <-l.Results():
				assert.Equal(t, tt.want, got)
			default:
				t.Fatal("query was not forwarded")
			}
		})
	}
}

func TestCallback_MissingMarkers(t *testing.T) {
	l := newTestListener()

	rr := serve(l, http.MethodGet, "/login?state=xyz")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), app.MsgLoginMissingParams)
	assert.Empty(t, l.Results())
}

func TestCallback_FullChannel(t *testing.T) {
	l := newTestListener()

	for range resultsBuffer {
		require.Equal(t, http.StatusOK, serve(l, http.MethodGet, "/login?token=t").Code)
	}

	rr := serve(l, http.MethodGet, "/login?token=overflow")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Len(t, l.Results(), resultsBuffer)
}

func TestRoutes_UnknownPathAndMethod(t *testing.T) {
	l := newTestListener()

	assert.Equal(t, http.StatusNotFound, serve(l, http.MethodGet, "/vault?token=t").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(l, http.MethodPost, "/login?token=t").Code)
	assert.Empty(t, l.Results())
}

// ── middleware ───────────────────────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	l := newTestListener()

	rr := serve(l, http.MethodGet, "/login?token=t")
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/login?token=t", nil)
	req.Header.Set(traceIDHeader, "given-trace")
	rr = httptest.NewRecorder()
	l.Init().ServeHTTP(rr, req)
	assert.Equal(t, "given-trace", rr.Header().Get(traceIDHeader))
}

func TestResponseWriter_RecordsStatusOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusTeapot)
	w.WriteHeader(http.StatusOK)
	n, err := w.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusTeapot, w.status)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	_, err := w.Write([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.status)
}
