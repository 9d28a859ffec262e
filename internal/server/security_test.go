package server

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"

	tests := []struct {
		name           string
		apiKey         string
		method         string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{"Valid API Key", apiKey, http.MethodPost, apiKey, "/api/v1/game/plant", http.StatusOK},
		{"Invalid API Key", apiKey, http.MethodPost, "wrong-key", "/api/v1/game/plant", http.StatusUnauthorized},
		{"Missing API Key", apiKey, http.MethodPost, "", "/api/v1/shop/buy", http.StatusUnauthorized},
		{"Missing API Key - PUT", apiKey, http.MethodPut, "", "/api/v1/profile", http.StatusUnauthorized},
		{"Read Without Key", apiKey, http.MethodGet, "", "/api/v1/game/snapshot", http.StatusOK},
		{"Public Path - Healthz", apiKey, http.MethodGet, "", "/healthz", http.StatusOK},
		{"Public Path - Metrics", apiKey, http.MethodGet, "", "/metrics", http.StatusOK},
		{"Auth Disabled", "", http.MethodPost, "", "/api/v1/game/plant", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			middleware := AuthMiddleware(tt.apiKey, nil, NewSuspiciousActivityDetector())
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_RecordsFailures(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := AuthMiddleware("k", nil, detector)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/game/advance", nil)
		req.RemoteAddr = "10.1.1.1:5555"
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 3, detector.failedAuthByIP["10.1.1.1"])
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		want       string
	}{
		{"direct connection", "203.0.113.9:4000", "", nil, "203.0.113.9"},
		{"untrusted forwarded header ignored", "203.0.113.9:4000", "198.51.100.1", nil, "203.0.113.9"},
		{"trusted proxy uses rightmost hop", "10.0.0.1:80", "198.51.100.1, 192.0.2.7", []string{"10.0.0.1"}, "192.0.2.7"},
		{"trusted proxy without header", "10.0.0.1:80", "", []string{"10.0.0.1"}, "10.0.0.1"},
		{"unparseable remote addr", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}

func TestSuspiciousActivityDetector_WindowReset(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	now := time.Now()
	detector.now = func() time.Time { return now }
	detector.lastResetTime = now

	for i := 0; i < MaxRequestsPerWindow; i++ {
		assert.True(t, detector.RecordRequest("1.2.3.4"))
	}
	assert.False(t, detector.RecordRequest("1.2.3.4"))

	now = now.Add(ActivityWindow + time.Second)
	assert.True(t, detector.RecordRequest("1.2.3.4"), "counters reset after the window")
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	handler := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				return
			}
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name string
		body string
		want int
	}{
		{"within limit", "{}", http.StatusOK},
		{"exactly at limit", "12345678", http.StatusOK},
		{"over limit", "this body is far too long", http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
