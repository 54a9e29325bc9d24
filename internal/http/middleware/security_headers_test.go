package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexylomedia/superadmin-api/internal/config"
)

func serveWithSecurityHeaders(cfg config.SecurityHeadersConfig) *httptest.ResponseRecorder {
	handler := SecurityHeaders(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestSecurityHeaders(t *testing.T) {
	cfg := config.SecurityHeadersConfig{
		Enabled:            true,
		CSP:                "default-src 'self'",
		HSTSMaxAge:         31536000,
		FrameOptions:       "DENY",
		ContentTypeOptions: "nosniff",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}

	h := serveWithSecurityHeaders(cfg).Header()

	assert.Equal(t, cfg.CSP, h.Get("Content-Security-Policy"))
	assert.Equal(t, "max-age=31536000; includeSubDomains", h.Get("Strict-Transport-Security"))
	assert.Equal(t, cfg.FrameOptions, h.Get("X-Frame-Options"))
	assert.Equal(t, cfg.ContentTypeOptions, h.Get("X-Content-Type-Options"))
	assert.Equal(t, cfg.ReferrerPolicy, h.Get("Referrer-Policy"))
}

func TestSecurityHeaders_Disabled(t *testing.T) {
	w := serveWithSecurityHeaders(config.SecurityHeadersConfig{
		Enabled: false,
		CSP:     "default-src 'self'",
	})

	assert.Empty(t, w.Header().Get("Content-Security-Policy"))
}

func TestSecurityHeaders_EmptyValues(t *testing.T) {
	h := serveWithSecurityHeaders(config.SecurityHeadersConfig{Enabled: true}).Header()

	assert.Empty(t, h.Get("Content-Security-Policy"))
	assert.Empty(t, h.Get("Strict-Transport-Security"), "max age 0 disables HSTS")
}
