package middleware

import (
	"fmt"
	"net/http"

	"github.com/nexylomedia/superadmin-api/internal/config"
)

// SecurityHeaders creates middleware that applies OWASP-recommended security headers.
// Empty values are skipped, so a deployment can switch off individual headers.
func SecurityHeaders(cfg config.SecurityHeadersConfig) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	headers := map[string]string{
		"Content-Security-Policy": cfg.CSP,
		"X-Frame-Options":         cfg.FrameOptions,
		"X-Content-Type-Options":  cfg.ContentTypeOptions,
		"Referrer-Policy":         cfg.ReferrerPolicy,
	}
	if cfg.HSTSMaxAge > 0 {
		headers["Strict-Transport-Security"] = fmt.Sprintf("max-age=%d; includeSubDomains", cfg.HSTSMaxAge)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for name, value := range headers {
				if value != "" {
					w.Header().Set(name, value)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
