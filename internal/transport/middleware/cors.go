package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/kalculo-backend/internal/config"
)

// exposedHeaders are response headers browser clients may read: the request
// ID for support tickets and the rate limiter's back-off hint.
var exposedHeaders = strings.Join([]string{RequestIDHeader, "Retry-After"}, ", ")

// CORS returns middleware that answers preflight requests and marks
// responses to allowed origins. The allowed origin is echoed back, never
// "*", so credentialed requests keep working with a wildcard config.
func CORS(cfg config.CORSConfig) Middleware {
	allowAny, allowed := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin != "" && (allowAny || allowed[origin]) {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", exposedHeaders)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if isPreflight(r) {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func parseOrigins(list string) (allowAny bool, allowed map[string]bool) {
	allowed = make(map[string]bool)
	for _, o := range strings.Split(list, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			allowAny = true
		default:
			allowed[o] = true
		}
	}
	return allowAny, allowed
}

// isPreflight reports whether r is a CORS preflight. Other OPTIONS
// requests reach the router.
func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
}
