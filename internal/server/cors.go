package server

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"
)

const corsMaxAge = 12 * time.Hour

var (
	corsAllowMethods  = strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodOptions}, ", ")
	corsAllowHeaders  = strings.Join([]string{"Origin", "Content-Type", "Accept", "Accept-Language", HeaderRequestID, "HX-Request"}, ", ")
	corsExposeHeaders = strings.Join([]string{HeaderRequestID, "Content-Language"}, ", ")
	corsMaxAgeSeconds = strconv.Itoa(int(corsMaxAge.Seconds()))
)

// cors answers preflight requests and adds CORS headers for allowed origins.
// Requests from other origins pass through without headers and the browser
// blocks them. An empty list disables the middleware.
func cors(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	wildcard := slices.Contains(origins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" || (!wildcard && !slices.Contains(origins, origin)) {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Add("Vary", "Origin")
			if wildcard {
				h.Set("Access-Control-Allow-Origin", "*")
			} else {
				h.Set("Access-Control-Allow-Origin", origin)
			}
			h.Set("Access-Control-Expose-Headers", corsExposeHeaders)

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Add("Vary", "Access-Control-Request-Method")
				h.Add("Vary", "Access-Control-Request-Headers")
				h.Set("Access-Control-Allow-Methods", corsAllowMethods)
				h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
				h.Set("Access-Control-Max-Age", corsMaxAgeSeconds)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
