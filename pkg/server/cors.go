package server

import (
	"net/http"

	"github.com/spf13/viper"
)

// originAllowed checks an Origin header against
// server.allowed_origins; "*" allows everything
func originAllowed(origin string) bool {
	allowed := viper.GetStringSlice("server.allowed_origins")
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return origin == ""
}

// withCORS answers preflight requests and stamps the CORS headers the
// browser client needs
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "*")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
