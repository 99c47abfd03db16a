package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows every origin. Preflight requests pass through so that
// Preflight can answer them with 204.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:     []string{"*"},
		ExposedHeaders:     []string{RequestIDHeader},
		OptionsPassthrough: true,
	})
}

// Preflight answers any OPTIONS request with an empty 204, on every path.
func Preflight(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
