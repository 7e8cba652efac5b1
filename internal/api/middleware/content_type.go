package middleware

import (
	"mime"
	"net/http"

	"github.com/reiseplaner/reiseplaner/internal/api/models"
)

// ContentTypeJSON marks responses as JSON up front. Handlers that write a
// different type, like problem+json, override it before the body goes out.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "application/json")
		}
		next.ServeHTTP(w, r)
	})
}

// RequireJSON rejects body-carrying requests whose Content-Type is not JSON
// with 415 before the handler reads anything. Parameters like charset are
// accepted; a missing Content-Type is not.
func RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil || mediaType != "application/json" {
				problem := models.NewUnsupportedMediaType(
					GetRequestID(r.Context()),
					"Request body must be application/json",
				)
				problem.Instance = r.URL.Path
				problem.Write(w)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
