package transport

import (
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

func logMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h.ServeHTTP(w, r)
		log.WithFields(log.Fields{
			"method":     r.Method,
			"url":        r.URL.String(),
			"remoteAddr": r.RemoteAddr,
			"duration":   time.Since(start).String(),
		}).Info("request handled")
	})
}

// methodOverrideMiddleware lets HTML forms issue PUT and DELETE through a POST
// carrying a _method field or query parameter.
func methodOverrideMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			override := r.URL.Query().Get("_method")
			if override == "" && isFormRequest(r) {
				_ = r.ParseForm()
				override = r.PostFormValue("_method")
			}
			switch strings.ToUpper(override) {
			case http.MethodPut:
				r.Method = http.MethodPut
			case http.MethodDelete:
				r.Method = http.MethodDelete
			}
		}
		h.ServeHTTP(w, r)
	})
}
