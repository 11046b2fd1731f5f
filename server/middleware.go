package server

import "net/http"

// middlewareCORS restricts cross-origin access to the configured origin
// allow-list. An empty list disables cross-origin access entirely.
func middlewareCORS(h http.Handler, origins []string) http.Handler {
	// Index origins
	os := make(map[string]bool, len(origins))
	for _, o := range origins {
		os[o] = true
	}
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		// Check origin
		if o := r.Header.Get("Origin"); o != "" && os[o] {
			rw.Header().Set("Access-Control-Allow-Credentials", "true")
			rw.Header().Set("Access-Control-Allow-Origin", o)
			rw.Header().Set("Vary", "Origin")
		}

		// Preflight
		if r.Method == http.MethodOptions {
			rw.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			rw.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			rw.WriteHeader(http.StatusNoContent)
			return
		}

		// Next
		h.ServeHTTP(rw, r)
	})
}
