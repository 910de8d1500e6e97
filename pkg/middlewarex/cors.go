package middlewarex

import (
	"net/http"
	"strings"
)

//nolint:gochecknoglobals
var (
	corsAllowMethods = strings.Join([]string{
		http.MethodGet, http.MethodHead, http.MethodOptions,
	}, ", ")
	corsAllowHeaders = strings.Join([]string{
		"Accept", "Accept-Encoding", "Authorization", "Cache-Control", "Content-Type", "Origin",
		"X-Requested-With", headerNameTraceID,
	}, ", ")
	corsExposeHeaders = strings.Join([]string{
		"Content-Length", "Content-Type", headerNameTraceID,
	}, ", ")
)

// CORS allows every origin without credentials.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()

		header.Set("Access-Control-Allow-Origin", "*")

		header.Set("Access-Control-Allow-Methods", corsAllowMethods)
		header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
		header.Set("Access-Control-Expose-Headers", corsExposeHeaders)

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
