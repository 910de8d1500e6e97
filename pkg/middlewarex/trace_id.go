package middlewarex

import (
	"net/http"

	"numclass/pkg/contextx"
)

const headerNameTraceID = "X-Trace-Id"

// TraceID reuses the caller's X-Trace-Id or mints a new one and echoes it in
// the response.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := contextx.TraceID(r.Header.Get(headerNameTraceID))

		if traceID == "" {
			traceID = contextx.NewTraceID()
		}

		w.Header().Set(headerNameTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(contextx.WithTraceID(r.Context(), traceID)))
	})
}
