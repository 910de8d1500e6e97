package middlewarex

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"numclass/pkg/httpx/reply"
	"numclass/pkg/logx"
)

// Recovery turns a panic into the generic 500 JSON body.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			if rec == http.ErrAbortHandler { //nolint:errorlint,goerr113
				panic(rec)
			}

			logger(ctx).Error(
				"panic in handler",
				slog.Any(logx.FieldError, rec),
				slog.String(logx.FieldStack, string(debug.Stack())),
			)

			reply.InternalServerError(ctx, w)
		}()

		next.ServeHTTP(w, r)
	})
}
