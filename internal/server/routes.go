package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"numclass/pkg/httpx/reply"
	"numclass/pkg/logx"
	"numclass/pkg/middlewarex"
)

const (
	routeClassifyNumber = "/api/classify-number"
	routeHealth         = "/health"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Get("/", handler(s.getDocumentation))
	r.Get(routeHealth, handler(s.getHealth))

	r.Route("/api", func(r chi.Router) {
		r.Get("/classify-number", handler(s.getClassifyNumber))
	})
}

// NewRouter builds the full API handler: middleware chain plus routes.
func NewRouter(s Server, logFieldMaxLen int) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
		middlewarex.Metrics,
		middlewarex.Recovery,
		middlewarex.CORS,
	)

	s.RegisterRoutes(r)

	return r
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
