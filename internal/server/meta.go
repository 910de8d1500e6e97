package server

import (
	"net/http"

	"numclass/pkg/httpx/reply"
	"numclass/pkg/rest"
)

const statusHealthy = "healthy"

type MetaServer struct {
	documentation rest.Documentation
}

func NewMetaServer(docsURL string) MetaServer {
	return MetaServer{
		documentation: rest.Documentation{
			Message:       "Number Classification API",
			Endpoint:      routeClassifyNumber + "?number=<integer>",
			Example:       routeClassifyNumber + "?number=371",
			Documentation: docsURL,
		},
	}
}

func (s MetaServer) getDocumentation(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, s.documentation)

	return nil
}

func (s MetaServer) getHealth(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, rest.Health{Status: statusHealthy})

	return nil
}
