package modules

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"numclass/pkg/probe"
)

const probeReadHeaderTimeout = 5 * time.Second

type ProbeServer struct {
	Name            string
	Version         string
	ListenAddress   string
	ShutdownTimeout time.Duration
}

// Run starts the probe listener and returns the probe so the caller can flip
// readiness.
func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) probe.Server {
	probeServer := probe.NewServer(probe.Options{
		Name:    p.Name,
		Version: p.Version,
	})

	HTTPServer{Name: "probe", ShutdownTimeout: p.ShutdownTimeout}.Run(ctx, g, &http.Server{
		//nolint:exhaustruct
		Addr:              p.ListenAddress,
		Handler:           probeServer.Handler(),
		ReadHeaderTimeout: probeReadHeaderTimeout,
	})

	return probeServer
}
