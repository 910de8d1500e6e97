package modules

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"numclass/pkg/metrics"
)

const metricReadHeaderTimeout = 5 * time.Second

type MetricServer struct {
	ListenAddress   string
	ShutdownTimeout time.Duration
}

func (m MetricServer) Run(ctx context.Context, g *errgroup.Group) {
	HTTPServer{Name: "metrics", ShutdownTimeout: m.ShutdownTimeout}.Run(ctx, g, &http.Server{
		//nolint:exhaustruct
		Addr:              m.ListenAddress,
		Handler:           metrics.Handler(),
		ReadHeaderTimeout: metricReadHeaderTimeout,
	})
}
