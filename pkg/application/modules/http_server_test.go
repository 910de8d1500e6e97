package modules_test

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"numclass/pkg/application/modules"
)

func TestHTTPServer(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var listening, shuttingDown atomic.Bool

	addr := freeAddr(t)

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		Name:            "test",
		ShutdownTimeout: time.Second,
		OnListen:        func() { listening.Store(true) },
		OnShutdown:      func() { shuttingDown.Store(true) },
	}.Run(ctx, g, &http.Server{ //nolint:gosec
		Addr: addr,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}),
	})

	rq.Eventually(listening.Load, time.Second, 10*time.Millisecond)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://"+addr+"/", http.NoBody)
	rq.NoError(err)

	resp, err := http.DefaultClient.Do(req)
	rq.NoError(err)
	resp.Body.Close()

	rq.Equal(http.StatusTeapot, resp.StatusCode)

	cancel()

	rq.NoError(g.Wait())
	rq.True(shuttingDown.Load())
}

func TestProbeServerReadiness(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	addr := freeAddr(t)

	probeServer := modules.ProbeServer{
		Name:            "numclass",
		Version:         "test",
		ListenAddress:   addr,
		ShutdownTimeout: time.Second,
	}.Run(ctx, g)

	ready := func() int {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://"+addr+"/ready", http.NoBody)
		rq.NoError(err)

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return 0
		}
		defer resp.Body.Close()

		return resp.StatusCode
	}

	rq.Eventually(func() bool { return ready() == http.StatusServiceUnavailable }, time.Second, 10*time.Millisecond)

	probeServer.SetReady(true)
	rq.Equal(http.StatusOK, ready())

	cancel()

	rq.NoError(g.Wait())
}

func freeAddr(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	require.NoError(t, l.Close())

	return addr
}
