package modules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"numclass/pkg/contextx"
	"numclass/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// HTTPServer модуль, ответственный за запуск и остановку HTTP-сервера
// (graceful shutdown).
type HTTPServer struct {
	Name            string
	ShutdownTimeout time.Duration
	// OnListen вызывается, когда сокет уже открыт, OnShutdown - перед Shutdown.
	OnListen   func()
	OnShutdown func()
}

func (h HTTPServer) Run(
	ctx context.Context,
	g *errgroup.Group,
	httpServer *http.Server,
) {
	g.Go(func() error {
		log := logger(ctx).With(slog.String("server", h.Name), slog.String("address", httpServer.Addr))

		var lc net.ListenConfig

		ln, err := lc.Listen(ctx, "tcp", httpServer.Addr)
		if err != nil {
			return fmt.Errorf("%s: net.Listen: %w", h.Name, err)
		}

		httpServer.BaseContext = func(net.Listener) context.Context {
			return ctx
		}

		go func() {
			<-ctx.Done()

			if h.OnShutdown != nil {
				h.OnShutdown()
			}

			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.ShutdownTimeout) //nolint:govet
			defer cancel()

			if err := httpServer.Shutdown(ctx); err != nil {
				log.Error("httpServer.Shutdown", logx.Error(err))
			}
		}()

		log.Info("http server started")

		if h.OnListen != nil {
			h.OnListen()
		}

		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: httpServer.Serve: %w", h.Name, err)
		}

		log.Info("http server stopped")

		return nil
	})
}
