package contextx_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"numclass/pkg/contextx"
)

func TestLogger(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	logger, err := contextx.LoggerFromContext(ctx)
	rq.Nil(logger)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "logger: no value in context")
	rq.Equal(slog.Default(), contextx.LoggerFromContextOrDefault(ctx))

	ctx = contextx.WithLogger(ctx, testLogger)

	logger, err = contextx.LoggerFromContext(ctx)
	rq.NoError(err)
	rq.Equal(testLogger, logger)
	rq.Equal(testLogger, contextx.LoggerFromContextOrDefault(ctx))
}

func TestTraceID(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	traceID, err := contextx.TraceIDFromContext(ctx)
	rq.Empty(traceID)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "trace id: no value in context")

	const xidLen = 20

	generated := contextx.NewTraceID()
	rq.Len(generated.String(), xidLen)
	rq.NotEqual(generated, contextx.NewTraceID())

	ctx = contextx.WithTraceID(ctx, contextx.TraceID("test-trace-id"))

	traceID, err = contextx.TraceIDFromContext(ctx)
	rq.NoError(err)
	rq.Equal(contextx.TraceID("test-trace-id"), traceID)
}
