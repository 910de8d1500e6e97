// Package fact decorates a fun-fact source with the policies the service
// relies on: a fallback that never fails, a TTL cache and metrics.
package fact

import (
	"context"
	"fmt"

	"numclass/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

//go:generate moq -rm -out provider_mock.gen.go . Provider:ProviderMock
type Provider interface {
	Fact(ctx context.Context, n uint64) (string, error)
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func(ctx context.Context, n uint64) (string, error)

func (f ProviderFunc) Fact(ctx context.Context, n uint64) (string, error) {
	return f(ctx, n)
}

// FallbackText is served whenever the upstream fact cannot be obtained.
func FallbackText(n uint64) string {
	return fmt.Sprintf("%d is a number with its own unique mathematical properties.", n)
}
