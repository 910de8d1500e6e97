package fact

import (
	"context"
	"fmt"
	"log/slog"

	"numclass/internal/domain"
	"numclass/pkg/logx"
)

type fallbackProvider struct {
	next Provider
}

// WithFallback never returns an error: any failure of next, a panic included,
// is logged and replaced with FallbackText.
func WithFallback(next Provider) Provider {
	return fallbackProvider{next: next}
}

func (p fallbackProvider) Fact(ctx context.Context, n uint64) (string, error) {
	text, err := p.safeFact(ctx, n)
	if err != nil {
		attrs := []any{slog.Uint64(logx.FieldNumber, n), logx.Error(err)}

		if code, ok := domain.GetCode(err); ok {
			attrs = append(attrs, slog.String("code", code.String()))
		}

		logger(ctx).Warn("fun fact unavailable, using fallback", attrs...)

		return FallbackText(n), nil
	}

	return text, nil
}

func (p fallbackProvider) safeFact(ctx context.Context, n uint64) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("fact provider panic: %v", rec) //nolint:goerr113
		}
	}()

	return p.next.Fact(ctx, n)
}
