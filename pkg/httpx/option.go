package httpx

import (
	"net/http"
	"time"
)

type Option func(*LoggingRoundTripper)

func WithLogFieldMaxLen(logFieldMaxLen int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = logFieldMaxLen
	}
}

func WithSensitiveDataMasker(sensitiveDataMasker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = sensitiveDataMasker
	}
}

// NewClient returns an http.Client that logs through LoggingRoundTripper and
// gives up on the whole exchange after timeout.
func NewClient(timeout time.Duration, opts ...Option) *http.Client {
	return &http.Client{
		Transport: NewLoggingRoundTripper(http.DefaultTransport, opts...),
		Timeout:   timeout,
	}
}
