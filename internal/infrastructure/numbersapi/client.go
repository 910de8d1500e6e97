// Package numbersapi fetches math facts from a numbersapi.com compatible
// service.
package numbersapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"numclass/internal/domain"
	"numclass/pkg/errcodes"
)

// Facts are short sentences; anything beyond this is cut off.
const maxFactSize = 64 << 10

type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

func NewClient(baseURL string, httpClient *http.Client, timeout time.Duration) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		timeout:    timeout,
	}
}

// Fact returns the body of GET {baseURL}/{n}/math verbatim. Anything but 200
// is an error; so is not finishing within the client timeout.
func (c *Client) Fact(ctx context.Context, n uint64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%d/math", c.baseURL, n), http.NoBody)
	if err != nil {
		return "", fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Accept", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.WrapError(err, errcodes.FactUnavailable, "httpClient.Do")
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxFactSize))

		return "", domain.NewError(errcodes.FactUnavailable, fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFactSize))
	if err != nil {
		return "", domain.WrapError(err, errcodes.FactUnavailable, "io.ReadAll")
	}

	return string(body), nil
}
