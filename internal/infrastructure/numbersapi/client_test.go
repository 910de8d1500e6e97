package numbersapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"numclass/internal/domain"
	"numclass/internal/infrastructure/numbersapi"
	"numclass/pkg/errcodes"
	"numclass/pkg/httpx"
)

func TestClientFact(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name        string
		handlerFunc http.HandlerFunc
		timeout     time.Duration
		text        string
		err         bool
	}{
		{
			name: "Status 200",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				rq.Equal("/371/math", r.URL.Path)
				w.Write([]byte("371 is a narcissistic number.\n"))
			},
			timeout: time.Second,
			text:    "371 is a narcissistic number.\n",
		},
		{
			name: "Status 404",
			handlerFunc: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte("not found"))
			},
			timeout: time.Second,
			err:     true,
		},
		{
			name: "Status 500",
			handlerFunc: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			timeout: time.Second,
			err:     true,
		},
		{
			name: "Slow upstream",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(time.Second):
				}

				w.Write([]byte("too late"))
			},
			timeout: 50 * time.Millisecond,
			err:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			httpServer := httptest.NewServer(tc.handlerFunc)
			defer httpServer.Close()

			client := numbersapi.NewClient(httpServer.URL+"/", httpx.NewClient(tc.timeout), tc.timeout)

			text, err := client.Fact(context.Background(), 371)
			if tc.err {
				rq.Error(err)

				code, ok := domain.GetCode(err)
				rq.True(ok)
				rq.Equal(errcodes.FactUnavailable, code)

				return
			}

			rq.NoError(err)
			rq.Equal(tc.text, text)
		})
	}
}

func TestClientFactUnreachable(t *testing.T) {
	rq := require.New(t)

	httpServer := httptest.NewServer(http.NotFoundHandler())
	url := httpServer.URL
	httpServer.Close()

	_, err := numbersapi.NewClient(url, nil, time.Second).Fact(context.Background(), 7)
	rq.Error(err)
}
