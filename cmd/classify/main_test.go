package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"numclass/internal/domain/service/number"
	"numclass/pkg/contextx"
)

func TestRun(t *testing.T) {
	rq := require.New(t)

	var logs, stdout, stderr bytes.Buffer

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&logs, nil)))
	svc := number.NewService(offlineFacts())

	ok := run(ctx, svc, []string{"371", "abc", "28"}, &stdout, &stderr)
	rq.False(ok)

	lines := bytes.Split(bytes.TrimSpace(stdout.Bytes()), []byte("\n"))
	rq.Len(lines, 2)
	rq.JSONEq(`{"number":371,"is_prime":false,"is_perfect":false,"properties":["armstrong","odd"],"digit_sum":11,`+
		`"fun_fact":"371 is a number with its own unique mathematical properties."}`, string(lines[0]))
	rq.JSONEq(`{"number":28,"is_prime":false,"is_perfect":true,"properties":["even"],"digit_sum":10,`+
		`"fun_fact":"28 is a number with its own unique mathematical properties."}`, string(lines[1]))

	rq.JSONEq(`{"number":"abc","error":true}`, stderr.String())

	stdout.Reset()
	stderr.Reset()

	rq.True(run(ctx, svc, []string{"-7"}, &stdout, &stderr))
	rq.Contains(stdout.String(), `"fun_fact":"7 is a number with its own unique mathematical properties."`)
	rq.Empty(stderr.String())

	// offline facts are not failures, nothing is logged for them
	rq.NotContains(logs.String(), `"level":"WARN"`)
}

func TestParseArgs(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		args    []string
		noFact  bool
		numbers []string
		err     bool
	}{
		{
			name:    "Numbers only",
			args:    []string{"371", "-7"},
			numbers: []string{"371", "-7"},
		},
		{
			name:    "Leading negative number",
			args:    []string{"-7", "28"},
			numbers: []string{"-7", "28"},
		},
		{
			name:    "Flag then leading negative number",
			args:    []string{"-no-fact", "-7", "28"},
			noFact:  true,
			numbers: []string{"-7", "28"},
		},
		{
			name:    "Double dash",
			args:    []string{"-no-fact", "--", "-0", "abc"},
			noFact:  true,
			numbers: []string{"-0", "abc"},
		},
		{
			name:    "Invalid argument is kept as a number",
			args:    []string{"abc", "-7"},
			numbers: []string{"abc", "-7"},
		},
		{
			name: "Unknown flag",
			args: []string{"-verbose", "7"},
			err:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			noFact, numbers, err := parseArgs(tc.args)
			if tc.err {
				rq.Error(err)

				return
			}

			rq.NoError(err)
			rq.Equal(tc.noFact, noFact)
			rq.Equal(tc.numbers, numbers)
		})
	}
}
