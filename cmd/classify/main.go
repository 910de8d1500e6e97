// Classify prints the classification of every number passed on the command
// line as JSON, one document per line.
//
//	go run ./cmd/classify [-no-fact] [--] <number>...
//
// Например:
//
//	go run ./cmd/classify -no-fact -7 371 28
//
// Флаги разбираются только до первого числа, поэтому отрицательные числа
// можно передавать без "--".
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"numclass/internal/application"
	"numclass/internal/config"
	"numclass/internal/domain/entity"
	"numclass/internal/domain/service/fact"
	"numclass/internal/domain/service/number"
	"numclass/internal/domain/value"
	"numclass/pkg/contextx"
	"numclass/pkg/failurex"
	"numclass/pkg/logx"
	"numclass/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	noFact, numbers, err := parseArgs(os.Args[1:])
	if err != nil || len(numbers) == 0 {
		fmt.Fprintln(os.Stderr, "usage: classify [-no-fact] [--] <number>...")
		os.Exit(2) //nolint:gocritic,mnd
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config load:", err)
		os.Exit(1) //nolint:gocritic
	}

	// Логи в stderr, чтобы stdout оставался чистым JSON.
	ctx = contextx.WithLogger(ctx, logx.New(os.Stderr, cfg.Log.Level, logx.FormatText))

	facts := offlineFacts()
	if !noFact {
		facts = application.NewFactProvider(cfg.Fact, cfg.HTTP.LogFieldMaxLen)
	}

	if !run(ctx, number.NewService(facts), numbers, os.Stdout, os.Stderr) {
		os.Exit(1) //nolint:gocritic
	}
}

// offlineFacts answers with the fallback text and never touches the network.
func offlineFacts() fact.Provider {
	return fact.ProviderFunc(func(_ context.Context, n uint64) (string, error) {
		return fact.FallbackText(n), nil
	})
}

// parseArgs reads flags up to the first number or "--". Everything after that
// is a number, including ones starting with "-".
func parseArgs(args []string) (bool, []string, error) {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	noFact := fs.Bool("no-fact", false, "do not call the fact service, always print the fallback text")

	split := len(args)

	for i, arg := range args {
		if arg == "--" {
			split = i

			break
		}

		if _, err := value.ParseNumber(arg); err == nil {
			split = i

			break
		}
	}

	if err := fs.Parse(args[:split]); err != nil {
		return false, nil, fmt.Errorf("fs.Parse: %w", err)
	}

	tail := args[split:]
	if len(tail) > 0 && tail[0] == "--" {
		tail = tail[1:]
	}

	numbers := make([]string, 0, fs.NArg()+len(tail))
	numbers = append(numbers, fs.Args()...)
	numbers = append(numbers, tail...)

	return *noFact, numbers, nil
}

type errorOutput struct {
	Number string `json:"number"`
	Error  bool   `json:"error"`
}

// run prints one JSON document per argument and reports whether all of them
// were valid numbers.
func run(ctx context.Context, svc *number.Service, args []string, stdout, stderr io.Writer) bool {
	ok := true

	for _, arg := range args {
		n, err := value.ParseNumber(arg)
		if err != nil {
			input, _ := failurex.Input(err)
			writeJSON(stderr, errorOutput{Number: input, Error: true})

			ok = false

			continue
		}

		classification, err := svc.Classify(ctx, n)
		if err != nil {
			fmt.Fprintln(stderr, "classify:", err)

			ok = false

			continue
		}

		writeJSON(stdout, rest.ClassifyNumberResponse{
			Number:    classification.Number,
			IsPrime:   classification.IsPrime,
			IsPerfect: classification.IsPerfect,
			Properties: lo.Map(classification.Properties, func(p entity.Property, _ int) string {
				return p.String()
			}),
			DigitSum: classification.DigitSum,
			FunFact:  classification.FunFact,
		})
	}

	return ok
}

func writeJSON(w io.Writer, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Fprintln(os.Stderr, "json.Encode:", err)
	}
}
