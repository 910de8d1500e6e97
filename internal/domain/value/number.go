package value

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"numclass/pkg/errcodes"
	"numclass/pkg/failurex"
)

// Number целое число из запроса, уже прошедшее проверку.
type Number int64

// Digits may be grouped with single underscores, as in 1_000_000.
var numberPattern = regexp.MustCompile(`^[+-]?[0-9]+(_[0-9]+)*$`) //nolint:gochecknoglobals

// ParseNumber accepts a base-10 int64 with optional sign and surrounding
// whitespace. The raw input travels with the error so it can be echoed back.
func ParseNumber(raw string) (Number, error) {
	s := strings.TrimSpace(raw)

	if !numberPattern.MatchString(s) {
		return 0, invalidNumber(raw, fmt.Errorf("%q is not a base-10 integer", raw))
	}

	n, err := strconv.ParseInt(strings.ReplaceAll(s, "_", ""), 10, 64)
	if err != nil {
		return 0, invalidNumber(raw, fmt.Errorf("strconv.ParseInt: %w", err))
	}

	return Number(n), nil
}

func invalidNumber(raw string, err error) error {
	return failurex.NewInvalidInputError(raw, failure.NewInvalidArgumentErrorFromError(
		err,
		failure.WithCode(errcodes.InvalidNumber),
	))
}

func (n Number) Int64() int64 {
	return int64(n)
}

// Abs returns |n| without overflowing on math.MinInt64.
func (n Number) Abs() uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}

	return uint64(n)
}

func (n Number) String() string {
	return strconv.FormatInt(int64(n), 10)
}
