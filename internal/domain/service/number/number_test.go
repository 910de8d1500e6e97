package number_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"numclass/internal/domain/entity"
	"numclass/internal/domain/service/fact"
	"numclass/internal/domain/service/number"
	"numclass/internal/domain/value"
)

func TestServiceClassify(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	testCases := []struct {
		name     string
		number   value.Number
		fact     func(context.Context, uint64) (string, error)
		expected entity.Classification
		factArg  uint64
	}{
		{
			name:   "Armstrong number with upstream fact",
			number: 371,
			fact: func(context.Context, uint64) (string, error) {
				return "371 is a narcissistic number.", nil
			},
			expected: entity.Classification{
				Number:     371,
				Properties: []entity.Property{entity.PropertyArmstrong, entity.PropertyOdd},
				DigitSum:   11,
				FunFact:    "371 is a narcissistic number.",
			},
			factArg: 371,
		},
		{
			name:   "Perfect number with failing upstream",
			number: 28,
			fact: func(context.Context, uint64) (string, error) {
				return "", errors.New("network unreachable")
			},
			expected: entity.Classification{
				Number:     28,
				IsPerfect:  true,
				Properties: []entity.Property{entity.PropertyEven},
				DigitSum:   10,
				FunFact:    fact.FallbackText(28),
			},
			factArg: 28,
		},
		{
			name:   "Negative number asks about its absolute value",
			number: -7,
			fact: func(context.Context, uint64) (string, error) {
				return "", errors.New("timeout")
			},
			expected: entity.Classification{
				Number:     -7,
				Properties: []entity.Property{entity.PropertyOdd},
				DigitSum:   7,
				FunFact:    "7 is a number with its own unique mathematical properties.",
			},
			factArg: 7,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			mock := &fact.ProviderMock{FactFunc: tc.fact}

			classification, err := number.NewService(fact.WithFallback(mock)).Classify(ctx, tc.number)
			rq.NoError(err)
			rq.Equal(tc.expected, classification)

			rq.Len(mock.FactCalls(), 1)
			rq.Equal(tc.factArg, mock.FactCalls()[0].N)
		})
	}
}

func TestServiceClassifyWithoutFallback(t *testing.T) {
	rq := require.New(t)

	errUpstream := errors.New("upstream down")

	svc := number.NewService(fact.ProviderFunc(func(context.Context, uint64) (string, error) {
		return "", errUpstream
	}))

	_, err := svc.Classify(context.Background(), 6)
	rq.ErrorIs(err, errUpstream)
}
