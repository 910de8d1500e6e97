package classifier_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"numclass/internal/domain/entity"
	"numclass/internal/domain/service/classifier"
	"numclass/pkg/tests"
)

func TestIsPrime(t *testing.T) {
	rq := require.New(t)

	primes := []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97}

	for n := int64(-100); n <= 100; n++ {
		rq.Equal(slices.Contains(primes, n), classifier.IsPrime(n), "n=%d", n)
	}

	for n := int64(4); n <= 10_000; n += 2 {
		rq.False(classifier.IsPrime(n), "n=%d", n)
	}

	rq.True(classifier.IsPrime(7919))
	rq.False(classifier.IsPrime(7917))
	rq.False(classifier.IsPrime(49))  // 7*7
	rq.False(classifier.IsPrime(121)) // 11*11
	rq.True(classifier.IsPrime(2_147_483_647))
	rq.False(classifier.IsPrime(math.MinInt64))
}

func TestIsPerfect(t *testing.T) {
	rq := require.New(t)

	perfect := []int64{6, 28, 496, 8128}

	for n := int64(-10); n <= 10_000; n++ {
		rq.Equal(slices.Contains(perfect, n), classifier.IsPerfect(n), "n=%d", n)
	}

	rq.True(classifier.IsPerfect(33_550_336))
	rq.False(classifier.IsPerfect(math.MinInt64))
}

func TestIsArmstrong(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		n        int64
		expected bool
	}{
		{0, true}, {1, true}, {5, true}, {9, true},
		{153, true}, {370, true}, {371, true}, {407, true},
		{1634, true}, {9474, true},
		{10, false}, {100, false}, {372, false}, {9475, false},
		{-153, false}, {-1, false},
		{math.MaxInt64, false},
		{math.MinInt64, false},
	}

	for _, tc := range testCases {
		rq.Equal(tc.expected, classifier.IsArmstrong(tc.n), "n=%d", tc.n)
	}
}

func TestDigitSum(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		n        int64
		expected uint64
	}{
		{0, 0},
		{7, 7},
		{-123, 6},
		{371, 11},
		{28, 10},
		{math.MaxInt64, 88},
		{math.MinInt64, 89},
	}

	for _, tc := range testCases {
		rq.Equal(tc.expected, classifier.DigitSum(tc.n), "n=%d", tc.n)
	}
}

func TestProperties(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		n        int64
		expected []entity.Property
	}{
		{371, []entity.Property{entity.PropertyArmstrong, entity.PropertyOdd}},
		{370, []entity.Property{entity.PropertyArmstrong, entity.PropertyEven}},
		{0, []entity.Property{entity.PropertyArmstrong, entity.PropertyEven}},
		{28, []entity.Property{entity.PropertyEven}},
		{-4, []entity.Property{entity.PropertyEven}},
		{-3, []entity.Property{entity.PropertyOdd}},
		{-153, []entity.Property{entity.PropertyOdd}},
	}

	for _, tc := range testCases {
		rq.Equal(tc.expected, classifier.Properties(tc.n), "n=%d", tc.n)
	}
}

func TestPropertiesParityRandom(t *testing.T) {
	rq := require.New(t)
	random := tests.NewRandomizer()

	for range 1000 {
		n := random.Int64()
		properties := classifier.Properties(n)

		hasEven := slices.Contains(properties, entity.PropertyEven)
		hasOdd := slices.Contains(properties, entity.PropertyOdd)

		rq.NotEqual(hasEven, hasOdd, "n=%d", n)
		rq.Equal(n%2 == 0, hasEven, "n=%d", n)
	}
}

func TestClassify(t *testing.T) {
	rq := require.New(t)

	rq.Equal(entity.Classification{
		Number:     371,
		IsPrime:    false,
		IsPerfect:  false,
		Properties: []entity.Property{entity.PropertyArmstrong, entity.PropertyOdd},
		DigitSum:   11,
	}, classifier.Classify(371))

	rq.Equal(entity.Classification{
		Number:     28,
		IsPrime:    false,
		IsPerfect:  true,
		Properties: []entity.Property{entity.PropertyEven},
		DigitSum:   10,
	}, classifier.Classify(28))
}
