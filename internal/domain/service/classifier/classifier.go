// Package classifier holds the pure numeric predicates behind a
// classification. Every function is total over int64.
package classifier

import (
	"math"

	"github.com/samber/lo"

	"numclass/internal/domain/entity"
	"numclass/internal/domain/value"
)

// Classify computes everything except the fun fact.
func Classify(n int64) entity.Classification {
	return entity.Classification{
		Number:     n,
		IsPrime:    IsPrime(n),
		IsPerfect:  IsPerfect(n),
		Properties: Properties(n),
		DigitSum:   DigitSum(n),
	}
}

// IsPrime trial-divides by odd candidates up to floor(sqrt(n)).
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}

	if n == 2 {
		return true
	}

	if n%2 == 0 {
		return false
	}

	m := uint64(n)
	limit := isqrt(m)

	for i := uint64(3); i <= limit; i += 2 {
		if m%i == 0 {
			return false
		}
	}

	return true
}

// IsPerfect sums proper divisors in pairs (i, n/i), counting an exact square
// root once.
func IsPerfect(n int64) bool {
	if n <= 1 {
		return false
	}

	m := uint64(n)
	limit := isqrt(m)
	sum := uint64(1)

	for i := uint64(2); i <= limit; i++ {
		if m%i != 0 {
			continue
		}

		sum += i

		if q := m / i; q != i {
			sum += q
		}

		// Past n the answer is settled; stopping here also keeps sum in range.
		if sum > m {
			return false
		}
	}

	return sum == m
}

// IsArmstrong compares |n| with the sum of its digits raised to the digit
// count. Negative numbers are never Armstrong numbers.
func IsArmstrong(n int64) bool {
	if n < 0 {
		return false
	}

	m := value.Number(n).Abs()
	digits := digitsOf(m)
	sum := uint64(0)

	for _, d := range digits {
		sum += pow(d, len(digits))

		if sum > m {
			return false
		}
	}

	return sum == m
}

// DigitSum ignores the sign.
func DigitSum(n int64) uint64 {
	return lo.Sum(digitsOf(value.Number(n).Abs()))
}

// Properties tags armstrong first, then exactly one parity tag. Parity uses
// Go's remainder, so -4 is even and -3 is odd.
func Properties(n int64) []entity.Property {
	properties := make([]entity.Property, 0, 2) //nolint:mnd

	if IsArmstrong(n) {
		properties = append(properties, entity.PropertyArmstrong)
	}

	return append(properties, lo.Ternary(n%2 == 0, entity.PropertyEven, entity.PropertyOdd))
}

// digitsOf returns decimal digits least significant first; 0 has one digit.
func digitsOf(m uint64) []uint64 {
	if m == 0 {
		return []uint64{0}
	}

	digits := make([]uint64, 0, 20) //nolint:mnd

	for ; m > 0; m /= 10 {
		digits = append(digits, m%10)
	}

	return digits
}

// An int64 magnitude has at most 19 digits, so the largest term is 9^19.
func pow(base uint64, exp int) uint64 {
	result := uint64(1)

	for range exp {
		result *= base
	}

	return result
}

// isqrt is exact for m <= math.MaxInt64+1.
func isqrt(m uint64) uint64 {
	r := uint64(math.Sqrt(float64(m)))

	for r*r > m {
		r--
	}

	for (r+1)*(r+1) <= m {
		r++
	}

	return r
}
