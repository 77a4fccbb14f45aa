// Package pi computes exact decimal expansions of pi.
//
// Digits are produced with integer-only arithmetic on math/big using the
// Machin formula pi = 16*atan(1/5) - 4*atan(1/239). The computation runs
// at a fixed-point scale of n+GuardDigits decimal digits and truncates to
// the requested n, so the last requested digit is never affected by
// rounding drift in the series tail.
//
// All functions are pure and safe for concurrent use.
package pi

import (
	"math/big"

	"github.com/piposter/piposter/pkg/errors"
)

// GuardDigits is the extra precision computed beyond the requested digit
// count. The truncating divisions in the arctan series lose at most one
// unit in the last place per term; the guard margin absorbs that drift.
const GuardDigits = 20

// Digits returns the first n decimal digits of pi after the decimal point,
// as a slice of values 0-9.
//
// The result is deterministic: identical n always yields the identical
// sequence. n must be positive.
func Digits(n int) ([]byte, error) {
	if n <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "digit count must be positive, got %d", n)
	}

	// Fixed-point unity: 10^(n+guard). All series terms are integers
	// scaled by this factor.
	prec := n + GuardDigits
	unity := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(prec)), nil)

	// Machin: pi = 16*atan(1/5) - 4*atan(1/239).
	v := new(big.Int).Mul(big.NewInt(16), arctanRecip(5, unity))
	v.Sub(v, new(big.Int).Mul(big.NewInt(4), arctanRecip(239, unity)))

	// v == floor(pi * 10^prec) up to guard drift; its decimal form is
	// "3" followed by prec fractional digits.
	s := v.String()
	if len(s) < n+1 {
		return nil, errors.New(errors.ErrCodeInsufficientPrecision,
			"computed %d digits of pi, need %d", len(s)-1, n)
	}

	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = s[i+1] - '0'
	}
	return out, nil
}

// DigitString returns the first n decimal digits of pi as an ASCII string.
func DigitString(n int) (string, error) {
	digits, err := Digits(n)
	if err != nil {
		return "", err
	}
	buf := make([]byte, len(digits))
	for i, d := range digits {
		buf[i] = d + '0'
	}
	return string(buf), nil
}

// arctanRecip computes atan(1/x) * unity using the Gregory series
// 1/x - 1/(3x^3) + 1/(5x^5) - ... with truncating integer division.
func arctanRecip(x int64, unity *big.Int) *big.Int {
	bx := big.NewInt(x)
	x2 := new(big.Int).Mul(bx, bx)

	// term tracks unity / x^(2k+1); the odd divisor is applied on a copy
	// so the running power stays exact.
	term := new(big.Int).Quo(unity, bx)
	sum := new(big.Int).Set(term)

	tmp := new(big.Int)
	for k := int64(1); ; k++ {
		term.Quo(term, x2)
		if term.Sign() == 0 {
			break
		}
		tmp.Quo(term, big.NewInt(2*k+1))
		if k%2 == 1 {
			sum.Sub(sum, tmp)
		} else {
			sum.Add(sum, tmp)
		}
	}
	return sum
}
