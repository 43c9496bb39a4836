package analysis

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// MaxScore is the highest score a single question can receive.
const MaxScore = 4

// Percentage normalizes a score sum over count answers against MaxScore,
// with two decimals. A zero count yields "0.00".
func Percentage(sum float64, count int) string {
	if count == 0 {
		return "0.00"
	}
	return Fixed(percent(sum, count), 2)
}

func percent(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return sum / (float64(count) * MaxScore) * 100
}

// Fixed formats x with the given number of decimals. Ties on the exact
// binary value round away from zero.
func Fixed(x float64, decimals int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', decimals, 64)
	}
	if decimals < 0 {
		decimals = 0
	}

	r := new(big.Rat).SetFloat64(math.Abs(x))
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	r.Mul(r, new(big.Rat).SetInt(scale))
	r.Add(r, big.NewRat(1, 2))
	n := new(big.Int).Quo(r.Num(), r.Denom())

	s := n.String()
	if decimals > 0 {
		if len(s) <= decimals {
			s = strings.Repeat("0", decimals-len(s)+1) + s
		}
		s = s[:len(s)-decimals] + "." + s[len(s)-decimals:]
	}
	if x < 0 && n.Sign() != 0 {
		s = "-" + s
	}
	return s
}

// Precision formats x with sig significant digits, switching to exponent
// notation for very large or very small magnitudes.
func Precision(x float64, sig int) string {
	if sig < 1 {
		sig = 1
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'g', sig, 64)
	}
	if x == 0 {
		return Fixed(0, sig-1)
	}

	exp := int(math.Floor(math.Log10(math.Abs(x))))
	if exp < -6 || exp >= sig {
		return exponent(x, sig)
	}

	decimals := sig - 1 - exp
	s := Fixed(x, decimals)
	// rounding can carry into a new leading digit (9.9996 -> 10.000)
	if significantDigits(s) > sig {
		if decimals == 0 {
			return exponent(x, sig)
		}
		s = Fixed(x, decimals-1)
	}
	return s
}

func exponent(x float64, sig int) string {
	s := strconv.FormatFloat(x, 'e', sig-1, 64)
	i := strings.IndexByte(s, 'e')
	mant, exp := s[:i], s[i+1:]
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}

func significantDigits(s string) int {
	n, leading := 0, true
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		if leading && r == '0' {
			continue
		}
		leading = false
		n++
	}
	return n
}
