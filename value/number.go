package value

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// ============================================================
// String -> Number
// ============================================================

var (
	decimalLiteral  = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)
	infinityLiteral = regexp.MustCompile(`^[+-]?Infinity$`)
	radixLiteral    = regexp.MustCompile(`^0(?:[xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
	decimalInteger  = regexp.MustCompile(`^[+-]?[0-9]+$`)
)

// IsSpace reports whether r is white space or a line terminator in the
// sense of numeric string parsing.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u00a0', '\u1680', '\u2028', '\u2029',
		'\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

// TrimSpace strips leading and trailing IsSpace runes.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// ParseNumber converts numeric text to a float64: optional surrounding
// white space, decimal literals with optional sign and exponent, signed
// Infinity, unsigned 0x/0o/0b literals. Blank text is 0. Anything else
// fails with ErrNotNumeric.
func ParseNumber(s string) (float64, error) {
	t := TrimSpace(s)
	switch {
	case t == "":
		return 0, nil
	case infinityLiteral.MatchString(t):
		if t[0] == '-' {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	case radixLiteral.MatchString(t):
		n, ok := new(big.Int).SetString(t, 0)
		if !ok {
			return math.NaN(), fmt.Errorf("parse %q: %w", s, ErrNotNumeric)
		}
		f, _ := new(big.Float).SetInt(n).Float64()
		return f, nil
	case decimalLiteral.MatchString(t):
		f, err := strconv.ParseFloat(t, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return math.NaN(), fmt.Errorf("parse %q: %w", s, ErrNotNumeric)
		}
		return f, nil
	default:
		return math.NaN(), fmt.Errorf("parse %q: %w", s, ErrNotNumeric)
	}
}

// ParseBigInt converts integer text to a big.Int: optional surrounding
// white space, signed decimal digits or unsigned 0x/0o/0b literals. Blank
// text is 0.
func ParseBigInt(s string) (*big.Int, error) {
	t := TrimSpace(s)
	if t == "" {
		return new(big.Int), nil
	}
	if !decimalInteger.MatchString(t) && !radixLiteral.MatchString(t) {
		return nil, fmt.Errorf("parse bigint %q: %w", s, ErrNotNumeric)
	}
	base := 10
	if radixLiteral.MatchString(t) {
		base = 0
	}
	n, ok := new(big.Int).SetString(strings.TrimPrefix(t, "+"), base)
	if !ok {
		return nil, fmt.Errorf("parse bigint %q: %w", s, ErrNotNumeric)
	}
	return n, nil
}

// ParseIntPrefix parses the leading decimal integer of s the way a
// lenient parseInt does: leading white space and sign are accepted,
// parsing stops at the first non-digit. ok is false when no digit is
// found.
func ParseIntPrefix(s string) (f float64, ok bool) {
	t := strings.TrimLeftFunc(s, IsSpace)
	neg := false
	if t != "" && (t[0] == '+' || t[0] == '-') {
		neg = t[0] == '-'
		t = t[1:]
	}
	end := 0
	for end < len(t) && t[end] >= '0' && t[end] <= '9' {
		end++
	}
	if end == 0 {
		return math.NaN(), false
	}
	f, err := strconv.ParseFloat(t[:end], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN(), false
	}
	if neg {
		f = -f
	}
	return f, true
}

// ToNumber converts a primitive or wrapper object to a number. Symbols
// cannot be converted; other objects become NaN.
func ToNumber(v *Value) (float64, error) {
	switch v.Kind() {
	case KindUndefined:
		return math.NaN(), nil
	case KindNull:
		return 0, nil
	case KindBool:
		if v.boolVal {
			return 1, nil
		}
		return 0, nil
	case KindNumber:
		return v.numVal, nil
	case KindBigInt:
		f, _ := new(big.Float).SetInt(v.bigVal).Float64()
		return f, nil
	case KindString:
		return ParseNumber(v.strVal)
	case KindSymbol:
		return math.NaN(), fmt.Errorf("value: cannot convert %s to number: %w", v.symVal, ErrNotNumeric)
	}
	o := v.objVal
	if o.prim != nil {
		return ToNumber(o.prim)
	}
	if t, ok := o.Date(); ok {
		return float64(t.UnixMilli()), nil
	}
	return math.NaN(), nil
}

// ============================================================
// Number -> String
// ============================================================

// FormatNumber renders f with the shortest digits that round-trip, in
// plain notation for exponents in [-7, 21) and exponent notation
// otherwise.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}

	// Shortest digits d1.d2d3...e±x
	e := strconv.FormatFloat(f, 'e', -1, 64)
	mant, expStr, _ := strings.Cut(e, "e")
	digits := strings.Replace(mant, ".", "", 1)
	exp, _ := strconv.Atoi(expStr)
	k := len(digits)
	n := exp + 1

	var out string
	switch {
	case k <= n && n <= 21:
		out = digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		out = digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		out = "0." + strings.Repeat("0", -n) + digits
	default:
		out = digits[:1]
		if k > 1 {
			out += "." + digits[1:]
		}
		if n-1 >= 0 {
			out += "e+" + strconv.Itoa(n-1)
		} else {
			out += "e" + strconv.Itoa(n-1)
		}
	}
	return sign + out
}

// arrayIndex parses a canonical array index: decimal without leading
// zeros, below 2^32-1.
func arrayIndex(s string) (uint32, bool) {
	if s == "" || len(s) > 10 || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n == math.MaxUint32 {
		return 0, false
	}
	return uint32(n), true
}
