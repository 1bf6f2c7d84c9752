package is

import (
	"math"
	"math/big"

	"github.com/Neumenon/typeguard/value"
)

const maxSafeInteger = 1<<53 - 1

// NaN reports whether v is the number NaN.
func NaN(v *value.Value) bool {
	f, ok := number(v)
	return ok && math.IsNaN(f)
}

// Finite reports whether v is a number other than NaN and ±Infinity.
func Finite(v *value.Value) bool {
	f, ok := number(v)
	return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Integer reports whether v is a finite number with no fractional part.
func Integer(v *value.Value) bool {
	f, ok := number(v)
	return ok && isInteger(f)
}

// SafeInteger reports whether v is an integer exactly representable as a
// float64.
func SafeInteger(v *value.Value) bool {
	f, ok := number(v)
	return ok && isInteger(f) && math.Abs(f) <= maxSafeInteger
}

// Numeral reports whether v is a finite number, or non-blank text (or a
// String wrapper) that converts to one.
func Numeral(v *value.Value) bool {
	f, ok := numeral(v)
	return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// NumeralInteger is like Numeral but the converted number must also be an
// integer.
func NumeralInteger(v *value.Value) bool {
	f, ok := numeral(v)
	return ok && isInteger(f)
}

// NumeralBigInt reports whether v is integer text whose exact value is
// lost when read as a float64, such as "9007199254740993".
func NumeralBigInt(v *value.Value) bool {
	s, err := v.AsString()
	if err != nil {
		return false
	}
	exact, err := value.ParseBigInt(s)
	if err != nil {
		return false
	}
	f, ok := value.ParseIntPrefix(s)
	if !ok || math.IsInf(f, 0) {
		return false
	}
	approx, _ := new(big.Float).SetFloat64(f).Int(nil)
	return approx.Cmp(exact) != 0
}

// Odd reports whether v is an odd integer.
func Odd(v *value.Value) bool {
	f, ok := number(v)
	return ok && isInteger(f) && math.Mod(f, 2) != 0
}

// Even reports whether v is an even integer.
func Even(v *value.Value) bool {
	f, ok := number(v)
	return ok && isInteger(f) && math.Mod(f, 2) == 0
}

// Float reports whether v is a finite number with a fractional part.
func Float(v *value.Value) bool {
	f, ok := number(v)
	return ok && !math.IsNaN(f) && f != math.Floor(f)
}

// Infinite reports whether v is +Infinity or -Infinity.
func Infinite(v *value.Value) bool {
	f, ok := number(v)
	return ok && math.IsInf(f, 0)
}

// NegativeZero reports whether v is -0.
func NegativeZero(v *value.Value) bool {
	f, ok := number(v)
	return ok && f == 0 && math.Signbit(f)
}

func number(v *value.Value) (float64, bool) {
	f, err := v.AsNumber()
	return f, err == nil
}

func isInteger(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
}

// numeral converts a number, string or String wrapper. Blank text is
// rejected before conversion; conversion failures yield ok == false.
func numeral(v *value.Value) (float64, bool) {
	switch value.SimpleTag(v) {
	case "number":
		f, err := value.ToNumber(v)
		return f, err == nil
	case "string":
		s, ok := stringOf(v)
		if !ok || value.TrimSpace(s) == "" {
			return 0, false
		}
		f, err := value.ParseNumber(s)
		return f, err == nil
	}
	return 0, false
}
