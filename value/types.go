package value

import (
	"fmt"
	"math"
	"math/big"
)

// Kind is the primitive category of a Value.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindBigInt
	KindString
	KindSymbol
	KindObject // Any *Object, functions and arrays included
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindBigInt:
		return "bigint"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a dynamically typed value. A nil *Value is undefined.
//
// Primitive values are immutable once constructed. Object values share
// the underlying *Object.
type Value struct {
	kind Kind

	boolVal bool
	numVal  float64
	bigVal  *big.Int
	strVal  string
	symVal  *Symbol
	objVal  *Object
}

// Symbol is a unique symbol. Identity is pointer identity.
type Symbol struct {
	Description string
}

// String returns "Symbol(description)".
func (s *Symbol) String() string {
	return "Symbol(" + s.Description + ")"
}

// ============================================================
// Constructors
// ============================================================

// Undefined creates an undefined value.
func Undefined() *Value {
	return &Value{kind: KindUndefined}
}

// Null creates a null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Number creates a number value.
func Number(v float64) *Value {
	return &Value{kind: KindNumber, numVal: v}
}

// Int creates a number value from an integer.
func Int(v int64) *Value {
	return &Value{kind: KindNumber, numVal: float64(v)}
}

// NaN creates a NaN number value.
func NaN() *Value {
	return Number(math.NaN())
}

// BigInt creates a bigint value. The argument is copied.
func BigInt(v *big.Int) *Value {
	if v == nil {
		v = new(big.Int)
	}
	return &Value{kind: KindBigInt, bigVal: new(big.Int).Set(v)}
}

// String creates a string value.
func String(v string) *Value {
	return &Value{kind: KindString, strVal: v}
}

// NewSymbol creates a fresh symbol value.
func NewSymbol(description string) *Value {
	return &Value{kind: KindSymbol, symVal: &Symbol{Description: description}}
}

// Obj wraps an object. A nil object yields null.
func Obj(o *Object) *Value {
	if o == nil {
		return Null()
	}
	return &Value{kind: KindObject, objVal: o}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value kind.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindUndefined
	}
	return v.kind
}

// IsNil returns true for undefined and null.
func (v *Value) IsNil() bool {
	k := v.Kind()
	return k == KindUndefined || k == KindNull
}

// IsObject returns true if the value holds an object.
func (v *Value) IsObject() bool {
	return v.Kind() == KindObject
}

// AsBool returns the boolean value.
func (v *Value) AsBool() (bool, error) {
	if v.Kind() != KindBool {
		return false, fmt.Errorf("value: expected boolean, got %s", v.Kind())
	}
	return v.boolVal, nil
}

// AsNumber returns the number value.
func (v *Value) AsNumber() (float64, error) {
	if v.Kind() != KindNumber {
		return 0, fmt.Errorf("value: expected number, got %s", v.Kind())
	}
	return v.numVal, nil
}

// AsBigInt returns a copy of the bigint value.
func (v *Value) AsBigInt() (*big.Int, error) {
	if v.Kind() != KindBigInt {
		return nil, fmt.Errorf("value: expected bigint, got %s", v.Kind())
	}
	return new(big.Int).Set(v.bigVal), nil
}

// AsString returns the string value.
func (v *Value) AsString() (string, error) {
	if v.Kind() != KindString {
		return "", fmt.Errorf("value: expected string, got %s", v.Kind())
	}
	return v.strVal, nil
}

// AsSymbol returns the symbol.
func (v *Value) AsSymbol() (*Symbol, error) {
	if v.Kind() != KindSymbol {
		return nil, fmt.Errorf("value: expected symbol, got %s", v.Kind())
	}
	return v.symVal, nil
}

// AsObject returns the object.
func (v *Value) AsObject() (*Object, error) {
	if v.Kind() != KindObject {
		return nil, fmt.Errorf("value: expected object, got %s: %w", v.Kind(), ErrNotObject)
	}
	return v.objVal, nil
}

// Object returns the held object, or nil for non-objects.
func (v *Value) Object() *Object {
	if v.Kind() != KindObject {
		return nil
	}
	return v.objVal
}

// Typeof returns the typeof classification of v.
func Typeof(v *Value) string {
	switch v.Kind() {
	case KindNull:
		return "object"
	case KindObject:
		if v.objVal.class == ClassFunction {
			return "function"
		}
		return "object"
	default:
		return v.Kind().String()
	}
}

// Truthy reports whether v converts to true.
func Truthy(v *Value) bool {
	switch v.Kind() {
	case KindUndefined, KindNull:
		return false
	case KindBool:
		return v.boolVal
	case KindNumber:
		return v.numVal != 0 && !math.IsNaN(v.numVal)
	case KindBigInt:
		return v.bigVal.Sign() != 0
	case KindString:
		return v.strVal != ""
	default:
		return true
	}
}

// SameValue compares two values the way Object.is does.
func SameValue(a, b *Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindUndefined, KindNull:
		return true
	case KindBool:
		return a.boolVal == b.boolVal
	case KindNumber:
		if math.IsNaN(a.numVal) && math.IsNaN(b.numVal) {
			return true
		}
		return a.numVal == b.numVal && math.Signbit(a.numVal) == math.Signbit(b.numVal)
	case KindBigInt:
		return a.bigVal.Cmp(b.bigVal) == 0
	case KindString:
		return a.strVal == b.strVal
	case KindSymbol:
		return a.symVal == b.symVal
	default:
		return a.objVal == b.objVal
	}
}
