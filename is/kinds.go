package is

import (
	"github.com/Neumenon/typeguard/value"
)

// Undefined reports whether v is undefined.
func Undefined(v *value.Value) bool {
	return v.Kind() == value.KindUndefined
}

// Null reports whether v is null.
func Null(v *value.Value) bool {
	return v.Kind() == value.KindNull
}

// Nil reports whether v is undefined or null.
func Nil(v *value.Value) bool {
	return v.IsNil()
}

// Exist reports whether v is neither undefined nor null.
func Exist(v *value.Value) bool {
	return !v.IsNil()
}

// String reports whether v is a string or a String wrapper.
func String(v *value.Value) bool {
	return v.Kind() == value.KindString || hasClass(v, value.ClassString)
}

// Number reports whether v is a number primitive, NaN included.
func Number(v *value.Value) bool {
	return v.Kind() == value.KindNumber
}

// Boolean reports whether v is true or false.
func Boolean(v *value.Value) bool {
	return v.Kind() == value.KindBool
}

// BigInt reports whether v is a bigint primitive.
func BigInt(v *value.Value) bool {
	return v.Kind() == value.KindBigInt
}

// Symbol reports whether v is a symbol.
func Symbol(v *value.Value) bool {
	return value.SimpleTag(v) == "symbol"
}

// Function reports whether v is callable.
func Function(v *value.Value) bool {
	return value.Typeof(v) == "function"
}

// Array reports whether v is an array.
func Array(v *value.Value) bool {
	return hasClass(v, value.ClassArray)
}

// Primitive reports whether v is not an object.
func Primitive(v *value.Value) bool {
	return Nil(v) || Number(v) || v.Kind() == value.KindString || Boolean(v) || Symbol(v) || BigInt(v)
}

// Object reports whether v is an object, functions included.
func Object(v *value.Value) bool {
	return !Primitive(v)
}

// Buffer reports whether v is a Buffer: its constructor's isBuffer
// accepts it, or it carries a truthy _isBuffer marker.
func Buffer(v *value.Value) bool {
	if v.IsNil() {
		return false
	}
	ctor := value.Get(v, "constructor")
	if check := value.Get(ctor, "isBuffer"); Function(check) {
		if res, err := value.Call(check, ctor, v); err == nil && value.Truthy(res) {
			return true
		}
	}
	return value.Truthy(value.Get(v, "_isBuffer"))
}

// ArrayBuffer reports whether v is an ArrayBuffer.
func ArrayBuffer(v *value.Value) bool {
	return value.Tag(v) == "[object ArrayBuffer]"
}

// ArrayBufferView reports whether v is a typed array, Buffer or DataView.
func ArrayBufferView(v *value.Value) bool {
	return hasClass(v, value.ClassTypedArray) || hasClass(v, value.ClassBuffer) || hasClass(v, value.ClassDataView)
}

// Date reports whether v is a Date object.
func Date(v *value.Value) bool {
	return value.SimpleTag(v) == "date"
}

// Error reports whether v is an Error object.
func Error(v *value.Value) bool {
	return value.SimpleTag(v) == "error"
}

// Map reports whether v is a Map.
func Map(v *value.Value) bool {
	return value.SimpleTag(v) == "map"
}

// Set reports whether v is a Set.
func Set(v *value.Value) bool {
	return value.SimpleTag(v) == "set"
}

// Regexp reports whether v is a RegExp.
func Regexp(v *value.Value) bool {
	return value.SimpleTag(v) == "regexp"
}

// AsyncFunction reports whether v was declared async.
func AsyncFunction(v *value.Value) bool {
	return value.Truthy(v) && value.Tag(v) == "[object AsyncFunction]"
}

// Promise reports whether v declares the Thenable capability, directly
// or through its chain.
func Promise(v *value.Value) bool {
	o := v.Object()
	return o != nil && o.Thenable() != nil
}

func hasClass(v *value.Value, c value.Class) bool {
	o := v.Object()
	return o != nil && o.Class() == c
}
