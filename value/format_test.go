package value

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	obj := NewObject()
	require.NoError(t, obj.Set("a", Int(1)))
	require.NoError(t, obj.Set("b-c", String("x")))
	require.NoError(t, obj.Set("7", Null()))

	cycle := NewObject()
	require.NoError(t, cycle.Set("self", Obj(cycle)))

	cls, err := NewClass("Point", nil)
	require.NoError(t, err)
	inst, err := Construct(cls, func(this *Object) error { return this.Set("x", Int(1)) })
	require.NoError(t, err)

	pending, _ := NewPromise()
	done, d := NewPromise()
	d.Resolve(Int(1))

	tests := []struct {
		name string
		in   *Value
		want string
	}{
		{"undefined", Undefined(), "undefined"},
		{"null", Null(), "null"},
		{"true", Bool(true), "true"},
		{"number", Number(1.5), "1.5"},
		{"negative zero", Number(negZero()), "-0"},
		{"bigint", BigInt(big.NewInt(10)), "10n"},
		{"string", String("it's"), `'it\'s'`},
		{"newline", String("a\nb"), `'a\nb'`},
		{"symbol", NewSymbol("s"), "Symbol(s)"},
		{"empty object", Obj(NewObject()), "{}"},
		{"object", Obj(obj), "{ '7': null, a: 1, 'b-c': 'x' }"},
		{"empty array", Obj(NewArray()), "[]"},
		{"array", Obj(NewArray(Int(1), String("two"))), "[ 1, 'two' ]"},
		{"arguments", Obj(NewArguments(Int(1))), "[Arguments] [ 1 ]"},
		{"function", Obj(NewFunction(FuncInfo{Name: "f"})), "[Function: f]"},
		{"anonymous", Obj(NewFunction(FuncInfo{Flavor: FlavorArrow})), "[Function (anonymous)]"},
		{"async", Obj(NewFunction(FuncInfo{Name: "f", Flavor: FlavorAsync})), "[AsyncFunction: f]"},
		{"class", Obj(cls), "[class Point]"},
		{"instance", Obj(inst), "Point { x: 1 }"},
		{"null prototype", Obj(NewObjectWithParent(nil)), "[Object: null prototype] {}"},
		{"cycle", Obj(cycle), "{ self: [Circular] }"},
		{"map", Obj(NewMap(MapEntry{Key: String("k"), Value: Int(1)})), "Map(1) { 'k' => 1 }"},
		{"set", Obj(NewSet(Int(1), Int(2), Int(1))), "Set(2) { 1, 2 }"},
		{"pending", Obj(pending), "Promise { <pending> }"},
		{"fulfilled", Obj(done), "Promise { <fulfilled> }"},
		{"buffer", Obj(NewBuffer([]byte{1, 2})), "Buffer(2) [ 1, 2 ]"},
		{"uint8array", Obj(NewUint8Array(nil)), "Uint8Array(0) []"},
		{"array buffer", Obj(NewArrayBuffer([]byte{1})), "ArrayBuffer { byteLength: 1 }"},
		{"date", Obj(NewDate(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))), "2024-01-02T03:04:05Z"},
		{"error", Obj(NewError("boom")), "Error: boom"},
		{"regexp", Obj(mustRegExp(t, "a+")), "/a+/"},
		{"string wrapper", Obj(NewStringObject("x")), "[String: 'x']"},
		{"number wrapper", Obj(NewNumberObject(2)), "[Number: 2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestFormatSharedReferenceIsNotCircular(t *testing.T) {
	shared := NewArray(Int(1))
	o := NewObject()
	require.NoError(t, o.Set("a", Obj(shared)))
	require.NoError(t, o.Set("b", Obj(shared)))
	assert.Equal(t, "{ a: [ 1 ], b: [ 1 ] }", Format(Obj(o)))
}
