package value

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"", 0, false},
		{"   ", 0, false},
		{"42", 42, false},
		{"  42\n", 42, false},
		{"\u00a07\u2003", 7, false},
		{"+1.5", 1.5, false},
		{"-1.5", -1.5, false},
		{".5", 0.5, false},
		{"5.", 5, false},
		{"1e3", 1000, false},
		{"1E-2", 0.01, false},
		{"0x1F", 31, false},
		{"0o17", 15, false},
		{"0b101", 5, false},
		{"Infinity", math.Inf(1), false},
		{"-Infinity", math.Inf(-1), false},
		{"1e400", math.Inf(1), false},
		{"-0x1F", 0, true},
		{"abc", 0, true},
		{"1_000", 0, true},
		{"12px", 0, true},
		{"infinity", 0, true},
		{".", 0, true},
		{"1e", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseNumber(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotNumeric)
				assert.True(t, math.IsNaN(got))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBigInt(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"9007199254740993", "9007199254740993", false},
		{" -5 ", "-5", false},
		{"+7", "7", false},
		{"0x10", "16", false},
		{"", "0", false},
		{"1.5", "", true},
		{"1e3", "", true},
		{"-0x10", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBigInt(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotNumeric)
				return
			}
			require.NoError(t, err)
			want, _ := new(big.Int).SetString(tt.want, 10)
			assert.Zero(t, want.Cmp(got), "got %s", got)
		})
	}
}

func TestParseIntPrefix(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"42px", 42, true},
		{"  -7.9", -7, true},
		{"+3", 3, true},
		{"0x10", 0, true},
		{"px", 0, false},
		{"", 0, false},
		{"-", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseIntPrefix(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		if tt.wantOK {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		name string
		in   *Value
		want float64
	}{
		{"null", Null(), 0},
		{"true", Bool(true), 1},
		{"false", Bool(false), 0},
		{"string", String(" 12 "), 12},
		{"bigint", BigInt(big.NewInt(9)), 9},
		{"wrapper", Obj(NewNumberObject(3)), 3},
		{"string wrapper", Obj(NewStringObject("0x10")), 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToNumber(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := ToNumber(Undefined())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))

	got, err = ToNumber(Obj(NewObject()))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))

	_, err = ToNumber(NewSymbol("s"))
	assert.ErrorIs(t, err, ErrNotNumeric)
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-2.5, "-2.5"},
		{0.1, "0.1"},
		{100, "100"},
		{123456789012345680000, "123456789012345680000"},
		{1e21, "1e+21"},
		{1.5e-6, "0.0000015"},
		{1e-7, "1e-7"},
		{2.5e-8, "2.5e-8"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.in))
		})
	}
}

func TestIsSpace(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\n', '\v', '\f', '\r', '\u00a0', '\u2003', '\u2028', '\u202f', '\u3000', '\ufeff'} {
		assert.True(t, IsSpace(r), "%U", r)
	}
	for _, r := range []rune{'a', '0', '\u200b', '\u0085'} {
		assert.False(t, IsSpace(r), "%U", r)
	}
	assert.Equal(t, "x y", TrimSpace("\u3000 x y\ufeff"))
}
