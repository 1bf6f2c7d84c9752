package is

import (
	"sort"
	"strings"

	"github.com/Neumenon/typeguard/value"
)

// Predicate is a single-argument check.
type Predicate func(*value.Value) bool

var registry = map[string]Predicate{
	"Undefined":       Undefined,
	"Null":            Null,
	"Nil":             Nil,
	"Exist":           Exist,
	"String":          String,
	"Number":          Number,
	"Boolean":         Boolean,
	"BigInt":          BigInt,
	"Symbol":          Symbol,
	"Function":        Function,
	"Array":           Array,
	"Primitive":       Primitive,
	"Object":          Object,
	"Buffer":          Buffer,
	"ArrayBuffer":     ArrayBuffer,
	"ArrayBufferView": ArrayBufferView,
	"Date":            Date,
	"Error":           Error,
	"Map":             Map,
	"Set":             Set,
	"Regexp":          Regexp,
	"AsyncFunction":   AsyncFunction,
	"Promise":         Promise,
	"NaN":             NaN,
	"Finite":          Finite,
	"Integer":         Integer,
	"SafeInteger":     SafeInteger,
	"Numeral":         Numeral,
	"NumeralInteger":  NumeralInteger,
	"NumeralBigInt":   NumeralBigInt,
	"Odd":             Odd,
	"Even":            Even,
	"Float":           Float,
	"Infinite":        Infinite,
	"NegativeZero":    NegativeZero,
	"PlainObject":     PlainObject,
	"EmptyObject":     EmptyObject,
	"Class":           Class,
	"EmptyString":     EmptyString,
}

// Lookup finds a predicate by name. Matching is exact first, then case
// insensitive; an "is" prefix is accepted ("isPlainObject").
func Lookup(name string) (Predicate, bool) {
	if p, ok := registry[name]; ok {
		return p, true
	}
	for _, candidate := range []string{name, trimIs(name)} {
		for k, p := range registry {
			if strings.EqualFold(k, candidate) {
				return p, true
			}
		}
	}
	return nil, false
}

func trimIs(name string) string {
	if len(name) > 2 && strings.EqualFold(name[:2], "is") {
		return name[2:]
	}
	return name
}

// Names returns the registered predicate names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
