package is

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neumenon/typeguard/value"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"PlainObject", "plainobject", "isPlainObject", "ISPLAINOBJECT"} {
		p, ok := Lookup(name)
		require.True(t, ok, name)
		assert.True(t, p(value.Obj(value.NewObject())), name)
	}

	p, ok := Lookup("isNaN")
	require.True(t, ok)
	assert.True(t, p(value.NaN()))

	_, ok = Lookup("Substring")
	assert.False(t, ok)
	_, ok = Lookup("is")
	assert.False(t, ok)
	_, ok = Lookup("")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Len(t, names, len(registry))
	for _, name := range names {
		_, ok := Lookup(name)
		assert.True(t, ok, name)
	}
	assert.Contains(t, names, "Numeral")
}
