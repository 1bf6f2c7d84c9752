package value

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sorted(keys []string) []string {
	out := append([]string(nil), keys...)
	sort.Strings(out)
	return out
}

func method(name string) *Object {
	return NewFunction(FuncInfo{Name: name, Flavor: FlavorMethod})
}

func mustConstruct(t *testing.T, ctor *Object, props map[string]*Value, order ...string) *Object {
	t.Helper()
	inst, err := Construct(ctor, func(this *Object) error {
		for _, k := range order {
			if err := this.Set(k, props[k]); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
	return inst
}

func TestKeysPlainObject(t *testing.T) {
	o := NewObject()
	assert.Equal(t, []string{}, Keys(Obj(o)))

	inner := NewObject()
	require.NoError(t, inner.Set("f", Int(5)))
	for _, kv := range []struct {
		k string
		v *Value
	}{
		{"a", Int(1)}, {"b", Int(2)}, {"c", Int(3)}, {"d", Noop()}, {"e", Obj(inner)},
	} {
		require.NoError(t, o.Set(kv.k, kv.v))
	}

	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e"}, Keys(Obj(o))); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
}

func TestKeysIntegerNamesFirst(t *testing.T) {
	o := NewObject()
	for _, k := range []string{"b", "10", "a", "2", "01"} {
		require.NoError(t, o.Set(k, Null()))
	}
	assert.Equal(t, []string{"2", "10", "b", "a", "01"}, Keys(Obj(o)))
}

func TestKeysNil(t *testing.T) {
	for _, v := range []*Value{nil, Undefined(), Null()} {
		assert.Equal(t, []string{}, Keys(v))
		assert.Equal(t, []string{}, KeysWithOpts(v, KeyOpts{All: true}))
		assert.Equal(t, []*Value{}, Values(v))
		assert.Equal(t, []Entry{}, Entries(v))
	}
}

func TestKeysPrimitives(t *testing.T) {
	assert.Equal(t, []string{"0", "1"}, Keys(String("hé")))
	assert.Equal(t, []string{"0", "1", "length"}, KeysWithOpts(String("hé"), KeyOpts{}))
	assert.Equal(t, []string{}, Keys(Int(42)))
	assert.Equal(t, []string{}, KeysWithOpts(Int(42), KeyOpts{EnumerableOnly: true, FollowPrototypeChain: true}))
}

func TestKeysArray(t *testing.T) {
	arr := NewArray(String("x"), String("y"))
	require.NoError(t, arr.Set("extra", Bool(true)))

	assert.Equal(t, []string{"0", "1", "extra"}, Keys(Obj(arr)))
	assert.Equal(t, []string{"0", "1", "length", "extra"}, KeysWithOpts(Obj(arr), KeyOpts{}))
}

func TestKeysClassicConstructor(t *testing.T) {
	ctor := NewFunction(FuncInfo{Name: "Test"})
	require.NoError(t, ctor.Prototype().Set("b", Noop()))

	inst := mustConstruct(t, ctor, map[string]*Value{"a": Int(2)}, "a")
	got := KeysWithOpts(Obj(inst), KeyOpts{EnumerableOnly: true, FollowPrototypeChain: true})
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, []string{"a"}, Keys(Obj(inst)))
}

func TestKeysClassicInheritance(t *testing.T) {
	a := NewFunction(FuncInfo{Name: "A"})
	require.NoError(t, a.Prototype().Set("aMethod", Noop()))

	b := NewFunction(FuncInfo{Name: "B"})
	require.NoError(t, Inherits(b, a))
	require.NoError(t, b.Prototype().Set("bMethod", Noop()))

	inst := mustConstruct(t, b, map[string]*Value{"aProp": Int(1), "bProp": Int(2)}, "aProp", "bProp")
	got := sorted(KeysWithOpts(Obj(inst), KeyOpts{EnumerableOnly: true, FollowPrototypeChain: true}))
	if diff := cmp.Diff([]string{"aMethod", "aProp", "bMethod", "bProp"}, got); diff != "" {
		t.Errorf("inherited keys mismatch (-want +got):\n%s", diff)
	}

	// super_ is hidden on the constructor
	assert.True(t, b.HasOwn("super_"))
	assert.NotContains(t, Keys(Obj(b)), "super_")
}

func TestKeysClass(t *testing.T) {
	cls, err := NewClass("Test", nil)
	require.NoError(t, err)
	require.NoError(t, DefineMethod(cls, "b", method("b")))

	inst := mustConstruct(t, cls, map[string]*Value{"a": Int(2)}, "a")
	assert.Equal(t, []string{"a", "b"}, KeysWithOpts(Obj(inst), KeyOpts{All: true}))

	// class methods are hidden, so for-in order only sees the field
	assert.Equal(t, []string{"a"}, KeysWithOpts(Obj(inst), KeyOpts{EnumerableOnly: true, FollowPrototypeChain: true}))
}

func TestKeysClassInheritance(t *testing.T) {
	a, err := NewClass("A", nil)
	require.NoError(t, err)
	require.NoError(t, DefineMethod(a, "aMethod", method("aMethod")))

	b, err := NewClass("B", a)
	require.NoError(t, err)
	require.NoError(t, DefineMethod(b, "bMethod", method("bMethod")))

	inst := mustConstruct(t, b, map[string]*Value{"aProp": Int(1), "bProp": Int(2)}, "aProp", "bProp")
	got := KeysWithOpts(Obj(inst), KeyOpts{All: true})
	assert.Equal(t, []string{"aProp", "bProp", "bMethod", "aMethod"}, got)
	assert.Equal(t, []string{"aMethod", "aProp", "bMethod", "bProp"}, sorted(got))

	// All ignores the other flags
	assert.Equal(t, got, KeysWithOpts(Obj(inst), KeyOpts{All: true, EnumerableOnly: true}))
}

func TestKeysAllDropsBaseNames(t *testing.T) {
	o := NewObject()
	require.NoError(t, o.Set("toString", Noop()))
	require.NoError(t, o.Set("mine", Int(1)))

	got := KeysWithOpts(Obj(o), KeyOpts{All: true})
	assert.Equal(t, []string{"mine"}, got)
	for _, name := range []string{"constructor", "hasOwnProperty", "__proto__", "valueOf"} {
		assert.True(t, IsBaseName(name), name)
	}
	assert.False(t, IsBaseName("mine"))
}

func TestKeysHiddenOwnShadowsInherited(t *testing.T) {
	proto := NewObject()
	require.NoError(t, proto.Set("x", Int(1)))
	require.NoError(t, proto.Set("y", Int(2)))

	o := NewObjectWithParent(proto)
	require.NoError(t, o.DefineHidden("x", Int(3)))

	got := KeysWithOpts(Obj(o), KeyOpts{EnumerableOnly: true, FollowPrototypeChain: true})
	assert.Equal(t, []string{"y"}, got)
	assert.Equal(t, []string{"x", "y"}, KeysWithOpts(Obj(o), KeyOpts{All: true}))
}

func TestKeysOwnHidden(t *testing.T) {
	o := NewObject()
	require.NoError(t, o.Set("visible", Int(1)))
	require.NoError(t, o.DefineHidden("secret", Int(2)))

	assert.Equal(t, []string{"visible"}, Keys(Obj(o)))
	assert.Equal(t, []string{"visible", "secret"}, KeysWithOpts(Obj(o), KeyOpts{}))
}

func TestValuesUseReceiver(t *testing.T) {
	proto := NewObject()
	require.NoError(t, proto.DefineGetter("greeting", func(receiver *Value) *Value {
		name, _ := Get(receiver, "name").AsString()
		return String("hi " + name)
	}, true))

	o := NewObjectWithParent(proto)
	require.NoError(t, o.Set("name", String("ann")))

	vals := ValuesWithOpts(Obj(o), KeyOpts{EnumerableOnly: true, FollowPrototypeChain: true})
	require.Len(t, vals, 2)
	assert.Equal(t, "ann", mustString(t, vals[0]))
	assert.Equal(t, "hi ann", mustString(t, vals[1]))
}

func TestValuesAndEntries(t *testing.T) {
	o := NewObject()
	require.NoError(t, o.Set("a", Int(1)))
	require.NoError(t, o.Set("b", String("two")))
	require.NoError(t, o.DefineHidden("c", Bool(true)))

	vals := Values(Obj(o))
	require.Len(t, vals, 2)
	assert.True(t, SameValue(Int(1), vals[0]))
	assert.True(t, SameValue(String("two"), vals[1]))

	entries := EntriesWithOpts(Obj(o), KeyOpts{})
	require.Len(t, entries, 3)
	assert.Equal(t, "c", entries[2].Key)
	assert.True(t, SameValue(Bool(true), entries[2].Value))

	chars := Values(String("ab"))
	require.Len(t, chars, 2)
	assert.Equal(t, "b", mustString(t, chars[1]))
}

func TestFromEntriesRoundTrip(t *testing.T) {
	o := NewObject()
	require.NoError(t, o.Set("x", Int(1)))
	require.NoError(t, o.Set("y", String("s")))
	require.NoError(t, o.Set("3", Null()))
	require.NoError(t, o.DefineHidden("hidden", Int(9)))

	back := FromEntries(Entries(Obj(o)))
	assert.Equal(t, Keys(Obj(o)), Keys(Obj(back)))
	for _, k := range Keys(Obj(o)) {
		assert.True(t, SameValue(o.Get(k), back.Get(k)), k)
	}
	assert.False(t, back.HasOwn("hidden"))
}

func TestFromEntriesLaterKeyWins(t *testing.T) {
	o := FromEntries([]Entry{{"a", Int(1)}, {"b", Int(2)}, {"a", Int(3)}})
	assert.Equal(t, []string{"a", "b"}, Keys(Obj(o)))
	assert.True(t, SameValue(Int(3), o.Get("a")))
}

func TestArrify(t *testing.T) {
	assert.Equal(t, 0, Arrify(Undefined()).Len())

	arr := NewArray(Int(1))
	assert.Same(t, arr, Arrify(Obj(arr)))

	wrapped := Arrify(Null())
	require.Equal(t, 1, wrapped.Len())
	assert.Equal(t, KindNull, wrapped.Elems()[0].Kind())
}

func TestHasOwnAndHasProperty(t *testing.T) {
	proto := NewObject()
	require.NoError(t, proto.Set("inherited", Int(1)))
	o := NewObjectWithParent(proto)
	require.NoError(t, o.Set("own", Int(2)))

	assert.True(t, HasOwn(Obj(o), "own"))
	assert.False(t, HasOwn(Obj(o), "inherited"))
	assert.True(t, HasProperty(Obj(o), "inherited"))
	assert.True(t, HasProperty(Obj(o), "hasOwnProperty"))
	assert.False(t, HasProperty(Obj(o), "missing"))

	assert.True(t, HasOwn(String("abc"), "length"))
	assert.True(t, HasOwn(String("abc"), "2"))
	assert.False(t, HasOwn(String("abc"), "3"))
	assert.True(t, HasProperty(String("abc"), "toUpperCase"))
	assert.False(t, HasOwn(Null(), "x"))
	assert.False(t, HasProperty(Undefined(), "x"))
}

func TestArrayHolesAreNotKeys(t *testing.T) {
	arr := NewArray()
	require.NoError(t, arr.Set("2", Int(1)))
	assert.Equal(t, []string{"2"}, Keys(Obj(arr)))
	assert.Equal(t, 3, arr.Len())

	arr = NewArray(Int(1), nil)
	require.NoError(t, arr.Set("4", Int(5)))
	assert.Equal(t, []string{"0", "1", "4"}, Keys(Obj(arr)))
	assert.Equal(t, []string{"0", "1", "4", "length"}, KeysWithOpts(Obj(arr), KeyOpts{}))
	assert.Equal(t, []string{"0", "1", "4"},
		KeysWithOpts(Obj(arr), KeyOpts{EnumerableOnly: true, FollowPrototypeChain: true}))

	vals := Values(Obj(arr))
	require.Len(t, vals, 3)
	assert.Equal(t, KindUndefined, vals[1].Kind())
	assert.True(t, SameValue(Int(5), vals[2]))

	assert.True(t, HasOwn(Obj(arr), "1"))
	assert.False(t, HasOwn(Obj(arr), "2"))
	assert.False(t, HasProperty(Obj(arr), "3"))
	assert.Equal(t, KindUndefined, Get(Obj(arr), "3").Kind())
}

func TestConstantFunctions(t *testing.T) {
	x := Obj(NewObject())
	got, err := Call(Identity(), Undefined(), x, Int(2))
	require.NoError(t, err)
	assert.Same(t, x, got)

	got, err = Call(Identity(), Undefined())
	require.NoError(t, err)
	assert.Equal(t, KindUndefined, got.Kind())

	got, err = Call(Truly(), Undefined(), Bool(false))
	require.NoError(t, err)
	assert.True(t, SameValue(Bool(true), got))

	got, err = Call(Falsely(), Undefined())
	require.NoError(t, err)
	assert.True(t, SameValue(Bool(false), got))

	assert.Same(t, Identity().Object(), Identity().Object())
	assert.ErrorIs(t, Truly().Object().Set("x", Int(1)), ErrFrozen)
	assert.Equal(t, "x => x", Identity().Object().Source())
}

func mustString(t *testing.T, v *Value) string {
	t.Helper()
	s, err := v.AsString()
	require.NoError(t, err)
	return s
}
