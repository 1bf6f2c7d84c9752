package value

import (
	"strconv"
	"unicode/utf8"
)

// ============================================================
// Keys / Values / Entries
// ============================================================

// KeyOpts selects which property names are collected.
type KeyOpts struct {
	// EnumerableOnly drops hidden properties.
	EnumerableOnly bool

	// FollowPrototypeChain includes inherited properties.
	FollowPrototypeChain bool

	// All overrides both flags: every own or inherited name, hidden or
	// not, minus the base object's own names.
	All bool
}

// DefaultKeyOpts returns own enumerable keys only.
func DefaultKeyOpts() KeyOpts {
	return KeyOpts{EnumerableOnly: true}
}

func (o KeyOpts) resolve() (enumerableOnly, followChain bool) {
	if o.All {
		return false, true
	}
	return o.EnumerableOnly, o.FollowPrototypeChain
}

// Entry is a key/value pair produced by Entries.
type Entry struct {
	Key   string
	Value *Value
}

// Keys returns the own enumerable property names of v.
func Keys(v *Value) []string {
	return KeysWithOpts(v, DefaultKeyOpts())
}

// KeysWithOpts returns the property names of v selected by opts.
// Undefined and null yield an empty slice.
func KeysWithOpts(v *Value, opts KeyOpts) []string {
	if v.IsNil() {
		return []string{}
	}
	enumerableOnly, followChain := opts.resolve()
	return collectKeys(v, enumerableOnly, followChain)
}

// Values returns the own enumerable property values of v.
func Values(v *Value) []*Value {
	return ValuesWithOpts(v, DefaultKeyOpts())
}

// ValuesWithOpts returns the values of the properties selected by opts,
// in key order. Inherited accessors run against v.
func ValuesWithOpts(v *Value, opts KeyOpts) []*Value {
	if v.IsNil() {
		return []*Value{}
	}
	enumerableOnly, followChain := opts.resolve()
	if enumerableOnly && !followChain {
		return ownEnumerableValues(v)
	}
	keys := collectKeys(v, enumerableOnly, followChain)
	out := make([]*Value, len(keys))
	for i, k := range keys {
		out[i] = Get(v, k)
	}
	return out
}

// Entries returns the own enumerable key/value pairs of v.
func Entries(v *Value) []Entry {
	return EntriesWithOpts(v, DefaultKeyOpts())
}

// EntriesWithOpts returns key/value pairs for the properties selected by
// opts, in key order.
func EntriesWithOpts(v *Value, opts KeyOpts) []Entry {
	if v.IsNil() {
		return []Entry{}
	}
	enumerableOnly, followChain := opts.resolve()
	var keys []string
	var vals []*Value
	if enumerableOnly && !followChain {
		keys = ownKeysOf(v, true)
		vals = ownEnumerableValues(v)
	} else {
		keys = collectKeys(v, enumerableOnly, followChain)
		vals = make([]*Value, len(keys))
		for i, k := range keys {
			vals[i] = Get(v, k)
		}
	}
	out := make([]Entry, len(keys))
	for i, k := range keys {
		out[i] = Entry{Key: k, Value: vals[i]}
	}
	return out
}

// FromEntries builds a plain object from entries. Later keys overwrite
// earlier ones.
func FromEntries(entries []Entry) *Object {
	o := NewObject()
	for _, e := range entries {
		_ = o.Set(e.Key, e.Value) // fresh unfrozen object: cannot fail
	}
	return o
}

// Get reads key from v through its chain. Primitive strings expose their
// characters and length; other primitives read through their wrapper
// prototype.
func Get(v *Value, key string) *Value {
	switch v.Kind() {
	case KindUndefined, KindNull:
		return Undefined()
	case KindObject:
		return v.objVal.lookup(key, v)
	case KindString:
		if key == "length" {
			return Int(int64(utf8.RuneCountInString(v.strVal)))
		}
		if i, ok := arrayIndex(key); ok && i < uint32(utf8.RuneCountInString(v.strVal)) {
			return String(runeAt(v.strVal, int(i)))
		}
	}
	if p := parentOf(v); p != nil {
		return p.lookup(key, v)
	}
	return Undefined()
}

// ============================================================
// Key collection
// ============================================================

// keySet is an insertion-ordered set of names.
type keySet struct {
	order []string
	has   map[string]bool
}

func newKeySet() *keySet {
	return &keySet{has: make(map[string]bool)}
}

func (s *keySet) add(name string) {
	if _, seen := s.has[name]; seen {
		return
	}
	s.has[name] = true
	s.order = append(s.order, name)
}

func (s *keySet) addAll(keys []ownKey) {
	for _, k := range keys {
		s.add(k.name)
	}
}

func (s *keySet) remove(name string) {
	if s.has[name] {
		s.has[name] = false
	}
}

func (s *keySet) list() []string {
	out := make([]string, 0, len(s.order))
	for _, name := range s.order {
		if s.has[name] {
			out = append(out, name)
		}
	}
	return out
}

func ownKeyListOf(v *Value, enumerableOnly bool) []ownKey {
	switch v.Kind() {
	case KindObject:
		return v.objVal.ownKeyList(enumerableOnly)
	case KindString:
		n := utf8.RuneCountInString(v.strVal)
		keys := make([]ownKey, 0, n+1)
		for i := 0; i < n; i++ {
			keys = append(keys, ownKey{name: strconv.Itoa(i), enumerable: true})
		}
		if !enumerableOnly {
			keys = append(keys, ownKey{name: "length"})
		}
		return keys
	default:
		return nil
	}
}

func ownKeysOf(v *Value, enumerableOnly bool) []string {
	list := ownKeyListOf(v, enumerableOnly)
	names := make([]string, len(list))
	for i, k := range list {
		names[i] = k.name
	}
	return names
}

func ownEnumerableValues(v *Value) []*Value {
	switch v.Kind() {
	case KindObject:
		return v.objVal.ownEnumerableValues(v)
	case KindString:
		runes := []rune(v.strVal)
		out := make([]*Value, len(runes))
		for i, r := range runes {
			out[i] = String(string(r))
		}
		return out
	default:
		return []*Value{}
	}
}

// collectKeys gathers unique property names of v.
//
//   - own only: own names, optionally enumerable only
//   - enumerable with chain: for-in order; the first sighting of a name
//     decides, so a hidden own name shadows an enumerable inherited one
//   - hidden with chain: each link contributes its own names and those of
//     its parent, then the base object's own names are dropped
func collectKeys(v *Value, enumerableOnly, followChain bool) []string {
	if !followChain {
		return ownKeysOf(v, enumerableOnly)
	}

	set := newKeySet()
	if enumerableOnly {
		seen := make(map[string]struct{})
		visit := func(keys []ownKey) {
			for _, k := range keys {
				if _, dup := seen[k.name]; dup {
					continue
				}
				seen[k.name] = struct{}{}
				if k.enumerable {
					set.add(k.name)
				}
			}
		}
		visit(ownKeyListOf(v, false))
		for link := parentOf(v); link != nil; link = link.parent {
			visit(link.ownKeyList(false))
		}
		return set.list()
	}

	own := ownKeyListOf(v, false)
	for link := parentOf(v); ; link = link.parent {
		set.addAll(own)
		if link == nil {
			break
		}
		set.addAll(link.ownKeyList(false))
		own = link.ownKeyList(false)
	}
	for name := range intrinsics().baseNames {
		set.remove(name)
	}
	return set.list()
}

// ============================================================
// Helpers
// ============================================================

// Arrify wraps v in an array unless it already is one. Undefined yields an
// empty array.
func Arrify(v *Value) *Object {
	if v.Kind() == KindUndefined {
		return NewArray()
	}
	if o := v.Object(); o != nil && o.class == ClassArray {
		return o
	}
	return NewArray(v)
}

// HasOwn reports whether key is an own property of v. Primitive strings
// own their indices and length; undefined and null own nothing.
func HasOwn(v *Value, key string) bool {
	switch v.Kind() {
	case KindObject:
		return v.objVal.HasOwn(key)
	case KindString:
		if key == "length" {
			return true
		}
		i, ok := arrayIndex(key)
		return ok && i < uint32(utf8.RuneCountInString(v.strVal))
	}
	return false
}

// HasProperty reports whether key is an own or inherited property of v.
func HasProperty(v *Value, key string) bool {
	if v.IsNil() {
		return false
	}
	if HasOwn(v, key) {
		return true
	}
	if p := parentOf(v); p != nil {
		return p.Has(key)
	}
	return false
}
