package value

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"
	"unicode/utf8"
)

// Class is the intrinsic kind tag of an object.
type Class uint8

const (
	ClassObject Class = iota
	ClassArray
	ClassFunction
	ClassArguments
	ClassDate
	ClassError
	ClassMap
	ClassSet
	ClassRegExp
	ClassPromise
	ClassArrayBuffer
	ClassTypedArray // Uint8Array
	ClassDataView
	ClassBuffer // Uint8Array subclass with Buffer.isBuffer identity
	ClassString // String wrapper object
	ClassNumber
	ClassBoolean
)

// String returns the tag name of the class.
func (c Class) String() string {
	switch c {
	case ClassObject:
		return "Object"
	case ClassArray:
		return "Array"
	case ClassFunction:
		return "Function"
	case ClassArguments:
		return "Arguments"
	case ClassDate:
		return "Date"
	case ClassError:
		return "Error"
	case ClassMap:
		return "Map"
	case ClassSet:
		return "Set"
	case ClassRegExp:
		return "RegExp"
	case ClassPromise:
		return "Promise"
	case ClassArrayBuffer:
		return "ArrayBuffer"
	case ClassTypedArray, ClassBuffer:
		return "Uint8Array"
	case ClassDataView:
		return "DataView"
	case ClassString:
		return "String"
	case ClassNumber:
		return "Number"
	case ClassBoolean:
		return "Boolean"
	default:
		return "Object"
	}
}

// Getter computes an accessor property. The receiver is the value the
// read started from, not the object that owns the accessor.
type Getter func(receiver *Value) *Value

// Property is an own property slot.
type Property struct {
	Name       string
	Value      *Value
	Enumerable bool
	Getter     Getter // Accessor when non-nil; Value is ignored
}

func (p Property) read(receiver *Value) *Value {
	if p.Getter != nil {
		return p.Getter(receiver)
	}
	if p.Value == nil {
		return Undefined()
	}
	return p.Value
}

// MapEntry is a key/value pair held by a Map object.
type MapEntry struct {
	Key   *Value
	Value *Value
}

// Object is an ordered attribute table with a parent link.
//
// Objects are not safe for concurrent mutation. Reads are safe once
// writers are done; intrinsics are frozen at creation.
type Object struct {
	class  Class
	parent *Object
	props  []Property
	index  map[string]int
	frozen bool
	label  string // custom tag label, see SetToStringTag

	elems    []*Value // Array, Arguments
	fn       *FuncInfo
	date     time.Time
	pattern  *regexp.Regexp
	entries  []MapEntry
	bytes    []byte
	prim     *Value // wrapped primitive
	thenable Thenable
}

// maxHoles bounds how far past the end an array write may land.
const maxHoles = 1 << 16

type ownKey struct {
	name       string
	enumerable bool
}

func newObject(class Class, parent *Object) *Object {
	return &Object{class: class, parent: parent, index: make(map[string]int)}
}

// ============================================================
// Constructors
// ============================================================

// NewObject creates an empty plain object whose parent is the base object.
func NewObject() *Object {
	return newObject(ClassObject, intrinsics().objectProto)
}

// NewObjectWithParent creates an empty object with the given parent.
// A nil parent creates a null-prototype object.
func NewObjectWithParent(parent *Object) *Object {
	return newObject(ClassObject, parent)
}

// NewArray creates an array holding elems.
func NewArray(elems ...*Value) *Object {
	o := newObject(ClassArray, intrinsics().protos[ClassArray])
	o.elems = slots(elems)
	return o
}

// NewArguments creates an arguments object.
func NewArguments(args ...*Value) *Object {
	o := newObject(ClassArguments, intrinsics().objectProto)
	o.elems = slots(args)
	return o
}

// NewDate creates a Date object.
func NewDate(t time.Time) *Object {
	o := newObject(ClassDate, intrinsics().protos[ClassDate])
	o.date = t
	return o
}

// NewError creates an Error object with a hidden message and stack.
func NewError(message string) *Object {
	o := newObject(ClassError, intrinsics().protos[ClassError])
	o.defineOwn(Property{Name: "stack", Value: String("Error: " + message)})
	if message != "" {
		o.defineOwn(Property{Name: "message", Value: String(message)})
	}
	return o
}

// NewMap creates a Map object. Later duplicate keys overwrite earlier ones.
func NewMap(entries ...MapEntry) *Object {
	o := newObject(ClassMap, intrinsics().protos[ClassMap])
	for _, e := range entries {
		o.mapSet(e.Key, e.Value)
	}
	return o
}

// NewSet creates a Set object with duplicates removed.
func NewSet(values ...*Value) *Object {
	o := newObject(ClassSet, intrinsics().protos[ClassSet])
	for _, v := range values {
		if o.mapFind(v) < 0 {
			o.entries = append(o.entries, MapEntry{Key: v, Value: v})
		}
	}
	return o
}

// NewRegExp compiles pattern into a RegExp object.
func NewRegExp(pattern string) (*Object, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("value: invalid regexp %q: %w", pattern, err)
	}
	o := newObject(ClassRegExp, intrinsics().protos[ClassRegExp])
	o.pattern = re
	o.defineOwn(Property{Name: "lastIndex", Value: Int(0)})
	return o, nil
}

// NewArrayBuffer creates an ArrayBuffer over a copy of b.
func NewArrayBuffer(b []byte) *Object {
	return newBytesObject(ClassArrayBuffer, b)
}

// NewUint8Array creates a typed array over a copy of b.
func NewUint8Array(b []byte) *Object {
	return newBytesObject(ClassTypedArray, b)
}

// NewDataView creates a DataView over a copy of b.
func NewDataView(b []byte) *Object {
	return newBytesObject(ClassDataView, b)
}

// NewBuffer creates a Buffer over a copy of b.
func NewBuffer(b []byte) *Object {
	return newBytesObject(ClassBuffer, b)
}

func newBytesObject(class Class, b []byte) *Object {
	o := newObject(class, intrinsics().protos[class])
	o.bytes = append([]byte(nil), b...)
	return o
}

// NewStringObject creates a String wrapper.
func NewStringObject(s string) *Object {
	o := newObject(ClassString, intrinsics().protos[ClassString])
	o.prim = String(s)
	return o
}

// NewNumberObject creates a Number wrapper.
func NewNumberObject(f float64) *Object {
	o := newObject(ClassNumber, intrinsics().protos[ClassNumber])
	o.prim = Number(f)
	return o
}

// NewBooleanObject creates a Boolean wrapper.
func NewBooleanObject(b bool) *Object {
	o := newObject(ClassBoolean, intrinsics().protos[ClassBoolean])
	o.prim = Bool(b)
	return o
}

// ============================================================
// Accessors
// ============================================================

// Class returns the intrinsic class.
func (o *Object) Class() Class {
	return o.class
}

// Parent returns the next link of the chain, nil at the root.
func (o *Object) Parent() *Object {
	return o.parent
}

// IsFrozen reports whether the object rejects mutation.
func (o *Object) IsFrozen() bool {
	return o.frozen
}

// Len returns the indexed length of arrays, arguments, string wrappers and
// byte-backed views. Other objects report 0.
func (o *Object) Len() int {
	switch o.class {
	case ClassArray, ClassArguments:
		return len(o.elems)
	case ClassString:
		return utf8.RuneCountInString(o.prim.strVal)
	case ClassTypedArray, ClassBuffer:
		return len(o.bytes)
	default:
		return 0
	}
}

// Elems returns a copy of the array elements.
func (o *Object) Elems() []*Value {
	return append([]*Value(nil), o.elems...)
}

// Bytes returns a copy of the backing bytes.
func (o *Object) Bytes() []byte {
	return append([]byte(nil), o.bytes...)
}

// Date returns the time held by a Date object.
func (o *Object) Date() (time.Time, bool) {
	return o.date, o.class == ClassDate
}

// Pattern returns the compiled expression of a RegExp object.
func (o *Object) Pattern() *regexp.Regexp {
	return o.pattern
}

// MapEntries returns a copy of the entries of a Map or Set.
func (o *Object) MapEntries() []MapEntry {
	return append([]MapEntry(nil), o.entries...)
}

// Primitive returns the value wrapped by a String, Number or Boolean object.
func (o *Object) Primitive() *Value {
	return o.prim
}

// ============================================================
// Own properties
// ============================================================

func (o *Object) hasLengthSlot() bool {
	switch o.class {
	case ClassArray, ClassArguments, ClassString:
		return true
	}
	return false
}

// hole reports an array slot that was never written.
func (o *Object) hole(i int) bool {
	switch o.class {
	case ClassArray, ClassArguments:
		return o.elems[i] == nil
	}
	return false
}

func (o *Object) indexed(i int) *Value {
	switch o.class {
	case ClassArray, ClassArguments:
		if o.elems[i] == nil {
			return Undefined()
		}
		return o.elems[i]
	case ClassString:
		return String(runeAt(o.prim.strVal, i))
	case ClassTypedArray, ClassBuffer:
		return Int(int64(o.bytes[i]))
	}
	return Undefined()
}

func (o *Object) ownKeyList(enumerableOnly bool) []ownKey {
	n := o.Len()
	keys := make([]ownKey, 0, n+len(o.props)+1)
	for i := 0; i < n; i++ {
		if o.hole(i) {
			continue
		}
		keys = append(keys, ownKey{name: strconv.Itoa(i), enumerable: true})
	}

	// Integer-like names precede the rest, ascending.
	var numeric, named []ownKey
	for _, p := range o.props {
		if enumerableOnly && !p.Enumerable {
			continue
		}
		k := ownKey{name: p.Name, enumerable: p.Enumerable}
		if _, ok := arrayIndex(p.Name); ok {
			numeric = append(numeric, k)
		} else {
			named = append(named, k)
		}
	}
	sort.SliceStable(numeric, func(i, j int) bool {
		a, _ := arrayIndex(numeric[i].name)
		b, _ := arrayIndex(numeric[j].name)
		return a < b
	})
	keys = append(keys, numeric...)
	if !enumerableOnly && o.hasLengthSlot() {
		keys = append(keys, ownKey{name: "length"})
	}
	return append(keys, named...)
}

// OwnKeys returns own property names in enumeration order. When
// enumerableOnly is false hidden names are included.
func (o *Object) OwnKeys(enumerableOnly bool) []string {
	list := o.ownKeyList(enumerableOnly)
	names := make([]string, len(list))
	for i, k := range list {
		names[i] = k.name
	}
	return names
}

// OwnProperty returns the own property called name.
func (o *Object) OwnProperty(name string) (Property, bool) {
	if n := o.Len(); n > 0 {
		if i, ok := arrayIndex(name); ok && i < uint32(n) && !o.hole(int(i)) {
			return Property{Name: name, Value: o.indexed(int(i)), Enumerable: true}, true
		}
	}
	if name == "length" && o.hasLengthSlot() {
		return Property{Name: name, Value: Int(int64(o.Len()))}, true
	}
	if i, ok := o.index[name]; ok {
		return o.props[i], true
	}
	return Property{}, false
}

// HasOwn reports whether name is an own property.
func (o *Object) HasOwn(name string) bool {
	_, ok := o.OwnProperty(name)
	return ok
}

// Has reports whether name is an own or inherited property.
func (o *Object) Has(name string) bool {
	for cur := o; cur != nil; cur = cur.parent {
		if cur.HasOwn(name) {
			return true
		}
	}
	return false
}

// Get reads name through the chain. Accessors see o as their receiver.
// Missing properties read as undefined.
func (o *Object) Get(name string) *Value {
	return o.lookup(name, Obj(o))
}

func (o *Object) lookup(name string, receiver *Value) *Value {
	for cur := o; cur != nil; cur = cur.parent {
		if p, ok := cur.OwnProperty(name); ok {
			return p.read(receiver)
		}
	}
	return Undefined()
}

// Set creates or updates an own enumerable data property. Existing
// properties keep their position and enumerability.
func (o *Object) Set(name string, v *Value) error {
	if o.frozen {
		return fmt.Errorf("value: set %q: %w", name, ErrFrozen)
	}
	if handled, err := o.setIndexed(name, v); handled {
		return err
	}
	if i, ok := o.index[name]; ok {
		if o.props[i].Getter != nil {
			return fmt.Errorf("value: set %q: %w", name, ErrReadOnly)
		}
		o.props[i].Value = v
		return nil
	}
	o.defineOwn(Property{Name: name, Value: v, Enumerable: true})
	return nil
}

func (o *Object) setIndexed(name string, v *Value) (bool, error) {
	if !o.isSlot(name) {
		return false, nil
	}
	if name == "length" || (o.class != ClassArray && o.class != ClassArguments) {
		return true, fmt.Errorf("value: set %q: %w", name, ErrReadOnly)
	}
	i, _ := arrayIndex(name)
	if i > uint32(len(o.elems))+maxHoles {
		return true, fmt.Errorf("value: set %q: sparse arrays are not supported: %w", name, ErrReadOnly)
	}
	for uint32(len(o.elems)) <= i {
		o.elems = append(o.elems, nil)
	}
	if v == nil {
		v = Undefined()
	}
	o.elems[i] = v
	return true, nil
}

// slots copies vals into element storage. Nil slots are reserved for holes,
// so nil values are stored as explicit undefined.
func slots(vals []*Value) []*Value {
	out := make([]*Value, len(vals))
	for i, v := range vals {
		if v == nil {
			v = Undefined()
		}
		out[i] = v
	}
	return out
}

// DefineProperty installs p as an own property, replacing any existing
// one in place.
func (o *Object) DefineProperty(p Property) error {
	if o.frozen {
		return fmt.Errorf("value: define %q: %w", p.Name, ErrFrozen)
	}
	if o.isSlot(p.Name) {
		elems := o.class == ClassArray || o.class == ClassArguments
		if elems && p.Name != "length" && p.Enumerable && p.Getter == nil {
			return o.Set(p.Name, p.Value)
		}
		return fmt.Errorf("value: define %q: %w", p.Name, ErrReadOnly)
	}
	o.defineOwn(p)
	return nil
}

// isSlot reports whether name addresses indexed storage rather than the
// property table.
func (o *Object) isSlot(name string) bool {
	if name == "length" && o.hasLengthSlot() {
		return true
	}
	i, ok := arrayIndex(name)
	if !ok {
		return false
	}
	switch o.class {
	case ClassArray, ClassArguments:
		return true
	case ClassString, ClassTypedArray, ClassBuffer:
		return i < uint32(o.Len())
	}
	return false
}

// DefineHidden installs a non-enumerable data property.
func (o *Object) DefineHidden(name string, v *Value) error {
	return o.DefineProperty(Property{Name: name, Value: v})
}

// DefineGetter installs an accessor property.
func (o *Object) DefineGetter(name string, g Getter, enumerable bool) error {
	return o.DefineProperty(Property{Name: name, Getter: g, Enumerable: enumerable})
}

func (o *Object) defineOwn(p Property) {
	if i, ok := o.index[p.Name]; ok {
		o.props[i] = p
		return
	}
	o.index[p.Name] = len(o.props)
	o.props = append(o.props, p)
}

// Delete removes an own named property. Indexed slots cannot be deleted.
func (o *Object) Delete(name string) (bool, error) {
	if o.frozen {
		return false, fmt.Errorf("value: delete %q: %w", name, ErrFrozen)
	}
	i, ok := o.index[name]
	if !ok {
		if o.HasOwn(name) {
			return false, fmt.Errorf("value: delete %q: %w", name, ErrReadOnly)
		}
		return false, nil
	}
	o.props = append(o.props[:i], o.props[i+1:]...)
	delete(o.index, name)
	for j := i; j < len(o.props); j++ {
		o.index[o.props[j].Name] = j
	}
	return true, nil
}

// SetParent relinks the chain. Cycles are rejected.
func (o *Object) SetParent(parent *Object) error {
	if o.frozen {
		return fmt.Errorf("value: set parent: %w", ErrFrozen)
	}
	for cur := parent; cur != nil; cur = cur.parent {
		if cur == o {
			log().Debug("rejected cyclic parent link")
			return fmt.Errorf("value: set parent: %w", ErrCyclicProto)
		}
	}
	o.parent = parent
	return nil
}

// Freeze makes the object reject further mutation.
func (o *Object) Freeze() {
	o.frozen = true
}

// SetToStringTag sets a custom label reported by DisplayTag. The
// intrinsic class is unaffected.
func (o *Object) SetToStringTag(label string) error {
	if o.frozen {
		return fmt.Errorf("value: set tag: %w", ErrFrozen)
	}
	o.label = label
	return nil
}

// ToStringTag returns the nearest custom label on the chain.
func (o *Object) ToStringTag() (string, bool) {
	for cur := o; cur != nil; cur = cur.parent {
		if cur.label != "" {
			return cur.label, true
		}
	}
	return "", false
}

func (o *Object) ownEnumerableValues(receiver *Value) []*Value {
	keys := o.ownKeyList(true)
	out := make([]*Value, 0, len(keys))
	for _, k := range keys {
		p, _ := o.OwnProperty(k.name)
		out = append(out, p.read(receiver))
	}
	return out
}

// ============================================================
// Map / Set storage
// ============================================================

func (o *Object) mapFind(key *Value) int {
	for i, e := range o.entries {
		if sameValueZero(e.Key, key) {
			return i
		}
	}
	return -1
}

func (o *Object) mapSet(key, v *Value) {
	if i := o.mapFind(key); i >= 0 {
		o.entries[i].Value = v
		return
	}
	o.entries = append(o.entries, MapEntry{Key: key, Value: v})
}

func sameValueZero(a, b *Value) bool {
	if a.Kind() == KindNumber && b.Kind() == KindNumber && a.numVal == 0 && b.numVal == 0 {
		return true
	}
	return SameValue(a, b)
}

func runeAt(s string, i int) string {
	for j, r := range []rune(s) {
		if j == i {
			return string(r)
		}
	}
	return ""
}
