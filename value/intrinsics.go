package value

import (
	"sync"
)

// realm holds the shared intrinsic objects. It is built once and frozen.
type realm struct {
	objectProto   *Object
	functionProto *Object
	protos        map[Class]*Object
	boxed         map[Kind]*Object
	ctors         map[string]*Object
	noop          *Object
	identity      *Object
	truly         *Object
	falsely       *Object
	baseNames     map[string]struct{}

	all []*Object
}

var (
	realmOnce sync.Once
	realmVal  *realm
)

// intrinsics returns the shared realm, building it on first use. A plain
// accessor keeps newRealm out of package initialization, since building
// the realm reaches code that calls back into intrinsics.
func intrinsics() *realm {
	realmOnce.Do(func() { realmVal = newRealm() })
	return realmVal
}

type intrinsicDef struct {
	name      string
	instances Class
	arity     int
	parent    string // constructor whose prototype is the parent of ours; "" for the base object
	methods   []string
	statics   []string
	noNew     bool
}

// Constructor order matters: an entry may only name an earlier parent.
var intrinsicDefs = []intrinsicDef{
	{name: "Array", instances: ClassArray, arity: 1, methods: []string{
		"at", "concat", "copyWithin", "fill", "find", "findIndex", "findLast", "findLastIndex",
		"lastIndexOf", "pop", "push", "reverse", "shift", "unshift", "slice", "sort", "splice",
		"includes", "indexOf", "join", "keys", "entries", "values", "forEach", "filter", "flat",
		"flatMap", "map", "every", "some", "reduce", "reduceRight", "toLocaleString", "toString",
	}, statics: []string{"isArray", "from", "of"}},
	{name: "Error", instances: ClassError, arity: 1, methods: []string{"toString"},
		statics: []string{"captureStackTrace"}},
	{name: "Date", instances: ClassDate, arity: 7, methods: []string{
		"toString", "toDateString", "toTimeString", "toISOString", "toUTCString", "getDate",
		"getDay", "getFullYear", "getHours", "getMilliseconds", "getMinutes", "getMonth",
		"getSeconds", "getTime", "getTimezoneOffset", "toJSON", "valueOf",
	}, statics: []string{"now", "parse", "UTC"}},
	{name: "Map", instances: ClassMap, methods: []string{
		"get", "set", "has", "delete", "clear", "entries", "forEach", "keys", "values",
	}},
	{name: "Set", instances: ClassSet, methods: []string{
		"has", "add", "delete", "clear", "entries", "forEach", "values", "keys",
	}},
	{name: "RegExp", instances: ClassRegExp, arity: 2, methods: []string{
		"exec", "compile", "toString", "test",
	}},
	{name: "Promise", instances: ClassPromise, arity: 1, methods: []string{"then", "catch", "finally"},
		statics: []string{"all", "allSettled", "any", "race", "resolve", "reject"}},
	{name: "ArrayBuffer", instances: ClassArrayBuffer, arity: 1, methods: []string{"slice", "resize"},
		statics: []string{"isView"}},
	{name: "Uint8Array", instances: ClassTypedArray, arity: 3, methods: []string{
		"at", "fill", "includes", "indexOf", "join", "set", "slice", "subarray", "toString",
	}, statics: []string{"from", "of"}},
	{name: "DataView", instances: ClassDataView, arity: 1, methods: []string{
		"getUint8", "setUint8", "getInt32", "setInt32", "getFloat64", "setFloat64",
	}},
	{name: "Buffer", instances: ClassBuffer, arity: 2, parent: "Uint8Array", methods: []string{
		"toString", "equals", "compare", "copy", "write", "toJSON",
	}, statics: []string{"alloc", "from", "concat", "byteLength"}},
	{name: "String", instances: ClassString, arity: 1, methods: []string{
		"at", "charAt", "charCodeAt", "concat", "endsWith", "includes", "indexOf", "lastIndexOf",
		"padEnd", "padStart", "repeat", "replace", "slice", "split", "startsWith", "substring",
		"toLowerCase", "toUpperCase", "trim", "trimStart", "trimEnd", "toString", "valueOf",
	}, statics: []string{"fromCharCode", "raw"}},
	{name: "Number", instances: ClassNumber, arity: 1, methods: []string{
		"toExponential", "toFixed", "toPrecision", "toString", "valueOf", "toLocaleString",
	}, statics: []string{"isFinite", "isInteger", "isNaN", "isSafeInteger", "parseFloat", "parseInt"}},
	{name: "Boolean", instances: ClassBoolean, arity: 1, methods: []string{"toString", "valueOf"}},
	{name: "BigInt", arity: 1, noNew: true, methods: []string{"toLocaleString", "toString", "valueOf"},
		statics: []string{"asIntN", "asUintN"}},
	{name: "Symbol", noNew: true, methods: []string{"toString", "valueOf"},
		statics: []string{"for", "keyFor"}},
}

func newRealm() *realm {
	r := &realm{
		protos: make(map[Class]*Object),
		boxed:  make(map[Kind]*Object),
		ctors:  make(map[string]*Object),
	}

	// The base object and Function.prototype come first; every other
	// intrinsic hangs off them.
	r.objectProto = r.track(newObject(ClassObject, nil))
	r.functionProto = r.track(newObject(ClassFunction, r.objectProto))
	r.functionProto.fn = &FuncInfo{Source: "function () { [native code] }", Flavor: FlavorMethod}
	r.protos[ClassObject] = r.objectProto
	r.protos[ClassFunction] = r.functionProto

	objectCtor := r.ctor("Object", 1, ClassObject, r.objectProto)
	r.natives(objectCtor, "assign", "create", "defineProperty", "entries", "freeze",
		"fromEntries", "getOwnPropertyNames", "getPrototypeOf", "is", "keys", "setPrototypeOf", "values")
	r.natives(r.objectProto, "__defineGetter__", "__defineSetter__", "hasOwnProperty",
		"__lookupGetter__", "__lookupSetter__", "isPrototypeOf", "propertyIsEnumerable",
		"toString", "valueOf")
	r.objectProto.defineOwn(Property{Name: "__proto__", Getter: func(receiver *Value) *Value {
		if p := parentOf(receiver); p != nil {
			return Obj(p)
		}
		return Null()
	}})
	r.natives(r.objectProto, "toLocaleString")

	r.functionProto.defineOwn(Property{Name: "length", Value: Int(0)})
	r.functionProto.defineOwn(Property{Name: "name", Value: String("")})
	r.ctor("Function", 1, ClassFunction, r.functionProto)
	r.natives(r.functionProto, "apply", "bind", "call", "toString")

	for _, def := range intrinsicDefs {
		parent := r.objectProto
		if def.parent != "" {
			parent = r.ctors[def.parent].Prototype()
		}
		proto := r.track(newObject(ClassObject, parent))
		ctor := r.ctor(def.name, def.arity, def.instances, proto)
		ctor.fn.noNew = def.noNew
		if !def.noNew {
			r.protos[def.instances] = proto
		}
		r.natives(proto, def.methods...)
		r.natives(ctor, def.statics...)
	}

	arrayProto := r.protos[ClassArray]
	arrayProto.defineOwn(Property{Name: "length", Value: Int(0)})
	errorProto := r.protos[ClassError]
	errorProto.defineOwn(Property{Name: "name", Value: String("Error")})
	errorProto.defineOwn(Property{Name: "message", Value: String("")})

	r.ctors["Buffer"].defineOwn(Property{Name: "isBuffer", Value: Obj(r.native("isBuffer", 1,
		func(_ *Value, args ...*Value) (*Value, error) {
			if len(args) == 0 {
				return Bool(false), nil
			}
			o := args[0].Object()
			return Bool(o != nil && o.class == ClassBuffer), nil
		}))})

	r.boxed[KindString] = r.protos[ClassString]
	r.boxed[KindNumber] = r.protos[ClassNumber]
	r.boxed[KindBool] = r.protos[ClassBoolean]
	r.boxed[KindBigInt] = r.ctors["BigInt"].Prototype()
	r.boxed[KindSymbol] = r.ctors["Symbol"].Prototype()

	r.noop = r.track(r.newFunction(FuncInfo{Name: "noop", Flavor: FlavorArrow}, nil))
	r.identity = r.arrow("identity", "x => x", 1, func(_ *Value, args ...*Value) (*Value, error) {
		if len(args) == 0 {
			return Undefined(), nil
		}
		return args[0], nil
	})
	r.truly = r.arrow("truly", "() => true", 0, func(*Value, ...*Value) (*Value, error) {
		return Bool(true), nil
	})
	r.falsely = r.arrow("falsely", "() => false", 0, func(*Value, ...*Value) (*Value, error) {
		return Bool(false), nil
	})

	r.baseNames = make(map[string]struct{})
	for _, name := range r.objectProto.OwnKeys(false) {
		r.baseNames[name] = struct{}{}
	}
	for _, o := range r.all {
		o.Freeze()
	}
	return r
}

func (r *realm) track(o *Object) *Object {
	r.all = append(r.all, o)
	return o
}

// newFunction builds a function object. When proto is non-nil it becomes
// the "prototype" property instead of a fresh object.
func (r *realm) newFunction(info FuncInfo, proto *Object) *Object {
	if info.Source == "" {
		info.Source = info.defaultSource()
	}
	fn := newObject(ClassFunction, r.functionProto)
	fn.fn = &info
	fn.defineOwn(Property{Name: "length", Value: Int(int64(info.Arity))})
	fn.defineOwn(Property{Name: "name", Value: String(info.Name)})
	if !info.hasPrototype() {
		return fn
	}
	if proto == nil {
		proto = newObject(ClassObject, r.objectProto)
		if info.Flavor == FlavorGenerator || info.Flavor == FlavorAsyncGenerator {
			fn.defineOwn(Property{Name: "prototype", Value: Obj(proto)})
			return fn
		}
	}
	proto.defineOwn(Property{Name: "constructor", Value: Obj(fn)})
	fn.defineOwn(Property{Name: "prototype", Value: Obj(proto)})
	return fn
}

func (r *realm) ctor(name string, arity int, instances Class, proto *Object) *Object {
	info := FuncInfo{
		Name:      name,
		Source:    "function " + name + "() { [native code] }",
		Arity:     arity,
		instances: instances,
	}
	fn := r.track(r.newFunction(info, proto))
	r.ctors[name] = fn
	return fn
}

func (r *realm) native(name string, arity int, body NativeFunc) *Object {
	return r.track(r.newFunction(FuncInfo{
		Name:   name,
		Source: "function " + name + "() { [native code] }",
		Flavor: FlavorMethod,
		Arity:  arity,
		Native: body,
	}, nil))
}

func (r *realm) arrow(name, source string, arity int, body NativeFunc) *Object {
	return r.track(r.newFunction(FuncInfo{
		Name:   name,
		Source: source,
		Flavor: FlavorArrow,
		Arity:  arity,
		Native: body,
	}, nil))
}

func (r *realm) natives(owner *Object, names ...string) {
	for _, name := range names {
		owner.defineOwn(Property{Name: name, Value: Obj(r.native(name, 0, nil))})
	}
}

// ============================================================
// Public access
// ============================================================

// ObjectPrototype returns the base object every ordinary chain ends at.
func ObjectPrototype() *Object {
	return intrinsics().objectProto
}

// FunctionPrototype returns the parent of every function object.
func FunctionPrototype() *Object {
	return intrinsics().functionProto
}

// ObjectConstructor returns the base object's constructor.
func ObjectConstructor() *Object {
	return intrinsics().ctors["Object"]
}

// Intrinsic returns a built-in constructor by its global name, such as
// "Array" or "Buffer".
func Intrinsic(name string) (*Object, bool) {
	o, ok := intrinsics().ctors[name]
	return o, ok
}

// Noop returns the shared do-nothing function.
func Noop() *Value {
	return Obj(intrinsics().noop)
}

// Identity returns the shared function that returns its first argument.
func Identity() *Value {
	return Obj(intrinsics().identity)
}

// Truly returns the shared function that always returns true.
func Truly() *Value {
	return Obj(intrinsics().truly)
}

// Falsely returns the shared function that always returns false.
func Falsely() *Value {
	return Obj(intrinsics().falsely)
}

// IsBaseName reports whether name is an own property of the base object.
func IsBaseName(name string) bool {
	_, ok := intrinsics().baseNames[name]
	return ok
}

// parentOf returns the first chain link above v. Primitives start at the
// prototype of their wrapper class.
func parentOf(v *Value) *Object {
	switch v.Kind() {
	case KindObject:
		return v.objVal.parent
	case KindUndefined, KindNull:
		return nil
	default:
		return intrinsics().boxed[v.Kind()]
	}
}
