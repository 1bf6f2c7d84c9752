package value

import (
	"fmt"

	"go.uber.org/zap"
)

// Flavor is the syntactic form a function was declared with.
type Flavor uint8

const (
	FlavorNormal Flavor = iota // function f() {}
	FlavorArrow                // () => {}
	FlavorMethod               // concise method or native method
	FlavorAsync
	FlavorGenerator
	FlavorAsyncGenerator
	FlavorClass
)

// NativeFunc is the Go body of a function object.
type NativeFunc func(this *Value, args ...*Value) (*Value, error)

// FuncInfo describes a function object.
type FuncInfo struct {
	Name   string
	Source string // Source text; derived from Name and Flavor when empty
	Flavor Flavor
	Arity  int
	Native NativeFunc // nil bodies return undefined

	instances Class
	noNew     bool
}

func (f FuncInfo) defaultSource() string {
	name := f.Name
	switch f.Flavor {
	case FlavorArrow:
		return "() => {}"
	case FlavorMethod:
		return name + "() {}"
	case FlavorAsync:
		return "async function " + name + "() {}"
	case FlavorGenerator:
		return "function* " + name + "() {}"
	case FlavorAsyncGenerator:
		return "async function* " + name + "() {}"
	case FlavorClass:
		if name == "" {
			return "class {}"
		}
		return "class " + name + " {}"
	default:
		return "function " + name + "() {}"
	}
}

func (f FuncInfo) hasPrototype() bool {
	switch f.Flavor {
	case FlavorNormal, FlavorClass, FlavorGenerator, FlavorAsyncGenerator:
		return true
	}
	return false
}

func (f FuncInfo) constructible() bool {
	return (f.Flavor == FlavorNormal || f.Flavor == FlavorClass) && !f.noNew
}

// NewFunction creates a function object. Normal, class and generator
// functions get a hidden "prototype" object; normal and class functions
// also get its hidden "constructor" back-link.
func NewFunction(info FuncInfo) *Object {
	return intrinsics().newFunction(info, nil)
}

// NewClass creates a constructor declared with class syntax. A non-nil
// extends links both the constructor and its prototype under the parent
// class.
func NewClass(name string, extends *Object) (*Object, error) {
	info := FuncInfo{Name: name, Flavor: FlavorClass}
	if extends == nil {
		return NewFunction(info), nil
	}
	if !IsConstructor(extends) {
		return nil, fmt.Errorf("value: class %s extends non-constructor: %w", name, ErrNotConstructor)
	}
	superInfo, _ := extends.FuncInfo()
	info.Source = "class " + name + " extends " + superInfo.Name + " {}"
	if name == "" {
		info.Source = "class extends " + superInfo.Name + " {}"
	}
	info.instances = extends.fn.instances

	ctor := NewFunction(info)
	if err := ctor.SetParent(extends); err != nil {
		return nil, err
	}
	if err := ctor.Prototype().SetParent(extends.Prototype()); err != nil {
		return nil, err
	}
	log().Debug("declared class", zap.String("name", name), zap.String("extends", superInfo.Name))
	return ctor, nil
}

// FuncInfo returns the function description of a function object.
func (o *Object) FuncInfo() (FuncInfo, bool) {
	if o.fn == nil {
		return FuncInfo{}, false
	}
	return *o.fn, true
}

// Source returns the source text of a function object.
func (o *Object) Source() string {
	if o.fn == nil {
		return ""
	}
	return o.fn.Source
}

// Prototype returns the object held in the "prototype" property, or nil.
// This is not the parent link; see Parent.
func (o *Object) Prototype() *Object {
	p, ok := o.OwnProperty("prototype")
	if !ok {
		return nil
	}
	return p.read(Obj(o)).Object()
}

// IsConstructor reports whether o can be used with Construct.
func IsConstructor(o *Object) bool {
	return o != nil && o.fn != nil && o.fn.constructible()
}

// Call invokes a function value.
func Call(fn *Value, this *Value, args ...*Value) (*Value, error) {
	o := fn.Object()
	if o == nil || o.fn == nil {
		return nil, fmt.Errorf("value: call %s: %w", Typeof(fn), ErrNotFunction)
	}
	if o.fn.Native == nil {
		return Undefined(), nil
	}
	return o.fn.Native(this, args...)
}

// Construct creates an instance of ctor and runs init on it. The
// instance's parent is ctor's "prototype" object, or the base object when
// that is not an object.
func Construct(ctor *Object, init func(this *Object) error) (*Object, error) {
	if !IsConstructor(ctor) {
		return nil, fmt.Errorf("value: construct: %w", ErrNotConstructor)
	}
	r := intrinsics()
	parent := ctor.Prototype()
	if parent == nil {
		parent = r.objectProto
	}
	inst := newObject(ctor.fn.instances, parent)
	switch inst.class {
	case ClassString:
		inst.prim = String("")
	case ClassNumber:
		inst.prim = Int(0)
	case ClassBoolean:
		inst.prim = Bool(false)
	case ClassFunction:
		inst.fn = &FuncInfo{Name: "anonymous", Source: "function anonymous() {}"}
	case ClassPromise:
		inst.thenable = &Deferred{}
	}
	if init != nil {
		if err := init(inst); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// DefineMethod installs fn as a hidden method on ctor's prototype, the
// way a class body does.
func DefineMethod(ctor *Object, name string, fn *Object) error {
	proto := ctor.Prototype()
	if proto == nil {
		return fmt.Errorf("value: define method %q: %w", name, ErrNotConstructor)
	}
	return proto.DefineHidden(name, Obj(fn))
}

// Inherits links ctor.prototype under super.prototype and records super
// as the hidden super_ property.
func Inherits(ctor, super *Object) error {
	if !IsConstructor(ctor) || !IsConstructor(super) || ctor.Prototype() == nil || super.Prototype() == nil {
		return fmt.Errorf("value: inherits: %w", ErrNotConstructor)
	}
	if err := ctor.Prototype().SetParent(super.Prototype()); err != nil {
		return fmt.Errorf("value: inherits: %w", err)
	}
	return ctor.DefineHidden("super_", Obj(super))
}
