package is

import (
	"strings"

	"github.com/Neumenon/typeguard/value"
)

// PlainObject reports whether v is an object literal, an object with a
// null parent, or an instance whose constructor is the base Object
// constructor itself.
func PlainObject(v *value.Value) bool {
	o := v.Object()
	if o == nil || value.Typeof(v) != "object" || value.Tag(v) != "[object Object]" {
		return false
	}
	proto := o.Parent()
	if proto == nil {
		return true
	}
	if !proto.HasOwn("constructor") {
		return false
	}
	ctor := proto.Get("constructor").Object()
	if ctor == nil || value.Typeof(value.Obj(ctor)) != "function" {
		return false
	}
	return instanceOf(ctor, ctor) && ctor.Source() == value.ObjectConstructor().Source()
}

// instanceOf reports whether ctor's prototype object appears on o's
// parent chain.
func instanceOf(o, ctor *value.Object) bool {
	proto := ctor.Prototype()
	if proto == nil {
		return false
	}
	for p := o.Parent(); p != nil; p = p.Parent() {
		if p == proto {
			return true
		}
	}
	return false
}

// EmptyObject reports whether v is an object without own enumerable
// properties.
func EmptyObject(v *value.Value) bool {
	return Object(v) && len(value.Keys(v)) == 0
}

// Class reports whether v is a function declared with class syntax.
func Class(v *value.Value) bool {
	if !Function(v) || !value.HasOwn(v, "prototype") {
		return false
	}
	proto := value.Get(v, "prototype")
	if !value.Truthy(proto) || !value.HasOwn(proto, "constructor") {
		return false
	}
	ctor := value.Get(proto, "constructor").Object()
	return ctor != nil && strings.HasPrefix(ctor.Source(), "class")
}

// PropertyOwned reports whether field is an own property of v. Undefined
// and null own nothing.
func PropertyOwned(v *value.Value, field string) bool {
	return value.HasOwn(v, field)
}

// PropertyDefined walks the dot-separated path from v and reports whether
// every segment is an own or inherited property of an object. The walk
// ends early, successfully, at the first empty segment.
//
//	is.PropertyDefined(v, "server.tls.cert")
func PropertyDefined(v *value.Value, path string) bool {
	ctx := v
	for _, key := range strings.Split(path, ".") {
		if key == "" {
			break
		}
		if !Object(ctx) || !value.HasProperty(ctx, key) {
			return false
		}
		ctx = value.Get(ctx, key)
	}
	return true
}
