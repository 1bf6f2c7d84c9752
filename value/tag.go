package value

import "strings"

// className returns the intrinsic tag name of v.
func className(v *Value) string {
	switch v.Kind() {
	case KindUndefined:
		return "Undefined"
	case KindNull:
		return "Null"
	case KindBool:
		return "Boolean"
	case KindNumber:
		return "Number"
	case KindBigInt:
		return "BigInt"
	case KindString:
		return "String"
	case KindSymbol:
		return "Symbol"
	}
	o := v.objVal
	if o.class == ClassFunction && o.fn != nil {
		switch o.fn.Flavor {
		case FlavorAsync:
			return "AsyncFunction"
		case FlavorGenerator:
			return "GeneratorFunction"
		case FlavorAsyncGenerator:
			return "AsyncGeneratorFunction"
		}
	}
	return o.class.String()
}

// Tag returns the intrinsic kind tag of v, e.g. "[object Array]". Custom
// labels set with SetToStringTag are ignored.
func Tag(v *Value) string {
	return "[object " + className(v) + "]"
}

// SimpleTag returns the lower-case tag name, e.g. "array" or "null".
func SimpleTag(v *Value) string {
	return strings.ToLower(className(v))
}

// DisplayTag returns the tag a caller-visible toString would show:
// the nearest custom label on the chain, or the intrinsic tag.
func DisplayTag(v *Value) string {
	if o := v.Object(); o != nil {
		if label, ok := o.ToStringTag(); ok {
			return "[object " + label + "]"
		}
	}
	return Tag(v)
}
