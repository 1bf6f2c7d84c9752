package value

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// ============================================================
// Inspect-style text rendering
// ============================================================

// Format renders v on one line for humans: strings single-quoted,
// objects as { key: value }, functions as [Function: name], and
// repeated references as [Circular].
func Format(v *Value) string {
	var b strings.Builder
	f := &formatter{b: &b, visiting: make(map[*Object]bool)}
	f.value(v)
	return b.String()
}

type formatter struct {
	b        *strings.Builder
	visiting map[*Object]bool
}

func (f *formatter) value(v *Value) {
	switch v.Kind() {
	case KindUndefined:
		f.b.WriteString("undefined")
	case KindNull:
		f.b.WriteString("null")
	case KindBool:
		if v.boolVal {
			f.b.WriteString("true")
		} else {
			f.b.WriteString("false")
		}
	case KindNumber:
		if v.numVal == 0 && math.Signbit(v.numVal) {
			f.b.WriteString("-0")
		} else {
			f.b.WriteString(FormatNumber(v.numVal))
		}
	case KindBigInt:
		f.b.WriteString(v.bigVal.String() + "n")
	case KindString:
		f.b.WriteString(quoteSingle(v.strVal))
	case KindSymbol:
		f.b.WriteString(v.symVal.String())
	case KindObject:
		f.object(v)
	}
}

func (f *formatter) object(v *Value) {
	o := v.objVal
	if f.visiting[o] {
		f.b.WriteString("[Circular]")
		return
	}
	f.visiting[o] = true
	defer delete(f.visiting, o)

	switch o.class {
	case ClassFunction:
		f.function(o)
		return
	case ClassArray:
		f.list("", "[", "]", o.Elems())
		return
	case ClassArguments:
		f.list("[Arguments] ", "[", "]", o.Elems())
		return
	case ClassDate:
		f.b.WriteString(o.date.UTC().Format(time.RFC3339Nano))
		return
	case ClassError:
		f.b.WriteString("Error")
		if msg := o.Get("message"); msg.Kind() == KindString && msg.strVal != "" {
			f.b.WriteString(": " + msg.strVal)
		}
		return
	case ClassRegExp:
		src := "(?:)"
		if o.pattern != nil {
			src = o.pattern.String()
		}
		f.b.WriteString("/" + src + "/")
		return
	case ClassMap:
		fmt.Fprintf(f.b, "Map(%d) {", len(o.entries))
		for i, e := range o.entries {
			f.sep(i)
			f.value(e.Key)
			f.b.WriteString(" => ")
			f.value(e.Value)
		}
		f.close(len(o.entries), "}")
		return
	case ClassSet:
		vals := make([]*Value, len(o.entries))
		for i, e := range o.entries {
			vals[i] = e.Key
		}
		f.list(fmt.Sprintf("Set(%d) ", len(vals)), "{", "}", vals)
		return
	case ClassPromise:
		state := Pending
		if d, ok := o.thenable.(*Deferred); ok {
			state, _ = d.State()
		}
		f.b.WriteString("Promise { <" + state.String() + "> }")
		return
	case ClassArrayBuffer, ClassDataView:
		fmt.Fprintf(f.b, "%s { byteLength: %d }", o.class, len(o.bytes))
		return
	case ClassTypedArray, ClassBuffer:
		name := "Uint8Array"
		if o.class == ClassBuffer {
			name = "Buffer"
		}
		fmt.Fprintf(f.b, "%s(%d) [", name, len(o.bytes))
		for i, c := range o.bytes {
			if i > 0 {
				f.b.WriteByte(',')
			}
			fmt.Fprintf(f.b, " %d", c)
		}
		f.close(len(o.bytes), "]")
		return
	case ClassString, ClassNumber, ClassBoolean:
		f.b.WriteString("[" + o.class.String() + ": ")
		f.value(o.prim)
		f.b.WriteString("]")
		return
	}

	f.b.WriteString(f.prefix(o))
	entries := Entries(v)
	f.b.WriteByte('{')
	for i, e := range entries {
		f.sep(i)
		f.b.WriteString(formatKey(e.Key))
		f.b.WriteString(": ")
		f.value(e.Value)
	}
	f.close(len(entries), "}")
}

// prefix names the constructor of non-plain objects.
func (f *formatter) prefix(o *Object) string {
	if o.parent == nil {
		return "[Object: null prototype] "
	}
	if o.parent == intrinsics().objectProto {
		return ""
	}
	ctor := o.parent.Get("constructor").Object()
	if ctor == nil || ctor.fn == nil || ctor.fn.Name == "" {
		return ""
	}
	return ctor.fn.Name + " "
}

func (f *formatter) function(o *Object) {
	info := o.fn
	kind := className(Obj(o))
	if info != nil && info.Flavor == FlavorClass {
		kind = "class"
	}
	name := ""
	if info != nil {
		name = info.Name
	}
	switch {
	case kind == "class" && name == "":
		f.b.WriteString("[class (anonymous)]")
	case kind == "class":
		f.b.WriteString("[class " + name + "]")
	case name == "":
		f.b.WriteString("[" + kind + " (anonymous)]")
	default:
		f.b.WriteString("[" + kind + ": " + name + "]")
	}
}

func (f *formatter) list(prefix, open, end string, items []*Value) {
	f.b.WriteString(prefix + open)
	for i, item := range items {
		f.sep(i)
		f.value(item)
	}
	f.close(len(items), end)
}

func (f *formatter) sep(i int) {
	if i > 0 {
		f.b.WriteByte(',')
	}
	f.b.WriteByte(' ')
}

func (f *formatter) close(n int, end string) {
	if n > 0 {
		f.b.WriteByte(' ')
	}
	f.b.WriteString(end)
}

// formatKey leaves identifier-like keys bare and quotes the rest.
func formatKey(k string) string {
	if isIdentifier(k) {
		return k
	}
	if _, ok := arrayIndex(k); ok {
		return "'" + k + "'"
	}
	return quoteSingle(k)
}

// isIdentifier checks ^[\p{L}_$][\p{L}\p{N}_$]*$.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError {
			return false
		}
		ok := unicode.IsLetter(r) || r == '_' || r == '$'
		if i > 0 {
			ok = ok || unicode.IsDigit(r)
		}
		if !ok {
			return false
		}
		i += size
	}
	return true
}

// quoteSingle quotes s with single quotes and minimal escapes.
func quoteSingle(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\x%02X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('\'')
	return b.String()
}
