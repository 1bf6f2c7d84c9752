package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"go.uber.org/zap"
)

// ============================================================
// JSON Bridge
// ============================================================
//
// Converts between JSON text and Values. Object key order is kept, so
// Keys of a decoded object follows the document.

// BridgeOpts configures JSON output.
type BridgeOpts struct {
	// Indent pretty-prints with the given indent when non-empty.
	Indent string
}

// DefaultBridgeOpts returns compact output options.
func DefaultBridgeOpts() BridgeOpts {
	return BridgeOpts{}
}

// ============================================================
// FromJSON - JSON to Value
// ============================================================

// FromJSON decodes one JSON document.
func FromJSON(data []byte) (*Value, error) {
	return FromJSONReader(bytes.NewReader(data))
}

// FromJSONReader decodes one JSON document from r.
func FromJSONReader(r io.Reader) (*Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	v, err := decodeJSON(dec)
	if err != nil {
		return nil, fmt.Errorf("JSON parse error at offset %d: %w", dec.InputOffset(), err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("JSON parse error at offset %d: trailing data", dec.InputOffset())
	}
	return v, nil
}

func decodeJSON(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		f, err := ParseNumber(t.String())
		if err != nil {
			return nil, err
		}
		return Number(f), nil
	case json.Delim:
		switch t {
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, _ := keyTok.(string)
				elem, err := decodeJSON(dec)
				if err != nil {
					return nil, fmt.Errorf("object[%q]: %w", key, err)
				}
				_ = obj.Set(key, elem)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return Obj(obj), nil
		case '[':
			var items []*Value
			for dec.More() {
				elem, err := decodeJSON(dec)
				if err != nil {
					return nil, fmt.Errorf("array[%d]: %w", len(items), err)
				}
				items = append(items, elem)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return Obj(NewArray(items...)), nil
		}
	}
	return nil, fmt.Errorf("unexpected JSON token %v", tok)
}

// ============================================================
// ToJSON - Value to JSON
// ============================================================

// ToJSON encodes v as compact JSON.
func ToJSON(v *Value) ([]byte, error) {
	return ToJSONWithOpts(v, DefaultBridgeOpts())
}

// ToJSONWithOpts encodes v as JSON. Objects contribute their own
// enumerable properties in key order; undefined, functions and symbols
// are skipped inside objects and become null inside arrays. Dates become
// RFC 3339 strings and wrappers their primitive. NaN, Infinity, bigints
// and cycles are errors.
func ToJSONWithOpts(v *Value, opts BridgeOpts) ([]byte, error) {
	var buf bytes.Buffer
	e := &jsonEncoder{buf: &buf, visiting: make(map[*Object]bool)}
	if !e.serializable(v) {
		return nil, fmt.Errorf("encode %s: %w", SimpleTag(v), ErrNotSerializable)
	}
	if err := e.encode(v); err != nil {
		return nil, err
	}
	if opts.Indent == "" {
		return buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", opts.Indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

type jsonEncoder struct {
	buf      *bytes.Buffer
	visiting map[*Object]bool
}

func (e *jsonEncoder) serializable(v *Value) bool {
	switch v.Kind() {
	case KindUndefined, KindSymbol:
		return false
	case KindObject:
		return v.objVal.class != ClassFunction
	}
	return true
}

func (e *jsonEncoder) encode(v *Value) error {
	switch v.Kind() {
	case KindNull:
		e.buf.WriteString("null")
	case KindBool:
		if v.boolVal {
			e.buf.WriteString("true")
		} else {
			e.buf.WriteString("false")
		}
	case KindNumber:
		if math.IsNaN(v.numVal) || math.IsInf(v.numVal, 0) {
			return fmt.Errorf("NaN/Infinity not allowed in JSON")
		}
		e.buf.WriteString(FormatNumber(v.numVal))
	case KindBigInt:
		return fmt.Errorf("encode bigint: %w", ErrNotSerializable)
	case KindString:
		return e.quote(v.strVal)
	case KindObject:
		return e.encodeObject(v)
	default:
		e.buf.WriteString("null")
	}
	return nil
}

func (e *jsonEncoder) quote(s string) error {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	e.buf.Write(bytes.TrimRight(b.Bytes(), "\n"))
	return nil
}

func (e *jsonEncoder) encodeObject(v *Value) error {
	o := v.objVal
	if o.prim != nil {
		return e.encode(o.prim)
	}
	if t, ok := o.Date(); ok {
		return e.quote(t.UTC().Format(time.RFC3339Nano))
	}
	if e.visiting[o] {
		return fmt.Errorf("encode: %w", ErrCircular)
	}
	e.visiting[o] = true
	defer delete(e.visiting, o)

	if o.class == ClassArray {
		e.buf.WriteByte('[')
		for i := 0; i < o.Len(); i++ {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			elem := o.indexed(i)
			if !e.serializable(elem) {
				e.buf.WriteString("null")
				continue
			}
			if err := e.encode(elem); err != nil {
				return fmt.Errorf("array[%d]: %w", i, err)
			}
		}
		e.buf.WriteByte(']')
		return nil
	}

	e.buf.WriteByte('{')
	first := true
	for _, entry := range Entries(v) {
		if !e.serializable(entry.Value) {
			log().Debug("skipping unserializable property", zap.String("key", entry.Key))
			continue
		}
		if !first {
			e.buf.WriteByte(',')
		}
		first = false
		if err := e.quote(entry.Key); err != nil {
			return err
		}
		e.buf.WriteByte(':')
		if err := e.encode(entry.Value); err != nil {
			return fmt.Errorf("object[%q]: %w", entry.Key, err)
		}
	}
	e.buf.WriteByte('}')
	return nil
}
