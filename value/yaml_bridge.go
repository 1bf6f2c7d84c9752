package value

import (
	"encoding/base64"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// maxSafeInteger is the largest integer a float64 holds exactly.
const maxSafeInteger = 1<<53 - 1

// FromYAML decodes the first YAML document in data. Mappings become plain
// objects in document order, sequences arrays, timestamps Dates, binary
// scalars ArrayBuffers, and integers outside the float64-exact range
// bigints. An empty document is undefined.
func FromYAML(data []byte) (*Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	if doc.Kind == 0 {
		return Undefined(), nil
	}
	d := &yamlDecoder{
		active:  make(map[*yaml.Node]bool),
		anchors: make(map[*yaml.Node]*Value),
	}
	return d.decode(&doc)
}

// yamlDecoder decodes each anchored node once. Aliases resolve to the same
// *Value, so nested aliases cost no more than the anchors they name.
type yamlDecoder struct {
	active  map[*yaml.Node]bool
	anchors map[*yaml.Node]*Value
}

func (d *yamlDecoder) decode(n *yaml.Node) (*Value, error) {
	target := n
	if n.Kind == yaml.AliasNode {
		target = n.Alias
	} else if n.Anchor == "" {
		return d.node(n)
	}
	if v, ok := d.anchors[target]; ok {
		return v, nil
	}
	if d.active[target] {
		return nil, fmt.Errorf("line %d: recursive alias *%s: %w", n.Line, target.Anchor, ErrCircular)
	}
	d.active[target] = true
	defer delete(d.active, target)
	v, err := d.node(target)
	if err != nil {
		return nil, err
	}
	d.anchors[target] = v
	return v, nil
}

func (d *yamlDecoder) node(n *yaml.Node) (*Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Undefined(), nil
		}
		return d.decode(n.Content[0])
	case yaml.AliasNode:
		return d.decode(n)
	case yaml.SequenceNode:
		items := make([]*Value, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := d.decode(c)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			items = append(items, v)
		}
		return Obj(NewArray(items...)), nil
	case yaml.MappingNode:
		obj := NewObject()
		if err := d.fill(obj, n); err != nil {
			return nil, err
		}
		return Obj(obj), nil
	case yaml.ScalarNode:
		return d.scalar(n)
	}
	return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", n.Line, n.Kind)
}

// fill copies the pairs of mapping n into obj. Merge keys contribute only
// names not set explicitly.
func (d *yamlDecoder) fill(obj *Object, n *yaml.Node) error {
	var merges []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.ShortTag() == "!!merge" {
			merges = append(merges, v)
			continue
		}
		if k.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
		}
		elem, err := d.decode(v)
		if err != nil {
			return fmt.Errorf("object[%q]: %w", k.Value, err)
		}
		_ = obj.Set(k.Value, elem)
	}
	for _, m := range merges {
		if err := d.merge(obj, m); err != nil {
			return err
		}
	}
	return nil
}

func (d *yamlDecoder) merge(obj *Object, n *yaml.Node) error {
	if n.Kind == yaml.SequenceNode {
		for _, c := range n.Content {
			if err := d.merge(obj, c); err != nil {
				return err
			}
		}
		return nil
	}
	target := n
	if n.Kind == yaml.AliasNode {
		target = n.Alias
	}
	if target.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: merge value must be a mapping", n.Line)
	}
	src, err := d.decode(n)
	if err != nil {
		return err
	}
	for _, e := range Entries(src) {
		if !obj.HasOwn(e.Key) {
			_ = obj.Set(e.Key, e.Value)
		}
	}
	return nil
}

func (d *yamlDecoder) scalar(n *yaml.Node) (*Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil && i >= -maxSafeInteger && i <= maxSafeInteger {
			return Int(i), nil
		}
		b, ok := new(big.Int).SetString(strings.ReplaceAll(n.Value, "_", ""), 0)
		if !ok {
			return nil, fmt.Errorf("line %d: invalid integer %q", n.Line, n.Value)
		}
		log().Debug("integer exceeds float64 precision, using bigint", zap.String("value", n.Value))
		return BigInt(b), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		if math.IsNaN(f) {
			return NaN(), nil
		}
		return Number(f), nil
	case "!!timestamp":
		var t time.Time
		if err := n.Decode(&t); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return Obj(NewDate(t)), nil
	case "!!binary":
		raw := strings.Join(strings.Fields(n.Value), "")
		b, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid binary: %w", n.Line, err)
		}
		return Obj(NewArrayBuffer(b)), nil
	default:
		return String(n.Value), nil
	}
}
