package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/confkit-io/confkit/pkg/types"
)

// DecodeYAML decodes a YAML document into an ordered description object.
// Mapping key order is preserved. Scalars map onto the tagged variants:
//
//	!!bool          -> Bool
//	!!int, !!float  -> Number
//	!!null          -> Null
//	!!str           -> Scalar (coercion still applies at build time)
//	!ident NAME     -> Ident
//	!regexp /x/gi   -> Pattern (slashes and flags optional)
//	!js SOURCE      -> Fragment (parsed through the toolkit)
//
// The top level must be a mapping.
func DecodeYAML(data []byte) (*Object, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, types.Wrap(types.ErrParse, "description yaml", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, types.Wrap(types.ErrBadValue, "empty description document", nil)
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, types.Wrap(types.ErrBadValue, "description root must be a mapping", nil)
	}
	return decodeMapping(doc)
}

func decodeMapping(n *yaml.Node) (*Object, error) {
	obj := NewObject()
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		val, err := decodeValue(n.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key.Value, err)
		}
		obj.Set(key.Value, val)
	}
	return obj, nil
}

func decodeValue(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.MappingNode:
		obj, err := decodeMapping(n)
		if err != nil {
			return Value{}, err
		}
		return Mapping(obj), nil
	case yaml.SequenceNode:
		seq := make([]Value, 0, len(n.Content))
		for _, el := range n.Content {
			v, err := decodeValue(el)
			if err != nil {
				return Value{}, err
			}
			seq = append(seq, v)
		}
		return Sequence(seq...), nil
	case yaml.ScalarNode:
		return decodeScalar(n)
	case yaml.AliasNode:
		return decodeValue(n.Alias)
	default:
		return Value{}, types.Wrap(types.ErrBadValue,
			fmt.Sprintf("unsupported yaml node kind %d", n.Kind), nil)
	}
}

func decodeScalar(n *yaml.Node) (Value, error) {
	switch n.Tag {
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return Value{}, types.Wrap(types.ErrBadValue, "bad bool "+n.Value, err)
		}
		return Bool(b), nil
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return Value{}, types.Wrap(types.ErrBadValue, "bad number "+n.Value, err)
		}
		return Number(f), nil
	case "!!null":
		return Null(), nil
	case "!ident":
		return Ident(n.Value), nil
	case "!regexp":
		pattern, flags := splitRegexp(n.Value)
		return Pattern(pattern, flags), nil
	case "!js":
		return JS(n.Value)
	default:
		return String(n.Value), nil
	}
}

// splitRegexp accepts both bare patterns and the /pattern/flags spelling.
func splitRegexp(s string) (pattern, flags string) {
	if !strings.HasPrefix(s, "/") {
		return s, ""
	}
	end := strings.LastIndex(s, "/")
	if end == 0 {
		return s, ""
	}
	return s[1:end], s[end+1:]
}
