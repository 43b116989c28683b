package progress

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
)

// ErrParse marks content that was read but could not be decoded.
var ErrParse = errors.New("malformed progress file")

// eventsKey names the top-level array holding the entries.
const eventsKey = "events"

// Decode parses a TOML progress document and returns its `events` entries
// with field order preserved as written.
func Decode(data []byte) ([]*Map, error) {
	root, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}
	raw, ok := root.Get(eventsKey)
	if !ok {
		return nil, nil
	}
	if raw.Kind != KindSequence {
		return nil, fmt.Errorf("%w: %q is not an array", ErrParse, eventsKey)
	}
	entries := make([]*Map, 0, len(raw.Items))
	for i, item := range raw.Items {
		if item.Kind != KindMapping {
			return nil, fmt.Errorf("%w: %s[%d] is not a table", ErrParse, eventsKey, i)
		}
		entries = append(entries, item.Map)
	}
	return entries, nil
}

// decodeDocument builds the document tree in file order. The full decoder
// runs first: the ordered walk below does not track which tables were
// already defined or closed as inline tables.
func decodeDocument(data []byte) (*Map, error) {
	var check map[string]any
	if err := toml.Unmarshal(data, &check); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	root := NewMap()
	current := root

	var p unstable.Parser
	p.Reset(data)
	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.KeyValue:
			if err := setKeyValue(current, expr); err != nil {
				return nil, err
			}
		case unstable.Table:
			table, err := openTable(root, keyParts(expr))
			if err != nil {
				return nil, err
			}
			current = table
		case unstable.ArrayTable:
			table, err := appendArrayTable(root, keyParts(expr))
			if err != nil {
				return nil, err
			}
			current = table
		}
	}
	if err := p.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return root, nil
}

func keyParts(node *unstable.Node) []string {
	var parts []string
	it := node.Key()
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}

func setKeyValue(table *Map, expr *unstable.Node) error {
	parts := keyParts(expr)
	if len(parts) == 0 {
		return fmt.Errorf("%w: empty key", ErrParse)
	}
	parent, err := openTable(table, parts[:len(parts)-1])
	if err != nil {
		return err
	}
	last := parts[len(parts)-1]
	if parent.Has(last) {
		return fmt.Errorf("%w: duplicate key %q", ErrParse, strings.Join(parts, "."))
	}
	val, err := convertValue(expr.Value())
	if err != nil {
		return err
	}
	parent.Set(last, val)
	return nil
}

// openTable walks path from table, creating missing tables. When a path
// element names an array of tables, the walk continues in its last element.
func openTable(table *Map, path []string) (*Map, error) {
	current := table
	for i, name := range path {
		val, ok := current.Get(name)
		if !ok {
			next := NewMap()
			current.Set(name, Mapping(next))
			current = next
			continue
		}
		switch {
		case val.Kind == KindMapping:
			current = val.Map
		case val.Kind == KindSequence && len(val.Items) > 0 && val.Items[len(val.Items)-1].Kind == KindMapping:
			current = val.Items[len(val.Items)-1].Map
		default:
			return nil, fmt.Errorf("%w: key %q is not a table", ErrParse, strings.Join(path[:i+1], "."))
		}
	}
	return current, nil
}

func appendArrayTable(root *Map, path []string) (*Map, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: empty table name", ErrParse)
	}
	parent, err := openTable(root, path[:len(path)-1])
	if err != nil {
		return nil, err
	}
	name := path[len(path)-1]
	next := NewMap()
	val, ok := parent.Get(name)
	if !ok {
		parent.Set(name, Sequence(Mapping(next)))
		return next, nil
	}
	if val.Kind != KindSequence {
		return nil, fmt.Errorf("%w: key %q is not an array of tables", ErrParse, strings.Join(path, "."))
	}
	val.Items = append(val.Items, Mapping(next))
	parent.Set(name, val)
	return next, nil
}

func convertValue(node *unstable.Node) (Value, error) {
	switch node.Kind {
	case unstable.String, unstable.Bool,
		unstable.LocalDate, unstable.LocalTime, unstable.LocalDateTime, unstable.DateTime:
		return Scalar(string(node.Data)), nil
	case unstable.Integer:
		return Scalar(integerText(string(node.Data))), nil
	case unstable.Float:
		return Scalar(strings.ReplaceAll(string(node.Data), "_", "")), nil
	case unstable.Array:
		items := []Value{}
		it := node.Children()
		for it.Next() {
			item, err := convertValue(it.Node())
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return Sequence(items...), nil
	case unstable.InlineTable:
		table := NewMap()
		it := node.Children()
		for it.Next() {
			if err := setKeyValue(table, it.Node()); err != nil {
				return Value{}, err
			}
		}
		return Mapping(table), nil
	default:
		return Value{}, fmt.Errorf("%w: unsupported value %v", ErrParse, node.Kind)
	}
}

// integerText normalises hex, octal, binary and underscored integers to
// decimal. Values that do not fit in int64 keep their written form.
func integerText(raw string) string {
	n, err := strconv.ParseInt(strings.ReplaceAll(raw, "_", ""), 0, 64)
	if err != nil {
		return raw
	}
	return strconv.FormatInt(n, 10)
}
