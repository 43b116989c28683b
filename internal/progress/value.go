package progress

import "strings"

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindScalar
	KindSequence
	KindMapping
)

// Value is a raw field value read from the progress file: a scalar, an
// ordered sequence, or a nested mapping.
type Value struct {
	Kind  Kind
	Text  string
	Items []Value
	Map   *Map
}

// Null returns the null value.
func Null() Value { return Value{Kind: KindNull} }

// Scalar wraps display text as a scalar value.
func Scalar(text string) Value { return Value{Kind: KindScalar, Text: text} }

// Sequence wraps items as an ordered sequence value.
func Sequence(items ...Value) Value { return Value{Kind: KindSequence, Items: items} }

// Mapping wraps m as a mapping value. A nil map is treated as empty.
func Mapping(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{Kind: KindMapping, Map: m}
}

// Empty reports whether the value carries nothing worth showing.
func (v Value) Empty() bool {
	switch v.Kind {
	case KindScalar:
		return v.Text == ""
	case KindSequence:
		return len(v.Items) == 0
	case KindMapping:
		return v.Map == nil || v.Map.Len() == 0
	default:
		return true
	}
}

// String returns the plain textual form of the value.
func (v Value) String() string {
	switch v.Kind {
	case KindScalar:
		return v.Text
	case KindSequence:
		parts := make([]string, 0, len(v.Items))
		for _, item := range v.Items {
			parts = append(parts, item.String())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMapping:
		if v.Map == nil {
			return "{}"
		}
		parts := make([]string, 0, v.Map.Len())
		for _, key := range v.Map.Keys() {
			val, _ := v.Map.Get(key)
			parts = append(parts, key+": "+val.String())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "(none)"
	}
}

// Map is an insertion-ordered mapping of field name to Value.
type Map struct {
	keys   []string
	values map[string]Value
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{values: make(map[string]Value)}
}

// Set stores val under key. A new key is appended; an existing key keeps its
// position.
func (m *Map) Set(key string, val Value) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = val
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	val, ok := m.values[key]
	return val, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}
