package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ValueKind discriminates the scalar variants a metadata Value can hold.
type ValueKind int

const (
	// KindString holds text.
	KindString ValueKind = iota

	// KindNumber holds a float64.
	KindNumber

	// KindBool holds a boolean.
	KindBool
)

// Value is a scalar metadata value: a string, a number, or a bool.
// The closed variant set keeps the metadata matching surface well
// defined for non-string values. The zero Value is the empty string.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
}

// String wraps a text value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number wraps a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Bool wraps a boolean value.
func Bool(v bool) Value {
	return Value{kind: KindBool, b: v}
}

// Kind returns the variant held by the value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Text returns the canonical string form of the value. Numbers render
// without trailing zeros, booleans as "true"/"false". This form feeds
// the metadata matching blob and display output.
func (v Value) Text() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return v.str
	}
}

// MarshalJSON renders the underlying scalar without a wrapper object.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	default:
		return json.Marshal(v.str)
	}
}

// UnmarshalJSON accepts a JSON string, number, or bool.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch val := raw.(type) {
	case string:
		*v = String(val)
	case float64:
		*v = Number(val)
	case bool:
		*v = Bool(val)
	default:
		return fmt.Errorf("%w: metadata value must be a string, number, or bool", ErrInvalidInput)
	}
	return nil
}

// Metadata is an open mapping of string keys to scalar values. Any
// extra field is allowed.
type Metadata map[string]Value

// Clone returns a shallow copy of the metadata.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	dst := make(Metadata, len(m))
	for k, v := range m {
		dst[k] = v
	}
	return dst
}

// Merge returns a copy of m extended with overlay. Overlay entries win
// on key collision. Neither argument is mutated.
func (m Metadata) Merge(overlay Metadata) Metadata {
	dst := make(Metadata, len(m)+len(overlay))
	for k, v := range m {
		dst[k] = v
	}
	for k, v := range overlay {
		dst[k] = v
	}
	return dst
}

// Blob joins the canonical form of every value into one lowercased
// string for substring matching. Values are joined in sorted-key order
// so the blob is deterministic regardless of map iteration.
func (m Metadata) Blob() string {
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, m[k].Text())
	}
	return strings.ToLower(strings.Join(parts, " "))
}
