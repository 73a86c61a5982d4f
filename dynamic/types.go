// SPDX-License-Identifier: MIT

// Package dynamic: domain types of the dynamic-value boundary.
// This file intentionally contains ONLY the Value variant model and its
// constructors/accessors. Conversions live in convert.go; result adapters
// live in adapt.go; errors in errors.go per the global conventions.
package dynamic

import (
	"fmt"
	"strings"
)

// Kind discriminates the variant stored inside a Value.
// The zero Kind is KindNil, representing an absent/unset value.
type Kind uint8

// Variant tags, exhaustive for the numeric bridge.
const (
	KindNil    Kind = iota // absent value (zero Value)
	KindInt                // 64-bit signed integer
	KindFloat              // 64-bit floating point
	KindBool               // boolean
	KindString             // UTF-8 string (never numeric-coercible)
	KindArray              // ordered sequence of Value
	KindMap                // ordered string-keyed mapping
)

// kindNames provides stable human-readable names for error context.
var kindNames = map[Kind]string{
	KindNil:    "nil",
	KindInt:    "int",
	KindFloat:  "float",
	KindBool:   "bool",
	KindString: "string",
	KindArray:  "array",
	KindMap:    "map",
}

// String returns the stable lowercase name of the kind.
// Complexity: O(1).
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Entry is one ordered key/value pair of a KindMap Value.
// Key order is preserved exactly as supplied by the producer.
type Entry struct {
	Key   string // mapping key (stable order, not sorted)
	Value Value  // associated value
}

// Value is a tagged variant carrying exactly one of the host-relevant
// shapes. Values are immutable after construction; accessors return copies
// of scalar payloads and shared read-only views of composite payloads.
//
// The zero Value is KindNil and converts to nothing.
type Value struct {
	kind    Kind    // active variant tag
	num     float64 // payload for KindFloat
	integer int64   // payload for KindInt
	boolean bool    // payload for KindBool
	str     string  // payload for KindString
	arr     []Value // payload for KindArray
	entries []Entry // payload for KindMap
}

// Int constructs an integer Value.
func Int(v int64) Value { return Value{kind: KindInt, integer: v} }

// Float constructs a floating-point Value.
func Float(v float64) Value { return Value{kind: KindFloat, num: v} }

// Bool constructs a boolean Value.
func Bool(v bool) Value { return Value{kind: KindBool, boolean: v} }

// String constructs a string Value.
func String(v string) Value { return Value{kind: KindString, str: v} }

// Array constructs an ordered sequence Value from the given elements.
// The slice is copied; later mutation of vs does not affect the Value.
func Array(vs ...Value) Value {
	elems := make([]Value, len(vs))
	copy(elems, vs)

	return Value{kind: KindArray, arr: elems}
}

// Map constructs an ordered mapping Value from the given entries.
// Key order is preserved; duplicate keys are kept as supplied (last one
// wins on Lookup).
func Map(entries ...Entry) Value {
	es := make([]Entry, len(entries))
	copy(es, entries)

	return Value{kind: KindMap, entries: es}
}

// Kind reports the active variant tag.
// Complexity: O(1).
func (v Value) Kind() Kind { return v.kind }

// IsNumber reports whether the Value is KindInt or KindFloat.
// Complexity: O(1).
func (v Value) IsNumber() bool { return v.kind == KindInt || v.kind == KindFloat }

// AsString returns the string payload and true when the Value is a string.
// Complexity: O(1).
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}

	return v.str, true
}

// AsArray returns the sequence payload and true when the Value is an array.
// The returned slice is a shared read-only view; callers must not mutate it.
// Complexity: O(1).
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}

	return v.arr, true
}

// AsEntries returns the ordered mapping payload and true when the Value is
// a map. The returned slice is a shared read-only view.
// Complexity: O(1).
func (v Value) AsEntries() ([]Entry, bool) {
	if v.kind != KindMap {
		return nil, false
	}

	return v.entries, true
}

// Lookup returns the value stored under key in a KindMap Value.
// Later duplicates shadow earlier ones. Returns false for non-map Values
// and absent keys.
// Complexity: O(k) over the entry count.
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	var found Value
	ok := false
	for _, e := range v.entries { // fixed order scan; last duplicate wins
		if e.Key == key {
			found, ok = e.Value, true
		}
	}

	return found, ok
}

// String implements fmt.Stringer for debugging and error context.
// Scalars render their payload; composites render recursively.
// Complexity: O(n) over the total element count.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return fmt.Sprintf("%d", v.integer)
	case KindFloat:
		return fmt.Sprintf("%g", v.num)
	case KindBool:
		return fmt.Sprintf("%t", v.boolean)
	case KindString:
		return fmt.Sprintf("%q", v.str)
	case KindArray:
		parts := make([]string, len(v.arr))
		for i, e := range v.arr {
			parts[i] = e.String()
		}

		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		parts := make([]string, len(v.entries))
		for i, e := range v.entries {
			parts[i] = fmt.Sprintf("%s: %s", e.Key, e.Value.String())
		}

		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "nil"
	}
}
