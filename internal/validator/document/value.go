// Package document holds the parsed form of a JSON data file.
//
// JSON objects decode into an ordered list of members rather than a Go map so
// that callers can walk keys in the order they appear in the file.
package document

import "strconv"

// Kind identifies which variant a Value holds
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the kind name used in validation messages
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Member is one key/value pair of an object
type Member struct {
	Key   string
	Value Value
}

// Value is a parsed JSON value. Only the fields matching Kind are meaningful.
type Value struct {
	Kind    Kind
	Str     string // KindString
	Num     string // KindNumber, literal text
	Bool    bool   // KindBool
	Items   []Value
	Members []Member
}

// Null returns the JSON null value
func Null() Value { return Value{Kind: KindNull} }

// String returns a string value
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Number returns a number value from its literal text
func Number(lit string) Value { return Value{Kind: KindNumber, Num: lit} }

// Bool returns a boolean value
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Array returns an array value
func Array(items ...Value) Value { return Value{Kind: KindArray, Items: items} }

// Object returns an object value. Members are kept in the given order.
func Object(members ...Member) Value { return Value{Kind: KindObject, Members: members} }

// IsObject reports whether v is a JSON object
func (v Value) IsObject() bool { return v.Kind == KindObject }

// Get returns the member value for key
func (v Value) Get(key string) (Value, bool) {
	if v.Kind != KindObject {
		return Value{}, false
	}
	for _, m := range v.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Has reports whether the object has a member named key
func (v Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Keys returns the object's keys in document order
func (v Value) Keys() []string {
	if v.Kind != KindObject {
		return nil
	}
	keys := make([]string, 0, len(v.Members))
	for _, m := range v.Members {
		keys = append(keys, m.Key)
	}
	return keys
}
