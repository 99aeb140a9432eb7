// Package schema checks translation catalogs against a small structural schema.
//
// Only a subset of JSON Schema is understood: "object" nodes with required,
// properties and additionalProperties, and "string" leaves. Any other type is
// accepted without checks.
package schema

import (
	"fmt"

	"github.com/YoshitsuguKoike/catalogcheck/internal/validator/document"
)

// Interpreted node types
const (
	TypeObject = "object"
	TypeString = "string"
)

// Node describes the expected shape at one position of a document
type Node struct {
	Type                 string
	Required             []string
	Properties           []Property
	AdditionalProperties *bool // nil when the schema omits it
}

// Property is a named child schema of an object node
type Property struct {
	Name   string
	Schema *Node
}

// Property returns the child schema for name
func (n *Node) Property(name string) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	for _, p := range n.Properties {
		if p.Name == name {
			return p.Schema, true
		}
	}
	return nil, false
}

// AllowsAdditional reports whether unknown keys are ignored.
// Only an explicit false rejects them.
func (n *Node) AllowsAdditional() bool {
	return n.AdditionalProperties == nil || *n.AdditionalProperties
}

// Load parses a schema document
func Load(data []byte) (*Node, error) {
	v, err := document.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("schema: parse: %w", err)
	}
	return FromValue(v), nil
}

// FromValue builds a Node from a parsed document.
// Fields with an unexpected shape are treated as absent.
func FromValue(v document.Value) *Node {
	n := &Node{}
	if !v.IsObject() {
		return n
	}

	if t, ok := v.Get("type"); ok && t.Kind == document.KindString {
		n.Type = t.Str
	}

	if req, ok := v.Get("required"); ok && req.Kind == document.KindArray {
		for _, item := range req.Items {
			if item.Kind == document.KindString {
				n.Required = append(n.Required, item.Str)
			}
		}
	}

	if props, ok := v.Get("properties"); ok && props.IsObject() {
		n.Properties = make([]Property, 0, len(props.Members))
		for _, m := range props.Members {
			n.Properties = append(n.Properties, Property{Name: m.Key, Schema: FromValue(m.Value)})
		}
	}

	if ap, ok := v.Get("additionalProperties"); ok && ap.Kind == document.KindBool {
		b := ap.Bool
		n.AdditionalProperties = &b
	}

	return n
}
