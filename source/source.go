// Package source defines the raw type metadata a provider reports to the
// generation engine. It is a plain data model: no classification happens
// here. The engine (compiler/gen) turns this into its descriptor graph and
// decides how each property emits.
package source

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Type is one raw type as reported by a provider. Which of the three
// provider sets it came from (entities, views, enums) determines its kind;
// the type itself does not carry it.
type Type struct {
	// Name is the unqualified type name, e.g. "CustomerOrderItem".
	Name string `json:"name"`
	// Namespace is the declaring module path, e.g. "Store.Orders".
	Namespace string `json:"namespace,omitempty"`
	// Base is the qualified name of the base type. Empty for root types.
	Base string `json:"base,omitempty"`
	// Properties in declaration order. Empty for enum types.
	Properties []*Property `json:"properties,omitempty"`
	// Members in declaration order. Enum types only.
	Members []EnumMember `json:"members,omitempty"`
}

// Qualified returns the namespace-qualified name of the type.
func (t *Type) Qualified() string {
	if t.Namespace == "" {
		return t.Name
	}
	return t.Namespace + "." + t.Name
}

// EnumMember is one enumeration member with its explicit value.
type EnumMember struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Property is one raw property together with the structural facts the
// extractor classifies against.
type Property struct {
	Name string `json:"name"`
	// Shape holds the structural classification of the property type.
	Shape Shape `json:"shape"`
	// Navigation marks the inverse side of a relationship. Navigation
	// properties are excluded from most emission targets.
	Navigation bool `json:"navigation,omitempty"`
}

// Shape describes the structure of a property type as the provider sees it.
// Exactly one of the following must hold: Primitive is set, IsEnum is set,
// IsArray or IsList is set, or Element names a plain type reference. A shape
// with none of them set is unknown and is skipped by the extractor.
type Shape struct {
	// Primitive is the recognized scalar kind, or PrimitiveNone.
	Primitive Primitive `json:"primitive,omitempty"`
	// IsArray reports a fixed-size collection with one element type.
	IsArray bool `json:"is_array,omitempty"`
	// IsList reports a generic list with one element type.
	IsList bool `json:"is_list,omitempty"`
	// IsEnum reports an enumeration type.
	IsEnum bool `json:"is_enum,omitempty"`
	// Element is the qualified element type for arrays and lists, the
	// enum type for enums, or the referenced type for plain references.
	Element string `json:"element,omitempty"`
}

// Primitive enumerates the scalar kinds a provider can report.
type Primitive int

const (
	PrimitiveNone Primitive = iota
	PrimitiveBool
	PrimitiveString
	PrimitiveInt
	PrimitiveLong
	PrimitiveDouble
	PrimitiveDecimal
	PrimitiveDateTime
	PrimitiveGuid
)

var primitiveNames = [...]string{
	PrimitiveNone:     "",
	PrimitiveBool:     "bool",
	PrimitiveString:   "string",
	PrimitiveInt:      "int",
	PrimitiveLong:     "long",
	PrimitiveDouble:   "double",
	PrimitiveDecimal:  "decimal",
	PrimitiveDateTime: "datetime",
	PrimitiveGuid:     "guid",
}

// String returns the lower-case name of the primitive.
func (p Primitive) String() string {
	if p < 0 || int(p) >= len(primitiveNames) {
		return fmt.Sprintf("primitive(%d)", int(p))
	}
	return primitiveNames[p]
}

// MarshalJSON encodes the primitive by name for readable metadata files.
func (p Primitive) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON accepts either the name or the numeric value.
func (p *Primitive) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		var n int
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("source: invalid primitive %s", data)
		}
		*p = Primitive(n)
		return nil
	}
	for i, s := range primitiveNames {
		if s == strings.ToLower(name) {
			*p = Primitive(i)
			return nil
		}
	}
	return fmt.Errorf("source: unknown primitive %q", name)
}

// Document is the on-disk metadata form consumed by the CLI: the three
// provider sets in one JSON object. It implements the provider contract
// directly.
type Document struct {
	EntityTypes []*Type `json:"entities,omitempty"`
	ViewTypes   []*Type `json:"views,omitempty"`
	EnumTypes   []*Type `json:"enums,omitempty"`
}

// Entities returns the entity types of the document.
func (d *Document) Entities() []*Type { return d.EntityTypes }

// Views returns the view types of the document.
func (d *Document) Views() []*Type { return d.ViewTypes }

// Enums returns the enumeration types of the document.
func (d *Document) Enums() []*Type { return d.EnumTypes }

// Decode reads a metadata document from r.
func Decode(r io.Reader) (*Document, error) {
	var d Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("source: decode metadata: %w", err)
	}
	return &d, nil
}
