package gen

import "github.com/typemill/typemill/source"

// ValueKind is the resolved classification of a property's value shape.
type ValueKind int

const (
	// ValueScalar is a plain primitive value.
	ValueScalar ValueKind = iota
	// ValueDateTime is a point-in-time value.
	ValueDateTime
	// ValueGuid is a globally unique identifier value.
	ValueGuid
	// ValueEnum is a reference to an enum type in the graph.
	ValueEnum
	// ValueEntityRef is a single reference to another graph type.
	ValueEntityRef
	// ValueArrayRef is a fixed-shape collection of another type.
	ValueArrayRef
	// ValueListRef is a growable collection of another type.
	ValueListRef
)

func (k ValueKind) String() string {
	switch k {
	case ValueScalar:
		return "scalar"
	case ValueDateTime:
		return "datetime"
	case ValueGuid:
		return "guid"
	case ValueEnum:
		return "enum"
	case ValueEntityRef:
		return "entityref"
	case ValueArrayRef:
		return "arrayref"
	case ValueListRef:
		return "listref"
	default:
		return "unknown"
	}
}

// Property is one classified property of a graph type.
type Property struct {
	typ   *Type
	shape source.Shape
	// Name is the property name as declared in the metadata.
	Name string
	// Kind is the resolved value classification.
	Kind ValueKind
	// Primitive is the primitive shape for scalar, datetime and guid
	// properties. source.PrimitiveNone otherwise.
	Primitive source.Primitive
	// Element is the qualified name of the referenced type for enum,
	// reference and collection properties.
	Element string
	// Navigation marks relational navigation properties that are excluded
	// from transmitted data.
	Navigation bool
	// Version marks concurrency-token properties that are excluded from
	// value equality.
	Version bool
}

// Type returns the type the property belongs to.
func (p *Property) Type() *Type { return p.typ }

// ElementType resolves the referenced type of enum, reference and
// collection properties.
func (p *Property) ElementType() (*Type, bool) {
	if p.Element == "" || p.typ == nil || p.typ.graph == nil {
		return nil, false
	}
	return p.typ.graph.Lookup(p.Element)
}

// IsCollection reports whether the property holds multiple values.
func (p *Property) IsCollection() bool {
	return p.Kind == ValueArrayRef || p.Kind == ValueListRef
}

// IsRef reports whether the property references another graph type.
func (p *Property) IsRef() bool {
	switch p.Kind {
	case ValueEnum, ValueEntityRef, ValueArrayRef, ValueListRef:
		return true
	default:
		return false
	}
}
