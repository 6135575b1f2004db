package gen

import (
	"strings"

	"github.com/typemill/typemill/source"
)

// Kind classifies a node in the type graph.
type Kind int

const (
	// KindEntity is a persisted entity type.
	KindEntity Kind = iota
	// KindView is a read-only projection type.
	KindView
	// KindEnum is an enumeration type.
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindEntity:
		return "entity"
	case KindView:
		return "view"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

type (
	// Type represents one node of the generation graph. A Type is built from
	// a source descriptor during graph construction and carries the resolved
	// classification of all its properties.
	Type struct {
		graph *Graph
		// Name is the unqualified type name.
		Name string
		// Namespace is the dotted namespace the type was declared under.
		Namespace string
		// Kind reports whether the type is an entity, a view or an enum.
		Kind Kind
		// Base is the qualified name of the declared base type, if any.
		Base string
		// Properties holds the classified properties of entity and view
		// types, in declaration order.
		Properties []*Property
		// Members holds the constants of enum types, in declaration order.
		Members []source.EnumMember
	}
)

// QualifiedName returns the namespace-qualified name of the type.
func (t *Type) QualifiedName() string {
	if t.Namespace == "" {
		return t.Name
	}
	return t.Namespace + "." + t.Name
}

// IsEntity reports whether the type is a persisted entity.
func (t *Type) IsEntity() bool { return t.Kind == KindEntity }

// IsView reports whether the type is a read-only projection.
func (t *Type) IsView() bool { return t.Kind == KindView }

// IsEnum reports whether the type is an enumeration.
func (t *Type) IsEnum() bool { return t.Kind == KindEnum }

// BaseType returns the resolved base type, if the type declares one and the
// base exists in the graph.
func (t *Type) BaseType() (*Type, bool) {
	if t.Base == "" || t.graph == nil {
		return nil, false
	}
	return t.graph.Lookup(t.Base)
}

// Ancestry returns the chain of resolved base types, nearest first. A cycle
// in base declarations terminates the walk at the repeated node.
func (t *Type) Ancestry() []*Type {
	var chain []*Type
	seen := map[*Type]bool{t: true}
	for cur, ok := t.BaseType(); ok && !seen[cur]; cur, ok = cur.BaseType() {
		seen[cur] = true
		chain = append(chain, cur)
	}
	return chain
}

// ModelName returns the transmission model name of the type.
func (t *Type) ModelName() string {
	return Pascal(t.Name) + "Model"
}

// ServiceName returns the front-end service name of the type.
func (t *Type) ServiceName() string {
	return Pascal(t.Name) + "Service"
}

// Resource returns the lower-case pluralized resource segment the service
// addresses, e.g. "orderitems" for OrderItem.
func (t *Type) Resource() string {
	return strings.ToLower(Plural(t.Name))
}

// SubPath returns the target-relative artifact path of the type, without
// its suffix and extension.
func (t *Type) SubPath() string {
	return SubPath(t.QualifiedName())
}

// DataProperties returns the properties that carry transmitted data, that
// is, everything except navigation properties.
func (t *Type) DataProperties() []*Property {
	props := make([]*Property, 0, len(t.Properties))
	for _, p := range t.Properties {
		if !p.Navigation {
			props = append(props, p)
		}
	}
	return props
}

// EqualityProperties returns the properties that participate in value
// equality: data properties minus version columns.
func (t *Type) EqualityProperties() []*Property {
	props := make([]*Property, 0, len(t.Properties))
	for _, p := range t.Properties {
		if !p.Navigation && !p.Version {
			props = append(props, p)
		}
	}
	return props
}
