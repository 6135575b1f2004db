package gen

import (
	"fmt"
	"sort"

	"github.com/typemill/typemill/source"
	"go.uber.org/zap"
)

// Graph holds the resolved type graph the targets generate from. A Graph is
// immutable after construction and safe for concurrent reads.
type Graph struct {
	*Config
	// Nodes are the resolved types, ordered by qualified name.
	Nodes []*Type
	nodes map[string]*Type
	// Warnings collects non-fatal extraction diagnostics, one per distinct
	// condition.
	Warnings []string
}

// NewGraph extracts the type graph from the configured source. All node
// names must be unique across entities, views and enums. Properties whose
// shape cannot be classified are skipped with a warning rather than failing
// the build.
func NewGraph(c *Config, opts ...Option) (*Graph, error) {
	if c == nil {
		return nil, ErrMissingConfig
	}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	if c.Source == nil {
		return nil, NewConfigError("Source", "", "type source is required")
	}
	c.defaults()
	g := &Graph{
		Config: c,
		nodes:  make(map[string]*Type),
	}
	for _, src := range c.Source.Entities() {
		if err := g.addType(src, KindEntity); err != nil {
			return nil, err
		}
	}
	for _, src := range c.Source.Views() {
		if err := g.addType(src, KindView); err != nil {
			return nil, err
		}
	}
	for _, src := range c.Source.Enums() {
		if err := g.addType(src, KindEnum); err != nil {
			return nil, err
		}
	}
	sort.Slice(g.Nodes, func(i, j int) bool {
		return g.Nodes[i].QualifiedName() < g.Nodes[j].QualifiedName()
	})
	for _, t := range g.Nodes {
		g.classify(t)
	}
	c.Logger.Debug("graph extracted",
		zap.Int("nodes", len(g.Nodes)),
		zap.Int("warnings", len(g.Warnings)),
	)
	return g, nil
}

func (g *Graph) addType(src *source.Type, kind Kind) error {
	if src.Name == "" {
		return NewExtractError("", "", "type with empty name", nil)
	}
	t := &Type{
		graph:     g,
		Name:      src.Name,
		Namespace: src.Namespace,
		Kind:      kind,
		Base:      src.Base,
		Members:   src.Members,
	}
	name := t.QualifiedName()
	if prev, ok := g.nodes[name]; ok {
		return NewExtractError(name, "",
			fmt.Sprintf("duplicate type name (%s and %s)", prev.Kind, kind), nil)
	}
	for _, p := range src.Properties {
		t.Properties = append(t.Properties, &Property{
			typ:        t,
			Name:       p.Name,
			Navigation: p.Navigation,
			Version:    g.versionProperty(p.Name),
		})
		g.copyShape(t.Properties[len(t.Properties)-1], p.Shape)
	}
	g.nodes[name] = t
	g.Nodes = append(g.Nodes, t)
	return nil
}

func (g *Graph) copyShape(p *Property, s source.Shape) {
	p.Primitive = s.Primitive
	p.Element = s.Element
	p.shape = s
}

// classify resolves the value kind of every property after all nodes exist,
// so that cross-type references can be checked against the graph. Properties
// whose shape cannot be classified are dropped from the node with a warning.
func (g *Graph) classify(t *Type) {
	kept := t.Properties[:0]
	for _, p := range t.Properties {
		switch s := p.shape; {
		case s.IsArray:
			if s.Element == "" {
				g.warnf("%s.%s: collection property without element type, skipped", t.QualifiedName(), p.Name)
				continue
			}
			p.Kind = ValueArrayRef
		case s.IsList:
			if s.Element == "" {
				g.warnf("%s.%s: collection property without element type, skipped", t.QualifiedName(), p.Name)
				continue
			}
			p.Kind = ValueListRef
		case s.IsEnum:
			p.Kind = ValueEnum
		case s.Primitive == source.PrimitiveDateTime:
			p.Kind = ValueDateTime
		case s.Primitive == source.PrimitiveGuid:
			p.Kind = ValueGuid
		case s.Primitive != source.PrimitiveNone:
			p.Kind = ValueScalar
		case s.Element != "":
			p.Kind = ValueEntityRef
		default:
			g.warnf("%s.%s: unclassifiable property shape, skipped", t.QualifiedName(), p.Name)
			continue
		}
		kept = append(kept, p)
	}
	t.Properties = kept
}

func (g *Graph) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	g.Warnings = append(g.Warnings, msg)
	g.Logger.Warn(msg)
}

// Lookup returns the node with the given qualified name.
func (g *Graph) Lookup(name string) (*Type, bool) {
	t, ok := g.nodes[name]
	return t, ok
}

// Entities returns the entity nodes in graph order.
func (g *Graph) Entities() []*Type { return g.kindNodes(KindEntity) }

// Views returns the view nodes in graph order.
func (g *Graph) Views() []*Type { return g.kindNodes(KindView) }

// Enums returns the enum nodes in graph order.
func (g *Graph) Enums() []*Type { return g.kindNodes(KindEnum) }

func (g *Graph) kindNodes(k Kind) []*Type {
	var out []*Type
	for _, t := range g.Nodes {
		if t.Kind == k {
			out = append(out, t)
		}
	}
	return out
}
