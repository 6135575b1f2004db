package web

import (
	"fmt"

	"github.com/typemill/typemill/compiler/gen"
	"github.com/typemill/typemill/source"
)

type interfaceEmitter struct{}

func (*interfaceEmitter) Kind() gen.ItemKind { return gen.ItemInterfaceModel }

func (e *interfaceEmitter) Emit(t *gen.Type, r *gen.Resolver) (*gen.Artifact, error) {
	a := gen.NewArtifact(gen.UnitWeb, gen.ItemInterfaceModel, t, ".model", ".ts")
	a.Append(gen.DefaultHeader)
	a.MarkImports()
	from := t.SubPath() + ".model"
	for _, imp := range gen.ResolveImports(t, func(ref *gen.Type) (gen.Import, bool) {
		name := ref.Name
		if !ref.IsEnum() {
			name = ref.ModelName()
		}
		return gen.Import{Category: "module", Name: name, Path: gen.RelImport(from, refSubPath(ref))}, true
	}) {
		a.InsertImport(fmt.Sprintf("import { %s } from '%s';", imp.Name, imp.Path))
	}
	a.Append(
		gen.BeginImportRegion,
		gen.EndImportRegion,
		"",
	)
	a.Appendf("export interface %s {", t.ModelName())
	for _, p := range t.DataProperties() {
		if !gen.PropertyEnabled(r, gen.UnitWeb, t, p) {
			continue
		}
		lit, ok := e.typeLiteral(t, p, r)
		if !ok {
			continue
		}
		a.Appendf("  %s: %s;", gen.Camel(p.Name), lit)
	}
	a.Append(
		gen.BeginCodeRegion,
		gen.EndCodeRegion,
		"}",
	)
	return a, nil
}

// typeLiteral maps a property's value kind to its TypeScript type. Unknown
// shapes are skipped with one diagnostic per property.
func (e *interfaceEmitter) typeLiteral(t *gen.Type, p *gen.Property, r *gen.Resolver) (string, bool) {
	switch p.Kind {
	case gen.ValueDateTime:
		return "Date", true
	case gen.ValueGuid:
		return "string", true
	case gen.ValueScalar:
		switch p.Primitive {
		case source.PrimitiveBool:
			return "boolean", true
		case source.PrimitiveString:
			return "string", true
		case source.PrimitiveInt, source.PrimitiveLong, source.PrimitiveDouble, source.PrimitiveDecimal:
			return "number", true
		}
	case gen.ValueEnum:
		return gen.Unqualify(p.Element), true
	case gen.ValueEntityRef:
		ref, ok := p.ElementType()
		if !ok {
			return gen.Unqualify(p.Element), true
		}
		return ref.ModelName(), true
	case gen.ValueArrayRef, gen.ValueListRef:
		ref, ok := p.ElementType()
		if !ok {
			// Opaque element types stay bare rather than model-suffixed.
			return gen.Unqualify(p.Element) + "[]", true
		}
		if ref.IsEnum() {
			return ref.Name + "[]", true
		}
		return ref.ModelName() + "[]", true
	}
	r.Warn(fmt.Sprintf("%s.%s: no front-end type mapping, property skipped", t.QualifiedName(), p.Name))
	return "", false
}
