package dto

import (
	"fmt"
	"strings"

	"github.com/typemill/typemill/compiler/gen"
	"github.com/typemill/typemill/source"
)

type modelEmitter struct {
	target *Target
}

func (*modelEmitter) Kind() gen.ItemKind { return gen.ItemModel }

func (e *modelEmitter) Emit(t *gen.Type, r *gen.Resolver) (*gen.Artifact, error) {
	a := gen.NewArtifact(gen.UnitDto, gen.ItemModel, t, ".model", ".cs")
	scope := gen.Scope{Unit: gen.UnitDto, Kind: gen.ItemModel, Identity: t.QualifiedName()}

	a.Append(
		gen.DefaultHeader,
		"using System;",
		"using System.Collections.Generic;",
		"using System.Linq;",
	)
	a.MarkImports()
	for _, imp := range gen.ResolveImports(t, e.importFor(t)) {
		a.InsertImport(fmt.Sprintf("using %s;", imp.Path))
	}
	a.Append(
		gen.BeginImportRegion,
		gen.EndImportRegion,
		"",
	)
	a.Appendf("namespace %s", e.target.namespace(t))
	a.Append("{")
	if attrs := gen.Setting(r, scope, "Attributes", ""); attrs != "" {
		for _, attr := range strings.Split(attrs, ",") {
			a.Appendf("    [%s]", strings.TrimSpace(attr))
		}
	}
	a.Appendf("    public partial class %s", t.ModelName())
	a.Append("    {")
	data := enabledProperties(r, t, t.DataProperties())
	copied := enabledProperties(r, t, t.EqualityProperties())
	for _, p := range data {
		a.Appendf("        public %s %s { get; set; }", e.propertyType(t, p), p.Name)
	}
	a.Append("")
	e.emitCreate(a, t, copied)
	a.Append("")
	e.emitEquals(a, t, copied)
	a.Append("")
	e.emitHashCode(a, t, copied)
	if expr := gen.Setting(r, scope, "TrailingExpression", ""); expr != "" {
		a.Append("")
		a.Appendf("        %s", expr)
	}
	a.Append(
		gen.BeginCodeRegion,
		gen.EndCodeRegion,
		"    }",
		"}",
	)
	return a, nil
}

// importFor maps graph references of other namespaces to using directives.
func (e *modelEmitter) importFor(t *gen.Type) gen.ImportFunc {
	own := e.target.namespace(t)
	return func(ref *gen.Type) (gen.Import, bool) {
		ns := e.target.namespace(ref)
		if ns == own {
			return gen.Import{}, false
		}
		return gen.Import{Category: "using", Path: ns}, true
	}
}

func (e *modelEmitter) propertyType(t *gen.Type, p *gen.Property) string {
	switch p.Kind {
	case gen.ValueScalar:
		return scalarType(p.Primitive)
	case gen.ValueDateTime:
		return "DateTime"
	case gen.ValueGuid:
		return "Guid"
	case gen.ValueEnum:
		return gen.Unqualify(p.Element)
	case gen.ValueEntityRef:
		ref, ok := p.ElementType()
		if !ok {
			return gen.Unqualify(p.Element)
		}
		return ref.ModelName()
	case gen.ValueArrayRef, gen.ValueListRef:
		ref, ok := p.ElementType()
		if !ok {
			return fmt.Sprintf("List<%s>", gen.Unqualify(p.Element))
		}
		if ref.IsEnum() {
			return fmt.Sprintf("List<%s>", ref.Name)
		}
		return fmt.Sprintf("List<%s>", ref.ModelName())
	default:
		return "object"
	}
}

// enabledProperties drops properties whose per-property generation setting
// is switched off.
func enabledProperties(r *gen.Resolver, t *gen.Type, props []*gen.Property) []*gen.Property {
	out := make([]*gen.Property, 0, len(props))
	for _, p := range props {
		if gen.PropertyEnabled(r, gen.UnitDto, t, p) {
			out = append(out, p)
		}
	}
	return out
}

func scalarType(p source.Primitive) string {
	switch p {
	case source.PrimitiveBool:
		return "bool"
	case source.PrimitiveString:
		return "string"
	case source.PrimitiveInt:
		return "int"
	case source.PrimitiveLong:
		return "long"
	case source.PrimitiveDouble:
		return "double"
	case source.PrimitiveDecimal:
		return "decimal"
	default:
		return "object"
	}
}

// emitCreate renders the raw-to-model factory. Version and navigation
// properties are not copied.
func (e *modelEmitter) emitCreate(a *gen.Artifact, t *gen.Type, props []*gen.Property) {
	a.Appendf("        public static %s Create(%s raw)", t.ModelName(), t.Name)
	a.Append(
		"        {",
		"            if (raw == null)",
		"            {",
		"                return null;",
		"            }",
	)
	a.Appendf("            var model = new %s();", t.ModelName())
	for _, p := range props {
		a.Appendf("            model.%s = %s;", p.Name, e.createExpr(p))
	}
	a.Append(
		"            return model;",
		"        }",
	)
}

func (e *modelEmitter) createExpr(p *gen.Property) string {
	switch p.Kind {
	case gen.ValueEntityRef:
		if ref, ok := p.ElementType(); ok {
			return fmt.Sprintf("%s.Create(raw.%s)", ref.ModelName(), p.Name)
		}
	case gen.ValueArrayRef, gen.ValueListRef:
		// Enum elements copy as-is, there is no generated model to map to.
		if ref, ok := p.ElementType(); ok && !ref.IsEnum() {
			return fmt.Sprintf("raw.%s?.Select(%s.Create).ToList()", p.Name, ref.ModelName())
		}
		return fmt.Sprintf("raw.%s?.ToList()", p.Name)
	}
	return "raw." + p.Name
}

func (e *modelEmitter) emitEquals(a *gen.Artifact, t *gen.Type, props []*gen.Property) {
	a.Append(
		"        public override bool Equals(object obj)",
		"        {",
	)
	a.Appendf("            var other = obj as %s;", t.ModelName())
	a.Append(
		"            if (other == null)",
		"            {",
		"                return false;",
		"            }",
	)
	if len(props) == 0 {
		a.Append("            return true;")
	} else {
		for i, p := range props {
			line := fmt.Sprintf("Equals(%s, other.%s)", p.Name, p.Name)
			switch {
			case len(props) == 1:
				line = "            return " + line + ";"
			case i == 0:
				line = "            return " + line
			case i == len(props)-1:
				line = "                && " + line + ";"
			default:
				line = "                && " + line
			}
			a.Append(line)
		}
	}
	a.Append("        }")
}

func (e *modelEmitter) emitHashCode(a *gen.Artifact, t *gen.Type, props []*gen.Property) {
	a.Append(
		"        public override int GetHashCode()",
		"        {",
		"            unchecked",
		"            {",
		"                var hash = 17;",
	)
	for _, p := range props {
		if nullableType(p) {
			a.Appendf("                hash = hash * 31 + (%s == null ? 0 : %s.GetHashCode());", p.Name, p.Name)
		} else {
			a.Appendf("                hash = hash * 31 + %s.GetHashCode();", p.Name)
		}
	}
	a.Append(
		"                return hash;",
		"            }",
		"        }",
	)
}

// nullableType reports whether the property's C# type is a reference type.
func nullableType(p *gen.Property) bool {
	switch p.Kind {
	case gen.ValueEntityRef, gen.ValueArrayRef, gen.ValueListRef:
		return true
	case gen.ValueScalar:
		return p.Primitive == source.PrimitiveString
	default:
		return false
	}
}
