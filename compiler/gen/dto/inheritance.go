package dto

import (
	"github.com/typemill/typemill/compiler/gen"
)

// inheritanceEmitter binds the partial model class to its mapped base type
// in a separate file, so the model file itself never changes when the base
// mapping does.
type inheritanceEmitter struct {
	target *Target
}

func (*inheritanceEmitter) Kind() gen.ItemKind { return gen.ItemModelInheritance }

func (e *inheritanceEmitter) Emit(t *gen.Type, r *gen.Resolver) (*gen.Artifact, error) {
	a := gen.NewArtifact(gen.UnitDto, gen.ItemModelInheritance, t, ".inheritance", ".cs")
	a.Append(
		gen.DefaultHeader,
		"",
	)
	a.Appendf("namespace %s", e.target.namespace(t))
	a.Append("{")
	a.Appendf("    public partial class %s : %s", t.ModelName(), e.target.mappedBase(t))
	a.Append(
		"    {",
		"    }",
		"}",
	)
	return a, nil
}
