package dto

import (
	"github.com/typemill/typemill/compiler/gen"
)

type enumEmitter struct {
	target *Target
}

func (*enumEmitter) Kind() gen.ItemKind { return gen.ItemEnum }

func (e *enumEmitter) Emit(t *gen.Type, r *gen.Resolver) (*gen.Artifact, error) {
	a := gen.NewArtifact(gen.UnitDto, gen.ItemEnum, t, ".enum", ".cs")
	a.Append(
		gen.DefaultHeader,
		"",
	)
	a.Appendf("namespace %s", e.target.namespace(t))
	a.Append("{")
	a.Appendf("    public enum %s", t.Name)
	a.Append("    {")
	for _, m := range t.Members {
		a.Appendf("        %s = %d,", m.Name, m.Value)
	}
	a.Append(
		"    }",
		"}",
	)
	return a, nil
}
