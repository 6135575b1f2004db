package web

import (
	"github.com/typemill/typemill/compiler/gen"
)

type enumEmitter struct{}

func (*enumEmitter) Kind() gen.ItemKind { return gen.ItemEnum }

func (e *enumEmitter) Emit(t *gen.Type, r *gen.Resolver) (*gen.Artifact, error) {
	a := gen.NewArtifact(gen.UnitWeb, gen.ItemEnum, t, ".enum", ".ts")
	a.Append(
		gen.DefaultHeader,
		"",
	)
	a.Appendf("export enum %s {", t.Name)
	for _, m := range t.Members {
		a.Appendf("  %s = %d,", m.Name, m.Value)
	}
	a.Append("}")
	return a, nil
}
