package web

import (
	"fmt"

	"github.com/typemill/typemill/compiler/gen"
)

// serviceEmitter renders the injectable REST service wrapper. Everything
// but the resource segment and the base service flavor is boilerplate; real
// behavior belongs in the generic base services of the core module.
type serviceEmitter struct {
	target *Target
}

func (*serviceEmitter) Kind() gen.ItemKind { return gen.ItemService }

func (e *serviceEmitter) Emit(t *gen.Type, r *gen.Resolver) (*gen.Artifact, error) {
	a := gen.NewArtifact(gen.UnitWeb, gen.ItemService, t, ".service", ".ts")
	base := "EntityService"
	if t.IsView() {
		base = "ViewService"
	}
	from := t.SubPath() + ".service"
	a.Append(gen.DefaultHeader)
	a.Appendf("import { Injectable } from '@angular/core';")
	a.Appendf("import { %s } from '%s';", base, e.target.CoreModule)
	a.Appendf("import { %s } from '%s';", t.ModelName(), gen.RelImport(from, t.SubPath()+".model"))
	a.Append(
		gen.BeginImportRegion,
		gen.EndImportRegion,
		"",
		"@Injectable({ providedIn: 'root' })",
	)
	a.Appendf("export class %s extends %s<%s> {", t.ServiceName(), base, t.ModelName())
	a.Append("  constructor() {")
	a.Append(fmt.Sprintf("    super('%s');", t.Resource()))
	a.Append(
		"  }",
		gen.BeginCodeRegion,
		gen.EndCodeRegion,
		"}",
	)
	return a, nil
}
