// Package web generates the front-end unit: a TypeScript interface and an
// injectable REST service per entity or view, and a TypeScript enum per
// enum type.
package web

import (
	"github.com/typemill/typemill/compiler/gen"
)

// Target produces the Web generation unit.
type Target struct {
	// CoreModule is the module path the base service classes are imported
	// from.
	CoreModule string
}

// New returns a Web target importing base services from "@app/core".
func New() *Target {
	return &Target{CoreModule: "@app/core"}
}

// Unit implements gen.Target.
func (*Target) Unit() gen.UnitKind { return gen.UnitWeb }

// Emitters implements gen.Target.
func (tg *Target) Emitters(t *gen.Type) []gen.Emitter {
	if t.IsEnum() {
		return []gen.Emitter{&enumEmitter{}}
	}
	return []gen.Emitter{
		&interfaceEmitter{},
		&serviceEmitter{target: tg},
	}
}

// refSubPath returns the extension-less sub-path of a referenced type's
// artifact, model or enum flavored.
func refSubPath(ref *gen.Type) string {
	if ref.IsEnum() {
		return ref.SubPath() + ".enum"
	}
	return ref.SubPath() + ".model"
}
