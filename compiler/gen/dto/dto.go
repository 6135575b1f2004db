// Package dto generates the transmission-model unit: one C# model class,
// one inheritance binding and one enum per graph type.
package dto

import (
	"github.com/typemill/typemill/compiler/gen"
)

// Target produces the Dto generation unit.
type Target struct {
	// BaseTypes maps raw ancestor names to the base type the model class
	// derives from. The ancestor chain is walked until a mapped name is
	// found; unmapped chains derive from "object".
	BaseTypes map[string]string
	// Namespace suffix appended to the namespace of every model,
	// e.g. ".Models". Types without a source namespace use "Models" as
	// their namespace before the suffix applies.
	NamespaceSuffix string
}

// New returns a Dto target with the default base-type table.
func New() *Target {
	return &Target{
		BaseTypes: map[string]string{
			"EntityBase": "ModelBase",
			"ViewBase":   "ModelBase",
		},
	}
}

// Unit implements gen.Target.
func (*Target) Unit() gen.UnitKind { return gen.UnitDto }

// Emitters implements gen.Target.
func (tg *Target) Emitters(t *gen.Type) []gen.Emitter {
	if t.IsEnum() {
		return []gen.Emitter{&enumEmitter{target: tg}}
	}
	return []gen.Emitter{
		&modelEmitter{target: tg},
		&inheritanceEmitter{target: tg},
	}
}

func (tg *Target) namespace(t *gen.Type) string {
	ns := t.Namespace
	if ns == "" {
		ns = "Models"
	}
	return ns + tg.NamespaceSuffix
}

// mappedBase walks the ancestor name chain until it finds an entry of the
// base-type table. Chains that leave the graph or match nothing derive from
// object.
func (tg *Target) mappedBase(t *gen.Type) string {
	name := t.Base
	cur := t
	for name != "" {
		if mapped, ok := tg.BaseTypes[name]; ok {
			return mapped
		}
		if mapped, ok := tg.BaseTypes[gen.Unqualify(name)]; ok {
			return mapped
		}
		base, ok := cur.BaseType()
		if !ok {
			break
		}
		cur, name = base, base.Base
	}
	return "object"
}
