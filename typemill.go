// Package typemill defines the contracts between the generation engine and
// the collaborators it consumes but does not implement: the type-graph
// provider that feeds raw type metadata into a run, and the settings store
// that customizes what and how each type emits.
//
// The engine itself lives in compiler/gen; the built-in emission targets in
// compiler/gen/dto and compiler/gen/web.
package typemill

import "github.com/typemill/typemill/source"

// TypeSource provides the raw type metadata for one generation run.
// Implementations must return stable slices: the engine reads them once per
// run and never mutates them.
//
// A ready-made implementation backed by Go reflection is available in
// source/reflectsource; source.Decode reads the same metadata from JSON.
type TypeSource interface {
	// Entities returns the entity types of interest for the run.
	Entities() []*source.Type

	// Views returns the view types of interest for the run.
	Views() []*source.Type

	// Enums returns the enumeration types of interest for the run.
	Enums() []*source.Type
}

// SettingsSource is the read contract of the generation settings store.
// Lookups are exact: no scope fallback happens here. The engine's resolver
// layers the identity -> item-kind wildcard -> default order on top.
//
// Implementations must be safe for concurrent use; the engine reads settings
// from parallel generation workers.
type SettingsSource interface {
	// LookupGenerationSetting returns the raw value stored for the exact
	// (unit, itemKind, itemIdentity, key) scope and whether it exists.
	LookupGenerationSetting(unit, itemKind, itemIdentity, key string) (value string, ok bool)
}

// NoSettings is a SettingsSource with no entries. Every lookup misses, so
// the resolver always falls through to compiled-in defaults.
type NoSettings struct{}

// LookupGenerationSetting implements SettingsSource.
func (NoSettings) LookupGenerationSetting(_, _, _, _ string) (string, bool) {
	return "", false
}
