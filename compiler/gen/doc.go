// Package gen is the typemill generation engine.
//
// The engine turns raw type metadata into generated source artifacts in one
// or more target representations, while preserving hand-written custom
// regions across regenerations.
//
// # Architecture
//
// The generation pipeline follows this flow:
//
//	TypeSource (raw metadata provider)
//	        |
//	   Graph (immutable descriptor arena, one per run)
//	        |
//	   Target -> Emitter (per unit-kind, per artifact-kind strategies)
//	        |
//	   Artifact (ordered text lines)
//	        |
//	   region merge (re-splice hand-written blocks)
//	        |
//	   write (afero filesystem)
//
// # Key Types
//
//   - Graph: arena of Type descriptors addressed by qualified name. Cross
//     references between descriptors are resolved by lookup at emission
//     time, never by object links, so cyclic references cost nothing.
//   - Type, Property: classified descriptors extracted from the provider.
//   - Resolver: hierarchical settings resolution (identity, then item-kind
//     wildcard, then compiled-in default) with typed, non-fatal coercion.
//   - Target, Emitter: strategy interfaces implemented by the built-in
//     targets in gen/dto and gen/web, and by user-defined targets.
//   - Artifact: one output file before formatting and write.
//   - Generator: plans, gates, emits, merges and writes artifacts for a run.
//
// # Error Handling
//
// Generation degrades gracefully: unrecognized property shapes, settings
// coercion failures and unresolvable type references are logged and worked
// around per artifact. The single fatal condition is two artifacts resolving
// to the same output path, which would silently destroy custom regions.
//
// # Configuration
//
// Configuration is run-scoped and built once via functional options:
//
//	cfg, err := gen.NewConfig(
//	    gen.WithSource(src),
//	    gen.WithTargets(dto.New(), web.New()),
//	    gen.WithOutDir(gen.UnitDto, "server/models"),
//	    gen.WithOutDir(gen.UnitWeb, "client/src/app"),
//	)
//	graph, err := gen.NewGraph(cfg)
//	report, err := gen.NewGenerator(graph).Run(ctx)
//
// # Custom Regions
//
// Every generated artifact carries two labelled regions, one for imports and
// one for code. Text a user writes between the markers survives
// regeneration: the engine extracts the regions from the previous artifact
// (or from its ".custom" sidecar once the file has been externalized) and
// re-splices them into the fresh skeleton. Regenerating an unmodified
// artifact is byte-stable.
package gen
