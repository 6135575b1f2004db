package gen

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Generator runs the configured targets over a graph and writes the
// resulting artifacts, preserving custom regions of prior runs.
type Generator struct {
	graph *Graph
	res   *Resolver
	merge *regionMerger
}

// Report summarizes one generation run.
type Report struct {
	// Artifacts is the number of files written.
	Artifacts int
	// Skipped is the number of type and emitter pairs disabled by settings
	// or skipped by their emitter.
	Skipped int
	// Bytes is the total size written.
	Bytes int64
	// Warnings aggregates extraction and settings diagnostics.
	Warnings []string
}

// NewGenerator prepares a generator for a graph.
func NewGenerator(g *Graph) *Generator {
	return &Generator{
		graph: g,
		res:   NewResolver(g.Settings, g.Logger),
		merge: &regionMerger{fs: g.FS, log: g.Logger},
	}
}

type task struct {
	typ     *Type
	unit    UnitKind
	emitter Emitter
	art     *Artifact
	state   MergeState
}

// Run generates all enabled artifacts. Emission and merge run in parallel
// across types; path collisions across the whole plan are the only fatal
// condition after a successful graph build.
func (gn *Generator) Run(ctx context.Context) (*Report, error) {
	tasks := gn.plan()
	if err := gn.emit(ctx, tasks); err != nil {
		return nil, err
	}
	emitted := make([]*task, 0, len(tasks))
	for _, t := range tasks {
		if t.art != nil {
			emitted = append(emitted, t)
		}
	}
	if err := gn.checkPaths(emitted); err != nil {
		return nil, err
	}
	report := &Report{Skipped: len(tasks) - len(emitted)}
	if err := gn.write(ctx, emitted, report); err != nil {
		return nil, err
	}
	report.Warnings = append(report.Warnings, gn.graph.Warnings...)
	report.Warnings = append(report.Warnings, gn.res.Warnings()...)
	gn.graph.Logger.Info("generation finished",
		zap.Int("artifacts", report.Artifacts),
		zap.Int("skipped", report.Skipped),
		zap.Int64("bytes", report.Bytes),
		zap.Int("warnings", len(report.Warnings)),
	)
	return report, nil
}

// plan pairs every graph node with the emitters its targets apply, dropping
// pairs whose Generate setting resolves false.
func (gn *Generator) plan() []*task {
	var tasks []*task
	for _, target := range gn.graph.Targets {
		unit := target.Unit()
		for _, t := range gn.graph.Nodes {
			for _, e := range target.Emitters(t) {
				scope := Scope{Unit: unit, Kind: e.Kind(), Identity: t.QualifiedName()}
				if !Setting(gn.res, scope, "Generate", true) {
					gn.graph.Logger.Debug("generation disabled by setting",
						zap.String("type", t.QualifiedName()),
						zap.String("unit", string(unit)),
						zap.String("kind", string(e.Kind())),
					)
					continue
				}
				tasks = append(tasks, &task{
					typ:     t,
					unit:    unit,
					emitter: wrapEmitter(e, gn.graph.Hooks),
				})
			}
		}
	}
	return tasks
}

func (gn *Generator) emit(ctx context.Context, tasks []*task) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(gn.graph.Workers)
	for _, t := range tasks {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			art, err := t.emitter.Emit(t.typ, gn.res)
			if err != nil {
				return NewEmitError(t.unit, t.emitter.Kind(), t.typ.QualifiedName(), "emit failed", err)
			}
			t.art = art
			return nil
		})
	}
	return eg.Wait()
}

// checkPaths rejects plans where two artifacts render to the same file.
func (gn *Generator) checkPaths(tasks []*task) error {
	owner := make(map[string]*task, len(tasks))
	for _, t := range tasks {
		path := filepath.Join(gn.graph.OutDir(t.unit), t.art.Path())
		if prev, ok := owner[path]; ok {
			return NewPathConflictError(path,
				fmt.Sprintf("%s/%s for %s", prev.unit, prev.emitter.Kind(), prev.typ.QualifiedName()),
				fmt.Sprintf("%s/%s for %s", t.unit, t.emitter.Kind(), t.typ.QualifiedName()),
			)
		}
		owner[path] = t
	}
	return nil
}

func (gn *Generator) write(ctx context.Context, tasks []*task, report *Report) error {
	var mu sync.Mutex
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(gn.graph.Workers)
	for _, t := range tasks {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dir := gn.graph.OutDir(t.unit)
			path := filepath.Join(dir, t.art.Path())
			custom := filepath.Join(dir, t.art.CustomPath())
			if h := gn.graph.Header; h != DefaultHeader && len(t.art.lines) > 0 && t.art.lines[0] == DefaultHeader {
				t.art.lines[0] = h
			}
			t.state = gn.merge.merge(t.art, path, custom)
			if err := gn.graph.FS.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return NewEmitError(t.unit, t.emitter.Kind(), t.typ.QualifiedName(), "mkdir failed", err)
			}
			data := t.art.Bytes()
			if err := writeIfChanged(gn.graph.FS, path, data); err != nil {
				return NewEmitError(t.unit, t.emitter.Kind(), t.typ.QualifiedName(), "write failed", err)
			}
			mu.Lock()
			report.Artifacts++
			report.Bytes += int64(len(data))
			mu.Unlock()
			return nil
		})
	}
	return eg.Wait()
}

// Generate builds the graph from options and runs it in one call.
func Generate(ctx context.Context, opts ...Option) (*Report, error) {
	c, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	g, err := NewGraph(c)
	if err != nil {
		return nil, err
	}
	return NewGenerator(g).Run(ctx)
}
