package gen

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// lineTarget is a minimal single-emitter target for generator tests.
type lineTarget struct {
	unit UnitKind
	kind ItemKind
	emit func(t *Type, r *Resolver) (*Artifact, error)
}

func (tg *lineTarget) Unit() UnitKind { return tg.unit }

func (tg *lineTarget) Emitters(t *Type) []Emitter {
	return []Emitter{EmitFunc{ItemKind: tg.kind, Func: tg.emit}}
}

func modelTarget() *lineTarget {
	return &lineTarget{
		unit: UnitWeb,
		kind: ItemInterfaceModel,
		emit: func(t *Type, r *Resolver) (*Artifact, error) {
			a := NewArtifact(UnitWeb, ItemInterfaceModel, t, ".model", ".ts")
			a.Append(
				DefaultHeader,
				BeginCodeRegion,
				EndCodeRegion,
			)
			return a, nil
		},
	}
}

func TestGeneratorRun(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()
	g := testGraph(t,
		WithTargets(modelTarget()),
		WithOutDir(UnitWeb, "out/web"),
		WithFS(fs),
	)
	report, err := NewGenerator(g).Run(context.Background())
	require.NoError(err)
	require.Equal(5, report.Artifacts)
	require.Zero(report.Skipped)
	require.Empty(report.Warnings)

	for _, path := range []string{
		"out/web/store/customer.model.ts",
		"out/web/store/customer-view.model.ts",
		"out/web/store/order.model.ts",
		"out/web/store/order-item.model.ts",
		"out/web/store/order-status.model.ts",
	} {
		ok, err := afero.Exists(fs, path)
		require.NoError(err)
		require.True(ok, path)
	}
}

func TestGeneratorIdempotent(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()
	run := func() map[string]string {
		g := testGraph(t,
			WithTargets(modelTarget()),
			WithOutDir(UnitWeb, "out/web"),
			WithFS(fs),
		)
		_, err := NewGenerator(g).Run(context.Background())
		require.NoError(err)
		files := map[string]string{}
		require.NoError(afero.Walk(fs, "out", func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return err
			}
			data, err := afero.ReadFile(fs, path)
			if err != nil {
				return err
			}
			files[path] = string(data)
			return nil
		}))
		return files
	}
	first := run()
	second := run()
	require.Equal(first, second)
}

func TestGeneratorSkipsDisabled(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()
	store := memStore{
		{"Web", "InterfaceModel", "Store.Customer", "Generate"}: "false",
	}
	g := testGraph(t,
		WithTargets(modelTarget()),
		WithSettings(store),
		WithOutDir(UnitWeb, "out/web"),
		WithFS(fs),
	)
	report, err := NewGenerator(g).Run(context.Background())
	require.NoError(err)
	require.Equal(4, report.Artifacts)
	require.Equal(1, report.Skipped)
	ok, _ := afero.Exists(fs, "out/web/store/customer.model.ts")
	require.False(ok)
}

func TestGeneratorPathConflict(t *testing.T) {
	require := require.New(t)
	conflict := &lineTarget{
		unit: UnitWeb,
		kind: ItemInterfaceModel,
		emit: func(t *Type, r *Resolver) (*Artifact, error) {
			a := NewArtifact(UnitWeb, ItemInterfaceModel, t, ".model", ".ts")
			a.SubPath = "same"
			a.Append("collides")
			return a, nil
		},
	}
	g := testGraph(t,
		WithTargets(conflict),
		WithFS(afero.NewMemMapFs()),
	)
	_, err := NewGenerator(g).Run(context.Background())
	require.Error(err)
	require.True(IsPathConflictError(err))
	require.ErrorIs(err, ErrPathConflict)
}

func TestGeneratorNilArtifactSkips(t *testing.T) {
	require := require.New(t)
	skipAll := &lineTarget{
		unit: UnitWeb,
		kind: ItemInterfaceModel,
		emit: func(t *Type, r *Resolver) (*Artifact, error) {
			return nil, nil
		},
	}
	g := testGraph(t, WithTargets(skipAll), WithFS(afero.NewMemMapFs()))
	report, err := NewGenerator(g).Run(context.Background())
	require.NoError(err)
	require.Zero(report.Artifacts)
	require.Equal(5, report.Skipped)
}

func TestGeneratorHooks(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()
	stamp := func(next Emitter) Emitter {
		return EmitFunc{
			ItemKind: next.Kind(),
			Func: func(t *Type, r *Resolver) (*Artifact, error) {
				a, err := next.Emit(t, r)
				if a != nil {
					a.Append("// stamped")
				}
				return a, err
			},
		}
	}
	g := testGraph(t,
		WithTargets(modelTarget()),
		WithHooks(stamp),
		WithOutDir(UnitWeb, "out/web"),
		WithFS(fs),
	)
	_, err := NewGenerator(g).Run(context.Background())
	require.NoError(err)
	data, err := afero.ReadFile(fs, "out/web/store/order.model.ts")
	require.NoError(err)
	require.Contains(string(data), "// stamped")
}

func TestGeneratorCustomHeader(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()
	g := testGraph(t,
		WithTargets(modelTarget()),
		WithHeader("// Code generated for the storefront. DO NOT EDIT."),
		WithOutDir(UnitWeb, "out/web"),
		WithFS(fs),
	)
	_, err := NewGenerator(g).Run(context.Background())
	require.NoError(err)
	data, err := afero.ReadFile(fs, "out/web/store/order.model.ts")
	require.NoError(err)
	require.True(strings.HasPrefix(string(data), "// Code generated for the storefront."))
	require.NotContains(string(data), DefaultHeader)
}

func TestGenerate(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()
	report, err := Generate(context.Background(),
		WithSource(testDocument()),
		WithTargets(modelTarget()),
		WithOutDir(UnitWeb, "out/web"),
		WithFS(fs),
	)
	require.NoError(err)
	require.Equal(5, report.Artifacts)
}
