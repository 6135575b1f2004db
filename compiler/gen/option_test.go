package gen

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOptions(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()
	log := zap.NewNop()
	c, err := NewConfig(
		WithSource(testDocument()),
		WithSettings(memStore{}),
		WithTargets(modelTarget()),
		WithOutDir(UnitWeb, "out/web"),
		WithOutDir(UnitDto, "out/dto"),
		WithHeader("// custom header"),
		WithVersionProperties("RowVersion"),
		WithLogger(log),
		WithFS(fs),
		WithWorkers(2),
	)
	require.NoError(err)
	require.NotNil(c.Source)
	require.Len(c.Targets, 1)
	require.Equal("out/web", c.OutDir(UnitWeb))
	require.Equal("out/dto", c.OutDir(UnitDto))
	require.Equal("// custom header", c.Header)
	require.Equal(2, c.Workers)
	require.True(c.versionProperty("RowVersion"))
	require.False(c.versionProperty("Timestamp"))
}

func TestOptionErrors(t *testing.T) {
	require := require.New(t)
	for _, opt := range []Option{
		WithSource(nil),
		WithSettings(nil),
		WithTargets(nil),
		WithOutDir(UnitWeb, ""),
		WithLogger(nil),
		WithFS(nil),
		WithWorkers(0),
	} {
		_, err := NewConfig(opt)
		require.Error(err)
		require.True(IsConfigError(err))
	}
}

func TestApplyAll(t *testing.T) {
	require := require.New(t)
	c := &Config{}
	err := c.ApplyAll(WithWorkers(-1), WithOutDir(UnitDto, ""))
	require.Error(err)
	// Both failures are reported.
	require.Contains(err.Error(), "Workers")
	require.Contains(err.Error(), "OutDirs")
}

func TestConfigDefaults(t *testing.T) {
	require := require.New(t)
	c := &Config{Source: testDocument()}
	c.defaults()
	require.NotNil(c.Settings)
	require.NotNil(c.Logger)
	require.NotNil(c.FS)
	require.Equal(DefaultHeader, c.Header)
	require.Positive(c.Workers)
	require.Equal(".", c.OutDir(UnitWeb))
	for _, name := range []string{"RowVersion", "Timestamp", "SysStartTime", "SysEndTime"} {
		require.True(c.versionProperty(name), name)
	}
}
