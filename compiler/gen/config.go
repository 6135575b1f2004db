package gen

import (
	"runtime"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/typemill/typemill"
)

// UnitKind identifies one emission target unit.
type UnitKind string

// Built-in unit kinds.
const (
	// UnitDto is the transmission-model representation.
	UnitDto UnitKind = "Dto"
	// UnitWeb is the front-end interface/service representation.
	UnitWeb UnitKind = "Web"
)

// ItemKind identifies the kind of a generated item within a unit.
type ItemKind string

// Built-in item kinds.
const (
	ItemModel            ItemKind = "Model"
	ItemModelProperty    ItemKind = "ModelProperty"
	ItemModelInheritance ItemKind = "ModelInheritance"
	ItemEnum             ItemKind = "Enum"
	ItemInterfaceModel   ItemKind = "InterfaceModel"
	ItemService          ItemKind = "Service"
)

// DefaultHeader is the comment placed at the top of generated artifacts.
const DefaultHeader = "// Code generated by typemill. DO NOT EDIT."

// DefaultVersionProperties is the exclusion list of row-version and
// technical marker properties. They keep their place in the model shape but
// are excluded from equality and copy emission.
var DefaultVersionProperties = []string{
	"RowVersion",
	"Timestamp",
	"SysStartTime",
	"SysEndTime",
}

// Config holds the configuration of one generation run. It is constructed
// once via NewConfig and threaded through the run; nothing in the engine
// reads process-wide state.
type Config struct {
	// Source provides the raw type metadata for the run.
	Source typemill.TypeSource

	// Settings is the raw settings store consulted by the resolver.
	// Defaults to typemill.NoSettings.
	Settings typemill.SettingsSource

	// Targets are the emission targets of the run.
	Targets []Target

	// OutDirs maps a unit kind to the directory its artifacts are written
	// under. A unit without an entry writes relative to the working
	// directory.
	OutDirs map[UnitKind]string

	// Header is emitted as the first body line of every artifact.
	// Defaults to DefaultHeader.
	Header string

	// Hooks wrap every emitter, first hook outermost.
	Hooks []Hook

	// VersionProperties overrides DefaultVersionProperties.
	VersionProperties []string

	// Logger receives non-fatal generation diagnostics. Defaults to a nop
	// logger. Zap serializes writes, so parallel workers share it freely.
	Logger *zap.Logger

	// FS is the filesystem prior artifacts are read from and generated
	// artifacts written to. Defaults to the OS filesystem.
	FS afero.Fs

	// Workers bounds parallel artifact generation.
	// Defaults to runtime.GOMAXPROCS(0).
	Workers int
}

// defaults fills zero-valued optional fields in place.
func (c *Config) defaults() {
	if c.Settings == nil {
		c.Settings = typemill.NoSettings{}
	}
	if c.Header == "" {
		c.Header = DefaultHeader
	}
	if c.VersionProperties == nil {
		c.VersionProperties = DefaultVersionProperties
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.FS == nil {
		c.FS = afero.NewOsFs()
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
}

// OutDir returns the output directory configured for the unit.
func (c *Config) OutDir(unit UnitKind) string {
	if dir, ok := c.OutDirs[unit]; ok {
		return dir
	}
	return "."
}

// versionProperty reports if the property name is on the exclusion list.
func (c *Config) versionProperty(name string) bool {
	for _, v := range c.VersionProperties {
		if v == name {
			return true
		}
	}
	return false
}
