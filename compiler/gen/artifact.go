package gen

import (
	"fmt"
	"strings"
)

// Artifact is one generated file under construction. Emitters append lines
// to it; the generator merges custom regions from the prior file and writes
// the result under the unit's output directory.
type Artifact struct {
	// Unit is the generation unit the artifact belongs to.
	Unit UnitKind
	// Kind is the item kind the artifact was emitted for.
	Kind ItemKind
	// FullName is the qualified name of the type the artifact describes.
	FullName string
	// SubPath is the output-relative path without extension.
	SubPath string
	// Ext is the file extension, including the dot.
	Ext string

	lines    []string
	importAt int
}

// NewArtifact creates an empty artifact for a type.
func NewArtifact(unit UnitKind, kind ItemKind, t *Type, suffix, ext string) *Artifact {
	return &Artifact{
		Unit:     unit,
		Kind:     kind,
		FullName: t.QualifiedName(),
		SubPath:  t.SubPath() + suffix,
		Ext:      ext,
	}
}

// Path returns the output-relative file path.
func (a *Artifact) Path() string { return a.SubPath + a.Ext }

// CustomPath returns the output-relative path of the artifact's sidecar
// file, where custom regions survive when the primary file is regenerated
// from scratch.
func (a *Artifact) CustomPath() string { return a.SubPath + ".custom" + a.Ext }

// Append adds lines to the artifact.
func (a *Artifact) Append(lines ...string) {
	a.lines = append(a.lines, lines...)
}

// Appendf adds one formatted line.
func (a *Artifact) Appendf(format string, args ...any) {
	a.lines = append(a.lines, fmt.Sprintf(format, args...))
}

// MarkImports records the current position as the front of the import
// block. Subsequent InsertImport calls insert there, newest first.
func (a *Artifact) MarkImports() { a.importAt = len(a.lines) }

// InsertImport inserts a line at the front of the import block, skipping
// exact duplicates of lines already present anywhere in the artifact.
func (a *Artifact) InsertImport(line string) {
	for _, l := range a.lines {
		if l == line {
			return
		}
	}
	a.lines = append(a.lines, "")
	copy(a.lines[a.importAt+1:], a.lines[a.importAt:])
	a.lines[a.importAt] = line
}

// Lines returns the artifact content as lines.
func (a *Artifact) Lines() []string { return a.lines }

// Bytes renders the artifact with a trailing newline.
func (a *Artifact) Bytes() []byte {
	return []byte(strings.Join(a.lines, "\n") + "\n")
}
