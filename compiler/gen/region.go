package gen

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Region markers delimit hand-written code inside generated files. The
// marker lines must stand alone at column zero to be recognized, and they
// are preserved byte for byte so regeneration over an unchanged graph is
// idempotent.
const (
	BeginImportRegion = "// <custom-imports>"
	EndImportRegion   = "// </custom-imports>"
	BeginCodeRegion   = "// <custom-code>"
	EndCodeRegion     = "// </custom-code>"
)

// RegionKind identifies the flavor of a custom region.
type RegionKind int

const (
	// ImportRegion holds hand-written import statements.
	ImportRegion RegionKind = iota
	// CodeRegion holds hand-written members.
	CodeRegion
)

// Region is one extracted custom region of a prior artifact.
type Region struct {
	Kind  RegionKind
	Lines []string
}

// MergeState reports what the merge pass did for one artifact.
type MergeState int

const (
	// NoPriorFile means neither the artifact nor its sidecar existed, so
	// the skeleton was written untouched.
	NoPriorFile MergeState = iota
	// PriorFileFound means a prior file existed but carried no custom
	// regions.
	PriorFileFound
	// RegionsExtracted means custom regions were read out of a prior file
	// but not yet spliced back.
	RegionsExtracted
	// Merged means custom regions from a prior file were spliced into the
	// fresh skeleton.
	Merged
)

// regionMerger restores custom regions from prior artifacts. When the
// primary file is missing it falls back to the sidecar, which lets users
// delete generated files wholesale without losing hand-written code.
type regionMerger struct {
	fs  afero.Fs
	log *zap.Logger
}

// merge splices the custom regions of the prior file at fullPath into the
// freshly emitted artifact. Read failures other than absence are logged and
// treated as no prior file.
func (m *regionMerger) merge(a *Artifact, fullPath, customPath string) MergeState {
	prior, ok := m.read(fullPath)
	if !ok {
		prior, ok = m.read(customPath)
	}
	if !ok {
		return NoPriorFile
	}
	regions := extractRegions(prior)
	if len(regions) == 0 {
		return PriorFileFound
	}
	spliceRegions(a, regions)
	return Merged
}

func (m *regionMerger) read(path string) ([]string, bool) {
	data, err := afero.ReadFile(m.fs, path)
	if err != nil {
		if !os.IsNotExist(err) {
			m.log.Warn("prior artifact unreadable, regenerating from scratch",
				zap.String("path", path), zap.Error(err))
		}
		return nil, false
	}
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		m.log.Warn("prior artifact unreadable, regenerating from scratch",
			zap.String("path", path), zap.Error(err))
		return nil, false
	}
	return lines, true
}

// extractRegions scans prior lines for marker pairs and returns the content
// between them, with leading and trailing blank lines trimmed. An unclosed
// region is dropped.
func extractRegions(lines []string) []Region {
	var regions []Region
	var cur []string
	var kind RegionKind
	open := false
	for _, line := range lines {
		switch line {
		case BeginImportRegion:
			open, kind, cur = true, ImportRegion, nil
		case BeginCodeRegion:
			open, kind, cur = true, CodeRegion, nil
		case EndImportRegion, EndCodeRegion:
			if open {
				if content := trimBlankEdges(cur); len(content) > 0 {
					regions = append(regions, Region{Kind: kind, Lines: content})
				}
				open = false
			}
		default:
			if open {
				cur = append(cur, line)
			}
		}
	}
	return regions
}

// spliceRegions inserts preserved content between the matching marker pairs
// of the fresh skeleton. Regions pair up positionally per kind, so a file
// with several code regions keeps each one in place. Import regions receive
// only lines that the fresh skeleton does not already generate, so an
// import promoted into the generated set is not duplicated.
func spliceRegions(a *Artifact, regions []Region) {
	byKind := map[RegionKind][]Region{}
	for _, r := range regions {
		byKind[r.Kind] = append(byKind[r.Kind], r)
	}
	next := map[RegionKind]int{}
	out := make([]string, 0, len(a.lines))
	for _, line := range a.lines {
		out = append(out, line)
		var kind RegionKind
		switch line {
		case BeginImportRegion:
			kind = ImportRegion
		case BeginCodeRegion:
			kind = CodeRegion
		default:
			continue
		}
		i := next[kind]
		next[kind]++
		if i >= len(byKind[kind]) {
			continue
		}
		for _, l := range byKind[kind][i].Lines {
			if kind == ImportRegion && containsLine(a.lines, l) {
				continue
			}
			out = append(out, l)
		}
	}
	a.lines = out
}

func containsLine(lines []string, want string) bool {
	target := strings.TrimSpace(want)
	for _, l := range lines {
		if strings.TrimSpace(l) == target {
			return true
		}
	}
	return false
}

func trimBlankEdges(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}
