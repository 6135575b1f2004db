package gen

import (
	"crypto/sha256"
	"encoding/hex"
	"os"

	"github.com/spf13/afero"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/typemill/typemill/source"
)

// Snapshot is a deterministic fingerprint of a graph. Tooling that watches
// metadata for changes compares snapshots to skip regeneration when the
// graph is unchanged.
type Snapshot struct {
	Digest string `msgpack:"digest"`
	Nodes  int    `msgpack:"nodes"`
}

type snapshotNode struct {
	Name       string         `msgpack:"name"`
	Kind       string         `msgpack:"kind"`
	Base       string         `msgpack:"base,omitempty"`
	Properties []snapshotProp `msgpack:"properties,omitempty"`
	Members    []snapshotMem  `msgpack:"members,omitempty"`
}

type snapshotProp struct {
	Name       string           `msgpack:"name"`
	Kind       int              `msgpack:"kind"`
	Primitive  source.Primitive `msgpack:"primitive,omitempty"`
	Element    string           `msgpack:"element,omitempty"`
	Navigation bool             `msgpack:"navigation,omitempty"`
	Version    bool             `msgpack:"version,omitempty"`
}

type snapshotMem struct {
	Name  string `msgpack:"name"`
	Value int    `msgpack:"value"`
}

// TakeSnapshot fingerprints a graph. Nodes are already in sorted order, so
// the encoding and its digest are stable across runs. Extra inputs that
// affect generation, such as raw settings content, can be folded into the
// digest.
func TakeSnapshot(g *Graph, extra ...[]byte) (*Snapshot, error) {
	nodes := make([]snapshotNode, 0, len(g.Nodes))
	for _, t := range g.Nodes {
		n := snapshotNode{
			Name: t.QualifiedName(),
			Kind: t.Kind.String(),
			Base: t.Base,
		}
		for _, p := range t.Properties {
			n.Properties = append(n.Properties, snapshotProp{
				Name:       p.Name,
				Kind:       int(p.Kind),
				Primitive:  p.Primitive,
				Element:    p.Element,
				Navigation: p.Navigation,
				Version:    p.Version,
			})
		}
		for _, m := range t.Members {
			n.Members = append(n.Members, snapshotMem{Name: m.Name, Value: m.Value})
		}
		nodes = append(nodes, n)
	}
	data, err := msgpack.Marshal(nodes)
	if err != nil {
		return nil, err
	}
	h := sha256.New()
	h.Write(data)
	for _, e := range extra {
		h.Write(e)
	}
	return &Snapshot{Digest: hex.EncodeToString(h.Sum(nil)), Nodes: len(nodes)}, nil
}

// Save writes the snapshot to path.
func (s *Snapshot) Save(fs afero.Fs, path string) error {
	data, err := msgpack.Marshal(s)
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, path, data, 0o644)
}

// LoadSnapshot reads a snapshot saved by Save. A missing file returns nil
// without error.
func LoadSnapshot(fs afero.Fs, path string) (*Snapshot, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Matches reports whether the other snapshot fingerprints the same graph.
func (s *Snapshot) Matches(other *Snapshot) bool {
	return s != nil && other != nil && s.Digest == other.Digest
}
