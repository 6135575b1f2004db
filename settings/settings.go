// Package settings provides file-backed stores for generation settings.
//
// A settings file is a four-level YAML mapping, unit to item kind to item
// identity to key:
//
//	Dto:
//	  Model:
//	    All:
//	      Generate: true
//	    Store.AuditEntry:
//	      Generate: false
//	Web:
//	  ModelProperty:
//	    Order.Status:
//	      Generate: true
//
// Values of any scalar YAML type are accepted and surfaced as strings; the
// resolver coerces them at query time.
package settings

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Store holds loaded generation settings. Lookups never fail; a missing
// entry is simply reported as absent. The zero value is an empty store.
type Store struct {
	entries map[string]string
}

// LookupGenerationSetting implements the settings store contract.
func (s *Store) LookupGenerationSetting(unit, itemKind, itemIdentity, key string) (string, bool) {
	v, ok := s.entries[entryKey(unit, itemKind, itemIdentity, key)]
	return v, ok
}

// Set adds or replaces one entry. Mainly useful for tests and programmatic
// configuration.
func (s *Store) Set(unit, itemKind, itemIdentity, key, value string) {
	if s.entries == nil {
		s.entries = make(map[string]string)
	}
	s.entries[entryKey(unit, itemKind, itemIdentity, key)] = value
}

// Len returns the number of loaded entries.
func (s *Store) Len() int { return len(s.entries) }

func entryKey(unit, itemKind, itemIdentity, key string) string {
	return unit + "\x00" + itemKind + "\x00" + itemIdentity + "\x00" + key
}

// Load reads a settings file from the filesystem.
func Load(fs afero.Fs, path string) (*Store, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("settings: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes settings from YAML.
func Parse(data []byte) (*Store, error) {
	var raw map[string]map[string]map[string]map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("settings: decode: %w", err)
	}
	s := &Store{entries: make(map[string]string)}
	for unit, kinds := range raw {
		for kind, identities := range kinds {
			for identity, keys := range identities {
				for key, node := range keys {
					s.entries[entryKey(unit, kind, identity, key)] = node.Value
				}
			}
		}
	}
	return s, nil
}
