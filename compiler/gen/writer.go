package gen

import (
	"bytes"
	"os"

	"github.com/spf13/afero"
)

// writeIfChanged writes data to path unless the file already holds exactly
// that content. Leaving unchanged files untouched keeps their mtimes stable
// for downstream build tools.
func writeIfChanged(fs afero.Fs, path string, data []byte) error {
	prev, err := afero.ReadFile(fs, path)
	if err == nil && bytes.Equal(prev, data) {
		return nil
	}
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return afero.WriteFile(fs, path, data, 0o644)
}
