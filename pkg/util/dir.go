package util

import (
	"os"
	"path/filepath"
)

// MkDirAllInheritPerm creates path and its missing parents with the mode of the closest existing ancestor
func MkDirAllInheritPerm(path string) error {
	ancestor := filepath.Dir(filepath.Clean(path))
	for {
		stat, err := os.Stat(ancestor)
		if err == nil {
			return os.MkdirAll(path, stat.Mode().Perm())
		}
		if !os.IsNotExist(err) {
			return err
		}

		parent := filepath.Dir(ancestor)
		if parent == ancestor {
			return err
		}
		ancestor = parent
	}
}
