package tempdir

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

var tempDirectories []string

// CreateTempDir creates a directory under the system temp dir, removed by RemoveAllCreatedTempDirectories
func CreateTempDir(purpose string) (string, error) {
	tempDir := os.TempDir()
	stat, err := os.Stat(tempDir)
	if err != nil {
		return "", err
	}

	composeDir := fmt.Sprintf("compose_%s_%v", purpose, time.Now().UnixNano())
	tempDir = filepath.Join(tempDir, composeDir)

	err = os.Mkdir(tempDir, stat.Mode())
	if err != nil {
		return "", err
	}

	tempDirectories = append(tempDirectories, tempDir)

	return tempDir, nil
}

func RemoveAllCreatedTempDirectories() error {
	for _, tempDir := range tempDirectories {
		err := os.RemoveAll(tempDir)
		if err != nil {
			return err
		}
	}

	tempDirectories = make([]string, 0)

	return nil
}

func init() {
	tempDirectories = make([]string, 0)
}
