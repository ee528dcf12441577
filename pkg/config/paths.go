package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sisense/compose-sdk-charts/pkg/constants"
)

var (
	composeHomePath string
	appPath         string
	appComposePath  string
)

// ComposeHomePath is ~/.compose
func ComposeHomePath() string {
	if composeHomePath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv("HOME")
		}
		composeHomePath = filepath.Join(homeDir, constants.DotCompose)
	}
	return composeHomePath
}

func AppPath() string {
	if appPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			panic(err)
		}
		appPath = cwd
	}

	return appPath
}

func AppComposePath() string {
	if appComposePath == "" {
		appComposePath = filepath.Join(AppPath(), constants.DotCompose)
	}
	return appComposePath
}

// LogRootPath is the directory file loggers create their log/ directory in: the configured
// log_dir, the app's .compose directory when it exists, ~/.compose otherwise
func LogRootPath(config *ComposeConfiguration) string {
	if config != nil && config.LogDir != "" {
		return config.LogDir
	}
	if _, err := os.Stat(AppComposePath()); err == nil {
		return AppComposePath()
	}
	return ComposeHomePath()
}

func GetAppRelativePath(absolutePath string) string {
	if strings.HasPrefix(absolutePath, AppPath()+string(os.PathSeparator)) {
		return absolutePath[len(AppPath())+1:]
	}
	return absolutePath
}
