package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sisense/compose-sdk-charts/pkg/constants"
	"github.com/sisense/compose-sdk-charts/pkg/util"
	"github.com/spf13/viper"
)

const (
	OutputJson  = "json"
	OutputTable = "table"
)

type ComposeConfiguration struct {
	Locale     string         `json:"locale,omitempty" mapstructure:"locale" yaml:"locale,omitempty"`
	Output     string         `json:"output,omitempty" mapstructure:"output" yaml:"output,omitempty"`
	LogDir     string         `json:"log_dir,omitempty" mapstructure:"log_dir" yaml:"log_dir,omitempty"`
	DataLimits DataLimitsSpec `json:"data_limits,omitempty" mapstructure:"data_limits" yaml:"data_limits,omitempty"`
}

// DataLimitsSpec overrides the design data limits of every chart. Zero keeps the chart's own limit.
type DataLimitsSpec struct {
	SeriesCapacity     int `json:"series_capacity,omitempty" mapstructure:"series_capacity" yaml:"series_capacity,omitempty"`
	CategoriesCapacity int `json:"categories_capacity,omitempty" mapstructure:"categories_capacity" yaml:"categories_capacity,omitempty"`
}

func LoadDefaultConfiguration() *ComposeConfiguration {
	return &ComposeConfiguration{
		Locale: "en-US",
		Output: OutputJson,
	}
}

// LoadConfiguration reads <appDir>/.compose/config.yaml when present. COMPOSE_ prefixed environment
// variables are substituted in the file and override its keys. Variables from <appDir>/.compose/.env
// are loaded first and never replace ones already set.
func LoadConfiguration(v *viper.Viper, appDir string) (*ComposeConfiguration, error) {
	envPath := filepath.Join(appDir, constants.DotCompose, ".env")
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("error reading %s: %w", envPath, err)
		}
	}

	defaults := LoadDefaultConfiguration()
	v.SetDefault("locale", defaults.Locale)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("log_dir", defaults.LogDir)
	v.SetDefault("data_limits.series_capacity", defaults.DataLimits.SeriesCapacity)
	v.SetDefault("data_limits.categories_capacity", defaults.DataLimits.CategoriesCapacity)

	v.SetEnvPrefix(strings.TrimSuffix(constants.ComposeEnvVarPrefix, "_"))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigType("yaml")

	configPath := findConfigFile(appDir)
	if configPath != "" {
		configBytes, err := util.ReplaceEnvVariablesFromPath(configPath, constants.ComposeEnvVarPrefix)
		if err != nil {
			return nil, err
		}

		err = v.ReadConfig(bytes.NewBuffer(configBytes))
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", configPath, err)
		}
	}

	var config ComposeConfiguration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	switch config.Output {
	case OutputJson, OutputTable:
	default:
		return nil, fmt.Errorf("invalid output '%s', expected '%s' or '%s'", config.Output, OutputJson, OutputTable)
	}

	return &config, nil
}

func findConfigFile(appDir string) string {
	for _, name := range []string{"config.yaml", "config.yml"} {
		path := filepath.Join(appDir, constants.DotCompose, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
