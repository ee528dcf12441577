package spec

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/sisense/compose-sdk-charts/pkg/chartoptions"
	"github.com/sisense/compose-sdk-charts/pkg/charttype"
	"github.com/sisense/compose-sdk-charts/pkg/constants"
	"github.com/sisense/compose-sdk-charts/pkg/dataoptions"
	"gopkg.in/yaml.v2"
)

// ChartManifest describes one chart: where its data comes from, how columns bind to the chart and
// how it looks
type ChartManifest struct {
	Name        string                     `json:"name,omitempty" yaml:"name,omitempty"`
	ChartType   string                     `json:"chartType" yaml:"chartType"`
	Locale      string                     `json:"locale,omitempty" yaml:"locale,omitempty"`
	Data        DataSpec                   `json:"data" yaml:"data"`
	DataOptions interface{}                `json:"-" yaml:"dataOptions"`
	Design      chartoptions.DesignOptions `json:"design" yaml:"design"`

	// directory of the manifest file, relative data paths are resolved against it
	Dir string `json:"-" yaml:"-"`
}

// LoadChartManifest reads a manifest. Design keys left out of the file keep their defaults.
func LoadChartManifest(path string) (*ChartManifest, error) {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart manifest '%s': %w", path, err)
	}

	manifest, err := ParseChartManifest(content)
	if err != nil {
		return nil, fmt.Errorf("invalid chart manifest '%s': %w", path, err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	manifest.Dir = filepath.Dir(absPath)
	if manifest.Name == "" {
		manifest.Name = manifestName(path)
	}

	return manifest, nil
}

func ParseChartManifest(content []byte) (*ChartManifest, error) {
	manifest := &ChartManifest{Design: chartoptions.DefaultDesignOptions()}
	if err := yaml.Unmarshal(content, manifest); err != nil {
		return nil, err
	}

	if _, err := manifest.Type(); err != nil {
		return nil, err
	}
	if manifest.DataOptions == nil {
		return nil, fmt.Errorf("chart '%s' has no dataOptions", manifest.Name)
	}

	return manifest, nil
}

func (m *ChartManifest) Type() (charttype.ChartType, error) {
	return charttype.Parse(m.ChartType)
}

// ChartDataOptions decodes the dataOptions section for the family of the chart type
func (m *ChartManifest) ChartDataOptions() (dataoptions.ChartDataOptions, error) {
	chartType, err := m.Type()
	if err != nil {
		return nil, err
	}

	content, err := yaml.Marshal(m.DataOptions)
	if err != nil {
		return nil, err
	}

	return dataoptions.Unmarshal(chartType, content)
}

// DataPath resolves the data file path against the manifest directory
func (m *ChartManifest) DataPath() string {
	path := m.Data.Path
	if path == "" {
		path = m.Data.Connector.Params["path"]
	}
	if path == "" || filepath.IsAbs(path) || m.Dir == "" {
		return path
	}
	return filepath.Join(m.Dir, path)
}

func manifestName(path string) string {
	base := filepath.Base(path)
	for _, ext := range []string{constants.ChartManifestExtension, ".chart.yml", ".yaml", ".yml"} {
		if strings.HasSuffix(base, ext) && len(base) > len(ext) {
			return strings.TrimSuffix(base, ext)
		}
	}
	return base
}
