package runtime

import (
	"context"
	"fmt"

	"github.com/sisense/compose-sdk-charts/pkg/chartdata"
	"github.com/sisense/compose-sdk-charts/pkg/chartoptions"
	"github.com/sisense/compose-sdk-charts/pkg/charttype"
	"github.com/sisense/compose-sdk-charts/pkg/config"
	"github.com/sisense/compose-sdk-charts/pkg/dataoptions"
	"github.com/sisense/compose-sdk-charts/pkg/loggers"
	"github.com/sisense/compose-sdk-charts/pkg/spec"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ComposeRuntime struct {
	config *config.ComposeConfiguration
	viper  *viper.Viper
}

var (
	runtime *ComposeRuntime
	zaplog  *zap.Logger = loggers.ZapLogger()
)

func GetComposeRuntime() *ComposeRuntime {
	if runtime == nil {
		runtime = NewComposeRuntime()
	}
	return runtime
}

func NewComposeRuntime() *ComposeRuntime {
	return &ComposeRuntime{
		viper: viper.New(),
	}
}

func (r *ComposeRuntime) LoadConfig(appDir string) error {
	var err error
	if r.config == nil {
		r.config, err = config.LoadConfiguration(r.viper, appDir)
	}

	return err
}

// Config returns the loaded configuration, or the defaults before LoadConfig
func (r *ComposeRuntime) Config() *config.ComposeConfiguration {
	if r.config == nil {
		return config.LoadDefaultConfiguration()
	}
	return r.config
}

// BindFlags lets command line flags override configuration keys of the same name
func (r *ComposeRuntime) BindFlags(flags ...*pflag.Flag) error {
	for _, flag := range flags {
		if flag == nil {
			continue
		}
		if err := r.viper.BindPFlag(flag.Name, flag); err != nil {
			return err
		}
	}
	return nil
}

// Rendered is a chart ready for the renderer
type Rendered struct {
	Name      string                          `json:"name"`
	ChartType charttype.ChartType             `json:"chartType"`
	Data      chartdata.ChartData             `json:"data"`
	Options   *chartoptions.HighchartsOptions `json:"options"`
	Alerts    []string                        `json:"alerts,omitempty"`
}

// Render loads the manifest's data and runs it through the chart pipeline
func (r *ComposeRuntime) Render(manifest *spec.ChartManifest) (*Rendered, error) {
	chart, err := LoadChart(manifest)
	if err != nil {
		return nil, err
	}

	data, err := chart.connector.FetchData()
	if err != nil {
		return nil, err
	}

	return r.render(chart, data)
}

// RenderAll renders the manifests concurrently. Results keep the order of manifests, the first
// error cancels the rest.
func (r *ComposeRuntime) RenderAll(ctx context.Context, manifests []*spec.ChartManifest) ([]*Rendered, error) {
	results := make([]*Rendered, len(manifests))
	g, ctx := errgroup.WithContext(ctx)

	for i, manifest := range manifests {
		i, manifest := i, manifest
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rendered, err := r.Render(manifest)
			if err != nil {
				return fmt.Errorf("chart '%s': %w", manifest.Name, err)
			}
			results[i] = rendered
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ComposeRuntime) render(chart *Chart, data []byte) (*Rendered, error) {
	manifest := chart.manifest

	if _, err := chart.processor.OnData(data); err != nil {
		return nil, err
	}
	dataTable, err := chart.processor.GetTable()
	if err != nil {
		return nil, err
	}

	chartType, err := manifest.Type()
	if err != nil {
		return nil, err
	}
	options, err := manifest.ChartDataOptions()
	if err != nil {
		return nil, err
	}
	internal, err := dataoptions.Translate(chartType, options)
	if err != nil {
		return nil, err
	}

	chartData, err := chartdata.Build(chartType, internal, dataTable)
	if err != nil {
		return nil, err
	}

	highcharts, alerts, err := chartoptions.BuildOptions(chartData, chartType, r.design(manifest), internal,
		chartoptions.WithLocale(r.locale(manifest)))
	if err != nil {
		return nil, err
	}

	zaplog.Debug("rendered chart",
		zap.String("name", manifest.Name),
		zap.String("chartType", string(chartType)),
		zap.Int("rows", len(dataTable.Rows)),
		zap.Int("alerts", len(alerts)))

	return &Rendered{
		Name:      manifest.Name,
		ChartType: chartType,
		Data:      chartData,
		Options:   highcharts,
		Alerts:    alerts,
	}, nil
}

// design applies the configured data limits over the manifest's own
func (r *ComposeRuntime) design(manifest *spec.ChartManifest) chartoptions.DesignOptions {
	design := manifest.Design
	limits := r.Config().DataLimits
	if limits.SeriesCapacity > 0 {
		design.DataLimits.SeriesCapacity = limits.SeriesCapacity
	}
	if limits.CategoriesCapacity > 0 {
		design.DataLimits.CategoriesCapacity = limits.CategoriesCapacity
	}
	return design
}

func (r *ComposeRuntime) locale(manifest *spec.ChartManifest) string {
	if manifest.Locale != "" {
		return manifest.Locale
	}
	return r.Config().Locale
}
