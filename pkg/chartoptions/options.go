package chartoptions

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/sisense/compose-sdk-charts/pkg/chartdata"
	"github.com/sisense/compose-sdk-charts/pkg/charttype"
	"github.com/sisense/compose-sdk-charts/pkg/dataoptions"
	"github.com/sisense/compose-sdk-charts/pkg/format"
	"github.com/sisense/compose-sdk-charts/pkg/loggers"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var (
	zaplog *zap.Logger = loggers.ZapLogger()
)

var ErrChartDataMismatch = errors.New("chart data does not match chart type")

type builder struct {
	chartType   charttype.ChartType
	design      DesignOptions
	dataOptions dataoptions.ChartDataOptionsInternal
	formatter   *format.Formatter
}

type Option func(*builder)

// WithFormatter formats numbers with a locale specific formatter
func WithFormatter(formatter *format.Formatter) Option {
	return func(b *builder) {
		if formatter != nil {
			b.formatter = formatter
		}
	}
}

func WithLocale(locale string) Option {
	return WithFormatter(format.NewFormatterForLocale(locale))
}

// BuildOptions turns chart data into renderer options. Data limits are applied first, the alerts
// describe anything that was cut.
func BuildOptions(data chartdata.ChartData, chartType charttype.ChartType, design DesignOptions, dataOptions dataoptions.ChartDataOptionsInternal, opts ...Option) (*HighchartsOptions, []string, error) {
	if !chartType.IsSupported() {
		return nil, nil, &chartdata.UnsupportedChartTypeError{ChartType: chartType}
	}
	if data == nil {
		return nil, nil, fmt.Errorf("%w: no chart data for chart type '%s'", ErrChartDataMismatch, chartType)
	}

	b := &builder{
		chartType:   chartType,
		design:      design,
		dataOptions: dataOptions,
		formatter:   format.NewFormatter(language.English),
	}
	for _, opt := range opts {
		opt(b)
	}

	limited, alerts := ApplyDataLimits(data, design.DataLimits)
	for _, alert := range alerts {
		zaplog.Debug("data limit applied", zap.String("chartType", string(chartType)), zap.String("alert", alert))
	}

	var options *HighchartsOptions
	switch d := limited.(type) {
	case *chartdata.CartesianChartData:
		if chartType.Family() == charttype.FamilyCartesian {
			options = b.cartesian(d.XAxisCount, d.XValues, d.Series, nil)
		}
	case *chartdata.RangeChartData:
		if f := chartType.Family(); f == charttype.FamilyCartesian || f == charttype.FamilyRange {
			options = b.cartesian(d.XAxisCount, d.XValues, d.Series, d.SeriesOther)
		}
	case *chartdata.CategoricalChartData:
		if chartType.Family() == charttype.FamilyCategorical {
			options = b.categorical(d)
		}
	case *chartdata.ScatterChartData:
		if chartType.Family() == charttype.FamilyScatter {
			options = b.scatter(d)
		}
	case *chartdata.BoxplotChartData:
		if chartType.Family() == charttype.FamilyBoxplot {
			options = b.boxplot(d)
		}
	case *chartdata.IndicatorChartData:
		if chartType.Family() == charttype.FamilyIndicator {
			options = b.indicator(d)
		}
	case *chartdata.AreamapChartData:
		if chartType.Family() == charttype.FamilyAreamap {
			options = b.base()
			options.Geo = d.Geo
		}
	case *chartdata.ScattermapChartData:
		if chartType.Family() == charttype.FamilyScattermap {
			options = b.base()
			options.Locations = d.Locations
		}
	}

	if options == nil {
		return nil, alerts, fmt.Errorf("%w: %s data for chart type '%s'", ErrChartDataMismatch, limited.Type(), chartType)
	}
	return options, alerts, nil
}

func (b *builder) base() *HighchartsOptions {
	options := &HighchartsOptions{
		Chart:  Chart{Type: string(b.chartType)},
		Legend: b.design.Legend.legend(),
		PlotOptions: PlotOptions{
			Series: SeriesPlotOptions{DataLabels: DataLabels{Enabled: b.design.ValueLabels}},
		},
		Series: []Series{},
	}
	return options
}

// numberFormatter renders values with the number format of a measure
func (b *builder) numberFormatter(config format.NumberFormatConfig) func(float64) string {
	formatter := b.formatter
	return func(value float64) string {
		return formatter.ApplyFormat(config, value)
	}
}

func point(value chartdata.SeriesValueData, formatter func(float64) string) Point {
	if math.IsNaN(value.Value) || math.IsInf(value.Value, 0) {
		return Point{IsNull: true}
	}
	p := Point{Y: floatPtr(value.Value), Color: value.Color}
	if value.Blur || formatter != nil {
		p.Custom = &PointCustom{Blur: value.Blur}
		if formatter != nil {
			p.Custom.FormattedValue = formatter(value.Value)
		}
	}
	return p
}

func floatPtr(f float64) *float64 {
	return &f
}

// finitePtr returns nil for NaN and infinities
func finitePtr(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func xLabel(xv chartdata.CategoricalXValues) string {
	return strings.Join(xv.XValues, " - ")
}

func measureTitles(measures []dataoptions.StyledMeasureColumn) string {
	titles := make([]string, len(measures))
	for i, m := range measures {
		titles[i] = m.Title()
	}
	return strings.Join(titles, ", ")
}

// findMeasure returns the measure a series was built from
func findMeasure(measures []dataoptions.StyledMeasureColumn, column string) *dataoptions.StyledMeasureColumn {
	for i := range measures {
		if measures[i].Name() == column {
			return &measures[i]
		}
	}
	return nil
}
