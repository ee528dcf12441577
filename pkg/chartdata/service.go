package chartdata

import (
	"fmt"

	"github.com/sisense/compose-sdk-charts/pkg/charttype"
	"github.com/sisense/compose-sdk-charts/pkg/dataoptions"
	"github.com/sisense/compose-sdk-charts/pkg/loggers"
	"github.com/sisense/compose-sdk-charts/pkg/table"
	"go.uber.org/zap"
)

var (
	zaplog *zap.Logger = loggers.ZapLogger()
)

type UnsupportedChartTypeError struct {
	ChartType charttype.ChartType
}

func (e *UnsupportedChartTypeError) Error() string {
	return fmt.Sprintf("unsupported chart type '%s'", e.ChartType)
}

// Build dispatches to the builder of the chart type's family. Cartesian options with a forecast
// measure produce range data.
func Build(chartType charttype.ChartType, options dataoptions.ChartDataOptionsInternal, dataTable table.DataTable) (ChartData, error) {
	family := chartType.Family()
	if family == charttype.FamilyUnknown {
		return nil, &UnsupportedChartTypeError{ChartType: chartType}
	}
	if options == nil || options.Family() != family {
		return nil, mismatch(chartType, options)
	}

	zaplog.Debug("building chart data",
		zap.String("chartType", string(chartType)),
		zap.String("family", family.String()),
		zap.Int("rows", len(dataTable.Rows)))

	switch family {
	case charttype.FamilyCartesian:
		o, ok := options.(dataoptions.CartesianChartDataOptionsInternal)
		if !ok {
			return nil, mismatch(chartType, options)
		}
		if HasForecast(o.Y) {
			return AdvancedAnalyticsData(o, dataTable), nil
		}
		return CartesianData(o, dataTable), nil
	case charttype.FamilyCategorical:
		o, ok := options.(dataoptions.CategoricalChartDataOptionsInternal)
		if !ok {
			return nil, mismatch(chartType, options)
		}
		return CategoricalData(o, dataTable), nil
	case charttype.FamilyScatter:
		o, ok := options.(dataoptions.ScatterChartDataOptionsInternal)
		if !ok {
			return nil, mismatch(chartType, options)
		}
		return ScatterData(o, dataTable), nil
	case charttype.FamilyIndicator:
		o, ok := options.(dataoptions.IndicatorChartDataOptionsInternal)
		if !ok {
			return nil, mismatch(chartType, options)
		}
		return IndicatorData(o, dataTable), nil
	case charttype.FamilyBoxplot:
		o, ok := options.(dataoptions.BoxplotChartDataOptionsInternal)
		if !ok {
			return nil, mismatch(chartType, options)
		}
		return BoxplotData(o, dataTable), nil
	case charttype.FamilyRange:
		o, ok := options.(dataoptions.RangeChartDataOptionsInternal)
		if !ok {
			return nil, mismatch(chartType, options)
		}
		return RangeData(o, dataTable), nil
	case charttype.FamilyAreamap:
		o, ok := options.(dataoptions.AreamapChartDataOptionsInternal)
		if !ok {
			return nil, mismatch(chartType, options)
		}
		return AreamapData(o, dataTable), nil
	case charttype.FamilyScattermap:
		o, ok := options.(dataoptions.ScattermapChartDataOptionsInternal)
		if !ok {
			return nil, mismatch(chartType, options)
		}
		return ScattermapData(o, dataTable), nil
	}

	return nil, &UnsupportedChartTypeError{ChartType: chartType}
}

func mismatch(chartType charttype.ChartType, options dataoptions.ChartDataOptionsInternal) error {
	return fmt.Errorf("%w: chart type '%s' got %T", dataoptions.ErrDataOptionsMismatch, chartType, options)
}
