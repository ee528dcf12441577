package chartdata

import (
	"github.com/sisense/compose-sdk-charts/pkg/dataoptions"
	"github.com/sisense/compose-sdk-charts/pkg/format"
	"github.com/sisense/compose-sdk-charts/pkg/table"
)

// CategoricalData reuses the cartesian builder with the categories as x levels, then applies the
// number format of numeric categories to the tick labels.
func CategoricalData(options dataoptions.CategoricalChartDataOptionsInternal, dataTable table.DataTable) *CategoricalChartData {
	cartesian := CartesianData(dataoptions.CartesianChartDataOptionsInternal{
		X: options.BreakBy,
		Y: options.Y,
	}, dataTable)

	levels := make([]dataoptions.StyledColumn, 0, len(options.BreakBy))
	for _, c := range options.BreakBy {
		if table.GetColumnByName(dataTable, c.Name()) != nil {
			levels = append(levels, c)
		}
	}

	xValues := make([]CategoricalXValues, len(cartesian.XValues))
	for i, xv := range cartesian.XValues {
		xValues[i] = formatXValues(xv, levels)
	}

	return &CategoricalChartData{
		XAxisCount: cartesian.XAxisCount,
		XValues:    xValues,
		Series:     cartesian.Series,
	}
}

func formatXValues(xv CategoricalXValues, levels []dataoptions.StyledColumn) CategoricalXValues {
	formatted := make([]string, len(xv.XValues))
	copy(formatted, xv.XValues)

	for i := range formatted {
		if i >= len(levels) || i >= len(xv.RawValues) || levels[i].NumberFormatConfig == nil {
			continue
		}
		if f, ok := xv.RawValues[i].Float(); ok && xv.RawValues[i].IsNumber() {
			formatted[i] = format.ApplyFormat(*levels[i].NumberFormatConfig, f)
		}
	}

	xv.XValues = formatted
	return xv
}
