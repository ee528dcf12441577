package chartdata

import (
	"math"

	"github.com/sisense/compose-sdk-charts/pkg/dataoptions"
	"github.com/sisense/compose-sdk-charts/pkg/table"
)

// IndicatorData reads the first row. Without a value column or rows the indicator is empty.
func IndicatorData(options dataoptions.IndicatorChartDataOptionsInternal, dataTable table.DataTable) *IndicatorChartData {
	value := firstMeasureColumn(dataTable, options.Value)
	if value == nil || len(dataTable.Rows) == 0 {
		return &IndicatorChartData{}
	}

	row := dataTable.Rows[0]
	return &IndicatorChartData{
		Values: &IndicatorValues{
			Value:     cellFloat(row, value),
			Secondary: optionalCellFloat(row, firstMeasureColumn(dataTable, options.Secondary)),
			Min:       optionalCellFloat(row, firstMeasureColumn(dataTable, options.Min)),
			Max:       optionalCellFloat(row, firstMeasureColumn(dataTable, options.Max)),
		},
	}
}

func firstMeasureColumn(dataTable table.DataTable, measures []dataoptions.StyledMeasureColumn) *table.Column {
	if len(measures) == 0 {
		return nil
	}
	return table.GetColumnByName(dataTable, measures[0].Name())
}

func cellFloat(row table.Row, column *table.Column) float64 {
	if f, ok := table.GetRawValue(row, column).Float(); ok {
		return f
	}
	return math.NaN()
}

func optionalCellFloat(row table.Row, column *table.Column) *float64 {
	if column == nil {
		return nil
	}
	f := cellFloat(row, column)
	return &f
}
