package chartdata

import (
	"github.com/sisense/compose-sdk-charts/pkg/dataoptions"
	"github.com/sisense/compose-sdk-charts/pkg/table"
)

// defaultScatterValue stands in for an unbound x, y or size channel
var defaultScatterValue = table.ComparableData{DisplayValue: "0"}

// ScatterData emits one point per row. Rows are not aggregated.
func ScatterData(options dataoptions.ScatterChartDataOptionsInternal, dataTable table.DataTable) *ScatterChartData {
	x := measureColumn(dataTable, options.X)
	y := measureColumn(dataTable, options.Y)
	size := measureColumn(dataTable, options.Size)
	breakByPoint := styledColumn(dataTable, options.BreakByPoint)
	breakByColor := styledColumn(dataTable, options.BreakByColor)

	rows := make([]ScatterDataRow, 0, len(dataTable.Rows))
	for _, row := range dataTable.Rows {
		rows = append(rows, ScatterDataRow{
			X:            scatterValue(row, x),
			Y:            scatterValue(row, y),
			Size:         scatterValue(row, size),
			BreakByPoint: optionalScatterValue(row, breakByPoint),
			BreakByColor: optionalScatterValue(row, breakByColor),
		})
	}

	return &ScatterChartData{
		ScatterDataTable: rows,
		XCategories:      categories(dataTable, x),
		YCategories:      categories(dataTable, y),
	}
}

func scatterValue(row table.Row, column *table.Column) table.ComparableData {
	if v := table.GetValue(row, column); v != nil {
		return *v
	}
	return defaultScatterValue
}

func optionalScatterValue(row table.Row, column *table.Column) *table.ComparableData {
	v := table.GetValue(row, column)
	if v == nil {
		return nil
	}
	copied := *v
	return &copied
}

// categories lists the distinct display values of a non numeric column, in first-appearance order
func categories(dataTable table.DataTable, column *table.Column) []string {
	if column == nil || table.IsNumberType(column.Type) {
		return nil
	}

	groups := table.SeparateBy(dataTable.Rows, []table.Column{*column})
	values := make([]string, 0, len(groups))
	for _, g := range groups {
		values = append(values, g.Values[0].DisplayValue)
	}
	return values
}

func measureColumn(dataTable table.DataTable, m *dataoptions.StyledMeasureColumn) *table.Column {
	if m == nil {
		return nil
	}
	return table.GetColumnByName(dataTable, m.Name())
}

func styledColumn(dataTable table.DataTable, c *dataoptions.StyledColumn) *table.Column {
	if c == nil {
		return nil
	}
	return table.GetColumnByName(dataTable, c.Name())
}
