package chartdata

import (
	"math"
	"strings"

	"github.com/sisense/compose-sdk-charts/pkg/dataoptions"
	"github.com/sisense/compose-sdk-charts/pkg/table"
)

// CartesianData builds one series per measure, or one series per break-by value
// when there is a single measure and the break-by columns are in the table.
func CartesianData(options dataoptions.CartesianChartDataOptionsInternal, dataTable table.DataTable) *CartesianChartData {
	xColumns := getColumns(dataTable, options.X)

	if len(dataTable.Rows) == 0 {
		return &CartesianChartData{
			XAxisCount: 0,
			XValues:    []CategoricalXValues{},
			Series:     []SeriesWithValues{},
		}
	}

	xValues := getOrderedXValues(dataTable, xColumns, options.Y)
	series := buildCartesianSeries(options, dataTable, xColumns, xValues)

	return &CartesianChartData{
		XAxisCount: len(xColumns),
		XValues:    xValues,
		Series:     series,
	}
}

func buildCartesianSeries(options dataoptions.CartesianChartDataOptionsInternal, dataTable table.DataTable, xColumns []table.Column, xValues []CategoricalXValues) []SeriesWithValues {
	return buildSeries(options, dataTable, xColumns, xValues, seriesByBreakBy(options, dataTable))
}

// seriesByBreakBy reports whether series are split by the break-by values rather than by measure
func seriesByBreakBy(options dataoptions.CartesianChartDataOptionsInternal, dataTable table.DataTable) bool {
	return len(options.Y) == 1 && len(getColumns(dataTable, options.BreakBy)) > 0
}

func buildSeries(options dataoptions.CartesianChartDataOptionsInternal, dataTable table.DataTable, xColumns []table.Column, xValues []CategoricalXValues, byBreakBy bool) []SeriesWithValues {
	breakByColumns := getColumns(dataTable, options.BreakBy)

	var series []SeriesWithValues
	if byBreakBy && len(breakByColumns) > 0 && len(options.Y) == 1 {
		series = withBreakBy(dataTable, xColumns, xValues, breakByColumns, options.Y[0], options.SeriesToColorMap)
		applyColoring(series, options.Y[0], true)
	} else {
		series = withMultipleValues(dataTable, xColumns, xValues, options.Y)
		for i := range series {
			applyColoring(series[i:i+1], options.Y[i], false)
			if color, ok := options.SeriesToColorMap[series[i].Name]; ok {
				series[i].Color = color
			}
		}
	}
	return series
}

// getColumns resolves styled columns against the table, skipping the ones it does not have
func getColumns(dataTable table.DataTable, styled []dataoptions.StyledColumn) []table.Column {
	columns := make([]table.Column, 0, len(styled))
	for _, s := range styled {
		c := table.GetColumnByName(dataTable, s.Name())
		if c == nil {
			continue
		}
		c.Direction = s.Direction()
		columns = append(columns, *c)
	}
	return columns
}

// getOrderedXValues returns the distinct x ticks. The tick order is decided by, in precedence order,
// the inner x levels, the sorted measures, the source row order when the outer level is unsorted,
// and finally the outer x level.
func getOrderedXValues(dataTable table.DataTable, xColumns []table.Column, y []dataoptions.StyledMeasureColumn) []CategoricalXValues {
	if len(xColumns) == 0 {
		return []CategoricalXValues{{Key: "", XValues: []string{""}}}
	}

	numbered := table.WithRowNumbers(dataTable)
	rowNumber := numbered.Columns[len(numbered.Columns)-1]

	measures := []table.AggregatedColumn{{Column: rowNumber, Aggregation: table.AggregationMin}}
	var directions []int
	for _, m := range y {
		if m.Direction() == table.DirectionNone {
			continue
		}
		c := table.GetColumnByName(dataTable, m.Name())
		if c == nil {
			continue
		}
		measures = append(measures, table.AggregatedColumn{Column: *c, Aggregation: table.AggregationSum})
		directions = append(directions, m.Direction())
	}

	grouped := table.GroupBy(numbered, xColumns, measures)
	n := len(xColumns)

	sortColumns := make([]table.Column, 0, len(grouped.Columns))
	sortColumns = append(sortColumns, grouped.Columns[1:n]...)
	for i, direction := range directions {
		c := grouped.Columns[n+1+i]
		c.Direction = direction
		sortColumns = append(sortColumns, c)
	}
	if xColumns[0].Direction == table.DirectionNone {
		c := grouped.Columns[n]
		c.Direction = table.DirectionAsc
		sortColumns = append(sortColumns, c)
	}
	sortColumns = append(sortColumns, grouped.Columns[0])

	sorted := table.OrderBy(grouped, sortColumns)

	xValues := make([]CategoricalXValues, len(sorted.Rows))
	for i, row := range sorted.Rows {
		xValues[i] = newXValues(row[:n])
	}
	return xValues
}

func newXValues(cells []table.ComparableData) CategoricalXValues {
	xv := CategoricalXValues{
		Key:       table.JoinKey(cells),
		XValues:   make([]string, len(cells)),
		RawValues: make([]table.RawValue, len(cells)),
	}

	compareValues := make([]float64, 0, len(cells))
	for i, cell := range cells {
		xv.XValues[i] = cell.DisplayValue
		xv.RawValues[i] = cell.RawValue
		if cell.CompareValue != nil {
			compareValues = append(compareValues, cell.CompareValue.Value)
		}
	}
	if len(compareValues) == len(cells) {
		xv.CompareValues = compareValues
	}
	return xv
}

func withMultipleValues(dataTable table.DataTable, xColumns []table.Column, xValues []CategoricalXValues, y []dataoptions.StyledMeasureColumn) []SeriesWithValues {
	index := table.GetIndexedRows(dataTable.Rows, xColumns)

	series := make([]SeriesWithValues, 0, len(y))
	for _, m := range y {
		column := table.GetColumnByName(dataTable, m.Name())

		data := make([]SeriesValueData, len(xValues))
		for i, xv := range xValues {
			data[i] = seriesValue(index[xv.Key], column, m)
		}
		s := newSeries(m, m.Name(), m.Title(), data)
		if IsRangeTitle(m.Title()) {
			s.RangeKey = m.Title()
		}
		series = append(series, s)
	}
	return series
}

func withBreakBy(dataTable table.DataTable, xColumns []table.Column, xValues []CategoricalXValues, breakByColumns []table.Column, m dataoptions.StyledMeasureColumn, seriesToColorMap map[string]string) []SeriesWithValues {
	column := table.GetColumnByName(dataTable, m.Name())

	lookupColumns := make([]table.Column, 0, len(xColumns)+len(breakByColumns))
	lookupColumns = append(lookupColumns, xColumns...)
	lookupColumns = append(lookupColumns, breakByColumns...)
	index := table.GetIndexedRows(dataTable.Rows, lookupColumns)

	groups := table.SeparateBy(dataTable.Rows, breakByColumns)
	firstRows := make([]table.Row, len(groups))
	for i, g := range groups {
		firstRows[i] = g.Rows[0]
	}
	ordered := table.OrderBy(table.DataTable{Columns: dataTable.Columns, Rows: firstRows}, breakByColumns)

	series := make([]SeriesWithValues, 0, len(ordered.Rows))
	for _, row := range ordered.Rows {
		values := table.GetValues(row, breakByColumns)
		breakByKey := table.JoinKey(values)

		titles := make([]string, len(values))
		for i, v := range values {
			titles[i] = v.DisplayValue
		}
		title := strings.Join(titles, " - ")

		data := make([]SeriesValueData, len(xValues))
		for i, xv := range xValues {
			key := breakByKey
			if len(xColumns) > 0 {
				key = xv.Key + table.KeySeparator + breakByKey
			}
			data[i] = seriesValue(index[key], column, m)
		}

		s := newSeries(m, breakByKey, title, data)
		if IsRangeTitle(m.Title()) {
			s.RangeKey = m.Title() + table.KeySeparator + breakByKey
		}
		if color, ok := seriesToColorMap[breakByKey]; ok {
			s.Color = color
		} else if color, ok := seriesToColorMap[title]; ok {
			s.Color = color
		}
		series = append(series, s)
	}
	return series
}

// seriesValue reads the measure from the first matching row. A missing value is NaN, or zero
// when the measure treats nulls as zeros.
func seriesValue(rows []table.Row, column *table.Column, m dataoptions.StyledMeasureColumn) SeriesValueData {
	value := SeriesValueData{Value: math.NaN()}

	if cell := firstCell(rows, column); cell != nil {
		value.RawValue = cell.RawValue
		value.Blur = cell.Blur
		value.Color = cell.Color
		if f, ok := cell.RawValue.Float(); ok {
			value.Value = f
		}
	}

	if m.TreatNullDataAsZeros && math.IsNaN(value.Value) {
		value.Value = 0
	}
	return value
}

func firstCell(rows []table.Row, column *table.Column) *table.ComparableData {
	if len(rows) == 0 {
		return nil
	}
	return table.GetValue(rows[0], column)
}

func newSeries(m dataoptions.StyledMeasureColumn, name string, title string, data []SeriesValueData) SeriesWithValues {
	return SeriesWithValues{
		Name:                 name,
		Title:                title,
		Column:               m.Name(),
		Data:                 data,
		ShowOnRightAxis:      m.ShowOnRightAxis,
		ChartType:            m.ChartType,
		TreatNullDataAsZeros: m.TreatNullDataAsZeros,
		ConnectNulls:         m.ConnectNulls,
		SeriesStyleOptions:   m.SeriesStyleOptions,
	}
}
