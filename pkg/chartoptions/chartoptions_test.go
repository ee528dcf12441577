package chartoptions

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/sisense/compose-sdk-charts/pkg/chartdata"
	"github.com/sisense/compose-sdk-charts/pkg/charttype"
	"github.com/sisense/compose-sdk-charts/pkg/dataoptions"
	"github.com/sisense/compose-sdk-charts/pkg/table"
	"github.com/sisense/compose-sdk-charts/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var snapshotter = testutils.NewSnapshotter("../../test/assets/snapshots/chartoptions")

func TestDataLimits(t *testing.T) {
	t.Run("ApplyDataLimits() - categories", testApplyDataLimitsCategoriesFunc())
	t.Run("ApplyDataLimits() - series", testApplyDataLimitsSeriesFunc())
	t.Run("ApplyDataLimits() - idempotent", testApplyDataLimitsIdempotentFunc())
	t.Run("ApplyDataLimits() - range and boxplot", testApplyDataLimitsRangeFunc())
}

func TestConvolve(t *testing.T) {
	t.Run("Convolve() - by percentage", testConvolveByPercentageFunc())
	t.Run("Convolve() - by slices count", testConvolveBySlicesCountFunc())
	t.Run("Convolve() - single small slice is kept", testConvolveSingleSliceFunc())
	t.Run("Convolve() - disabled", testConvolveDisabledFunc())
}

func TestBuildOptions(t *testing.T) {
	t.Run("BuildOptions() - cartesian", testBuildCartesianFunc())
	t.Run("BuildOptions() - cartesian snapshot", testBuildCartesianSnapshotFunc())
	t.Run("BuildOptions() - right axis", testBuildRightAxisFunc())
	t.Run("BuildOptions() - series style", testBuildSeriesStyleFunc())
	t.Run("BuildOptions() - date categories", testBuildDateCategoriesFunc())
	t.Run("BuildOptions() - pie convolution", testBuildPieFunc())
	t.Run("BuildOptions() - treemap", testBuildTreemapFunc())
	t.Run("BuildOptions() - scatter", testBuildScatterFunc())
	t.Run("BuildOptions() - boxplot", testBuildBoxplotFunc())
	t.Run("BuildOptions() - indicator", testBuildIndicatorFunc())
	t.Run("BuildOptions() - range", testBuildRangeFunc())
	t.Run("BuildOptions() - range with break by", testBuildRangeBreakByFunc())
	t.Run("BuildOptions() - forecast with break by", testBuildForecastBreakByFunc())
	t.Run("BuildOptions() - scatter point color", testBuildScatterPointColorFunc())
	t.Run("BuildOptions() - maps", testBuildMapsFunc())
	t.Run("BuildOptions() - errors", testBuildErrorsFunc())
}

func columns(names ...string) []dataoptions.StyledColumn {
	styled := make([]dataoptions.StyledColumn, len(names))
	for i, name := range names {
		styled[i] = dataoptions.StyledColumn{Column: dataoptions.Column{Name: name}}
	}
	return styled
}

func measures(names ...string) []dataoptions.StyledMeasureColumn {
	styled := make([]dataoptions.StyledMeasureColumn, len(names))
	for i, name := range names {
		styled[i] = dataoptions.StyledMeasureColumn{Column: dataoptions.MeasureColumn{Name: name}}
	}
	return styled
}

func build(t *testing.T, chartType charttype.ChartType, options dataoptions.ChartDataOptions, dataTable table.DataTable, design DesignOptions) (*HighchartsOptions, []string) {
	internal, err := dataoptions.Translate(chartType, options)
	require.NoError(t, err)

	data, err := chartdata.Build(chartType, internal, dataTable)
	require.NoError(t, err)

	highcharts, alerts, err := BuildOptions(data, chartType, design, internal)
	require.NoError(t, err)
	return highcharts, alerts
}

func yValues(s Series) []interface{} {
	values := make([]interface{}, len(s.Data))
	for i, p := range s.Data {
		if p.IsNull || p.Y == nil {
			values[i] = nil
			continue
		}
		values[i] = *p.Y
	}
	return values
}

func foodCartesian() *chartdata.CartesianChartData {
	options := dataoptions.TranslateCartesian(dataoptions.CartesianChartDataOptions{
		Category: columns("Food"),
		Value:    measures("Revenue"),
		BreakBy:  columns("Geo"),
	})
	return chartdata.CartesianData(options, testutils.FoodTable())
}

func testApplyDataLimitsCategoriesFunc() func(*testing.T) {
	return func(t *testing.T) {
		data := foodCartesian()

		limited, alerts := ApplyDataLimits(data, DataLimits{CategoriesCapacity: 2})
		cartesian := limited.(*chartdata.CartesianChartData)
		assert.Len(t, cartesian.XValues, 2)
		assert.Len(t, cartesian.Series[0].Data, 2)
		assert.Len(t, cartesian.Series[1].Data, 2)
		require.Len(t, alerts, 1)
		assert.Equal(t, "3 categories exceed the limit of 2, showing the first 2", alerts[0])

		// the input is untouched
		assert.Len(t, data.XValues, 3)
		assert.Len(t, data.Series[0].Data, 3)
	}
}

func testApplyDataLimitsSeriesFunc() func(*testing.T) {
	return func(t *testing.T) {
		limited, alerts := ApplyDataLimits(foodCartesian(), DataLimits{SeriesCapacity: 1})
		cartesian := limited.(*chartdata.CartesianChartData)
		require.Len(t, cartesian.Series, 1)
		assert.Equal(t, "USA", cartesian.Series[0].Name)
		assert.Len(t, alerts, 1)

		_, alerts = ApplyDataLimits(foodCartesian(), DataLimits{})
		assert.Empty(t, alerts)
	}
}

func testApplyDataLimitsIdempotentFunc() func(*testing.T) {
	return func(t *testing.T) {
		limits := DataLimits{SeriesCapacity: 1, CategoriesCapacity: 2}

		once, alerts := ApplyDataLimits(foodCartesian(), limits)
		assert.Len(t, alerts, 2)

		twice, alerts := ApplyDataLimits(once, limits)
		assert.Empty(t, alerts)
		assert.Equal(t, once, twice)
	}
}

func testApplyDataLimitsRangeFunc() func(*testing.T) {
	return func(t *testing.T) {
		upper := chartdata.SeriesWithValues{Name: "a_upper", Title: "$range$a", RangeKey: "$range$a", Data: make([]chartdata.SeriesValueData, 3)}
		lower := chartdata.SeriesWithValues{Name: "a_lower", Title: "$range$a", RangeKey: "$range$a", Data: make([]chartdata.SeriesValueData, 3)}
		other := chartdata.SeriesWithValues{Name: "b_upper", Title: "$range$b", RangeKey: "$range$b", Data: make([]chartdata.SeriesValueData, 3)}
		otherLower := chartdata.SeriesWithValues{Name: "b_lower", Title: "$range$b", RangeKey: "$range$b", Data: make([]chartdata.SeriesValueData, 3)}

		limited, _ := ApplyDataLimits(&chartdata.RangeChartData{
			XAxisCount:  1,
			XValues:     make([]chartdata.CategoricalXValues, 3),
			Series:      []chartdata.SeriesWithValues{upper, other},
			SeriesOther: []chartdata.SeriesWithValues{lower, otherLower},
		}, DataLimits{SeriesCapacity: 1, CategoriesCapacity: 2})

		rangeData := limited.(*chartdata.RangeChartData)
		require.Len(t, rangeData.SeriesOther, 1)
		assert.Equal(t, "a_lower", rangeData.SeriesOther[0].Name)
		assert.Len(t, rangeData.SeriesOther[0].Data, 2)

		limited, _ = ApplyDataLimits(&chartdata.BoxplotChartData{
			XAxisCount: 1,
			XValues:    make([]chartdata.CategoricalXValues, 3),
			Outliers:   []chartdata.OutlierPoint{{X: 0, Value: 1}, {X: 2, Value: 5}},
		}, DataLimits{CategoriesCapacity: 2})
		assert.Len(t, limited.(*chartdata.BoxplotChartData).Outliers, 1)
	}
}

func sliceTotal(slices []Slice) float64 {
	total := 0.0
	for _, s := range slices {
		total += s.Value
	}
	return total
}

func testConvolveByPercentageFunc() func(*testing.T) {
	return func(t *testing.T) {
		slices := []Slice{{Name: "A", Value: 50}, {Name: "B", Value: 45}, {Name: "C", Value: 2}, {Name: "D", Value: 1}, {Name: "E", Value: 2}}

		result := Convolve(slices, DefaultDesignOptions().Convolution)
		require.NotNil(t, result.Others)
		assert.Equal(t, []Slice{{Name: "A", Value: 50}, {Name: "B", Value: 45}}, result.Slices)
		assert.Equal(t, OthersName, result.Others.Name)
		assert.Equal(t, 5.0, result.Others.Value)
		assert.Len(t, result.Collapsed, 3)
		assert.Equal(t, sliceTotal(slices), sliceTotal(result.Slices)+result.Others.Value)
	}
}

func testConvolveBySlicesCountFunc() func(*testing.T) {
	return func(t *testing.T) {
		slices := []Slice{{Name: "A", Value: 10}, {Name: "B", Value: 30}, {Name: "C", Value: 20}, {Name: "D", Value: 5}}

		result := Convolve(slices, ConvolutionOptions{
			Enabled:                 true,
			SelectedConvolutionType: ConvolutionBySlicesCount,
			IndependentSlicesCount:  2,
		})
		require.NotNil(t, result.Others)
		assert.Equal(t, []Slice{{Name: "B", Value: 30}, {Name: "C", Value: 20}}, result.Slices)
		assert.Equal(t, 15.0, result.Others.Value)
		assert.Equal(t, []Slice{{Name: "A", Value: 10}, {Name: "D", Value: 5}}, result.Collapsed)
	}
}

func testConvolveSingleSliceFunc() func(*testing.T) {
	return func(t *testing.T) {
		slices := []Slice{{Name: "A", Value: 98}, {Name: "B", Value: 2}}

		result := Convolve(slices, DefaultDesignOptions().Convolution)
		assert.Nil(t, result.Others)
		assert.Equal(t, slices, result.Slices)
	}
}

func testConvolveDisabledFunc() func(*testing.T) {
	return func(t *testing.T) {
		slices := []Slice{{Name: "A", Value: 50}, {Name: "B", Value: 1}, {Name: "C", Value: 1}}
		options := DefaultDesignOptions().Convolution
		options.Enabled = false

		result := Convolve(slices, options)
		assert.Nil(t, result.Others)
		assert.Len(t, result.Slices, 3)
	}
}

func testBuildCartesianFunc() func(*testing.T) {
	return func(t *testing.T) {
		food := testutils.FoodTable()
		// drop Wine in France
		food.Rows = append(food.Rows[:3:3], food.Rows[4:]...)

		options, alerts := build(t, charttype.Column, dataoptions.CartesianChartDataOptions{
			Category: columns("Food"),
			Value:    measures("Revenue"),
			BreakBy:  columns("Geo"),
		}, food, DefaultDesignOptions())

		assert.Empty(t, alerts)
		assert.Equal(t, "column", options.Chart.Type)
		require.Len(t, options.XAxis, 1)
		assert.Equal(t, AxisTypeCategory, options.XAxis[0].Type)
		assert.Equal(t, []string{"Pies", "Wine", "Pasta"}, options.XAxis[0].Categories)

		require.Len(t, options.Series, 2)
		assert.Equal(t, "USA", options.Series[0].Name)
		assert.Equal(t, []interface{}{100.0, 80.0, 150.0}, yValues(options.Series[0]))
		assert.Equal(t, []interface{}{120.0, nil, 130.0}, yValues(options.Series[1]))

		require.Len(t, options.YAxis, 1)
		assert.Equal(t, "Revenue", options.YAxis[0].Title.Text)
		assert.Equal(t, "1.5K", options.YAxis[0].Formatter(1500))

		b, err := json.Marshal(options)
		require.NoError(t, err)
		assert.Contains(t, string(b), `"data":[{"y":120,"custom":{"formattedValue":"120"}},null,`)

		options, _ = build(t, charttype.Column, dataoptions.CartesianChartDataOptions{
			Category: columns("Food"),
			Value:    measures("Revenue"),
		}, food, DesignOptions{StackType: StackPercent})
		assert.Equal(t, StackPercent, options.PlotOptions.Series.Stacking)
	}
}

func testBuildCartesianSnapshotFunc() func(*testing.T) {
	return func(t *testing.T) {
		options, _ := build(t, charttype.Line, dataoptions.CartesianChartDataOptions{
			Category: columns("Food"),
			Value:    measures("Revenue", "Expenses"),
		}, testutils.FoodTable(), DefaultDesignOptions())

		snapshotter.SnapshotTJson(t, options)
	}
}

func testBuildRightAxisFunc() func(*testing.T) {
	return func(t *testing.T) {
		y := measures("Revenue", "Expenses")
		y[1].ShowOnRightAxis = true

		options, _ := build(t, charttype.Line, dataoptions.CartesianChartDataOptions{
			Category: columns("Food"),
			Value:    y,
		}, testutils.FoodTable(), DefaultDesignOptions())

		require.Len(t, options.YAxis, 2)
		assert.True(t, options.YAxis[1].Opposite)
		assert.Equal(t, "Expenses", options.YAxis[1].Title.Text)
		assert.Equal(t, 0, options.Series[0].YAxis)
		assert.Equal(t, 1, options.Series[1].YAxis)
	}
}

func testBuildSeriesStyleFunc() func(*testing.T) {
	return func(t *testing.T) {
		width := 5
		hidden := false
		y := measures("Revenue", "Expenses")
		y[0].SeriesStyleOptions = &dataoptions.SeriesStyleOptions{
			LineWidth: &width,
			DashStyle: "Dot",
			Markers:   &dataoptions.MarkerStyle{Enabled: &hidden},
		}

		design := DefaultDesignOptions()
		design.Series.Markers.Fill = MarkerHollow

		options, _ := build(t, charttype.Line, dataoptions.CartesianChartDataOptions{
			Category: columns("Food"),
			Value:    y,
		}, testutils.FoodTable(), design)

		assert.Equal(t, 5, options.Series[0].LineWidth)
		assert.Equal(t, "Dot", options.Series[0].DashStyle)
		assert.False(t, options.Series[0].Marker.Enabled)

		assert.Equal(t, 2, options.Series[1].LineWidth)
		assert.Equal(t, "Solid", options.Series[1].DashStyle)
		assert.Equal(t, "round", options.Series[1].LineCap)
		assert.True(t, options.Series[1].Marker.Enabled)
		assert.Equal(t, "#ffffff", options.Series[1].Marker.FillColor)
	}
}

func datesTable(t *testing.T) table.DataTable {
	dates, err := table.NewTable(
		[]table.Column{{Name: "Date", Type: table.TypeDate}, {Name: "Revenue", Type: table.TypeNumber}},
		[]table.Row{testutils.NewRow("2023-01-15", 10), testutils.NewRow("2024-03-01", 20)},
	)
	require.NoError(t, err)
	return dates
}

func testBuildDateCategoriesFunc() func(*testing.T) {
	return func(t *testing.T) {
		x := columns("Date")
		x[0].Column.Type = table.TypeDate

		options, _ := build(t, charttype.Line, dataoptions.CartesianChartDataOptions{
			Category: x,
			Value:    measures("Revenue"),
		}, datesTable(t), DefaultDesignOptions())
		assert.Equal(t, []string{"2023", "2024"}, options.XAxis[0].Categories)

		x[0].DateFormat = "MMM yyyy"
		x[0].Continuous = true
		options, _ = build(t, charttype.Line, dataoptions.CartesianChartDataOptions{
			Category: x,
			Value:    measures("Revenue"),
		}, datesTable(t), DefaultDesignOptions())
		assert.Equal(t, AxisTypeDatetime, options.XAxis[0].Type)
		assert.Empty(t, options.XAxis[0].Categories)
		require.NotNil(t, options.Series[0].Data[0].X)
		assert.Equal(t, 1673740800000.0, *options.Series[0].Data[0].X)
	}
}

func slicesTable(t *testing.T) table.DataTable {
	slices, err := table.NewTable(
		[]table.Column{{Name: "Name", Type: table.TypeString}, {Name: "Value", Type: table.TypeNumber}},
		[]table.Row{
			testutils.NewRow("A", 50),
			testutils.NewRow("B", 45),
			testutils.NewRow("C", 2),
			testutils.NewRow("D", 1),
			testutils.NewRow("E", 2),
		},
	)
	require.NoError(t, err)
	return slices
}

func testBuildPieFunc() func(*testing.T) {
	return func(t *testing.T) {
		categorical := dataoptions.CategoricalChartDataOptions{Category: columns("Name"), Value: measures("Value")}

		options, _ := build(t, charttype.Pie, categorical, slicesTable(t), DefaultDesignOptions())
		require.Len(t, options.Series, 1)
		data := options.Series[0].Data
		require.Len(t, data, 3)
		assert.Equal(t, "A", data[0].Name)
		assert.Equal(t, OthersName, data[2].Name)
		assert.Equal(t, 5.0, *data[2].Y)
		assert.Equal(t, OthersDrilldownID, data[2].Drilldown)
		require.NotNil(t, options.Drilldown)
		assert.Len(t, options.Drilldown.Series[0].Data, 3)

		options, _ = build(t, charttype.Treemap, categorical, slicesTable(t), DefaultDesignOptions())
		assert.Len(t, options.Series[0].Data, 5)
		assert.Nil(t, options.Drilldown)
	}
}

func testBuildTreemapFunc() func(*testing.T) {
	return func(t *testing.T) {
		options, _ := build(t, charttype.Treemap, dataoptions.CategoricalChartDataOptions{
			Category: columns("Food", "Geo"),
			Value:    measures("Revenue"),
		}, testutils.FoodTable(), DefaultDesignOptions())

		data := options.Series[0].Data
		require.Len(t, data, 9)
		assert.Equal(t, Point{ID: "Pies", Name: "Pies"}, data[0])
		assert.Equal(t, "Pies|USA", data[1].ID)
		assert.Equal(t, "Pies", data[1].Parent)
		assert.Equal(t, 100.0, *data[1].Value)
		assert.Equal(t, "Pies|France", data[4].ID)
	}
}

func testBuildScatterFunc() func(*testing.T) {
	return func(t *testing.T) {
		options, _ := build(t, charttype.Scatter, dataoptions.ScatterChartDataOptions{
			X:            &measures("Revenue")[0],
			Y:            &measures("Expenses")[0],
			BreakByColor: &columns("Geo")[0],
		}, testutils.FoodTable(), DefaultDesignOptions())

		assert.Equal(t, SeriesTypeScatter, options.Chart.Type)
		require.Len(t, options.Series, 2)
		assert.Equal(t, "USA", options.Series[0].Name)
		require.Len(t, options.Series[0].Data, 3)
		assert.Equal(t, 100.0, *options.Series[0].Data[0].X)
		assert.Equal(t, 50.0, *options.Series[0].Data[0].Y)
		assert.Nil(t, options.Series[0].Data[0].Z)

		options, _ = build(t, charttype.Scatter, dataoptions.ScatterChartDataOptions{
			X:    &measures("Food")[0],
			Y:    &measures("Expenses")[0],
			Size: &measures("COGS")[0],
		}, testutils.FoodTable(), DefaultDesignOptions())
		assert.Equal(t, SeriesTypeBubble, options.Chart.Type)
		assert.Equal(t, []string{"Pies", "Wine", "Pasta"}, options.XAxis[0].Categories)
		require.Len(t, options.Series, 1)
		assert.Equal(t, 2.0, *options.Series[0].Data[4].X)
		assert.Equal(t, 40.0, *options.Series[0].Data[4].Z)
	}
}

func testBuildBoxplotFunc() func(*testing.T) {
	return func(t *testing.T) {
		boxes, err := table.NewTable(
			[]table.Column{
				{Name: "Food", Type: table.TypeString},
				{Name: "whiskerMin", Type: table.TypeNumber},
				{Name: "boxMin", Type: table.TypeNumber},
				{Name: "median", Type: table.TypeNumber},
				{Name: "boxMax", Type: table.TypeNumber},
				{Name: "whiskerMax", Type: table.TypeNumber},
				{Name: "outliers", Type: table.TypeString},
			},
			[]table.Row{
				testutils.NewRow("Pies", 10, 20, 30, 40, 50, "1,x"),
				testutils.NewRow("Wine", 5, 15, 25, 35, 45, table.ComparableData{}),
			},
		)
		require.NoError(t, err)

		options, _ := build(t, charttype.Boxplot, dataoptions.BoxplotChartDataOptions{
			Category:   columns("Food"),
			Value:      measures("whiskerMin", "boxMin", "median", "boxMax", "whiskerMax"),
			Outliers:   columns("outliers"),
			ValueTitle: "Revenue",
		}, boxes, DefaultDesignOptions())

		require.Len(t, options.Series, 2)
		box := options.Series[0].Data[0]
		assert.Equal(t, 10.0, *box.Low)
		assert.Equal(t, 20.0, *box.Q1)
		assert.Equal(t, 30.0, *box.Median)
		assert.Equal(t, 40.0, *box.Q3)
		assert.Equal(t, 50.0, *box.High)
		assert.Equal(t, "Revenue", options.YAxis[0].Title.Text)

		outliers := options.Series[1].Data
		require.Len(t, outliers, 2)
		assert.Equal(t, 1.0, *outliers[0].Y)
		assert.Nil(t, outliers[1].Y)
	}
}

func testBuildIndicatorFunc() func(*testing.T) {
	return func(t *testing.T) {
		options, _ := build(t, charttype.Indicator, dataoptions.IndicatorChartDataOptions{
			Value:     measures("Revenue"),
			Secondary: measures("Expenses"),
		}, testutils.FoodTable(), DefaultDesignOptions())

		require.NotNil(t, options.Indicator)
		assert.Equal(t, "100", options.Indicator.FormattedValue)
		assert.Equal(t, "50", options.Indicator.FormattedSecondaryValue)
		assert.Equal(t, "Revenue", options.Indicator.Title)

		empty, _, err := BuildOptions(&chartdata.IndicatorChartData{}, charttype.Indicator, DefaultDesignOptions(), nil)
		require.NoError(t, err)
		assert.Nil(t, empty.Indicator)
	}
}

func testBuildRangeFunc() func(*testing.T) {
	return func(t *testing.T) {
		months, err := table.NewTable(
			[]table.Column{
				{Name: "Month", Type: table.TypeString},
				{Name: "Revenue_upper", Type: table.TypeNumber},
				{Name: "Revenue_lower", Type: table.TypeNumber},
			},
			[]table.Row{testutils.NewRow("Jan", 12, 8), testutils.NewRow("Feb", 25, 15)},
		)
		require.NoError(t, err)

		options, _ := build(t, charttype.Arearange, dataoptions.RangeChartDataOptions{
			Category: columns("Month"),
			Value:    measures("Revenue"),
		}, months, DefaultDesignOptions())

		require.Len(t, options.Series, 1)
		assert.Equal(t, SeriesTypeArearange, options.Series[0].Type)
		assert.Equal(t, "Revenue", options.Series[0].Name)
		assert.Equal(t, 8.0, *options.Series[0].Data[0].Low)
		assert.Equal(t, 12.0, *options.Series[0].Data[0].High)
	}
}

func geoMonths(t *testing.T) table.DataTable {
	months, err := table.NewTable(
		[]table.Column{
			{Name: "Month", Type: table.TypeString},
			{Name: "Geo", Type: table.TypeString},
			{Name: "Revenue", Type: table.TypeNumber},
			{Name: "Revenue_upper", Type: table.TypeNumber},
			{Name: "Revenue_lower", Type: table.TypeNumber},
		},
		[]table.Row{
			testutils.NewRow("Jan", "USA", 10, 12, 8),
			testutils.NewRow("Jan", "France", 5, 6, 4),
			testutils.NewRow("Feb", "USA", 20, 25, 15),
			testutils.NewRow("Feb", "France", 7, 9, 5),
		},
	)
	require.NoError(t, err)
	return months
}

func testBuildRangeBreakByFunc() func(*testing.T) {
	return func(t *testing.T) {
		options, _ := build(t, charttype.Arearange, dataoptions.RangeChartDataOptions{
			Category: columns("Month"),
			Value:    measures("Revenue"),
			BreakBy:  columns("Geo"),
		}, geoMonths(t), DefaultDesignOptions())

		require.Len(t, options.Series, 2)
		assert.Equal(t, "USA", options.Series[0].Name)
		assert.Equal(t, "France", options.Series[1].Name)
		for _, s := range options.Series {
			assert.Equal(t, SeriesTypeArearange, s.Type)
		}
		assert.Equal(t, 8.0, *options.Series[0].Data[0].Low)
		assert.Equal(t, 12.0, *options.Series[0].Data[0].High)
		assert.Equal(t, 5.0, *options.Series[1].Data[1].Low)
		assert.Equal(t, 9.0, *options.Series[1].Data[1].High)
	}
}

func testBuildForecastBreakByFunc() func(*testing.T) {
	return func(t *testing.T) {
		y := measures("Revenue")
		y[0].Column.Title = "$forecast Revenue"

		options, _ := build(t, charttype.Line, dataoptions.CartesianChartDataOptions{
			Category: columns("Month"),
			Value:    y,
			BreakBy:  columns("Geo"),
		}, geoMonths(t), DefaultDesignOptions())

		require.Len(t, options.Series, 2)
		assert.Equal(t, "line", options.Series[0].Type)
		assert.Equal(t, "Revenue", options.Series[0].Name)
		assert.Equal(t, forecastDashStyle, options.Series[0].DashStyle)
		assert.Equal(t, SeriesTypeArearange, options.Series[1].Type)
		assert.Equal(t, "Revenue", options.Series[1].Name)
		assert.Equal(t, 8.0, *options.Series[1].Data[0].Low)
		assert.Equal(t, 12.0, *options.Series[1].Data[0].High)

		assert.Equal(t, "Trend", displayTitle("$trend Trend"))
		assert.Equal(t, "$forecast", displayTitle("$forecast"))
	}
}

func testBuildScatterPointColorFunc() func(*testing.T) {
	return func(t *testing.T) {
		colored := func(v interface{}, color string) table.ComparableData {
			c := testutils.NewCell(v)
			c.Color = color
			return c
		}
		breakBy := colored("USA", "#0000ff")

		options, _, err := BuildOptions(&chartdata.ScatterChartData{
			ScatterDataTable: []chartdata.ScatterDataRow{
				{X: colored(1, "#ff0000"), Y: colored(2, "#00ff00"), BreakByColor: &breakBy},
				{X: colored(3, "#ff0000"), Y: colored(4, "#00ff00")},
				{X: colored(5, "#ff0000"), Y: testutils.NewCell(6)},
			},
		}, charttype.Scatter, DefaultDesignOptions(), nil)
		require.NoError(t, err)

		require.Len(t, options.Series, 2)
		assert.Equal(t, "#0000ff", options.Series[0].Data[0].Color)
		require.Len(t, options.Series[1].Data, 2)
		assert.Equal(t, "#00ff00", options.Series[1].Data[0].Color)
		assert.Equal(t, "#ff0000", options.Series[1].Data[1].Color)
	}
}

func testBuildMapsFunc() func(*testing.T) {
	return func(t *testing.T) {
		options, _ := build(t, charttype.Areamap, dataoptions.AreamapChartDataOptions{
			Geo:   columns("Geo"),
			Color: measures("Revenue"),
		}, testutils.FoodTable(), DefaultDesignOptions())
		assert.Len(t, options.Geo, 2)

		options, _ = build(t, charttype.Scattermap, dataoptions.ScattermapChartDataOptions{
			Geo: columns("Geo"),
		}, testutils.FoodTable(), DefaultDesignOptions())
		assert.Len(t, options.Locations, 2)
	}
}

func testBuildErrorsFunc() func(*testing.T) {
	return func(t *testing.T) {
		_, _, err := BuildOptions(foodCartesian(), charttype.ChartType("gauge"), DefaultDesignOptions(), nil)
		var unsupported *chartdata.UnsupportedChartTypeError
		assert.True(t, errors.As(err, &unsupported))

		_, _, err = BuildOptions(foodCartesian(), charttype.Pie, DefaultDesignOptions(), nil)
		assert.ErrorIs(t, err, ErrChartDataMismatch)

		_, _, err = BuildOptions(nil, charttype.Pie, DefaultDesignOptions(), nil)
		assert.ErrorIs(t, err, ErrChartDataMismatch)
	}
}
