package chartdata

import (
	"strings"

	"github.com/sisense/compose-sdk-charts/pkg/dataoptions"
	"github.com/sisense/compose-sdk-charts/pkg/table"
)

const (
	ForecastPrefix = "$forecast"
	TrendPrefix    = "$trend"
	RangeMarker    = "$range$"
)

func IsForecast(m dataoptions.StyledMeasureColumn) bool {
	return strings.HasPrefix(m.Title(), ForecastPrefix)
}

func IsTrend(m dataoptions.StyledMeasureColumn) bool {
	return strings.HasPrefix(m.Title(), TrendPrefix)
}

func HasForecast(measures []dataoptions.StyledMeasureColumn) bool {
	for _, m := range measures {
		if IsForecast(m) {
			return true
		}
	}
	return false
}

// RangeTitle marks a series title as one side of a range
func RangeTitle(title string) string {
	return RangeMarker + title
}

func IsRangeTitle(title string) bool {
	return strings.HasPrefix(title, RangeMarker)
}

// RangeData runs the cartesian builder for the upper bounds and again for the lower bounds.
// Measures without bounds are plotted as regular series alongside the upper bounds.
// Both passes split series the same way, by break-by only when the upper pass has a single measure.
// Both sides of a range share the same RangeKey, lower bound series go to SeriesOther.
func RangeData(options dataoptions.RangeChartDataOptionsInternal, dataTable table.DataTable) *RangeChartData {
	upper := dataoptions.CartesianChartDataOptionsInternal{
		X:                options.X,
		BreakBy:          options.BreakBy,
		SeriesToColorMap: options.SeriesToColorMap,
	}
	lower := upper

	for _, m := range options.Y {
		if m.UpperBound == "" || m.LowerBound == "" {
			upper.Y = append(upper.Y, m)
			continue
		}
		upper.Y = append(upper.Y, boundMeasure(m, m.UpperBound))
		lower.Y = append(lower.Y, boundMeasure(m, m.LowerBound))
	}

	xColumns := getColumns(dataTable, options.X)
	if len(dataTable.Rows) == 0 {
		return &RangeChartData{
			XAxisCount:  0,
			XValues:     []CategoricalXValues{},
			Series:      []SeriesWithValues{},
			SeriesOther: []SeriesWithValues{},
		}
	}

	byBreakBy := seriesByBreakBy(upper, dataTable)
	xValues := getOrderedXValues(dataTable, xColumns, upper.Y)

	seriesOther := []SeriesWithValues{}
	if len(lower.Y) > 0 {
		seriesOther = buildSeries(lower, dataTable, xColumns, xValues, byBreakBy)
	}

	return &RangeChartData{
		XAxisCount:  len(xColumns),
		XValues:     xValues,
		Series:      buildSeries(upper, dataTable, xColumns, xValues, byBreakBy),
		SeriesOther: seriesOther,
	}
}

// AdvancedAnalyticsData adds a forecast range next to every forecast measure. Bound columns are
// named after the measure with the upper and lower suffixes.
func AdvancedAnalyticsData(options dataoptions.CartesianChartDataOptionsInternal, dataTable table.DataTable) *RangeChartData {
	rangeOptions := dataoptions.RangeChartDataOptionsInternal{
		X:                options.X,
		BreakBy:          options.BreakBy,
		SeriesToColorMap: options.SeriesToColorMap,
	}

	for _, m := range options.Y {
		plain := m
		plain.UpperBound = ""
		plain.LowerBound = ""
		rangeOptions.Y = append(rangeOptions.Y, plain)

		if !IsForecast(m) {
			continue
		}
		bounded := m
		if bounded.UpperBound == "" {
			bounded.UpperBound = m.Name() + dataoptions.UpperBoundSuffix
		}
		if bounded.LowerBound == "" {
			bounded.LowerBound = m.Name() + dataoptions.LowerBoundSuffix
		}
		rangeOptions.Y = append(rangeOptions.Y, bounded)
	}

	return RangeData(rangeOptions, dataTable)
}

func boundMeasure(m dataoptions.StyledMeasureColumn, name string) dataoptions.StyledMeasureColumn {
	bound := m
	bound.Column.Name = name
	bound.Column.Title = RangeTitle(m.Title())
	bound.SortType = dataoptions.SortNone
	bound.UpperBound = ""
	bound.LowerBound = ""
	return bound
}
