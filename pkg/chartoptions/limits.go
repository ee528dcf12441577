package chartoptions

import (
	"fmt"

	"github.com/sisense/compose-sdk-charts/pkg/chartdata"
)

// ApplyDataLimits keeps the first categories and series within the limits and describes what was
// cut in the returned alerts. The input is not modified. Applying the same limits twice yields the
// same data and no alerts the second time.
func ApplyDataLimits(data chartdata.ChartData, limits DataLimits) (chartdata.ChartData, []string) {
	var alerts []string

	switch d := data.(type) {
	case *chartdata.CartesianChartData:
		xValues, series := limitCategories(d.XValues, d.Series, limits.CategoriesCapacity, &alerts)
		series = limitSeries(series, limits.SeriesCapacity, &alerts)
		return &chartdata.CartesianChartData{XAxisCount: d.XAxisCount, XValues: xValues, Series: series}, alerts
	case *chartdata.CategoricalChartData:
		xValues, series := limitCategories(d.XValues, d.Series, limits.CategoriesCapacity, &alerts)
		series = limitSeries(series, limits.SeriesCapacity, &alerts)
		return &chartdata.CategoricalChartData{XAxisCount: d.XAxisCount, XValues: xValues, Series: series}, alerts
	case *chartdata.RangeChartData:
		xValues, series := limitCategories(d.XValues, d.Series, limits.CategoriesCapacity, &alerts)
		_, other := limitCategories(d.XValues, d.SeriesOther, limits.CategoriesCapacity, nil)
		series = limitSeries(series, limits.SeriesCapacity, &alerts)
		return &chartdata.RangeChartData{
			XAxisCount:  d.XAxisCount,
			XValues:     xValues,
			Series:      series,
			SeriesOther: pairedSeries(series, other),
		}, alerts
	case *chartdata.BoxplotChartData:
		xValues, series := limitCategories(d.XValues, d.Series, limits.CategoriesCapacity, &alerts)
		outliers := make([]chartdata.OutlierPoint, 0, len(d.Outliers))
		for _, o := range d.Outliers {
			if o.X < len(xValues) {
				outliers = append(outliers, o)
			}
		}
		return &chartdata.BoxplotChartData{
			XAxisCount: d.XAxisCount,
			XValues:    xValues,
			Series:     series,
			Outliers:   outliers,
			ValueTitle: d.ValueTitle,
		}, alerts
	}

	return data, alerts
}

func limitCategories(xValues []chartdata.CategoricalXValues, series []chartdata.SeriesWithValues, capacity int, alerts *[]string) ([]chartdata.CategoricalXValues, []chartdata.SeriesWithValues) {
	if capacity <= 0 || len(xValues) <= capacity {
		return xValues, series
	}

	if alerts != nil {
		*alerts = append(*alerts, fmt.Sprintf("%d categories exceed the limit of %d, showing the first %d", len(xValues), capacity, capacity))
	}

	limited := make([]chartdata.SeriesWithValues, len(series))
	for i, s := range series {
		if len(s.Data) > capacity {
			s.Data = s.Data[:capacity:capacity]
		}
		limited[i] = s
	}
	return xValues[:capacity:capacity], limited
}

func limitSeries(series []chartdata.SeriesWithValues, capacity int, alerts *[]string) []chartdata.SeriesWithValues {
	if capacity <= 0 || len(series) <= capacity {
		return series
	}
	*alerts = append(*alerts, fmt.Sprintf("%d series exceed the limit of %d, showing the first %d", len(series), capacity, capacity))
	return series[:capacity:capacity]
}

// pairedSeries keeps the lower bound series whose range is still present
func pairedSeries(series []chartdata.SeriesWithValues, other []chartdata.SeriesWithValues) []chartdata.SeriesWithValues {
	ranges := make(map[string]bool, len(series))
	for _, s := range series {
		if s.RangeKey != "" {
			ranges[s.RangeKey] = true
		}
	}
	paired := make([]chartdata.SeriesWithValues, 0, len(other))
	for _, s := range other {
		if ranges[s.RangeKey] {
			paired = append(paired, s)
		}
	}
	return paired
}
