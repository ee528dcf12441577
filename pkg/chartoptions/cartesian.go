package chartoptions

import (
	"strings"
	"time"

	"github.com/sisense/compose-sdk-charts/pkg/chartdata"
	"github.com/sisense/compose-sdk-charts/pkg/charttype"
	"github.com/sisense/compose-sdk-charts/pkg/dataoptions"
	"github.com/sisense/compose-sdk-charts/pkg/format"
	"github.com/sisense/compose-sdk-charts/pkg/table"
	ctime "github.com/sisense/compose-sdk-charts/pkg/time"
)

const (
	SeriesTypeArearange = "arearange"

	forecastDashStyle = "Dash"
	trendDashStyle    = "ShortDot"
)

func (b *builder) cartesian(xAxisCount int, xValues []chartdata.CategoricalXValues, series []chartdata.SeriesWithValues, seriesOther []chartdata.SeriesWithValues) *HighchartsOptions {
	x, y := b.axesDataOptions()
	seriesType := cartesianSeriesType(b.chartType)

	options := b.base()
	options.Chart.Type = seriesType
	options.Chart.Polar = b.chartType == charttype.Polar
	options.PlotOptions.Series.Stacking = stacking(b.design.StackType)

	continuous := xAxisCount > 0 && len(x) > 0 && x[0].IsDate() && x[0].Continuous
	xAxis := b.design.XAxis.axis(columnNames(x))
	if continuous {
		xAxis.Type = AxisTypeDatetime
	} else {
		xAxis.Type = AxisTypeCategory
		xAxis.Categories = b.categories(xValues, x)
	}
	options.XAxis = []Axis{xAxis}

	var left, right []dataoptions.StyledMeasureColumn
	for _, m := range y {
		if m.ShowOnRightAxis {
			right = append(right, m)
		} else {
			left = append(left, m)
		}
	}
	options.YAxis = []Axis{b.valueAxis(b.design.YAxis, left)}
	if len(right) > 0 {
		y2 := b.valueAxis(b.design.Y2Axis, right)
		y2.Opposite = true
		options.YAxis = append(options.YAxis, y2)
	}

	lower := make(map[string]chartdata.SeriesWithValues, len(seriesOther))
	for _, s := range seriesOther {
		if s.RangeKey != "" {
			lower[s.RangeKey] = s
		}
	}

	for _, s := range series {
		axisIndex := 0
		if s.ShowOnRightAxis && len(options.YAxis) > 1 {
			axisIndex = 1
		}
		formatter := options.YAxis[axisIndex].Formatter
		if m := findMeasure(y, s.Column); m != nil {
			formatter = b.numberFormatter(m.FormatConfig())
		}

		var hs Series
		if low, ok := lower[s.RangeKey]; ok && s.RangeKey != "" {
			hs = b.rangeSeries(s, low, formatter)
		} else {
			hs = b.lineSeries(s, seriesType, formatter)
		}
		hs.YAxis = axisIndex

		if continuous {
			for i := range hs.Data {
				if i < len(xValues) {
					hs.Data[i] = withDatetimeX(hs.Data[i], xValues[i])
				}
			}
		}
		options.Series = append(options.Series, hs)
	}

	return options
}

func (b *builder) lineSeries(s chartdata.SeriesWithValues, seriesType string, formatter func(float64) string) Series {
	style := resolveSeriesStyle(b.design.Series, s.SeriesStyleOptions)
	switch {
	case strings.HasPrefix(s.Title, chartdata.ForecastPrefix):
		style.DashStyle = forecastDashStyle
	case strings.HasPrefix(s.Title, chartdata.TrendPrefix):
		style.DashStyle = trendDashStyle
	}

	if s.ChartType != "" {
		seriesType = cartesianSeriesType(charttype.ChartType(s.ChartType))
	}

	data := make([]Point, len(s.Data))
	for i, v := range s.Data {
		data[i] = point(v, formatter)
	}

	return Series{
		ID:           s.Name,
		Name:         displayTitle(s.Title),
		Type:         seriesType,
		Data:         data,
		Color:        s.Color,
		LineWidth:    style.LineWidth,
		DashStyle:    style.DashStyle,
		LineCap:      style.EndCap,
		Shadow:       style.Shadow,
		Marker:       style.marker(),
		ConnectNulls: s.ConnectNulls,
	}
}

// rangeSeries pairs an upper bound series with the lower bound series of the same range
func (b *builder) rangeSeries(upper chartdata.SeriesWithValues, lower chartdata.SeriesWithValues, formatter func(float64) string) Series {
	data := make([]Point, len(upper.Data))
	for i, high := range upper.Data {
		if i >= len(lower.Data) {
			data[i] = Point{IsNull: true}
			continue
		}
		highValue := finitePtr(high.Value)
		lowValue := finitePtr(lower.Data[i].Value)
		if highValue == nil || lowValue == nil {
			data[i] = Point{IsNull: true}
			continue
		}
		data[i] = Point{Low: lowValue, High: highValue, Color: high.Color}
		if formatter != nil || high.Blur {
			data[i].Custom = &PointCustom{Blur: high.Blur}
			if formatter != nil {
				data[i].Custom.FormattedValue = formatter(*lowValue) + " - " + formatter(*highValue)
			}
		}
	}

	return Series{
		ID:           upper.Name,
		Name:         displayTitle(upper.Title),
		Type:         SeriesTypeArearange,
		Data:         data,
		Color:        upper.Color,
		LineWidth:    0,
		Marker:       &Marker{Enabled: false},
		ConnectNulls: upper.ConnectNulls,
	}
}

func (b *builder) valueAxis(design AxisOptions, measures []dataoptions.StyledMeasureColumn) Axis {
	axis := design.axis(measureTitles(measures))
	axis.Type = AxisTypeLinear
	config := format.DefaultNumberFormatConfig()
	if len(measures) > 0 {
		config = measures[0].FormatConfig()
	}
	axis.Formatter = b.numberFormatter(config)
	return axis
}

// categories labels each tick, formatting date levels with their date format
func (b *builder) categories(xValues []chartdata.CategoricalXValues, x []dataoptions.StyledColumn) []string {
	categories := make([]string, len(xValues))
	for i, xv := range xValues {
		labels := make([]string, len(xv.XValues))
		copy(labels, xv.XValues)
		for level := range labels {
			if level >= len(x) || level >= len(xv.RawValues) || !x[level].IsDate() {
				continue
			}
			if t, ok := rawDate(xv.RawValues[level]); ok {
				labels[level] = format.ApplyDateFormat(t, dateFormat(x[level]))
			}
		}
		categories[i] = strings.Join(labels, " - ")
	}
	return categories
}

func (b *builder) axesDataOptions() ([]dataoptions.StyledColumn, []dataoptions.StyledMeasureColumn) {
	switch o := b.dataOptions.(type) {
	case dataoptions.CartesianChartDataOptionsInternal:
		return o.X, o.Y
	case dataoptions.RangeChartDataOptionsInternal:
		return o.X, o.Y
	case dataoptions.CategoricalChartDataOptionsInternal:
		return o.BreakBy, o.Y
	case dataoptions.BoxplotChartDataOptionsInternal:
		return o.Category, o.Value
	}
	return nil, nil
}

func withDatetimeX(p Point, xv chartdata.CategoricalXValues) Point {
	if len(xv.RawValues) == 0 {
		return p
	}
	t, ok := rawDate(xv.RawValues[0])
	if !ok {
		return p
	}
	if p.IsNull {
		p = Point{}
	}
	p.X = floatPtr(float64(ctime.UnixMilli(t)))
	return p
}

func rawDate(raw table.RawValue) (time.Time, bool) {
	if raw.Number != nil {
		return ctime.FromUnixMilli(int64(*raw.Number)), true
	}
	if raw.Text != nil {
		t, err := ctime.ParseDate(*raw.Text)
		return t, err == nil
	}
	return time.Time{}, false
}

func dateFormat(c dataoptions.StyledColumn) string {
	if c.DateFormat != "" {
		return c.DateFormat
	}
	return ctime.DefaultDateFormat(c.Granularity)
}

func cartesianSeriesType(chartType charttype.ChartType) string {
	switch chartType {
	case charttype.Line, charttype.Area, charttype.Bar, charttype.Column:
		return string(chartType)
	case charttype.Polar:
		return string(charttype.Column)
	case charttype.Arearange:
		return string(charttype.Line)
	}
	return string(charttype.Line)
}

func stacking(stackType string) string {
	switch stackType {
	case StackNormal, StackPercent:
		return stackType
	}
	return StackNone
}

// displayTitle strips the range marker and the forecast and trend prefixes from a series title
func displayTitle(title string) string {
	title = strings.TrimPrefix(title, chartdata.RangeMarker)
	for _, prefix := range []string{chartdata.ForecastPrefix, chartdata.TrendPrefix} {
		if strings.HasPrefix(title, prefix) {
			if trimmed := strings.TrimSpace(strings.TrimPrefix(title, prefix)); trimmed != "" {
				return trimmed
			}
		}
	}
	return title
}

func columnNames(columns []dataoptions.StyledColumn) string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name()
	}
	return strings.Join(names, ", ")
}
