package chartoptions

import (
	"github.com/sisense/compose-sdk-charts/pkg/chartdata"
	"github.com/sisense/compose-sdk-charts/pkg/dataoptions"
	"github.com/sisense/compose-sdk-charts/pkg/format"
	"github.com/sisense/compose-sdk-charts/pkg/table"
)

const (
	SeriesTypeScatter = "scatter"
	SeriesTypeBubble  = "bubble"
	SeriesTypeBoxplot = "boxplot"
)

// scatter groups points into one series per break-by color value, or per break-by point value
// when no color is bound
func (b *builder) scatter(d *chartdata.ScatterChartData) *HighchartsOptions {
	o, _ := b.dataOptions.(dataoptions.ScatterChartDataOptionsInternal)

	seriesType := SeriesTypeScatter
	if o.Size != nil {
		seriesType = SeriesTypeBubble
	}

	options := b.base()
	options.Chart.Type = seriesType
	options.XAxis = []Axis{b.scatterAxis(b.design.XAxis, o.X, d.XCategories)}
	options.YAxis = []Axis{b.scatterAxis(b.design.YAxis, o.Y, d.YCategories)}

	xIndex := categoryIndex(d.XCategories)
	yIndex := categoryIndex(d.YCategories)

	var groups []*Series
	byName := make(map[string]*Series)
	for _, row := range d.ScatterDataTable {
		group := row.BreakByColor
		if group == nil {
			group = row.BreakByPoint
		}
		name := ""
		if group != nil {
			name = group.DisplayValue
		}

		s, ok := byName[name]
		if !ok {
			s = &Series{ID: name, Name: name, Type: seriesType, Data: []Point{}}
			if color, ok := o.SeriesToColorMap[name]; ok {
				s.Color = color
			}
			byName[name] = s
			groups = append(groups, s)
		}

		p := Point{
			X:     axisValue(row.X, xIndex),
			Y:     axisValue(row.Y, yIndex),
			Color: scatterPointColor(row),
		}
		if p.X == nil || p.Y == nil {
			continue
		}
		if o.Size != nil {
			p.Z = axisValue(row.Size, nil)
		}
		if row.BreakByPoint != nil {
			p.Name = row.BreakByPoint.DisplayValue
		}
		if row.X.Blur || row.Y.Blur {
			p.Custom = &PointCustom{Blur: true}
		}
		s.Data = append(s.Data, p)
	}

	for _, s := range groups {
		options.Series = append(options.Series, *s)
	}
	return options
}

// scatterPointColor prefers the break-by color cell, then the y, size and x cells
func scatterPointColor(row chartdata.ScatterDataRow) string {
	if row.BreakByColor != nil && row.BreakByColor.Color != "" {
		return row.BreakByColor.Color
	}
	for _, c := range []string{row.Y.Color, row.Size.Color, row.X.Color} {
		if c != "" {
			return c
		}
	}
	return ""
}

func (b *builder) scatterAxis(design AxisOptions, m *dataoptions.StyledMeasureColumn, categories []string) Axis {
	title := ""
	config := format.DefaultNumberFormatConfig()
	if m != nil {
		title = m.Title()
		config = m.FormatConfig()
	}

	axis := design.axis(title)
	if categories != nil {
		axis.Type = AxisTypeCategory
		axis.Categories = categories
		return axis
	}
	axis.Type = AxisTypeLinear
	axis.Formatter = b.numberFormatter(config)
	return axis
}

func categoryIndex(categories []string) map[string]int {
	if categories == nil {
		return nil
	}
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		index[c] = i
	}
	return index
}

// axisValue is the category position on a category axis, the numeric value otherwise
func axisValue(cell table.ComparableData, categories map[string]int) *float64 {
	if categories != nil {
		i, ok := categories[cell.DisplayValue]
		if !ok {
			return nil
		}
		return floatPtr(float64(i))
	}
	if cell.RawValue.IsAbsent() {
		// unbound channel sentinel
		return floatPtr(0)
	}
	f, ok := cell.RawValue.Float()
	if !ok {
		return nil
	}
	return finitePtr(f)
}

func (b *builder) boxplot(d *chartdata.BoxplotChartData) *HighchartsOptions {
	x, y := b.axesDataOptions()

	options := b.base()
	options.Chart.Type = SeriesTypeBoxplot

	xAxis := b.design.XAxis.axis(columnNames(x))
	xAxis.Type = AxisTypeCategory
	xAxis.Categories = b.categories(d.XValues, x)
	options.XAxis = []Axis{xAxis}

	yAxis := b.valueAxis(b.design.YAxis, y)
	yAxis.Title = AxisTitle{Enabled: d.ValueTitle != "", Text: d.ValueTitle}
	if b.design.YAxis.Title != "" {
		yAxis.Title.Text = b.design.YAxis.Title
	}
	options.YAxis = []Axis{yAxis}

	boxes := make([]Point, len(d.XValues))
	for i := range d.XValues {
		p := Point{
			Low:    boxValue(d.Series, 0, i),
			Q1:     boxValue(d.Series, 1, i),
			Median: boxValue(d.Series, 2, i),
			Q3:     boxValue(d.Series, 3, i),
			High:   boxValue(d.Series, 4, i),
		}
		if p.Low == nil && p.Q1 == nil && p.Median == nil && p.Q3 == nil && p.High == nil {
			p = Point{IsNull: true}
		} else if len(d.Series) > 0 && i < len(d.Series[0].Data) && d.Series[0].Data[i].Blur {
			p.Custom = &PointCustom{Blur: true}
		}
		boxes[i] = p
	}
	options.Series = append(options.Series, Series{
		Name: d.ValueTitle,
		Type: SeriesTypeBoxplot,
		Data: boxes,
	})

	if len(d.Outliers) > 0 {
		outliers := make([]Point, 0, len(d.Outliers))
		for _, o := range d.Outliers {
			p := Point{X: floatPtr(float64(o.X)), Y: finitePtr(o.Value)}
			if o.Blur {
				p.Custom = &PointCustom{Blur: true}
			}
			outliers = append(outliers, p)
		}
		options.Series = append(options.Series, Series{
			Name:   d.ValueTitle,
			Type:   SeriesTypeScatter,
			Data:   outliers,
			Marker: &Marker{Enabled: true, Radius: b.design.Series.Markers.Size},
		})
	}
	return options
}

func boxValue(series []chartdata.SeriesWithValues, s int, i int) *float64 {
	if s >= len(series) || i >= len(series[s].Data) {
		return nil
	}
	return finitePtr(series[s].Data[i].Value)
}

// indicator formats the value and the secondary value with their measures' number formats
func (b *builder) indicator(d *chartdata.IndicatorChartData) *HighchartsOptions {
	options := b.base()
	options.Chart.Type = string(b.chartType)
	if d.IsEmpty() {
		return options
	}

	o, _ := b.dataOptions.(dataoptions.IndicatorChartDataOptionsInternal)
	indicator := &IndicatorOptions{
		Value:     finitePtr(d.Values.Value),
		Secondary: optionalFinite(d.Values.Secondary),
		Min:       optionalFinite(d.Values.Min),
		Max:       optionalFinite(d.Values.Max),
	}
	if len(o.Value) > 0 {
		indicator.Title = o.Value[0].Title()
		indicator.FormattedValue = b.formatter.ApplyFormat(o.Value[0].FormatConfig(), d.Values.Value)
	} else {
		indicator.FormattedValue = b.formatter.ApplyFormat(format.DefaultNumberFormatConfig(), d.Values.Value)
	}
	if d.Values.Secondary != nil && len(o.Secondary) > 0 {
		indicator.SecondaryTitle = o.Secondary[0].Title()
		indicator.FormattedSecondaryValue = b.formatter.ApplyFormat(o.Secondary[0].FormatConfig(), *d.Values.Secondary)
	}
	options.Indicator = indicator
	return options
}

func optionalFinite(f *float64) *float64 {
	if f == nil {
		return nil
	}
	return finitePtr(*f)
}
