package chartoptions

import (
	"math"
	"strings"

	"github.com/sisense/compose-sdk-charts/pkg/chartdata"
	"github.com/sisense/compose-sdk-charts/pkg/charttype"
	"github.com/sisense/compose-sdk-charts/pkg/format"
	"github.com/sisense/compose-sdk-charts/pkg/table"
)

func (b *builder) categorical(d *chartdata.CategoricalChartData) *HighchartsOptions {
	if charttype.IsHierarchical(b.chartType) {
		return b.hierarchy(d)
	}

	options := b.base()
	formatter := b.categoricalFormatter()
	result := Convolve(b.slices(d), b.convolutionOptions())

	data := make([]Point, 0, len(result.Slices)+1)
	for _, s := range result.Slices {
		data = append(data, slicePoint(s, formatter))
	}

	if result.Others != nil {
		others := slicePoint(*result.Others, formatter)
		others.Drilldown = OthersDrilldownID
		data = append(data, others)

		drilldown := make([]Point, len(result.Collapsed))
		for i, s := range result.Collapsed {
			drilldown[i] = slicePoint(s, formatter)
		}
		options.Drilldown = &Drilldown{Series: []Series{{
			ID:   OthersDrilldownID,
			Name: OthersName,
			Type: string(b.chartType),
			Data: drilldown,
		}}}
	}

	options.Series = append(options.Series, Series{
		Name: seriesName(d),
		Type: string(b.chartType),
		Data: data,
	})
	return options
}

// slices uses one slice per category, or one slice per measure when there is no category
func (b *builder) slices(d *chartdata.CategoricalChartData) []Slice {
	var slices []Slice
	if d.XAxisCount == 0 {
		for _, s := range d.Series {
			if len(s.Data) == 0 {
				continue
			}
			slices = append(slices, Slice{Name: s.Title, Value: s.Data[0].Value, Color: s.Color, Blur: s.Data[0].Blur})
		}
		return slices
	}

	if len(d.Series) == 0 {
		return slices
	}
	series := d.Series[0]
	for i, xv := range d.XValues {
		if i >= len(series.Data) {
			break
		}
		v := series.Data[i]
		slices = append(slices, Slice{Name: xLabel(xv), Value: v.Value, Color: v.Color, Blur: v.Blur})
	}
	return slices
}

// convolutionOptions disables convolution outside the pie family
func (b *builder) convolutionOptions() ConvolutionOptions {
	options := b.design.Convolution
	if !charttype.IsPieFamily(b.chartType) {
		options.Enabled = false
	}
	return options
}

// hierarchy nests the category levels through point ids and parents
func (b *builder) hierarchy(d *chartdata.CategoricalChartData) *HighchartsOptions {
	options := b.base()
	formatter := b.categoricalFormatter()

	data := []Point{}
	seen := make(map[string]bool)
	for i, xv := range d.XValues {
		parent := ""
		for level := range xv.XValues {
			id := hierarchyID(xv, level)
			last := level == len(xv.XValues)-1
			if !last {
				if !seen[id] {
					seen[id] = true
					data = append(data, Point{ID: id, Parent: parent, Name: xv.XValues[level]})
				}
				parent = id
				continue
			}

			p := Point{ID: id, Parent: parent, Name: xv.XValues[level]}
			if len(d.Series) > 0 && i < len(d.Series[0].Data) {
				v := d.Series[0].Data[i]
				p.Value = finitePtr(v.Value)
				p.Color = v.Color
				if p.Value != nil {
					p.Custom = &PointCustom{FormattedValue: formatter(v.Value), Blur: v.Blur}
				}
			}
			data = append(data, p)
		}
	}

	options.Series = append(options.Series, Series{
		Name: seriesName(d),
		Type: string(b.chartType),
		Data: data,
	})
	return options
}

func hierarchyID(xv chartdata.CategoricalXValues, level int) string {
	keys := make([]string, level+1)
	for i := 0; i <= level; i++ {
		if i < len(xv.RawValues) && !xv.RawValues[i].IsAbsent() {
			keys[i] = table.EscapeKey(xv.RawValues[i].String())
		} else {
			keys[i] = table.EscapeKey(xv.XValues[i])
		}
	}
	return strings.Join(keys, table.KeySeparator)
}

func (b *builder) categoricalFormatter() func(float64) string {
	_, y := b.axesDataOptions()
	config := format.DefaultNumberFormatConfig()
	if len(y) > 0 {
		config = y[0].FormatConfig()
	}
	return b.numberFormatter(config)
}

func slicePoint(s Slice, formatter func(float64) string) Point {
	if math.IsNaN(s.Value) {
		return Point{Name: s.Name, Color: s.Color}
	}
	return Point{
		Name:   s.Name,
		Y:      floatPtr(s.Value),
		Color:  s.Color,
		Custom: &PointCustom{FormattedValue: formatter(s.Value), Blur: s.Blur},
	}
}

func seriesName(d *chartdata.CategoricalChartData) string {
	if len(d.Series) == 0 {
		return ""
	}
	if d.XAxisCount == 0 {
		return ""
	}
	return d.Series[0].Title
}
