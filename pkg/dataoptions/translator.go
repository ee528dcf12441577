package dataoptions

import (
	"errors"
	"fmt"

	"github.com/sisense/compose-sdk-charts/pkg/charttype"
	"github.com/sisense/compose-sdk-charts/pkg/table"
	ctime "github.com/sisense/compose-sdk-charts/pkg/time"
	"gopkg.in/yaml.v2"
)

const (
	UpperBoundSuffix = "_upper"
	LowerBoundSuffix = "_lower"
)

var ErrDataOptionsMismatch = errors.New("data options do not match chart type")

// Unmarshal decodes YAML or JSON data options for the family of chartType
func Unmarshal(chartType charttype.ChartType, data []byte) (ChartDataOptions, error) {
	var options ChartDataOptions
	var err error

	switch chartType.Family() {
	case charttype.FamilyCartesian:
		o := CartesianChartDataOptions{}
		err = yaml.Unmarshal(data, &o)
		options = o
	case charttype.FamilyCategorical:
		o := CategoricalChartDataOptions{}
		err = yaml.Unmarshal(data, &o)
		options = o
	case charttype.FamilyScatter:
		o := ScatterChartDataOptions{}
		err = yaml.Unmarshal(data, &o)
		options = o
	case charttype.FamilyIndicator:
		o := IndicatorChartDataOptions{}
		err = yaml.Unmarshal(data, &o)
		options = o
	case charttype.FamilyBoxplot:
		o := BoxplotChartDataOptions{}
		err = yaml.Unmarshal(data, &o)
		options = o
	case charttype.FamilyRange:
		o := RangeChartDataOptions{}
		err = yaml.Unmarshal(data, &o)
		options = o
	case charttype.FamilyAreamap:
		o := AreamapChartDataOptions{}
		err = yaml.Unmarshal(data, &o)
		options = o
	case charttype.FamilyScattermap:
		o := ScattermapChartDataOptions{}
		err = yaml.Unmarshal(data, &o)
		options = o
	default:
		return nil, fmt.Errorf("unknown chart type '%s'", chartType)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decode %s data options: %w", chartType.Family(), err)
	}
	return options, nil
}

// Translate applies defaults to user data options and returns the internal form for chartType
func Translate(chartType charttype.ChartType, options ChartDataOptions) (ChartDataOptionsInternal, error) {
	if options == nil || options.Family() != chartType.Family() {
		return nil, fmt.Errorf("%w: chart type '%s'", ErrDataOptionsMismatch, chartType)
	}

	switch o := options.(type) {
	case CartesianChartDataOptions:
		return TranslateCartesian(o), nil
	case CategoricalChartDataOptions:
		return TranslateCategorical(o), nil
	case ScatterChartDataOptions:
		return TranslateScatter(o), nil
	case IndicatorChartDataOptions:
		return TranslateIndicator(o), nil
	case BoxplotChartDataOptions:
		return TranslateBoxplot(o), nil
	case RangeChartDataOptions:
		return TranslateRange(o), nil
	case AreamapChartDataOptions:
		return TranslateAreamap(o), nil
	case ScattermapChartDataOptions:
		return TranslateScattermap(o), nil
	}

	return nil, fmt.Errorf("%w: chart type '%s'", ErrDataOptionsMismatch, chartType)
}

func TranslateCartesian(o CartesianChartDataOptions) CartesianChartDataOptionsInternal {
	return CartesianChartDataOptionsInternal{
		X:                translateColumns(o.Category),
		Y:                translateMeasures(o.Value),
		BreakBy:          translateColumns(o.BreakBy),
		SeriesToColorMap: copyColorMap(o.SeriesToColorMap),
	}
}

func TranslateCategorical(o CategoricalChartDataOptions) CategoricalChartDataOptionsInternal {
	return CategoricalChartDataOptionsInternal{
		Y:       translateMeasures(o.Value),
		BreakBy: translateColumns(o.Category),
	}
}

// TranslateScatter leaves x and y unaggregated unless an aggregation is given
func TranslateScatter(o ScatterChartDataOptions) ScatterChartDataOptionsInternal {
	return ScatterChartDataOptionsInternal{
		X:                translateChannel(o.X, ""),
		Y:                translateChannel(o.Y, ""),
		BreakByPoint:     translateOptionalColumn(o.BreakByPoint),
		BreakByColor:     translateOptionalColumn(o.BreakByColor),
		Size:             translateChannel(o.Size, table.AggregationSum),
		SeriesToColorMap: copyColorMap(o.SeriesToColorMap),
	}
}

func TranslateIndicator(o IndicatorChartDataOptions) IndicatorChartDataOptionsInternal {
	return IndicatorChartDataOptionsInternal{
		Value:     translateMeasures(o.Value),
		Secondary: translateMeasures(o.Secondary),
		Min:       translateMeasures(o.Min),
		Max:       translateMeasures(o.Max),
	}
}

func TranslateBoxplot(o BoxplotChartDataOptions) BoxplotChartDataOptionsInternal {
	value := translateMeasures(o.Value)
	title := o.ValueTitle
	if title == "" && len(value) > 0 {
		title = value[0].Title()
	}
	return BoxplotChartDataOptionsInternal{
		Category:   translateColumns(o.Category),
		Value:      value,
		Outliers:   translateColumns(o.Outliers),
		ValueTitle: title,
	}
}

func TranslateRange(o RangeChartDataOptions) RangeChartDataOptionsInternal {
	y := translateMeasures(o.Value)
	for i := range y {
		if y[i].UpperBound == "" {
			y[i].UpperBound = y[i].Name() + UpperBoundSuffix
		}
		if y[i].LowerBound == "" {
			y[i].LowerBound = y[i].Name() + LowerBoundSuffix
		}
	}
	return RangeChartDataOptionsInternal{
		X:                translateColumns(o.Category),
		Y:                y,
		BreakBy:          translateColumns(o.BreakBy),
		SeriesToColorMap: copyColorMap(o.SeriesToColorMap),
	}
}

func TranslateAreamap(o AreamapChartDataOptions) AreamapChartDataOptionsInternal {
	internal := AreamapChartDataOptionsInternal{}
	if geo := translateColumns(o.Geo); len(geo) > 0 {
		internal.Geo = &geo[0]
	}
	if color := translateMeasures(o.Color); len(color) > 0 {
		internal.Color = &color[0]
	}
	return internal
}

func TranslateScattermap(o ScattermapChartDataOptions) ScattermapChartDataOptionsInternal {
	return ScattermapChartDataOptionsInternal{
		Geo:     translateColumns(o.Geo),
		Size:    translateChannel(o.Size, table.AggregationSum),
		ColorBy: translateChannel(o.ColorBy, table.AggregationSum),
		Details: translateChannel(o.Details, table.AggregationSum),
	}
}

func translateColumns(columns []StyledColumn) []StyledColumn {
	translated := make([]StyledColumn, 0, len(columns))
	for _, c := range columns {
		translated = append(translated, translateColumn(c))
	}
	return translated
}

func translateOptionalColumn(c *StyledColumn) *StyledColumn {
	if c == nil {
		return nil
	}
	translated := translateColumn(*c)
	return &translated
}

func translateColumn(c StyledColumn) StyledColumn {
	if c.SortType == "" {
		c.SortType = SortNone
	}
	if c.Column.Type == "" {
		c.Column.Type = table.TypeString
	}
	if c.IsDate() {
		if !ctime.IsGranularity(c.Granularity) {
			c.Granularity = ctime.Years
		}
		if c.DateFormat == "" {
			c.DateFormat = ctime.DefaultDateFormat(c.Granularity)
		}
	}
	if c.NumberFormatConfig != nil {
		config := *c.NumberFormatConfig
		c.NumberFormatConfig = &config
	}
	return c
}

// translateMeasures drops disabled measures
func translateMeasures(measures []StyledMeasureColumn) []StyledMeasureColumn {
	translated := make([]StyledMeasureColumn, 0, len(measures))
	for _, m := range measures {
		if !m.IsEnabled() {
			continue
		}
		translated = append(translated, translateMeasure(m, table.AggregationSum))
	}
	return translated
}

func translateChannel(m *StyledMeasureColumn, aggregation string) *StyledMeasureColumn {
	if m == nil || !m.IsEnabled() {
		return nil
	}
	translated := translateMeasure(*m, aggregation)
	return &translated
}

func translateMeasure(m StyledMeasureColumn, aggregation string) StyledMeasureColumn {
	enabled := true
	m.Enabled = &enabled

	if m.SortType == "" {
		m.SortType = SortNone
	}
	if m.Column.Aggregation == "" {
		m.Column.Aggregation = aggregation
	}
	if m.Column.Title == "" {
		m.Column.Title = m.Column.Name
	}
	if m.Column.Type == "" {
		m.Column.Type = table.TypeNumber
	}

	config := m.FormatConfig()
	m.NumberFormatConfig = &config

	if m.Color != nil {
		color := *m.Color
		color.Conditions = append([]ColorCondition(nil), m.Color.Conditions...)
		color.setDefaultType()
		m.Color = &color
	}
	return m
}

func copyColorMap(colors map[string]string) map[string]string {
	if colors == nil {
		return nil
	}
	copied := make(map[string]string, len(colors))
	for k, v := range colors {
		copied[k] = v
	}
	return copied
}
