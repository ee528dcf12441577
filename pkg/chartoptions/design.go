package chartoptions

import (
	"github.com/sisense/compose-sdk-charts/pkg/dataoptions"
)

const (
	StackNone    = ""
	StackNormal  = "normal"
	StackPercent = "percent"

	ConvolutionByPercentage  = "byPercentage"
	ConvolutionBySlicesCount = "bySlicesCount"

	LegendBottom = "bottom"
	LegendTop    = "top"
	LegendLeft   = "left"
	LegendRight  = "right"

	MarkerFilled = "filled"
	MarkerHollow = "hollow"

	DefaultSeriesCapacity     = 50
	DefaultCategoriesCapacity = 100
)

type AxisOptions struct {
	Enabled      bool     `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	Title        string   `json:"title,omitempty" yaml:"title,omitempty" mapstructure:"title"`
	GridLines    bool     `json:"gridLines" yaml:"gridLines" mapstructure:"gridLines"`
	Labels       bool     `json:"labels" yaml:"labels" mapstructure:"labels"`
	Min          *float64 `json:"min,omitempty" yaml:"min,omitempty" mapstructure:"min"`
	Max          *float64 `json:"max,omitempty" yaml:"max,omitempty" mapstructure:"max"`
	TickInterval *float64 `json:"tickInterval,omitempty" yaml:"tickInterval,omitempty" mapstructure:"tickInterval"`
}

type LegendOptions struct {
	Enabled  bool   `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	Position string `json:"position,omitempty" yaml:"position,omitempty" mapstructure:"position"`
}

type MarkerOptions struct {
	Enabled bool   `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	Size    int    `json:"size" yaml:"size" mapstructure:"size"`
	Fill    string `json:"fill,omitempty" yaml:"fill,omitempty" mapstructure:"fill"`
}

// SeriesStyle is the global line style. Measures may override it with their SeriesStyleOptions.
type SeriesStyle struct {
	LineWidth int           `json:"lineWidth" yaml:"lineWidth" mapstructure:"lineWidth"`
	DashStyle string        `json:"dashStyle,omitempty" yaml:"dashStyle,omitempty" mapstructure:"dashStyle"`
	EndCap    string        `json:"endCap,omitempty" yaml:"endCap,omitempty" mapstructure:"endCap"`
	Shadow    bool          `json:"shadow" yaml:"shadow" mapstructure:"shadow"`
	Markers   MarkerOptions `json:"markers" yaml:"markers" mapstructure:"markers"`
}

// DataLimits caps the series and categories that are rendered. Zero or less is unlimited.
type DataLimits struct {
	SeriesCapacity     int `json:"seriesCapacity" yaml:"seriesCapacity" mapstructure:"seriesCapacity"`
	CategoriesCapacity int `json:"categoriesCapacity" yaml:"categoriesCapacity" mapstructure:"categoriesCapacity"`
}

type ConvolutionOptions struct {
	Enabled                           bool    `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	SelectedConvolutionType           string  `json:"selectedConvolutionType" yaml:"selectedConvolutionType" mapstructure:"selectedConvolutionType"`
	MinimalIndependentSlicePercentage float64 `json:"minimalIndependentSlicePercentage" yaml:"minimalIndependentSlicePercentage" mapstructure:"minimalIndependentSlicePercentage"`
	IndependentSlicesCount            int     `json:"independentSlicesCount" yaml:"independentSlicesCount" mapstructure:"independentSlicesCount"`
}

type DesignOptions struct {
	StackType   string             `json:"stackType,omitempty" yaml:"stackType,omitempty" mapstructure:"stackType"`
	ValueLabels bool               `json:"valueLabels" yaml:"valueLabels" mapstructure:"valueLabels"`
	Legend      LegendOptions      `json:"legend" yaml:"legend" mapstructure:"legend"`
	XAxis       AxisOptions        `json:"xAxis" yaml:"xAxis" mapstructure:"xAxis"`
	YAxis       AxisOptions        `json:"yAxis" yaml:"yAxis" mapstructure:"yAxis"`
	Y2Axis      AxisOptions        `json:"y2Axis" yaml:"y2Axis" mapstructure:"y2Axis"`
	Series      SeriesStyle        `json:"series" yaml:"series" mapstructure:"series"`
	DataLimits  DataLimits         `json:"dataLimits" yaml:"dataLimits" mapstructure:"dataLimits"`
	Convolution ConvolutionOptions `json:"convolution" yaml:"convolution" mapstructure:"convolution"`
}

// DefaultDesignOptions returns the design used for unset manifest fields. Decoding YAML into the
// returned value keeps the defaults of absent keys.
func DefaultDesignOptions() DesignOptions {
	return DesignOptions{
		Legend: LegendOptions{Enabled: true, Position: LegendBottom},
		XAxis:  AxisOptions{Enabled: true, Labels: true},
		YAxis:  AxisOptions{Enabled: true, Labels: true, GridLines: true},
		Y2Axis: AxisOptions{Enabled: true, Labels: true},
		Series: SeriesStyle{
			LineWidth: 2,
			DashStyle: "Solid",
			EndCap:    "round",
			Markers:   MarkerOptions{Enabled: true, Size: 4, Fill: MarkerFilled},
		},
		DataLimits: DataLimits{
			SeriesCapacity:     DefaultSeriesCapacity,
			CategoriesCapacity: DefaultCategoriesCapacity,
		},
		Convolution: ConvolutionOptions{
			Enabled:                           true,
			SelectedConvolutionType:           ConvolutionByPercentage,
			MinimalIndependentSlicePercentage: 3,
			IndependentSlicesCount:            7,
		},
	}
}

// resolveSeriesStyle applies the per-series overrides on top of the global style
func resolveSeriesStyle(global SeriesStyle, override *dataoptions.SeriesStyleOptions) SeriesStyle {
	style := global
	if override == nil {
		return style
	}
	if override.LineWidth != nil {
		style.LineWidth = *override.LineWidth
	}
	if override.DashStyle != "" {
		style.DashStyle = override.DashStyle
	}
	if override.EndCap != "" {
		style.EndCap = override.EndCap
	}
	if override.Shadow != nil {
		style.Shadow = *override.Shadow
	}
	if m := override.Markers; m != nil {
		if m.Enabled != nil {
			style.Markers.Enabled = *m.Enabled
		}
		if m.Size != nil {
			style.Markers.Size = *m.Size
		}
		if m.Fill != "" {
			style.Markers.Fill = m.Fill
		}
	}
	return style
}

func (s SeriesStyle) marker() *Marker {
	marker := &Marker{Enabled: s.Markers.Enabled, Radius: s.Markers.Size}
	if s.Markers.Fill == MarkerHollow {
		marker.FillColor = "#ffffff"
		marker.LineWidth = 1
	}
	return marker
}

func (l LegendOptions) legend() Legend {
	legend := Legend{Enabled: l.Enabled}
	switch l.Position {
	case LegendTop:
		legend.Align, legend.VerticalAlign, legend.Layout = "center", "top", "horizontal"
	case LegendLeft:
		legend.Align, legend.VerticalAlign, legend.Layout = "left", "middle", "vertical"
	case LegendRight:
		legend.Align, legend.VerticalAlign, legend.Layout = "right", "middle", "vertical"
	default:
		legend.Align, legend.VerticalAlign, legend.Layout = "center", "bottom", "horizontal"
	}
	return legend
}

func (a AxisOptions) axis(title string) Axis {
	axis := Axis{
		Visible:      a.Enabled,
		Labels:       AxisLabels{Enabled: a.Labels},
		Min:          a.Min,
		Max:          a.Max,
		TickInterval: a.TickInterval,
	}
	if a.GridLines {
		axis.GridLineWidth = 1
	}
	if a.Title != "" {
		title = a.Title
	}
	axis.Title = AxisTitle{Enabled: title != "", Text: title}
	return axis
}
