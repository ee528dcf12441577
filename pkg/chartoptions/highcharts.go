package chartoptions

import (
	"encoding/json"

	"github.com/sisense/compose-sdk-charts/pkg/chartdata"
)

const (
	AxisTypeCategory = "category"
	AxisTypeDatetime = "datetime"
	AxisTypeLinear   = "linear"
)

// HighchartsOptions is the renderer configuration for one chart
type HighchartsOptions struct {
	Chart       Chart                          `json:"chart"`
	XAxis       []Axis                         `json:"xAxis,omitempty"`
	YAxis       []Axis                         `json:"yAxis,omitempty"`
	Legend      Legend                         `json:"legend"`
	PlotOptions PlotOptions                    `json:"plotOptions"`
	Series      []Series                       `json:"series"`
	Drilldown   *Drilldown                     `json:"drilldown,omitempty"`
	Indicator   *IndicatorOptions              `json:"indicator,omitempty"`
	Geo         []chartdata.GeoDataElement     `json:"geo,omitempty"`
	Locations   []chartdata.ScattermapLocation `json:"locations,omitempty"`
}

type Chart struct {
	Type     string `json:"type"`
	Polar    bool   `json:"polar,omitempty"`
	Inverted bool   `json:"inverted,omitempty"`
}

type AxisTitle struct {
	Enabled bool   `json:"enabled"`
	Text    string `json:"text,omitempty"`
}

type AxisLabels struct {
	Enabled bool `json:"enabled"`
}

type Axis struct {
	Type          string     `json:"type,omitempty"`
	Categories    []string   `json:"categories,omitempty"`
	Title         AxisTitle  `json:"title"`
	Labels        AxisLabels `json:"labels"`
	Visible       bool       `json:"visible"`
	GridLineWidth int        `json:"gridLineWidth"`
	Min           *float64   `json:"min,omitempty"`
	Max           *float64   `json:"max,omitempty"`
	TickInterval  *float64   `json:"tickInterval,omitempty"`
	Opposite      bool       `json:"opposite,omitempty"`

	// Formatter renders the axis labels and tooltips of the values plotted on this axis
	Formatter func(float64) string `json:"-"`
}

type Legend struct {
	Enabled       bool   `json:"enabled"`
	Align         string `json:"align,omitempty"`
	VerticalAlign string `json:"verticalAlign,omitempty"`
	Layout        string `json:"layout,omitempty"`
}

type DataLabels struct {
	Enabled bool `json:"enabled"`
}

type SeriesPlotOptions struct {
	Stacking   string     `json:"stacking,omitempty"`
	DataLabels DataLabels `json:"dataLabels"`
}

type PlotOptions struct {
	Series SeriesPlotOptions `json:"series"`
}

type Marker struct {
	Enabled   bool   `json:"enabled"`
	Radius    int    `json:"radius,omitempty"`
	FillColor string `json:"fillColor,omitempty"`
	LineWidth int    `json:"lineWidth,omitempty"`
}

type Series struct {
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Data         []Point `json:"data"`
	Color        string  `json:"color,omitempty"`
	YAxis        int     `json:"yAxis,omitempty"`
	LineWidth    int     `json:"lineWidth,omitempty"`
	DashStyle    string  `json:"dashStyle,omitempty"`
	LineCap      string  `json:"linecap,omitempty"`
	Shadow       bool    `json:"shadow,omitempty"`
	Marker       *Marker `json:"marker,omitempty"`
	ConnectNulls bool    `json:"connectNulls,omitempty"`
	ShowInLegend *bool   `json:"showInLegend,omitempty"`
}

type PointCustom struct {
	XValues        []string `json:"xValues,omitempty"`
	FormattedValue string   `json:"formattedValue,omitempty"`
	Blur           bool     `json:"blur,omitempty"`
}

// Point is one data point. A null point is written as JSON null.
type Point struct {
	IsNull bool `json:"-"`

	ID        string       `json:"id,omitempty"`
	Parent    string       `json:"parent,omitempty"`
	Name      string       `json:"name,omitempty"`
	X         *float64     `json:"x,omitempty"`
	Y         *float64     `json:"y,omitempty"`
	Z         *float64     `json:"z,omitempty"`
	Value     *float64     `json:"value,omitempty"`
	Low       *float64     `json:"low,omitempty"`
	Q1        *float64     `json:"q1,omitempty"`
	Median    *float64     `json:"median,omitempty"`
	Q3        *float64     `json:"q3,omitempty"`
	High      *float64     `json:"high,omitempty"`
	Color     string       `json:"color,omitempty"`
	Drilldown string       `json:"drilldown,omitempty"`
	Custom    *PointCustom `json:"custom,omitempty"`
}

func (p Point) MarshalJSON() ([]byte, error) {
	if p.IsNull {
		return []byte("null"), nil
	}
	type plain Point
	return json.Marshal(plain(p))
}

type Drilldown struct {
	Series []Series `json:"series"`
}

type IndicatorOptions struct {
	Value                   *float64 `json:"value,omitempty"`
	Secondary               *float64 `json:"secondary,omitempty"`
	Min                     *float64 `json:"min,omitempty"`
	Max                     *float64 `json:"max,omitempty"`
	FormattedValue          string   `json:"formattedValue"`
	FormattedSecondaryValue string   `json:"formattedSecondaryValue,omitempty"`
	Title                   string   `json:"title,omitempty"`
	SecondaryTitle          string   `json:"secondaryTitle,omitempty"`
}
