package chartdata

import (
	"encoding/json"

	"github.com/sisense/compose-sdk-charts/pkg/dataoptions"
	compose_json "github.com/sisense/compose-sdk-charts/pkg/json"
	"github.com/sisense/compose-sdk-charts/pkg/table"
)

const (
	TypeCartesian   = "cartesian"
	TypeCategorical = "categorical"
	TypeScatter     = "scatter"
	TypeIndicator   = "indicator"
	TypeBoxplot     = "boxplot"
	TypeRange       = "range"
	TypeAreamap     = "areamap"
	TypeScattermap  = "scattermap"
)

// ChartData is the family specific result of a builder. Values are never modified after they are built.
type ChartData interface {
	Type() string
}

// CategoricalXValues is one x axis tick. Key joins the raw values of every x level.
type CategoricalXValues struct {
	Key           string           `json:"key"`
	XValues       []string         `json:"xValues"`
	RawValues     []table.RawValue `json:"rawValues,omitempty"`
	CompareValues []float64        `json:"compareValues,omitempty"`
}

// SeriesValueData is one plotted point. A missing value is NaN.
type SeriesValueData struct {
	Value    float64        `json:"value"`
	Blur     bool           `json:"blur,omitempty"`
	Color    string         `json:"color,omitempty"`
	RawValue table.RawValue `json:"rawValue"`
}

type plainSeriesValueData SeriesValueData

func (d SeriesValueData) MarshalJSON() ([]byte, error) {
	value, err := compose_json.MarshalFloat(d.Value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Value json.RawMessage `json:"value"`
		plainSeriesValueData
	}{value, plainSeriesValueData(d)})
}

type SeriesWithValues struct {
	Name                 string                          `json:"name"`
	Title                string                          `json:"title"`
	Column               string                          `json:"column"`
	Data                 []SeriesValueData               `json:"data"`
	Color                string                          `json:"color,omitempty"`
	ShowOnRightAxis      bool                            `json:"showOnRightAxis,omitempty"`
	ChartType            string                          `json:"chartType,omitempty"`
	TreatNullDataAsZeros bool                            `json:"treatNullDataAsZeros,omitempty"`
	ConnectNulls         bool                            `json:"connectNulls,omitempty"`
	SeriesStyleOptions   *dataoptions.SeriesStyleOptions `json:"seriesStyleOptions,omitempty"`
	// RangeKey is shared by the upper and lower bound series of one range
	RangeKey string `json:"rangeKey,omitempty"`
}

type CartesianChartData struct {
	XAxisCount int                  `json:"xAxisCount"`
	XValues    []CategoricalXValues `json:"xValues"`
	Series     []SeriesWithValues   `json:"series"`
}

type CategoricalChartData struct {
	XAxisCount int                  `json:"xAxisCount"`
	XValues    []CategoricalXValues `json:"xValues"`
	Series     []SeriesWithValues   `json:"series"`
}

// RangeChartData holds upper bound and regular series in Series and the lower bounds in SeriesOther
type RangeChartData struct {
	XAxisCount  int                  `json:"xAxisCount"`
	XValues     []CategoricalXValues `json:"xValues"`
	Series      []SeriesWithValues   `json:"series"`
	SeriesOther []SeriesWithValues   `json:"seriesOther"`
}

type ScatterDataRow struct {
	X            table.ComparableData  `json:"x"`
	Y            table.ComparableData  `json:"y"`
	BreakByPoint *table.ComparableData `json:"breakByPoint,omitempty"`
	BreakByColor *table.ComparableData `json:"breakByColor,omitempty"`
	Size         table.ComparableData  `json:"size"`
}

type ScatterChartData struct {
	ScatterDataTable []ScatterDataRow `json:"scatterDataTable"`
	XCategories      []string         `json:"xCategories,omitempty"`
	YCategories      []string         `json:"yCategories,omitempty"`
}

type IndicatorValues struct {
	Value     float64
	Secondary *float64
	Min       *float64
	Max       *float64
}

// IndicatorChartData with nil Values is the empty indicator
type IndicatorChartData struct {
	Values *IndicatorValues
}

func (d *IndicatorChartData) IsEmpty() bool {
	return d.Values == nil
}

type BoxplotChartData struct {
	XAxisCount int                  `json:"xAxisCount"`
	XValues    []CategoricalXValues `json:"xValues"`
	Series     []SeriesWithValues   `json:"series"`
	Outliers   []OutlierPoint       `json:"outliers"`
	ValueTitle string               `json:"valueTitle"`
}

// OutlierPoint is positioned at the index of its x tick
type OutlierPoint struct {
	X     int
	Value float64
	Blur  bool
}

type GeoDataElement struct {
	GeoName                string  `json:"geoName"`
	OriginalValue          float64 `json:"originalValue"`
	FormattedOriginalValue string  `json:"formattedOriginalValue"`
	Blur                   bool    `json:"blur,omitempty"`
}

type AreamapChartData struct {
	Geo []GeoDataElement `json:"geo"`
}

type ScattermapLocation struct {
	Name       string   `json:"name"`
	RawNames   []string `json:"rawNames"`
	Value      float64  `json:"value"`
	ColorValue *float64 `json:"colorValue,omitempty"`
	Details    *float64 `json:"details,omitempty"`
	Blur       bool     `json:"blur,omitempty"`
}

type ScattermapChartData struct {
	Locations []ScattermapLocation `json:"locations"`
}

func (*CartesianChartData) Type() string   { return TypeCartesian }
func (*CategoricalChartData) Type() string { return TypeCategorical }
func (*RangeChartData) Type() string       { return TypeRange }
func (*ScatterChartData) Type() string     { return TypeScatter }
func (*IndicatorChartData) Type() string   { return TypeIndicator }
func (*BoxplotChartData) Type() string     { return TypeBoxplot }
func (*AreamapChartData) Type() string     { return TypeAreamap }
func (*ScattermapChartData) Type() string  { return TypeScattermap }

// ====================================================================
// JSON encoding with the type tag
// ====================================================================

func (d *CartesianChartData) MarshalJSON() ([]byte, error) {
	type plain CartesianChartData
	return json.Marshal(struct {
		Type string `json:"type"`
		*plain
	}{d.Type(), (*plain)(d)})
}

func (d *CategoricalChartData) MarshalJSON() ([]byte, error) {
	type plain CategoricalChartData
	return json.Marshal(struct {
		Type string `json:"type"`
		*plain
	}{d.Type(), (*plain)(d)})
}

func (d *RangeChartData) MarshalJSON() ([]byte, error) {
	type plain RangeChartData
	return json.Marshal(struct {
		Type string `json:"type"`
		*plain
	}{d.Type(), (*plain)(d)})
}

func (d *ScatterChartData) MarshalJSON() ([]byte, error) {
	type plain ScatterChartData
	return json.Marshal(struct {
		Type string `json:"type"`
		*plain
	}{d.Type(), (*plain)(d)})
}

func (d *BoxplotChartData) MarshalJSON() ([]byte, error) {
	type plain BoxplotChartData
	return json.Marshal(struct {
		Type string `json:"type"`
		*plain
	}{d.Type(), (*plain)(d)})
}

func (d *AreamapChartData) MarshalJSON() ([]byte, error) {
	type plain AreamapChartData
	return json.Marshal(struct {
		Type string `json:"type"`
		*plain
	}{d.Type(), (*plain)(d)})
}

func (d *ScattermapChartData) MarshalJSON() ([]byte, error) {
	type plain ScattermapChartData
	return json.Marshal(struct {
		Type string `json:"type"`
		*plain
	}{d.Type(), (*plain)(d)})
}

// MarshalJSON writes only the type for the empty indicator
func (d *IndicatorChartData) MarshalJSON() ([]byte, error) {
	out := struct {
		Type      string          `json:"type"`
		Value     json.RawMessage `json:"value,omitempty"`
		Secondary json.RawMessage `json:"secondary,omitempty"`
		Min       json.RawMessage `json:"min,omitempty"`
		Max       json.RawMessage `json:"max,omitempty"`
	}{Type: d.Type()}

	if d.Values == nil {
		return json.Marshal(out)
	}

	var err error
	if out.Value, err = compose_json.MarshalFloat(d.Values.Value); err != nil {
		return nil, err
	}
	if out.Secondary, err = marshalOptionalFloat(d.Values.Secondary); err != nil {
		return nil, err
	}
	if out.Min, err = marshalOptionalFloat(d.Values.Min); err != nil {
		return nil, err
	}
	if out.Max, err = marshalOptionalFloat(d.Values.Max); err != nil {
		return nil, err
	}
	return json.Marshal(out)
}

func (p OutlierPoint) MarshalJSON() ([]byte, error) {
	value, err := compose_json.MarshalFloat(p.Value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		X     int             `json:"x"`
		Value json.RawMessage `json:"value"`
		Blur  bool            `json:"blur,omitempty"`
	}{p.X, value, p.Blur})
}

func marshalOptionalFloat(f *float64) (json.RawMessage, error) {
	if f == nil {
		return nil, nil
	}
	return compose_json.MarshalFloat(*f)
}
