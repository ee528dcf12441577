package dataoptions

import (
	"github.com/sisense/compose-sdk-charts/pkg/charttype"
)

// ChartDataOptions binds query result columns to the channels of a chart family
type ChartDataOptions interface {
	Family() charttype.Family
}

// ChartDataOptionsInternal is the normalized form consumed by the chart data builders
type ChartDataOptionsInternal interface {
	Family() charttype.Family
}

// ====================================================================
// User facing options
// ====================================================================

type CartesianChartDataOptions struct {
	Category         []StyledColumn        `json:"category" yaml:"category"`
	Value            []StyledMeasureColumn `json:"value" yaml:"value"`
	BreakBy          []StyledColumn        `json:"breakBy,omitempty" yaml:"breakBy,omitempty"`
	SeriesToColorMap map[string]string     `json:"seriesToColorMap,omitempty" yaml:"seriesToColorMap,omitempty"`
}

type CategoricalChartDataOptions struct {
	Category []StyledColumn        `json:"category" yaml:"category"`
	Value    []StyledMeasureColumn `json:"value" yaml:"value"`
}

type ScatterChartDataOptions struct {
	X                *StyledMeasureColumn `json:"x,omitempty" yaml:"x,omitempty"`
	Y                *StyledMeasureColumn `json:"y,omitempty" yaml:"y,omitempty"`
	BreakByPoint     *StyledColumn        `json:"breakByPoint,omitempty" yaml:"breakByPoint,omitempty"`
	BreakByColor     *StyledColumn        `json:"breakByColor,omitempty" yaml:"breakByColor,omitempty"`
	Size             *StyledMeasureColumn `json:"size,omitempty" yaml:"size,omitempty"`
	SeriesToColorMap map[string]string    `json:"seriesToColorMap,omitempty" yaml:"seriesToColorMap,omitempty"`
}

type IndicatorChartDataOptions struct {
	Value     []StyledMeasureColumn `json:"value" yaml:"value"`
	Secondary []StyledMeasureColumn `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	Min       []StyledMeasureColumn `json:"min,omitempty" yaml:"min,omitempty"`
	Max       []StyledMeasureColumn `json:"max,omitempty" yaml:"max,omitempty"`
}

// BoxplotChartDataOptions takes the five box measures in the order
// whisker min, box min, median, box max, whisker max
type BoxplotChartDataOptions struct {
	Category   []StyledColumn        `json:"category" yaml:"category"`
	Value      []StyledMeasureColumn `json:"value" yaml:"value"`
	Outliers   []StyledColumn        `json:"outliers,omitempty" yaml:"outliers,omitempty"`
	ValueTitle string                `json:"valueTitle,omitempty" yaml:"valueTitle,omitempty"`
}

type RangeChartDataOptions struct {
	Category         []StyledColumn        `json:"category" yaml:"category"`
	Value            []StyledMeasureColumn `json:"value" yaml:"value"`
	BreakBy          []StyledColumn        `json:"breakBy,omitempty" yaml:"breakBy,omitempty"`
	SeriesToColorMap map[string]string     `json:"seriesToColorMap,omitempty" yaml:"seriesToColorMap,omitempty"`
}

type AreamapChartDataOptions struct {
	Geo   []StyledColumn        `json:"geo" yaml:"geo"`
	Color []StyledMeasureColumn `json:"color,omitempty" yaml:"color,omitempty"`
}

type ScattermapChartDataOptions struct {
	Geo     []StyledColumn       `json:"geo" yaml:"geo"`
	Size    *StyledMeasureColumn `json:"size,omitempty" yaml:"size,omitempty"`
	ColorBy *StyledMeasureColumn `json:"colorBy,omitempty" yaml:"colorBy,omitempty"`
	Details *StyledMeasureColumn `json:"details,omitempty" yaml:"details,omitempty"`
}

func (CartesianChartDataOptions) Family() charttype.Family   { return charttype.FamilyCartesian }
func (CategoricalChartDataOptions) Family() charttype.Family { return charttype.FamilyCategorical }
func (ScatterChartDataOptions) Family() charttype.Family     { return charttype.FamilyScatter }
func (IndicatorChartDataOptions) Family() charttype.Family   { return charttype.FamilyIndicator }
func (BoxplotChartDataOptions) Family() charttype.Family     { return charttype.FamilyBoxplot }
func (RangeChartDataOptions) Family() charttype.Family       { return charttype.FamilyRange }
func (AreamapChartDataOptions) Family() charttype.Family     { return charttype.FamilyAreamap }
func (ScattermapChartDataOptions) Family() charttype.Family  { return charttype.FamilyScattermap }

// ====================================================================
// Internal options
// ====================================================================

type CartesianChartDataOptionsInternal struct {
	X                []StyledColumn
	Y                []StyledMeasureColumn
	BreakBy          []StyledColumn
	SeriesToColorMap map[string]string
}

// CategoricalChartDataOptionsInternal keeps the categories as break-by columns
type CategoricalChartDataOptionsInternal struct {
	Y       []StyledMeasureColumn
	BreakBy []StyledColumn
}

type ScatterChartDataOptionsInternal struct {
	X                *StyledMeasureColumn
	Y                *StyledMeasureColumn
	BreakByPoint     *StyledColumn
	BreakByColor     *StyledColumn
	Size             *StyledMeasureColumn
	SeriesToColorMap map[string]string
}

type IndicatorChartDataOptionsInternal struct {
	Value     []StyledMeasureColumn
	Secondary []StyledMeasureColumn
	Min       []StyledMeasureColumn
	Max       []StyledMeasureColumn
}

type BoxplotChartDataOptionsInternal struct {
	Category   []StyledColumn
	Value      []StyledMeasureColumn
	Outliers   []StyledColumn
	ValueTitle string
}

// RangeChartDataOptionsInternal has upper and lower bound column names set on every value
type RangeChartDataOptionsInternal struct {
	X                []StyledColumn
	Y                []StyledMeasureColumn
	BreakBy          []StyledColumn
	SeriesToColorMap map[string]string
}

type AreamapChartDataOptionsInternal struct {
	Geo   *StyledColumn
	Color *StyledMeasureColumn
}

type ScattermapChartDataOptionsInternal struct {
	Geo     []StyledColumn
	Size    *StyledMeasureColumn
	ColorBy *StyledMeasureColumn
	Details *StyledMeasureColumn
}

func (CartesianChartDataOptionsInternal) Family() charttype.Family {
	return charttype.FamilyCartesian
}
func (CategoricalChartDataOptionsInternal) Family() charttype.Family {
	return charttype.FamilyCategorical
}
func (ScatterChartDataOptionsInternal) Family() charttype.Family { return charttype.FamilyScatter }
func (IndicatorChartDataOptionsInternal) Family() charttype.Family {
	return charttype.FamilyIndicator
}
func (BoxplotChartDataOptionsInternal) Family() charttype.Family { return charttype.FamilyBoxplot }
func (RangeChartDataOptionsInternal) Family() charttype.Family   { return charttype.FamilyRange }
func (AreamapChartDataOptionsInternal) Family() charttype.Family { return charttype.FamilyAreamap }
func (ScattermapChartDataOptionsInternal) Family() charttype.Family {
	return charttype.FamilyScattermap
}
