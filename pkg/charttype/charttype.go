package charttype

import (
	"fmt"
	"strings"
)

type ChartType string

const (
	Line       ChartType = "line"
	Area       ChartType = "area"
	Bar        ChartType = "bar"
	Column     ChartType = "column"
	Polar      ChartType = "polar"
	Pie        ChartType = "pie"
	Funnel     ChartType = "funnel"
	Treemap    ChartType = "treemap"
	Sunburst   ChartType = "sunburst"
	Scatter    ChartType = "scatter"
	Indicator  ChartType = "indicator"
	Boxplot    ChartType = "boxplot"
	Areamap    ChartType = "areamap"
	Scattermap ChartType = "scattermap"
	Arearange  ChartType = "arearange"
)

// Family groups chart types that share a data shape
type Family int

const (
	FamilyUnknown Family = iota
	FamilyCartesian
	FamilyCategorical
	FamilyScatter
	FamilyIndicator
	FamilyBoxplot
	FamilyRange
	FamilyAreamap
	FamilyScattermap
)

var families = map[ChartType]Family{
	Line:       FamilyCartesian,
	Area:       FamilyCartesian,
	Bar:        FamilyCartesian,
	Column:     FamilyCartesian,
	Polar:      FamilyCartesian,
	Pie:        FamilyCategorical,
	Funnel:     FamilyCategorical,
	Treemap:    FamilyCategorical,
	Sunburst:   FamilyCategorical,
	Scatter:    FamilyScatter,
	Indicator:  FamilyIndicator,
	Boxplot:    FamilyBoxplot,
	Arearange:  FamilyRange,
	Areamap:    FamilyAreamap,
	Scattermap: FamilyScattermap,
}

func (f Family) String() string {
	switch f {
	case FamilyCartesian:
		return "cartesian"
	case FamilyCategorical:
		return "categorical"
	case FamilyScatter:
		return "scatter"
	case FamilyIndicator:
		return "indicator"
	case FamilyBoxplot:
		return "boxplot"
	case FamilyRange:
		return "range"
	case FamilyAreamap:
		return "areamap"
	case FamilyScattermap:
		return "scattermap"
	}
	return "unknown"
}

func (t ChartType) Family() Family {
	return families[t]
}

func (t ChartType) IsSupported() bool {
	return t.Family() != FamilyUnknown
}

func Parse(name string) (ChartType, error) {
	t := ChartType(strings.ToLower(strings.TrimSpace(name)))
	if !t.IsSupported() {
		return t, fmt.Errorf("unknown chart type '%s'", name)
	}
	return t, nil
}

func IsCartesian(t ChartType) bool {
	return t.Family() == FamilyCartesian
}

func IsCategorical(t ChartType) bool {
	return t.Family() == FamilyCategorical
}

func IsScatter(t ChartType) bool {
	return t.Family() == FamilyScatter
}

func IsIndicator(t ChartType) bool {
	return t.Family() == FamilyIndicator
}

func IsBoxplot(t ChartType) bool {
	return t.Family() == FamilyBoxplot
}

func IsRange(t ChartType) bool {
	return t.Family() == FamilyRange
}

func IsAreamap(t ChartType) bool {
	return t.Family() == FamilyAreamap
}

func IsScattermap(t ChartType) bool {
	return t.Family() == FamilyScattermap
}

// IsPieFamily reports chart types whose slices can be collapsed into an "Others" bucket
func IsPieFamily(t ChartType) bool {
	return t == Pie || t == Funnel
}

// IsHierarchical reports categorical chart types that nest multiple category levels
func IsHierarchical(t ChartType) bool {
	return t == Treemap || t == Sunburst
}
