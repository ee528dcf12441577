package table

import (
	"math"
	"sort"
	"strconv"
)

const (
	AggregationSum           = "sum"
	AggregationCount         = "count"
	AggregationCountDistinct = "countDistinct"
	AggregationAvg           = "avg"
	AggregationMin           = "min"
	AggregationMax           = "max"
	AggregationMedian        = "median"
	AggregationFirst         = "first"
)

type AggregatedColumn struct {
	Column      Column
	Aggregation string
}

type accumulator interface {
	add(cell ComparableData)
	result() float64
}

func newAccumulator(aggregation string) accumulator {
	switch aggregation {
	case AggregationCount:
		return &countAccumulator{}
	case AggregationCountDistinct:
		return &countDistinctAccumulator{seen: map[string]bool{}}
	case AggregationAvg:
		return &avgAccumulator{}
	case AggregationMin:
		return &extremeAccumulator{less: func(a, b float64) bool { return a < b }}
	case AggregationMax:
		return &extremeAccumulator{less: func(a, b float64) bool { return a > b }}
	case AggregationMedian:
		return &medianAccumulator{}
	case AggregationFirst:
		return &firstAccumulator{}
	}
	return &sumAccumulator{}
}

type sumAccumulator struct{ sum float64 }

func (a *sumAccumulator) add(cell ComparableData) {
	if f, ok := cell.RawValue.Float(); ok && !math.IsNaN(f) {
		a.sum += f
	}
}
func (a *sumAccumulator) result() float64 { return a.sum }

type countAccumulator struct{ n int }

func (a *countAccumulator) add(cell ComparableData) {
	if !cell.RawValue.IsAbsent() {
		a.n++
	}
}
func (a *countAccumulator) result() float64 { return float64(a.n) }

type countDistinctAccumulator struct{ seen map[string]bool }

func (a *countDistinctAccumulator) add(cell ComparableData) {
	if !cell.RawValue.IsAbsent() {
		a.seen[CellKey(cell)] = true
	}
}
func (a *countDistinctAccumulator) result() float64 { return float64(len(a.seen)) }

type avgAccumulator struct {
	sum float64
	n   int
}

func (a *avgAccumulator) add(cell ComparableData) {
	if f, ok := cell.RawValue.Float(); ok && !math.IsNaN(f) {
		a.sum += f
		a.n++
	}
}
func (a *avgAccumulator) result() float64 {
	if a.n == 0 {
		return math.NaN()
	}
	return a.sum / float64(a.n)
}

type extremeAccumulator struct {
	value float64
	set   bool
	less  func(a, b float64) bool
}

func (a *extremeAccumulator) add(cell ComparableData) {
	f, ok := cell.RawValue.Float()
	if !ok || math.IsNaN(f) {
		return
	}
	if !a.set || a.less(f, a.value) {
		a.value = f
		a.set = true
	}
}
func (a *extremeAccumulator) result() float64 {
	if !a.set {
		return math.NaN()
	}
	return a.value
}

type medianAccumulator struct{ values []float64 }

func (a *medianAccumulator) add(cell ComparableData) {
	if f, ok := cell.RawValue.Float(); ok && !math.IsNaN(f) {
		a.values = append(a.values, f)
	}
}
func (a *medianAccumulator) result() float64 {
	n := len(a.values)
	if n == 0 {
		return math.NaN()
	}
	sorted := make([]float64, n)
	copy(sorted, a.values)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

type firstAccumulator struct {
	value float64
	set   bool
}

func (a *firstAccumulator) add(cell ComparableData) {
	if a.set {
		return
	}
	if f, ok := cell.RawValue.Float(); ok {
		a.value = f
		a.set = true
	}
}
func (a *firstAccumulator) result() float64 {
	if !a.set {
		return math.NaN()
	}
	return a.value
}

type group struct {
	values       []ComparableData
	blurred      []bool
	accumulators []accumulator
	measureBlur  []bool
}

// GroupBy aggregates rows sharing the same groupColumns values.
// The result has the group columns followed by the measures, groups in first-appearance order.
// A cell is blurred only when every cell it was built from is blurred.
func GroupBy(t DataTable, groupColumns []Column, measures []AggregatedColumn) DataTable {
	var groups []*group
	groupIndex := make(map[string]int)

	for _, row := range t.Rows {
		values := GetValues(row, groupColumns)
		key := JoinKey(values)

		i, ok := groupIndex[key]
		if !ok {
			g := &group{
				values:       values,
				blurred:      make([]bool, len(values)),
				accumulators: make([]accumulator, len(measures)),
				measureBlur:  make([]bool, len(measures)),
			}
			for v := range values {
				g.blurred[v] = true
			}
			for m, measure := range measures {
				g.accumulators[m] = newAccumulator(measure.Aggregation)
				g.measureBlur[m] = true
			}
			i = len(groups)
			groupIndex[key] = i
			groups = append(groups, g)
		}

		g := groups[i]
		for v, value := range values {
			g.blurred[v] = g.blurred[v] && value.Blur
		}
		for m := range measures {
			cell := GetValue(row, &measures[m].Column)
			if cell == nil {
				g.measureBlur[m] = false
				continue
			}
			g.accumulators[m].add(*cell)
			g.measureBlur[m] = g.measureBlur[m] && cell.Blur
		}
	}

	columns := make([]Column, 0, len(groupColumns)+len(measures))
	for _, c := range groupColumns {
		if GetColumnByName(t, c.Name) == nil {
			continue
		}
		c.Index = len(columns)
		columns = append(columns, c)
	}
	for _, m := range measures {
		c := m.Column
		c.Index = len(columns)
		c.Type = TypeNumber
		columns = append(columns, c)
	}

	rows := make([]Row, len(groups))
	for i, g := range groups {
		row := make(Row, 0, len(columns))
		for v, value := range g.values {
			value.Blur = g.blurred[v]
			row = append(row, value)
		}
		for m, acc := range g.accumulators {
			row = append(row, aggregatedCell(acc.result(), g.measureBlur[m]))
		}
		rows[i] = row
	}

	return DataTable{Columns: columns, Rows: rows}
}

func aggregatedCell(value float64, blur bool) ComparableData {
	cell := ComparableData{Blur: blur}
	if math.IsNaN(value) {
		return cell
	}
	cell.DisplayValue = strconv.FormatFloat(value, 'f', -1, 64)
	cell.RawValue = NumberValue(value)
	return cell
}
