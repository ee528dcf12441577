package chartoptions

import (
	"math"
	"sort"
)

const (
	OthersName        = "Others"
	OthersDrilldownID = "others"
)

// Slice is one pie or funnel segment
type Slice struct {
	Name  string
	Value float64
	Color string
	Blur  bool
}

type ConvolutionResult struct {
	Slices []Slice
	// Others is nil when nothing was collapsed
	Others    *Slice
	Collapsed []Slice
}

// Convolve collapses small slices into one Others slice whose value is the sum of the collapsed
// ones. Independent slices keep their order. Nothing is collapsed unless at least two slices qualify.
func Convolve(slices []Slice, options ConvolutionOptions) ConvolutionResult {
	result := ConvolutionResult{Slices: slices}
	if !options.Enabled || len(slices) < 2 {
		return result
	}

	collapse := make([]bool, len(slices))
	switch options.SelectedConvolutionType {
	case ConvolutionBySlicesCount:
		collapseBySlicesCount(slices, options.IndependentSlicesCount, collapse)
	default:
		collapseByPercentage(slices, options.MinimalIndependentSlicePercentage, collapse)
	}

	count := 0
	for _, c := range collapse {
		if c {
			count++
		}
	}
	if count < 2 {
		return result
	}

	others := Slice{Name: OthersName, Blur: true}
	kept := make([]Slice, 0, len(slices)-count)
	collapsed := make([]Slice, 0, count)
	for i, s := range slices {
		if !collapse[i] {
			kept = append(kept, s)
			continue
		}
		collapsed = append(collapsed, s)
		others.Value += s.Value
		others.Blur = others.Blur && s.Blur
	}

	return ConvolutionResult{Slices: kept, Others: &others, Collapsed: collapsed}
}

func collapseByPercentage(slices []Slice, minimalPercentage float64, collapse []bool) {
	total := 0.0
	for _, s := range slices {
		if !math.IsNaN(s.Value) {
			total += math.Abs(s.Value)
		}
	}
	if total == 0 {
		return
	}
	for i, s := range slices {
		if math.IsNaN(s.Value) {
			continue
		}
		collapse[i] = math.Abs(s.Value)/total*100 < minimalPercentage
	}
}

func collapseBySlicesCount(slices []Slice, independent int, collapse []bool) {
	if independent < 0 || len(slices) <= independent {
		return
	}
	order := make([]int, len(slices))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return sliceValue(slices[order[a]]) > sliceValue(slices[order[b]])
	})
	for _, i := range order[independent:] {
		collapse[i] = true
	}
}

func sliceValue(s Slice) float64 {
	if math.IsNaN(s.Value) {
		return math.Inf(-1)
	}
	return s.Value
}
