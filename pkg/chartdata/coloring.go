package chartdata

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sisense/compose-sdk-charts/pkg/dataoptions"
)

// applyColoring colors the series of measure m in place. Uniform coloring is skipped for
// break-by series, they keep one color each.
func applyColoring(series []SeriesWithValues, m dataoptions.StyledMeasureColumn, byBreakBy bool) {
	if m.Color == nil {
		return
	}

	switch m.Color.Type {
	case dataoptions.ColoringUniform:
		if byBreakBy {
			return
		}
		for i := range series {
			series[i].Color = m.Color.Color
		}
	case dataoptions.ColoringConditional:
		for i := range series {
			for j := range series[i].Data {
				if color, ok := conditionalColor(m.Color.Conditions, series[i].Data[j].Value); ok {
					series[i].Data[j].Color = color
				}
			}
		}
	case dataoptions.ColoringRange:
		for i := range series {
			applyRangeColoring(series[i].Data, m.Color)
		}
	}
}

// conditionalColor returns the color of the first condition value satisfies
func conditionalColor(conditions []dataoptions.ColorCondition, value float64) (string, bool) {
	if math.IsNaN(value) {
		return "", false
	}
	for _, c := range conditions {
		if matchesCondition(c, value) {
			return c.Color, true
		}
	}
	return "", false
}

func matchesCondition(c dataoptions.ColorCondition, value float64) bool {
	switch strings.TrimSpace(c.Expression) {
	case ">":
		return value > c.Value
	case ">=", "≥":
		return value >= c.Value
	case "<":
		return value < c.Value
	case "<=", "≤":
		return value <= c.Value
	case "=", "==":
		return value == c.Value
	case "!=", "≠":
		return value != c.Value
	}
	return false
}

func applyRangeColoring(data []SeriesValueData, options *dataoptions.ColorOptions) {
	minValue, maxValue := math.Inf(1), math.Inf(-1)
	for _, d := range data {
		if math.IsNaN(d.Value) {
			continue
		}
		minValue = math.Min(minValue, d.Value)
		maxValue = math.Max(maxValue, d.Value)
	}
	if options.MinValue != nil {
		minValue = *options.MinValue
	}
	if options.MaxValue != nil {
		maxValue = *options.MaxValue
	}

	for i := range data {
		if math.IsNaN(data[i].Value) {
			continue
		}
		ratio := 0.0
		if maxValue > minValue {
			ratio = (data[i].Value - minValue) / (maxValue - minValue)
		}
		data[i].Color = interpolateColor(options.MinColor, options.MaxColor, ratio)
	}
}

// interpolateColor blends two hex colors linearly in RGB. Ratio is clamped to [0, 1].
func interpolateColor(from string, to string, ratio float64) string {
	a, okA := parseHexColor(from)
	b, okB := parseHexColor(to)
	if !okA || !okB {
		if ratio < 0.5 || to == "" {
			return from
		}
		return to
	}

	ratio = math.Max(0, math.Min(1, ratio))
	var mixed [3]int
	for i := range mixed {
		mixed[i] = int(math.Round(float64(a[i]) + (float64(b[i])-float64(a[i]))*ratio))
	}
	return fmt.Sprintf("#%02x%02x%02x", mixed[0], mixed[1], mixed[2])
}

func parseHexColor(color string) ([3]int, bool) {
	var rgb [3]int
	hex := strings.TrimPrefix(color, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return rgb, false
	}
	for i := range rgb {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return rgb, false
		}
		rgb[i] = int(v)
	}
	return rgb, true
}
