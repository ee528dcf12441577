package chartdata

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/sisense/compose-sdk-charts/pkg/dataoptions"
	"github.com/sisense/compose-sdk-charts/pkg/table"
)

var floatPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// BoxplotData builds the five box series with the cartesian builder. Outliers are stored as
// comma separated numbers in a single cell per category.
func BoxplotData(options dataoptions.BoxplotChartDataOptionsInternal, dataTable table.DataTable) *BoxplotChartData {
	cartesian := CartesianData(dataoptions.CartesianChartDataOptionsInternal{
		X: options.Category,
		Y: options.Value,
	}, dataTable)

	return &BoxplotChartData{
		XAxisCount: cartesian.XAxisCount,
		XValues:    cartesian.XValues,
		Series:     cartesian.Series,
		Outliers:   outliers(options, dataTable, cartesian.XValues),
		ValueTitle: options.ValueTitle,
	}
}

func outliers(options dataoptions.BoxplotChartDataOptionsInternal, dataTable table.DataTable, xValues []CategoricalXValues) []OutlierPoint {
	points := []OutlierPoint{}
	if len(options.Outliers) == 0 {
		return points
	}
	column := table.GetColumnByName(dataTable, options.Outliers[0].Name())
	if column == nil {
		return points
	}

	index := table.GetIndexedRows(dataTable.Rows, getColumns(dataTable, options.Category))
	for i, xv := range xValues {
		cell := firstCell(index[xv.Key], column)
		if cell == nil || cell.RawValue.IsAbsent() {
			continue
		}
		raw := cell.RawValue.String()
		if strings.TrimSpace(raw) == "" {
			continue
		}
		for _, part := range strings.Split(raw, ",") {
			points = append(points, OutlierPoint{X: i, Value: ParseFloat(part), Blur: cell.Blur})
		}
	}
	return points
}

// ParseFloat parses the longest numeric prefix of s after leading whitespace. It returns NaN when
// there is none.
func ParseFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	match := floatPrefix.FindString(s)
	if match == "" {
		return math.NaN()
	}

	if strings.HasSuffix(match, "Infinity") {
		if strings.HasPrefix(match, "-") {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	// out of range values come back as +-Inf with an error
	f, _ := strconv.ParseFloat(match, 64)
	return f
}
