package chartdata

import (
	"strings"

	"github.com/sisense/compose-sdk-charts/pkg/dataoptions"
	"github.com/sisense/compose-sdk-charts/pkg/format"
	"github.com/sisense/compose-sdk-charts/pkg/table"
)

// ScattermapNameSeparator joins the geo levels of a location
const ScattermapNameSeparator = ", "

// AreamapData aggregates the color measure per geo value
func AreamapData(options dataoptions.AreamapChartDataOptionsInternal, dataTable table.DataTable) *AreamapChartData {
	data := &AreamapChartData{Geo: []GeoDataElement{}}
	if options.Geo == nil {
		return data
	}
	geo := getColumns(dataTable, []dataoptions.StyledColumn{*options.Geo})
	if len(geo) == 0 {
		return data
	}

	var measures []table.AggregatedColumn
	var config format.NumberFormatConfig
	if options.Color != nil {
		if c := table.GetColumnByName(dataTable, options.Color.Name()); c != nil {
			measures = append(measures, table.AggregatedColumn{Column: *c, Aggregation: options.Color.Column.Aggregation})
			config = options.Color.FormatConfig()
		}
	}

	grouped := table.GroupBy(dataTable, geo, measures)
	for _, row := range grouped.Rows {
		element := GeoDataElement{
			GeoName: row[0].DisplayValue,
			Blur:    row[0].Blur,
		}
		if len(measures) > 0 {
			if f, ok := row[1].RawValue.Float(); ok {
				element.OriginalValue = f
			}
			element.Blur = element.Blur || row[1].Blur
			element.FormattedOriginalValue = format.ApplyFormat(config, element.OriginalValue)
		}
		data.Geo = append(data.Geo, element)
	}
	return data
}

// ScattermapData aggregates the size, color and details measures per location
func ScattermapData(options dataoptions.ScattermapChartDataOptionsInternal, dataTable table.DataTable) *ScattermapChartData {
	data := &ScattermapChartData{Locations: []ScattermapLocation{}}
	geo := getColumns(dataTable, options.Geo)
	if len(geo) == 0 {
		return data
	}

	var measures []table.AggregatedColumn
	channels := []*dataoptions.StyledMeasureColumn{options.Size, options.ColorBy, options.Details}
	positions := make([]int, len(channels))
	for i, m := range channels {
		positions[i] = -1
		if m == nil {
			continue
		}
		c := table.GetColumnByName(dataTable, m.Name())
		if c == nil {
			continue
		}
		positions[i] = len(geo) + len(measures)
		measures = append(measures, table.AggregatedColumn{Column: *c, Aggregation: m.Column.Aggregation})
	}

	grouped := table.GroupBy(dataTable, geo, measures)
	for _, row := range grouped.Rows {
		names := make([]string, len(geo))
		blur := true
		for i := range geo {
			names[i] = row[i].DisplayValue
			blur = blur && row[i].Blur
		}

		location := ScattermapLocation{
			Name:     strings.Join(names, ScattermapNameSeparator),
			RawNames: names,
			Blur:     blur,
		}
		if size := aggregatedValue(row, positions[0]); size != nil {
			location.Value = *size
		}
		location.ColorValue = aggregatedValue(row, positions[1])
		location.Details = aggregatedValue(row, positions[2])
		data.Locations = append(data.Locations, location)
	}
	return data
}

func aggregatedValue(row table.Row, position int) *float64 {
	if position < 0 {
		return nil
	}
	f, ok := row[position].RawValue.Float()
	if !ok {
		return nil
	}
	return &f
}
