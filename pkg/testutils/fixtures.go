package testutils

import (
	"strconv"

	"github.com/sisense/compose-sdk-charts/pkg/table"
)

var foodRows = [][]interface{}{
	{"Pies", "USA", 100.0, 50.0, 30.0},
	{"Wine", "USA", 80.0, 40.0, 20.0},
	{"Pies", "France", 120.0, 60.0, 35.0},
	{"Wine", "France", 90.0, 45.0, 25.0},
	{"Pasta", "USA", 150.0, 70.0, 40.0},
	{"Pasta", "France", 130.0, 65.0, 38.0},
}

// FoodTable is a small query result with two attributes (Food, Geo) and three measures
func FoodTable() table.DataTable {
	columns := []table.Column{
		{Name: "Food", Type: table.TypeString},
		{Name: "Geo", Type: table.TypeString},
		{Name: "Revenue", Type: table.TypeNumber},
		{Name: "Expenses", Type: table.TypeNumber},
		{Name: "COGS", Type: table.TypeNumber},
	}

	rows := make([]table.Row, len(foodRows))
	for i, values := range foodRows {
		rows[i] = NewRow(values...)
	}

	t, err := table.NewTable(columns, rows)
	if err != nil {
		panic(err)
	}
	return t
}

// NewRow builds cells from strings, float64s and nils
func NewRow(values ...interface{}) table.Row {
	row := make(table.Row, len(values))
	for i, v := range values {
		row[i] = NewCell(v)
	}
	return row
}

func NewCell(v interface{}) table.ComparableData {
	switch val := v.(type) {
	case float64:
		return table.ComparableData{
			DisplayValue: strconv.FormatFloat(val, 'f', -1, 64),
			RawValue:     table.NumberValue(val),
		}
	case int:
		return NewCell(float64(val))
	case string:
		return table.ComparableData{
			DisplayValue: val,
			RawValue:     table.StringValue(val),
		}
	case table.ComparableData:
		return val
	}
	return table.ComparableData{}
}
