package table

import (
	"errors"
	"fmt"
	"strings"
)

const (
	TypeNumber   = "number"
	TypeString   = "string"
	TypeDate     = "date"
	TypeDateTime = "datetime"

	RowNumberColumnName = "$rownum"

	// KeySeparator joins the per-column keys of a row into a lookup key
	KeySeparator = "|"
)

const (
	DirectionDesc = -1
	DirectionNone = 0
	DirectionAsc  = 1
)

var ErrRowWidth = errors.New("row width does not match column count")

type Column struct {
	Name      string `json:"name" yaml:"name"`
	Type      string `json:"type" yaml:"type"`
	Index     int    `json:"index" yaml:"index"`
	Direction int    `json:"direction" yaml:"direction"`
}

type CompareValue struct {
	Value float64 `json:"value"`
}

type ComparableData struct {
	DisplayValue string        `json:"displayValue"`
	RawValue     RawValue      `json:"rawValue"`
	CompareValue *CompareValue `json:"compareValue,omitempty"`
	Blur         bool          `json:"blur,omitempty"`
	Color        string        `json:"color,omitempty"`
}

type Row []ComparableData

type DataTable struct {
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

type RowGroup struct {
	Key    string
	Values []ComparableData
	Rows   []Row
}

func IsNumberType(columnType string) bool {
	switch strings.ToLower(columnType) {
	case TypeNumber, "numeric", "integer", "float":
		return true
	}
	return false
}

func IsDateType(columnType string) bool {
	switch strings.ToLower(columnType) {
	case TypeDate, TypeDateTime:
		return true
	}
	return false
}

// NewTable builds a table and assigns column indexes in order
func NewTable(columns []Column, rows []Row) (DataTable, error) {
	cols := make([]Column, len(columns))
	for i, c := range columns {
		c.Index = i
		cols[i] = c
	}

	for i, row := range rows {
		if len(row) != len(cols) {
			return DataTable{}, fmt.Errorf("row %d has %d cells, expected %d: %w", i, len(row), len(cols), ErrRowWidth)
		}
	}

	return DataTable{Columns: cols, Rows: rows}, nil
}

func GetColumnByName(t DataTable, name string) *Column {
	for _, c := range t.Columns {
		if c.Name == name {
			col := c
			return &col
		}
	}
	return nil
}

// GetColumnsByName returns the matching columns in the order of names, skipping unknown names
func GetColumnsByName(t DataTable, names []string) []Column {
	columns := make([]Column, 0, len(names))
	for _, name := range names {
		if c := GetColumnByName(t, name); c != nil {
			columns = append(columns, *c)
		}
	}
	return columns
}

func GetValue(row Row, column *Column) *ComparableData {
	if column == nil || column.Index < 0 || column.Index >= len(row) {
		return nil
	}
	return &row[column.Index]
}

func GetValues(row Row, columns []Column) []ComparableData {
	values := make([]ComparableData, 0, len(columns))
	for i := range columns {
		if v := GetValue(row, &columns[i]); v != nil {
			values = append(values, *v)
		}
	}
	return values
}

func GetRawValue(row Row, column *Column) RawValue {
	if v := GetValue(row, column); v != nil {
		return v.RawValue
	}
	return RawValue{}
}

func IsBlurred(row Row, column *Column) bool {
	if v := GetValue(row, column); v != nil {
		return v.Blur
	}
	return false
}

// CellKey identifies a cell for grouping and lookups. Cells without a raw value use the display value.
func CellKey(cell ComparableData) string {
	if cell.RawValue.IsAbsent() {
		return cell.DisplayValue
	}
	return cell.RawValue.String()
}

var keyEscaper = strings.NewReplacer(`\`, `\\`, KeySeparator, `\`+KeySeparator)

// EscapeKey escapes the separator so joined keys of different cells never collide
func EscapeKey(key string) string {
	return keyEscaper.Replace(key)
}

func JoinKey(cells []ComparableData) string {
	keys := make([]string, len(cells))
	for i, cell := range cells {
		keys[i] = EscapeKey(CellKey(cell))
	}
	return strings.Join(keys, KeySeparator)
}

func RowKey(row Row, columns []Column) string {
	return JoinKey(GetValues(row, columns))
}

// GetIndexedRows maps the joined key of columns to the rows sharing it, in source order
func GetIndexedRows(rows []Row, columns []Column) map[string][]Row {
	index := make(map[string][]Row, len(rows))
	for _, row := range rows {
		key := RowKey(row, columns)
		index[key] = append(index[key], row)
	}
	return index
}

// SeparateBy partitions rows by the values of columns, groups in first-appearance order
func SeparateBy(rows []Row, columns []Column) []RowGroup {
	var groups []RowGroup
	groupIndex := make(map[string]int)

	for _, row := range rows {
		values := GetValues(row, columns)
		key := JoinKey(values)
		i, ok := groupIndex[key]
		if !ok {
			i = len(groups)
			groupIndex[key] = i
			groups = append(groups, RowGroup{Key: key, Values: values})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}

	return groups
}

// SelectColumns projects the table onto columns, re-indexing them
func SelectColumns(t DataTable, columns []Column) DataTable {
	cols := make([]Column, len(columns))
	for i, c := range columns {
		c.Index = i
		cols[i] = c
	}

	rows := make([]Row, len(t.Rows))
	for r, row := range t.Rows {
		newRow := make(Row, len(columns))
		for i := range columns {
			if v := GetValue(row, &columns[i]); v != nil {
				newRow[i] = *v
			}
		}
		rows[r] = newRow
	}

	return DataTable{Columns: cols, Rows: rows}
}

// WithRowNumbers returns a copy of the table with a trailing row-number column
func WithRowNumbers(t DataTable) DataTable {
	cols := make([]Column, len(t.Columns), len(t.Columns)+1)
	copy(cols, t.Columns)
	cols = append(cols, Column{
		Name:  RowNumberColumnName,
		Type:  TypeNumber,
		Index: len(t.Columns),
	})

	rows := make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		newRow := make(Row, len(row), len(row)+1)
		copy(newRow, row)
		rows[i] = append(newRow, ComparableData{
			DisplayValue: fmt.Sprint(i),
			RawValue:     NumberValue(float64(i)),
		})
	}

	return DataTable{Columns: cols, Rows: rows}
}

// NewCell wraps a raw value, displaying it as-is
func NewCell(raw RawValue) ComparableData {
	return ComparableData{DisplayValue: raw.String(), RawValue: raw}
}
