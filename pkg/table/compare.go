package table

import (
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparer orders cells. A collator keeps internal buffers so a Comparer must
// not be shared between goroutines.
type Comparer struct {
	collator *collate.Collator
}

func NewComparer(tag language.Tag) *Comparer {
	return &Comparer{
		collator: collate.New(tag),
	}
}

// Compare orders by compare value, then numeric raw values, then collated display values.
// Absent raw values sort before numbers.
func (c *Comparer) Compare(a, b ComparableData) int {
	if a.CompareValue != nil && b.CompareValue != nil {
		return compareFloats(a.CompareValue.Value, b.CompareValue.Value)
	}

	fa, okA := numericValue(a)
	fb, okB := numericValue(b)
	if okA && okB {
		return compareFloats(fa, fb)
	}
	if okA != okB && (a.RawValue.IsAbsent() || b.RawValue.IsAbsent()) {
		if okA {
			return 1
		}
		return -1
	}

	return c.collator.CompareString(a.DisplayValue, b.DisplayValue)
}

func numericValue(cell ComparableData) (float64, bool) {
	if cell.RawValue.Number != nil {
		return *cell.RawValue.Number, true
	}
	return 0, false
}

// NaN is smaller than every number
func compareFloats(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// OrderBy returns a copy of the table sorted by sortColumns in precedence order.
// Each column sorts by its own Direction, columns with no direction are skipped.
// The sort is stable.
func OrderBy(t DataTable, sortColumns []Column) DataTable {
	return OrderByLocale(t, sortColumns, language.Und)
}

func OrderByLocale(t DataTable, sortColumns []Column, tag language.Tag) DataTable {
	rows := make([]Row, len(t.Rows))
	copy(rows, t.Rows)

	keys := make([]Column, 0, len(sortColumns))
	for _, c := range sortColumns {
		if c.Direction != DirectionNone {
			keys = append(keys, c)
		}
	}

	if len(keys) > 0 {
		comparer := NewComparer(tag)
		sort.SliceStable(rows, func(i, j int) bool {
			for k := range keys {
				a := GetValue(rows[i], &keys[k])
				b := GetValue(rows[j], &keys[k])
				if a == nil || b == nil {
					continue
				}
				cmp := comparer.Compare(*a, *b)
				if cmp != 0 {
					return cmp*keys[k].Direction < 0
				}
			}
			return false
		})
	}

	return DataTable{Columns: t.Columns, Rows: rows}
}
