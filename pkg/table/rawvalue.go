package table

import (
	"strconv"
	"strings"

	compose_json "github.com/sisense/compose-sdk-charts/pkg/json"
)

// RawValue is the untyped value behind a cell. It holds a number, a string or nothing.
type RawValue struct {
	Number *float64
	Text   *string
}

func NumberValue(f float64) RawValue {
	return RawValue{Number: &f}
}

func StringValue(s string) RawValue {
	return RawValue{Text: &s}
}

func (v RawValue) IsAbsent() bool {
	return v.Number == nil && v.Text == nil
}

func (v RawValue) IsNumber() bool {
	return v.Number != nil
}

// Float returns the numeric value, parsing numeric strings
func (v RawValue) Float() (float64, bool) {
	if v.Number != nil {
		return *v.Number, true
	}
	if v.Text != nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(*v.Text), 64)
		if err == nil {
			return f, true
		}
	}
	return 0, false
}

func (v RawValue) String() string {
	if v.Number != nil {
		return strconv.FormatFloat(*v.Number, 'f', -1, 64)
	}
	if v.Text != nil {
		return *v.Text
	}
	return ""
}

func (v *RawValue) UnmarshalJSON(data []byte) error {
	return compose_json.UnmarshalUnion(data, &v.Number, &v.Text)
}

func (v RawValue) MarshalJSON() ([]byte, error) {
	return compose_json.MarshalUnion(v.Number, v.Text)
}
