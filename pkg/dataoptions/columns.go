package dataoptions

import (
	"bytes"
	"encoding/json"

	"github.com/sisense/compose-sdk-charts/pkg/format"
	"github.com/sisense/compose-sdk-charts/pkg/table"
)

const (
	SortNone = "sortNone"
	SortAsc  = "sortAsc"
	SortDesc = "sortDesc"
)

// Column references an attribute of the query result by name
type Column struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// MeasureColumn references an aggregated value of the query result by name
type MeasureColumn struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Aggregation string `json:"aggregation,omitempty" yaml:"aggregation,omitempty"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
}

type MarkerStyle struct {
	Enabled *bool  `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Size    *int   `json:"size,omitempty" yaml:"size,omitempty"`
	Fill    string `json:"fill,omitempty" yaml:"fill,omitempty"`
}

// SeriesStyleOptions override the global design for a single series
type SeriesStyleOptions struct {
	LineWidth *int         `json:"lineWidth,omitempty" yaml:"lineWidth,omitempty"`
	DashStyle string       `json:"dashStyle,omitempty" yaml:"dashStyle,omitempty"`
	EndCap    string       `json:"endCap,omitempty" yaml:"endCap,omitempty"`
	Shadow    *bool        `json:"shadow,omitempty" yaml:"shadow,omitempty"`
	Markers   *MarkerStyle `json:"markers,omitempty" yaml:"markers,omitempty"`
}

type StyledColumn struct {
	Column             Column                     `json:"column" yaml:"column"`
	SortType           string                     `json:"sortType,omitempty" yaml:"sortType,omitempty"`
	NumberFormatConfig *format.NumberFormatConfig `json:"numberFormatConfig,omitempty" yaml:"numberFormatConfig,omitempty"`
	DateFormat         string                     `json:"dateFormat,omitempty" yaml:"dateFormat,omitempty"`
	Granularity        string                     `json:"granularity,omitempty" yaml:"granularity,omitempty"`
	Continuous         bool                       `json:"continuous,omitempty" yaml:"continuous,omitempty"`
	IsColored          bool                       `json:"isColored,omitempty" yaml:"isColored,omitempty"`
}

type StyledMeasureColumn struct {
	Column               MeasureColumn              `json:"column" yaml:"column"`
	SortType             string                     `json:"sortType,omitempty" yaml:"sortType,omitempty"`
	NumberFormatConfig   *format.NumberFormatConfig `json:"numberFormatConfig,omitempty" yaml:"numberFormatConfig,omitempty"`
	Color                *ColorOptions              `json:"color,omitempty" yaml:"color,omitempty"`
	Enabled              *bool                      `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	ShowOnRightAxis      bool                       `json:"showOnRightAxis,omitempty" yaml:"showOnRightAxis,omitempty"`
	ChartType            string                     `json:"chartType,omitempty" yaml:"chartType,omitempty"`
	TreatNullDataAsZeros bool                       `json:"treatNullDataAsZeros,omitempty" yaml:"treatNullDataAsZeros,omitempty"`
	ConnectNulls         bool                       `json:"connectNulls,omitempty" yaml:"connectNulls,omitempty"`
	SeriesStyleOptions   *SeriesStyleOptions        `json:"seriesStyleOptions,omitempty" yaml:"seriesStyleOptions,omitempty"`
	UpperBound           string                     `json:"upperBound,omitempty" yaml:"upperBound,omitempty"`
	LowerBound           string                     `json:"lowerBound,omitempty" yaml:"lowerBound,omitempty"`
}

func (c StyledColumn) Name() string {
	return c.Column.Name
}

func (c StyledColumn) Direction() int {
	return sortDirection(c.SortType)
}

func (c StyledColumn) IsDate() bool {
	return table.IsDateType(c.Column.Type)
}

func (m StyledMeasureColumn) Name() string {
	return m.Column.Name
}

func (m StyledMeasureColumn) Title() string {
	if m.Column.Title == "" {
		return m.Column.Name
	}
	return m.Column.Title
}

func (m StyledMeasureColumn) Direction() int {
	return sortDirection(m.SortType)
}

func (m StyledMeasureColumn) IsEnabled() bool {
	return m.Enabled == nil || *m.Enabled
}

// FormatConfig returns the measure's number format, or the default one
func (m StyledMeasureColumn) FormatConfig() format.NumberFormatConfig {
	if m.NumberFormatConfig == nil {
		return format.DefaultNumberFormatConfig()
	}
	return *m.NumberFormatConfig
}

func sortDirection(sortType string) int {
	switch sortType {
	case SortAsc:
		return table.DirectionAsc
	case SortDesc:
		return table.DirectionDesc
	}
	return table.DirectionNone
}

type plainStyledColumn StyledColumn
type plainStyledMeasureColumn StyledMeasureColumn

// UnmarshalYAML accepts a styled column, a bare column or a column name
func (c *StyledColumn) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err == nil {
		*c = StyledColumn{Column: Column{Name: name}}
		return nil
	}

	var styled plainStyledColumn
	if err := unmarshal(&styled); err != nil {
		return err
	}
	if styled.Column.Name == "" {
		if err := unmarshal(&styled.Column); err != nil {
			return err
		}
	}
	*c = StyledColumn(styled)
	return nil
}

// UnmarshalJSON accepts a styled column, a bare column or a column name
func (c *StyledColumn) UnmarshalJSON(data []byte) error {
	if isJsonString(data) {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*c = StyledColumn{Column: Column{Name: name}}
		return nil
	}

	var styled plainStyledColumn
	if err := json.Unmarshal(data, &styled); err != nil {
		return err
	}
	if styled.Column.Name == "" {
		if err := json.Unmarshal(data, &styled.Column); err != nil {
			return err
		}
	}
	*c = StyledColumn(styled)
	return nil
}

// UnmarshalYAML accepts a styled measure, a bare measure or a measure name
func (m *StyledMeasureColumn) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err == nil {
		*m = StyledMeasureColumn{Column: MeasureColumn{Name: name}}
		return nil
	}

	var styled plainStyledMeasureColumn
	if err := unmarshal(&styled); err != nil {
		return err
	}
	if styled.Column.Name == "" {
		if err := unmarshal(&styled.Column); err != nil {
			return err
		}
	}
	*m = StyledMeasureColumn(styled)
	return nil
}

// UnmarshalJSON accepts a styled measure, a bare measure or a measure name
func (m *StyledMeasureColumn) UnmarshalJSON(data []byte) error {
	if isJsonString(data) {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*m = StyledMeasureColumn{Column: MeasureColumn{Name: name}}
		return nil
	}

	var styled plainStyledMeasureColumn
	if err := json.Unmarshal(data, &styled); err != nil {
		return err
	}
	if styled.Column.Name == "" {
		if err := json.Unmarshal(data, &styled.Column); err != nil {
			return err
		}
	}
	*m = StyledMeasureColumn(styled)
	return nil
}

func isJsonString(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '"'
}
