package dataoptions

import (
	"encoding/json"
)

const (
	ColoringUniform     = "uniform"
	ColoringConditional = "conditional"
	ColoringRange       = "range"
)

type ColorCondition struct {
	Expression string  `json:"expression" yaml:"expression"`
	Value      float64 `json:"value" yaml:"value"`
	Color      string  `json:"color" yaml:"color"`
}

// ColorOptions colors the values of a measure. A plain color string is uniform coloring.
type ColorOptions struct {
	Type       string           `json:"type" yaml:"type"`
	Color      string           `json:"color,omitempty" yaml:"color,omitempty"`
	Conditions []ColorCondition `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	MinColor   string           `json:"minColor,omitempty" yaml:"minColor,omitempty"`
	MaxColor   string           `json:"maxColor,omitempty" yaml:"maxColor,omitempty"`
	MinValue   *float64         `json:"minValue,omitempty" yaml:"minValue,omitempty"`
	MaxValue   *float64         `json:"maxValue,omitempty" yaml:"maxValue,omitempty"`
}

func UniformColor(color string) *ColorOptions {
	return &ColorOptions{Type: ColoringUniform, Color: color}
}

type plainColorOptions ColorOptions

func (c *ColorOptions) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var color string
	if err := unmarshal(&color); err == nil {
		*c = *UniformColor(color)
		return nil
	}

	var opts plainColorOptions
	if err := unmarshal(&opts); err != nil {
		return err
	}
	*c = ColorOptions(opts)
	c.setDefaultType()
	return nil
}

func (c *ColorOptions) UnmarshalJSON(data []byte) error {
	if isJsonString(data) {
		var color string
		if err := json.Unmarshal(data, &color); err != nil {
			return err
		}
		*c = *UniformColor(color)
		return nil
	}

	var opts plainColorOptions
	if err := json.Unmarshal(data, &opts); err != nil {
		return err
	}
	*c = ColorOptions(opts)
	c.setDefaultType()
	return nil
}

func (c *ColorOptions) setDefaultType() {
	if c.Type != "" {
		return
	}
	switch {
	case len(c.Conditions) > 0:
		c.Type = ColoringConditional
	case c.MinColor != "" || c.MaxColor != "":
		c.Type = ColoringRange
	default:
		c.Type = ColoringUniform
	}
}
