package format

import (
	"encoding/json"
	"fmt"
	"strings"

	compose_json "github.com/sisense/compose-sdk-charts/pkg/json"
)

const (
	NameNumbers  = "Numbers"
	NameCurrency = "Currency"
	NamePercent  = "Percent"
)

// DecimalScale is a number of fraction digits. DecimalScaleAuto keeps at most two digits without padding.
type DecimalScale int

const DecimalScaleAuto DecimalScale = -1

func (d DecimalScale) IsAuto() bool {
	return d < 0
}

func (d *DecimalScale) UnmarshalJSON(data []byte) error {
	var number *float64
	var str *string
	if err := compose_json.UnmarshalUnion(data, &number, &str); err != nil {
		return err
	}
	return d.set(number, str)
}

func (d DecimalScale) MarshalJSON() ([]byte, error) {
	if d.IsAuto() {
		auto := "auto"
		return compose_json.MarshalUnion(nil, &auto)
	}
	f := float64(d)
	return compose_json.MarshalUnion(&f, nil)
}

func (d *DecimalScale) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case int:
		f := float64(v)
		return d.set(&f, nil)
	case float64:
		return d.set(&v, nil)
	case string:
		return d.set(nil, &v)
	case nil:
		*d = DecimalScaleAuto
		return nil
	}
	return fmt.Errorf("invalid decimal scale '%v'", raw)
}

func (d *DecimalScale) set(number *float64, str *string) error {
	switch {
	case number != nil:
		if *number < 0 {
			return fmt.Errorf("decimal scale must not be negative, got %v", *number)
		}
		*d = DecimalScale(*number)
	case str != nil && strings.EqualFold(*str, "auto"):
		*d = DecimalScaleAuto
	case str != nil:
		return fmt.Errorf("invalid decimal scale '%s'", *str)
	default:
		*d = DecimalScaleAuto
	}
	return nil
}

type NumberFormatConfig struct {
	Name              string       `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name,omitempty"`
	DecimalScale      DecimalScale `json:"decimalScale" yaml:"decimalScale" mapstructure:"decimalScale"`
	Kilo              bool         `json:"kilo,omitempty" yaml:"kilo,omitempty" mapstructure:"kilo,omitempty"`
	Million           bool         `json:"million,omitempty" yaml:"million,omitempty" mapstructure:"million,omitempty"`
	Billion           bool         `json:"billion,omitempty" yaml:"billion,omitempty" mapstructure:"billion,omitempty"`
	Trillion          bool         `json:"trillion,omitempty" yaml:"trillion,omitempty" mapstructure:"trillion,omitempty"`
	ThousandSeparator *bool        `json:"thousandSeparator,omitempty" yaml:"thousandSeparator,omitempty" mapstructure:"thousandSeparator,omitempty"`
	Prefix            bool         `json:"prefix,omitempty" yaml:"prefix,omitempty" mapstructure:"prefix,omitempty"`
	Symbol            string       `json:"symbol,omitempty" yaml:"symbol,omitempty" mapstructure:"symbol,omitempty"`
}

// DefaultNumberFormatConfig abbreviates every magnitude, keeps up to two decimals and groups thousands
func DefaultNumberFormatConfig() NumberFormatConfig {
	separator := true
	return NumberFormatConfig{
		Name:              NameNumbers,
		DecimalScale:      DecimalScaleAuto,
		Kilo:              true,
		Million:           true,
		Billion:           true,
		Trillion:          true,
		ThousandSeparator: &separator,
		Prefix:            true,
		Symbol:            "$",
	}
}

func (c NumberFormatConfig) name() string {
	if c.Name == "" {
		return NameNumbers
	}
	return c.Name
}

func (c NumberFormatConfig) useThousandSeparator() bool {
	if c.name() != NameNumbers || c.ThousandSeparator == nil {
		return true
	}
	return *c.ThousandSeparator
}

type plainNumberFormatConfig NumberFormatConfig

// UnmarshalJSON fills the fields missing from data with the defaults
func (c *NumberFormatConfig) UnmarshalJSON(data []byte) error {
	p := plainNumberFormatConfig(DefaultNumberFormatConfig())
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = NumberFormatConfig(p)
	return nil
}

// UnmarshalYAML fills the fields missing from the node with the defaults
func (c *NumberFormatConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	p := plainNumberFormatConfig(DefaultNumberFormatConfig())
	if err := unmarshal(&p); err != nil {
		return err
	}
	*c = NumberFormatConfig(p)
	return nil
}
