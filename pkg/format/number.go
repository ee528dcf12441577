package format

import (
	"html"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

const (
	autoDecimalScale = 2
	markupClass      = "csdk-number"
)

type magnitude struct {
	threshold float64
	suffix    string
	enabled   func(c NumberFormatConfig) bool
}

// checked largest first, the first match wins
var magnitudes = []magnitude{
	{1e12, "T", func(c NumberFormatConfig) bool { return c.Trillion }},
	{1e9, "B", func(c NumberFormatConfig) bool { return c.Billion }},
	{1e6, "M", func(c NumberFormatConfig) bool { return c.Million }},
	{1e3, "K", func(c NumberFormatConfig) bool { return c.Kilo }},
}

// Formatter formats numbers with the separators of a locale
type Formatter struct {
	locale     language.Tag
	separators separators
}

func NewFormatter(locale language.Tag) *Formatter {
	return &Formatter{
		locale:     locale,
		separators: localeSeparators(locale),
	}
}

// NewFormatterForLocale parses a BCP 47 locale such as "en-US", falling back to English
func NewFormatterForLocale(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return NewFormatter(tag)
}

func (f *Formatter) Locale() language.Tag {
	return f.locale
}

// ApplyFormat renders value following config. NaN renders as an empty string.
func (f *Formatter) ApplyFormat(config NumberFormatConfig, value float64) string {
	if math.IsNaN(value) {
		return ""
	}
	if math.IsInf(value, 1) {
		return "∞"
	}
	if math.IsInf(value, -1) {
		return "-∞"
	}

	name := config.name()
	suffix := ""
	if name == NamePercent {
		value *= 100
	} else {
		for _, m := range magnitudes {
			if m.enabled(config) && math.Abs(value) >= m.threshold {
				value /= m.threshold
				suffix = m.suffix
				break
			}
		}
	}

	negative, number := f.formatNumber(value, config.DecimalScale, config.useThousandSeparator())

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	if name == NameCurrency && config.Prefix {
		b.WriteString(config.Symbol)
	}
	b.WriteString(number)
	b.WriteString(suffix)
	switch {
	case name == NameCurrency && !config.Prefix:
		b.WriteString(config.Symbol)
	case name == NamePercent:
		b.WriteString("%")
	}
	return b.String()
}

func (f *Formatter) ApplyFormatPlainText(config NumberFormatConfig, value float64) string {
	return f.ApplyFormat(config, value)
}

// ApplyFormatStaticMarkup wraps the formatted value in a span. NaN renders as an empty string.
func (f *Formatter) ApplyFormatStaticMarkup(config NumberFormatConfig, value float64) string {
	text := f.ApplyFormat(config, value)
	if text == "" {
		return ""
	}
	return `<span class="` + markupClass + `">` + html.EscapeString(text) + `</span>`
}

// formatNumber rounds half away from zero and returns the sign separately from the digits
func (f *Formatter) formatNumber(value float64, scale DecimalScale, group bool) (bool, string) {
	digits := int32(scale)
	if scale.IsAuto() {
		digits = autoDecimalScale
	}

	abs := RoundHalfAwayFromZero(math.Abs(value), digits)
	negative := value < 0 && !abs.IsZero()

	var text string
	if scale.IsAuto() {
		text = abs.String()
	} else {
		text = abs.StringFixed(digits)
	}

	integer, fraction := text, ""
	if dot := strings.IndexByte(text, '.'); dot >= 0 {
		integer, fraction = text[:dot], text[dot+1:]
	}
	if group {
		integer = groupDigits(integer, f.separators.group)
	}
	if fraction != "" {
		return negative, integer + f.separators.decimal + fraction
	}
	return negative, integer
}

// RoundHalfAwayFromZero rounds to places fraction digits: 1.25 becomes 1.3 and -1.25 becomes -1.3
func RoundHalfAwayFromZero(value float64, places int32) decimal.Decimal {
	d := decimal.NewFromFloat(value)
	rounded := d.Abs().Round(places)
	if d.Sign() < 0 {
		return rounded.Neg()
	}
	return rounded
}

var defaultFormatter = NewFormatter(language.English)

// ApplyFormat formats value with English separators
func ApplyFormat(config NumberFormatConfig, value float64) string {
	return defaultFormatter.ApplyFormat(config, value)
}

func ApplyFormatPlainText(config NumberFormatConfig, value float64) string {
	return defaultFormatter.ApplyFormatPlainText(config, value)
}

func ApplyFormatStaticMarkup(config NumberFormatConfig, value float64) string {
	return defaultFormatter.ApplyFormatStaticMarkup(config, value)
}
