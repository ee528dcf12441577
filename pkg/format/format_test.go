package format

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

func TestApplyFormat(t *testing.T) {
	t.Run("ApplyFormat() - rounding", testApplyFormatRoundingFunc())
	t.Run("ApplyFormat() - magnitudes", testApplyFormatMagnitudesFunc())
	t.Run("ApplyFormat() - currency", testApplyFormatCurrencyFunc())
	t.Run("ApplyFormat() - percent", testApplyFormatPercentFunc())
	t.Run("ApplyFormat() - thousand separator", testApplyFormatThousandSeparatorFunc())
	t.Run("ApplyFormat() - auto scale", testApplyFormatAutoScaleFunc())
	t.Run("ApplyFormat() - non finite", testApplyFormatNonFiniteFunc())
	t.Run("ApplyFormatStaticMarkup()", testApplyFormatStaticMarkupFunc())
	t.Run("NewFormatter() - locale", testNewFormatterLocaleFunc())
	t.Run("RoundHalfAwayFromZero()", testRoundHalfAwayFromZeroFunc())
}

func TestNumberFormatConfig(t *testing.T) {
	t.Run("UnmarshalJSON()", testNumberFormatConfigUnmarshalJSONFunc())
	t.Run("UnmarshalYAML()", testNumberFormatConfigUnmarshalYAMLFunc())
	t.Run("DecimalScale.MarshalJSON()", testDecimalScaleMarshalJSONFunc())
}

func TestApplyDateFormat(t *testing.T) {
	ts := time.Date(2021, time.August, 19, 13, 47, 5, 0, time.UTC)

	assert.Equal(t, "2021-08-19 13:47:05", ApplyDateFormat(ts, "yyyy-MM-dd HH:mm:ss"))
	assert.Equal(t, "Q3 2021", ApplyDateFormat(ts, "'Q'Q yyyy"))
	assert.Equal(t, "Aug 19, 21 1 PM", ApplyDateFormat(ts, "MMM d, yy h a"))
	assert.Equal(t, "Thursday, August 19", ApplyDateFormat(ts, "EEEE, MMMM dd"))
	assert.Equal(t, "19/08/2021", ApplyDateFormat(ts, "dd/MM/yyyy"))
	assert.Equal(t, "12 AM", ApplyDateFormat(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), "h a"))
}

func testApplyFormatRoundingFunc() func(*testing.T) {
	return func(t *testing.T) {
		oneDecimal := NumberFormatConfig{DecimalScale: 1}

		assert.Equal(t, "1.3", ApplyFormat(oneDecimal, 1.25))
		assert.Equal(t, "1.2", ApplyFormat(oneDecimal, 1.249))
		assert.Equal(t, "-1.3", ApplyFormat(oneDecimal, -1.25))
		assert.Equal(t, "0.0", ApplyFormat(oneDecimal, -0.01))
		assert.Equal(t, "3", ApplyFormat(NumberFormatConfig{}, 2.5))
	}
}

func testApplyFormatMagnitudesFunc() func(*testing.T) {
	return func(t *testing.T) {
		kiloOff := DefaultNumberFormatConfig()
		kiloOff.Kilo = false
		assert.Equal(t, "1,000", ApplyFormat(kiloOff, 1000))
		assert.Equal(t, "1.23M", ApplyFormat(kiloOff, 1234567))

		defaults := DefaultNumberFormatConfig()
		assert.Equal(t, "999", ApplyFormat(defaults, 999))
		assert.Equal(t, "1.5K", ApplyFormat(defaults, 1500))
		assert.Equal(t, "-1.5K", ApplyFormat(defaults, -1500))
		assert.Equal(t, "2.5B", ApplyFormat(defaults, 2.5e9))
		assert.Equal(t, "2.5T", ApplyFormat(defaults, 2.5e12))

		millionOnly := NumberFormatConfig{Name: NameNumbers, DecimalScale: DecimalScaleAuto, Million: true}
		assert.Equal(t, "2,500", ApplyFormat(millionOnly, 2500))
		assert.Equal(t, "2,500M", ApplyFormat(millionOnly, 2.5e9))
	}
}

func testApplyFormatCurrencyFunc() func(*testing.T) {
	return func(t *testing.T) {
		prefix := NumberFormatConfig{Name: NameCurrency, DecimalScale: DecimalScaleAuto, Kilo: true, Prefix: true, Symbol: "$"}
		assert.Equal(t, "$12", ApplyFormat(prefix, 12))
		assert.Equal(t, "-$1.5K", ApplyFormat(prefix, -1500))

		suffix := NumberFormatConfig{Name: NameCurrency, DecimalScale: 1, Million: true, Symbol: "€"}
		assert.Equal(t, "2.0M€", ApplyFormat(suffix, 2000000))
		assert.Equal(t, "12.5€", ApplyFormat(suffix, 12.49))
	}
}

func testApplyFormatPercentFunc() func(*testing.T) {
	return func(t *testing.T) {
		percent := NumberFormatConfig{Name: NamePercent, DecimalScale: 1, Kilo: true}

		assert.Equal(t, "12.3%", ApplyFormat(percent, 0.1234))
		assert.Equal(t, "1,500.0%", ApplyFormat(percent, 15))
		assert.Equal(t, "-50.0%", ApplyFormat(percent, -0.5))
	}
}

func testApplyFormatThousandSeparatorFunc() func(*testing.T) {
	return func(t *testing.T) {
		off := false

		numbers := NumberFormatConfig{Name: NameNumbers, DecimalScale: 2, ThousandSeparator: &off}
		assert.Equal(t, "1234567.89", ApplyFormat(numbers, 1234567.891))

		currency := NumberFormatConfig{Name: NameCurrency, DecimalScale: 2, ThousandSeparator: &off, Prefix: true, Symbol: "$"}
		assert.Equal(t, "$1,234.00", ApplyFormat(currency, 1234))
	}
}

func testApplyFormatAutoScaleFunc() func(*testing.T) {
	return func(t *testing.T) {
		auto := NumberFormatConfig{DecimalScale: DecimalScaleAuto}

		assert.Equal(t, "2.5", ApplyFormat(auto, 2.5))
		assert.Equal(t, "2", ApplyFormat(auto, 2))
		assert.Equal(t, "2.35", ApplyFormat(auto, 2.345))
		assert.Equal(t, "1,000,000", ApplyFormat(auto, 1e6))
	}
}

func testApplyFormatNonFiniteFunc() func(*testing.T) {
	return func(t *testing.T) {
		assert.Equal(t, "", ApplyFormat(DefaultNumberFormatConfig(), math.NaN()))
		assert.Equal(t, "", ApplyFormatPlainText(DefaultNumberFormatConfig(), math.NaN()))
		assert.Equal(t, "∞", ApplyFormat(DefaultNumberFormatConfig(), math.Inf(1)))
		assert.Equal(t, "-∞", ApplyFormat(DefaultNumberFormatConfig(), math.Inf(-1)))
	}
}

func testApplyFormatStaticMarkupFunc() func(*testing.T) {
	return func(t *testing.T) {
		config := NumberFormatConfig{DecimalScale: 1}

		assert.Equal(t, `<span class="csdk-number">1.3</span>`, ApplyFormatStaticMarkup(config, 1.25))
		assert.Equal(t, "1.3", ApplyFormatPlainText(config, 1.25))
		assert.Equal(t, "", ApplyFormatStaticMarkup(config, math.NaN()))
	}
}

func testNewFormatterLocaleFunc() func(*testing.T) {
	return func(t *testing.T) {
		config := NumberFormatConfig{DecimalScale: 2}

		german := NewFormatter(language.German)
		assert.Equal(t, "1.234,50", german.ApplyFormat(config, 1234.5))

		fallback := NewFormatterForLocale("not a locale")
		assert.Equal(t, language.English, fallback.Locale())
		assert.Equal(t, "1,234.50", fallback.ApplyFormat(config, 1234.5))
	}
}

func testRoundHalfAwayFromZeroFunc() func(*testing.T) {
	return func(t *testing.T) {
		assert.Equal(t, "3", RoundHalfAwayFromZero(2.5, 0).String())
		assert.Equal(t, "-3", RoundHalfAwayFromZero(-2.5, 0).String())
		assert.Equal(t, "0.13", RoundHalfAwayFromZero(0.125, 2).String())
		assert.Equal(t, "-0.13", RoundHalfAwayFromZero(-0.125, 2).String())
	}
}

func testNumberFormatConfigUnmarshalJSONFunc() func(*testing.T) {
	return func(t *testing.T) {
		var config NumberFormatConfig
		err := json.Unmarshal([]byte(`{"name":"Currency","decimalScale":3,"symbol":"€"}`), &config)
		require.NoError(t, err)
		assert.Equal(t, NameCurrency, config.Name)
		assert.Equal(t, DecimalScale(3), config.DecimalScale)
		assert.Equal(t, "€", config.Symbol)
		assert.True(t, config.Kilo, "missing fields take their defaults")

		err = json.Unmarshal([]byte(`{"decimalScale":"auto","kilo":false}`), &config)
		require.NoError(t, err)
		assert.True(t, config.DecimalScale.IsAuto())
		assert.False(t, config.Kilo)

		err = json.Unmarshal([]byte(`{"decimalScale":"many"}`), &config)
		assert.Error(t, err)

		err = json.Unmarshal([]byte(`{"decimalScale":-2}`), &config)
		assert.Error(t, err)
	}
}

func testNumberFormatConfigUnmarshalYAMLFunc() func(*testing.T) {
	return func(t *testing.T) {
		var config NumberFormatConfig
		err := yaml.Unmarshal([]byte("decimalScale: 1\nkilo: false\nthousandSeparator: false\n"), &config)
		require.NoError(t, err)
		assert.Equal(t, DecimalScale(1), config.DecimalScale)
		assert.False(t, config.Kilo)
		assert.True(t, config.Million)
		require.NotNil(t, config.ThousandSeparator)
		assert.False(t, *config.ThousandSeparator)

		err = yaml.Unmarshal([]byte("decimalScale: auto\n"), &config)
		require.NoError(t, err)
		assert.True(t, config.DecimalScale.IsAuto())
	}
}

func testDecimalScaleMarshalJSONFunc() func(*testing.T) {
	return func(t *testing.T) {
		data, err := json.Marshal(DecimalScaleAuto)
		require.NoError(t, err)
		assert.Equal(t, `"auto"`, string(data))

		data, err = json.Marshal(DecimalScale(2))
		require.NoError(t, err)
		assert.Equal(t, `2`, string(data))
	}
}
