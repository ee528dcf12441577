package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sisense/compose-sdk-charts/pkg/config"
	"github.com/sisense/compose-sdk-charts/pkg/format"
	"github.com/sisense/compose-sdk-charts/pkg/runtime"
	"github.com/sisense/compose-sdk-charts/pkg/util"
	"github.com/spf13/cobra"
)

var (
	formatName                string
	formatDecimalScale        string
	formatSymbol              string
	formatSuffix              bool
	formatNoAbbreviation      bool
	formatNoThousandSeparator bool
	formatDateFormat          string
)

var formatCmd = &cobra.Command{
	Use:   "format <value>...",
	Short: "Format numbers, or dates with --date-format, the way chart labels are formatted",
	Args:  cobra.MinimumNArgs(1),
	Example: `
compose format --decimal-scale 1 --name Numbers 1.25
compose format --name Currency --symbol € --locale de-DE 1234567
compose format --date-format "MMM yyyy" 2023-01-15
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt := runtime.NewComposeRuntime()
		err := rt.BindFlags(cmd.Flags().Lookup("output"), cmd.Flags().Lookup("locale"))
		if err != nil {
			return err
		}
		if err := rt.LoadConfig(appDir()); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		var formatted []string
		if formatDateFormat != "" {
			formatted, err = formatDates(args, formatDateFormat)
		} else {
			formatted, err = formatNumbers(args, rt.Config().Locale)
		}
		if err != nil {
			return err
		}

		if rt.Config().Output == config.OutputTable {
			rows := make([]*formattedRow, len(args))
			for i := range args {
				rows[i] = &formattedRow{Value: args[i], Formatted: formatted[i]}
			}
			return util.MarshalAndPrintTable(cmd.OutOrStdout(), rows)
		}

		for _, f := range formatted {
			cmd.Println(f)
		}
		return nil
	},
}

type formattedRow struct {
	Value     string `csv:"VALUE"`
	Formatted string `csv:"FORMATTED"`
}

func formatNumbers(args []string, locale string) ([]string, error) {
	numberConfig, err := numberFormatConfigFromFlags()
	if err != nil {
		return nil, err
	}
	formatter := format.NewFormatterForLocale(locale)

	formatted := make([]string, len(args))
	for i, arg := range args {
		value, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("'%s' is not a number", arg)
		}
		formatted[i] = formatter.ApplyFormatPlainText(numberConfig, value)
	}
	return formatted, nil
}

func formatDates(args []string, pattern string) ([]string, error) {
	formatted := make([]string, len(args))
	for i, arg := range args {
		t, err := parseDate(arg)
		if err != nil {
			return nil, err
		}
		formatted[i] = format.ApplyDateFormat(t, pattern)
	}
	return formatted, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("'%s' is not a date", s)
}

func numberFormatConfigFromFlags() (format.NumberFormatConfig, error) {
	c := format.DefaultNumberFormatConfig()

	switch {
	case strings.EqualFold(formatName, format.NameNumbers):
		c.Name = format.NameNumbers
	case strings.EqualFold(formatName, format.NameCurrency):
		c.Name = format.NameCurrency
	case strings.EqualFold(formatName, format.NamePercent):
		c.Name = format.NamePercent
	default:
		return c, fmt.Errorf("invalid format name '%s', expected '%s', '%s' or '%s'",
			formatName, format.NameNumbers, format.NameCurrency, format.NamePercent)
	}

	if strings.EqualFold(formatDecimalScale, "auto") {
		c.DecimalScale = format.DecimalScaleAuto
	} else {
		scale, err := strconv.Atoi(formatDecimalScale)
		if err != nil || scale < 0 {
			return c, fmt.Errorf("invalid decimal scale '%s'", formatDecimalScale)
		}
		c.DecimalScale = format.DecimalScale(scale)
	}

	if formatSymbol != "" {
		c.Symbol = formatSymbol
	}
	c.Prefix = !formatSuffix

	if formatNoAbbreviation {
		c.Kilo, c.Million, c.Billion, c.Trillion = false, false, false, false
	}
	if formatNoThousandSeparator {
		separator := false
		c.ThousandSeparator = &separator
	}

	return c, nil
}

func init() {
	formatCmd.Flags().StringVar(&formatName, "name", format.NameNumbers, "Format name, one of 'Numbers', 'Currency' or 'Percent'")
	formatCmd.Flags().StringVar(&formatDecimalScale, "decimal-scale", "auto", "Fraction digits, or 'auto'")
	formatCmd.Flags().StringVar(&formatSymbol, "symbol", "", "Currency symbol")
	formatCmd.Flags().BoolVar(&formatSuffix, "suffix-symbol", false, "Place the currency symbol after the number")
	formatCmd.Flags().BoolVar(&formatNoAbbreviation, "no-abbreviation", false, "Do not abbreviate thousands, millions, billions and trillions")
	formatCmd.Flags().BoolVar(&formatNoThousandSeparator, "no-thousand-separator", false, "Do not group thousands")
	formatCmd.Flags().StringVar(&formatDateFormat, "date-format", "", "Treat values as dates and format them with this pattern, e.g. 'yyyy-MM-dd'")
	formatCmd.Flags().String("output", "", "Output format, either 'json' or 'table'")
	formatCmd.Flags().String("locale", "", "Locale used to format numbers, e.g. 'en-US'")
	RootCmd.AddCommand(formatCmd)
}
