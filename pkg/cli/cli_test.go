package cli_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sisense/compose-sdk-charts/pkg/cli/cmd"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartsDir = "../../test/assets/charts"

func TestCLI(t *testing.T) {
	// Flags keep their values between executions, so every test sets the ones it relies on
	t.Run("versionCmd() - compose version prints the version", testVersionCmd(cmd.RootCmd))
	t.Run("formatCmd() - compose format 1.25 with one decimal", testFormatCmd(cmd.RootCmd))
	t.Run("formatCmd() - compose format currency", testFormatCurrencyCmd(cmd.RootCmd))
	t.Run("formatCmd() - compose format table output", testFormatTableCmd(cmd.RootCmd))
	t.Run("formatCmd() - compose format rejects invalid input", testFormatInvalidCmd(cmd.RootCmd))
	t.Run("formatCmd() - compose format dates", testFormatDatesCmd(cmd.RootCmd))
	t.Run("chartCmd() - compose chart prints json", testChartCmd(cmd.RootCmd))
	t.Run("chartCmd() - compose chart prints a table", testChartTableCmd(cmd.RootCmd))
	t.Run("chartCmd() - compose chart fails on a broken manifest", testChartInvalidCmd(cmd.RootCmd))
}

func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err = root.Execute()
	if err != nil {
		fmt.Println(err)
	}

	return buf.String(), err
}

func testVersionCmd(root *cobra.Command) func(*testing.T) {
	return func(t *testing.T) {
		out, err := executeCommand(root, "version")
		assert.NoError(t, err)
		assert.Contains(t, out, "CLI version: edge")
	}
}

func testFormatCmd(root *cobra.Command) func(*testing.T) {
	return func(t *testing.T) {
		out, err := executeCommand(root, "format", "--decimal-scale", "1", "--name", "Numbers",
			"--locale", "en-US", "--output", "json", "1.25", "-1.25", "1500")
		assert.NoError(t, err)
		assert.Equal(t, "1.3\n-1.3\n1.5K\n", out)
	}
}

func testFormatCurrencyCmd(root *cobra.Command) func(*testing.T) {
	return func(t *testing.T) {
		out, err := executeCommand(root, "format", "--decimal-scale", "auto", "--name", "Currency",
			"--symbol", "$", "--locale", "en-US", "--output", "json", "100")
		assert.NoError(t, err)
		assert.Equal(t, "$100\n", out)
	}
}

func testFormatTableCmd(root *cobra.Command) func(*testing.T) {
	return func(t *testing.T) {
		out, err := executeCommand(root, "format", "--decimal-scale", "auto", "--name", "Numbers",
			"--locale", "en-US", "--output", "table", "1500")
		assert.NoError(t, err)
		assert.Contains(t, out, "FORMATTED")
		assert.Contains(t, out, "1.5K")
	}
}

func testFormatInvalidCmd(root *cobra.Command) func(*testing.T) {
	return func(t *testing.T) {
		_, err := executeCommand(root, "format", "--decimal-scale", "auto", "--name", "Numbers",
			"--output", "json", "many")
		assert.Error(t, err)

		_, err = executeCommand(root, "format", "--decimal-scale", "-1", "--output", "json", "1")
		assert.Error(t, err)

		_, err = executeCommand(root, "format", "--decimal-scale", "auto", "--name", "Ratio", "--output", "json", "1")
		assert.Error(t, err)
	}
}

func testFormatDatesCmd(root *cobra.Command) func(*testing.T) {
	return func(t *testing.T) {
		out, err := executeCommand(root, "format", "--name", "Numbers", "--output", "json",
			"--date-format", "yyyy-MM-dd", "2023-01-15T10:00:00Z", "2024-03-01")
		assert.NoError(t, err)
		assert.Equal(t, "2023-01-15\n2024-03-01\n", out)

		_, err = executeCommand(root, "format", "--output", "json", "--date-format", "yyyy", "yesterday")
		assert.Error(t, err)
	}
}

func testChartCmd(root *cobra.Command) func(*testing.T) {
	return func(t *testing.T) {
		out, err := executeCommand(root, "chart", "--output", "json", "--locale", "en-US",
			chartsDir+"/revenue.chart.yaml", chartsDir+"/food-share.chart.yaml")
		require.NoError(t, err)

		var rendered []map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &rendered))
		require.Len(t, rendered, 2)
		assert.Equal(t, "revenue", rendered[0]["name"])
		assert.Equal(t, "column", rendered[0]["chartType"])
		assert.Equal(t, "food share", rendered[1]["name"])
		assert.Equal(t, "pie", rendered[1]["chartType"])
		assert.Contains(t, out, `"formattedValue": "$100"`)
	}
}

func testChartTableCmd(root *cobra.Command) func(*testing.T) {
	return func(t *testing.T) {
		out, err := executeCommand(root, "chart", "--output", "table", "--locale", "en-US",
			chartsDir+"/revenue.chart.yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "CHART TYPE")
		assert.Contains(t, out, "revenue")
		assert.Contains(t, out, "column")
	}
}

func testChartInvalidCmd(root *cobra.Command) func(*testing.T) {
	return func(t *testing.T) {
		_, err := executeCommand(root, "chart", "--output", "json", chartsDir+"/invalid.chart.yaml")
		assert.Error(t, err)

		_, err = executeCommand(root, "chart", "--output", "json", chartsDir+"/missing.chart.yaml")
		assert.Error(t, err)
	}
}
