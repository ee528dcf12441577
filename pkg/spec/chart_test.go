package spec

import (
	"path/filepath"
	"testing"

	"github.com/sisense/compose-sdk-charts/pkg/chartoptions"
	"github.com/sisense/compose-sdk-charts/pkg/charttype"
	"github.com/sisense/compose-sdk-charts/pkg/dataoptions"
	"github.com/sisense/compose-sdk-charts/pkg/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartManifest(t *testing.T) {
	t.Run("LoadChartManifest()", testLoadChartManifestFunc())
	t.Run("LoadChartManifest() - name and design defaults", testLoadChartManifestDefaultsFunc())
	t.Run("LoadChartManifest() - invalid", testLoadChartManifestInvalidFunc())
	t.Run("ChartDataOptions()", testChartDataOptionsFunc())
}

func testLoadChartManifestFunc() func(*testing.T) {
	return func(t *testing.T) {
		manifest, err := LoadChartManifest("../../test/assets/charts/revenue.chart.yaml")
		require.NoError(t, err)

		assert.Equal(t, "revenue", manifest.Name)
		chartType, err := manifest.Type()
		require.NoError(t, err)
		assert.Equal(t, charttype.Column, chartType)
		assert.Equal(t, "en-US", manifest.Locale)

		assert.True(t, filepath.IsAbs(manifest.Dir))
		assert.Equal(t, filepath.Join(manifest.Dir, "..", "data", "food.csv"), manifest.DataPath())

		assert.Equal(t, chartoptions.StackNormal, manifest.Design.StackType)
		assert.Equal(t, chartoptions.LegendRight, manifest.Design.Legend.Position)
		// absent design keys keep their defaults
		assert.True(t, manifest.Design.Legend.Enabled)
		assert.Equal(t, 2, manifest.Design.Series.LineWidth)
		assert.Equal(t, chartoptions.DefaultCategoriesCapacity, manifest.Design.DataLimits.CategoriesCapacity)
	}
}

func testLoadChartManifestDefaultsFunc() func(*testing.T) {
	return func(t *testing.T) {
		manifest, err := LoadChartManifest("../../test/assets/charts/food-share.chart.yaml")
		require.NoError(t, err)

		assert.Equal(t, "food share", manifest.Name)
		assert.Equal(t, chartoptions.DefaultDesignOptions(), manifest.Design)
	}
}

func testLoadChartManifestInvalidFunc() func(*testing.T) {
	return func(t *testing.T) {
		_, err := LoadChartManifest("../../test/assets/charts/invalid.chart.yaml")
		assert.Error(t, err)

		_, err = LoadChartManifest("../../test/assets/charts/missing.chart.yaml")
		assert.Error(t, err)

		_, err = ParseChartManifest([]byte("chartType: line\n"))
		assert.Error(t, err)
	}
}

func testChartDataOptionsFunc() func(*testing.T) {
	return func(t *testing.T) {
		manifest, err := LoadChartManifest("../../test/assets/charts/revenue.chart.yaml")
		require.NoError(t, err)

		options, err := manifest.ChartDataOptions()
		require.NoError(t, err)

		cartesian, ok := options.(dataoptions.CartesianChartDataOptions)
		require.True(t, ok)
		require.Len(t, cartesian.Category, 1)
		assert.Equal(t, "Food", cartesian.Category[0].Name())
		require.Len(t, cartesian.Value, 1)
		assert.Equal(t, "Revenue", cartesian.Value[0].Name())
		assert.Equal(t, "sum", cartesian.Value[0].Column.Aggregation)
		require.NotNil(t, cartesian.Value[0].NumberFormatConfig)
		assert.Equal(t, format.NameCurrency, cartesian.Value[0].NumberFormatConfig.Name)
		assert.Equal(t, "Geo", cartesian.BreakBy[0].Name())
	}
}
