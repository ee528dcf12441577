package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/logrusorgru/aurora"
	"github.com/sisense/compose-sdk-charts/pkg/config"
	"github.com/sisense/compose-sdk-charts/pkg/constants"
	"github.com/sisense/compose-sdk-charts/pkg/loggers"
	"github.com/sisense/compose-sdk-charts/pkg/runtime"
	"github.com/sisense/compose-sdk-charts/pkg/spec"
	"github.com/sisense/compose-sdk-charts/pkg/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var watchFlag bool

var chartCmd = &cobra.Command{
	Use:   "chart <manifest|dir>...",
	Short: "Render chart manifests to chart data and Highcharts options",
	Args:  cobra.MinimumNArgs(1),
	Example: `
compose chart charts/revenue.chart.yaml
compose chart charts --output table
compose chart charts/revenue.chart.yaml --watch
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

		manifests, dirs, err := loadManifests(args)
		if err != nil {
			return err
		}

		if watchFlag {
			return watchCharts(cmd, rt, manifests, dirs)
		}

		rendered, err := rt.RenderAll(context.Background(), manifests)
		if err != nil {
			return err
		}
		for _, r := range rendered {
			for _, alert := range r.Alerts {
				log.Println(aurora.Yellow(fmt.Sprintf("%s: %s", r.Name, alert)))
			}
		}

		if rt.Config().Output == config.OutputTable {
			return printRenderedTable(cmd.OutOrStdout(), rendered)
		}
		return printJson(cmd.OutOrStdout(), rendered)
	},
}

// loadManifests loads the named manifests and every *.chart.yaml in the named directories
func loadManifests(paths []string) ([]*spec.ChartManifest, []string, error) {
	var manifests []*spec.ChartManifest
	var dirs []string

	for _, path := range paths {
		stat, err := os.Stat(path)
		if err != nil {
			return nil, nil, err
		}

		manifestPaths := []string{path}
		if stat.IsDir() {
			dirs = append(dirs, path)
			manifestPaths, err = filepath.Glob(filepath.Join(path, "*"+constants.ChartManifestExtension))
			if err != nil {
				return nil, nil, err
			}
		}

		for _, manifestPath := range manifestPaths {
			manifest, err := spec.LoadChartManifest(manifestPath)
			if err != nil {
				return nil, nil, err
			}
			manifests = append(manifests, manifest)
		}
	}

	return manifests, dirs, nil
}

// watchCharts re-renders each chart when its data changes and each manifest dropped into a watched
// directory, until interrupted
func watchCharts(cmd *cobra.Command, rt *runtime.ComposeRuntime, manifests []*spec.ChartManifest, dirs []string) error {
	fileLogger := zap.NewNop()
	logRoot := config.LogRootPath(rt.Config())
	if err := util.MkDirAllInheritPerm(logRoot); err == nil {
		if l, err := loggers.NewFileLogger("compose", logRoot); err == nil {
			fileLogger = l
		}
	}
	defer func() {
		_ = fileLogger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	output := rt.Config().Output
	var outMutex sync.Mutex

	onRender := func(rendered *runtime.Rendered, err error) {
		outMutex.Lock()
		defer outMutex.Unlock()

		if err != nil {
			fileLogger.Error("render failed", zap.Error(err))
			log.Println(aurora.Red(err.Error()))
			return
		}
		fileLogger.Info("rendered chart",
			zap.String("name", rendered.Name),
			zap.String("chartType", string(rendered.ChartType)),
			zap.Strings("alerts", rendered.Alerts))
		log.Println(aurora.Green(fmt.Sprintf("rendered '%s'", rendered.Name)))

		if output == config.OutputTable {
			err = printRenderedTable(out, []*runtime.Rendered{rendered})
		} else {
			err = printJson(out, rendered)
		}
		if err != nil {
			log.Println(aurora.Red(err.Error()))
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, manifest := range manifests {
		manifest := manifest
		g.Go(func() error {
			return rt.Watch(ctx, manifest, onRender)
		})
	}
	for _, dir := range dirs {
		dir := dir
		g.Go(func() error {
			return rt.WatchManifests(ctx, dir, onRender)
		})
	}

	return g.Wait()
}

type renderedRow struct {
	Name      string `csv:"NAME"`
	ChartType string `csv:"CHART TYPE"`
	Series    int    `csv:"SERIES"`
	Points    int    `csv:"POINTS"`
	Alerts    string `csv:"ALERTS"`
}

func printRenderedTable(out io.Writer, rendered []*runtime.Rendered) error {
	rows := make([]*renderedRow, 0, len(rendered))
	for _, r := range rendered {
		row := &renderedRow{
			Name:      r.Name,
			ChartType: string(r.ChartType),
			Alerts:    strings.Join(r.Alerts, "; "),
		}
		if r.Options != nil {
			row.Series = len(r.Options.Series)
			for _, s := range r.Options.Series {
				row.Points += len(s.Data)
			}
		}
		rows = append(rows, row)
	}
	return util.MarshalAndPrintTable(out, rows)
}

func printJson(out io.Writer, v interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func init() {
	chartCmd.Flags().String("output", "", "Output format, either 'json' or 'table'")
	chartCmd.Flags().String("locale", "", "Locale used to format numbers and dates, e.g. 'en-US'")
	chartCmd.Flags().BoolVar(&watchFlag, "watch", false, "Re-render when data files or manifests change")
	RootCmd.AddCommand(chartCmd)
}
