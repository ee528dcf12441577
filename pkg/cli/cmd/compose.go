package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sisense/compose-sdk-charts/pkg/config"
	"github.com/sisense/compose-sdk-charts/pkg/loggers"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var RootCmd = &cobra.Command{
	Use:           "compose",
	Short:         "Compose SDK chart data CLI",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command.
func Execute() {
	cobra.OnInitialize(initConfig)
	defer loggers.ZapLoggerSync()

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		loggers.ZapLoggerSync()
		os.Exit(-1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("compose")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// appDir is where .compose/config.yaml is read from, --app-dir or COMPOSE_APP_DIR when set
func appDir() string {
	if dir := viper.GetString("app-dir"); dir != "" {
		return dir
	}
	return config.AppPath()
}

func init() {
	RootCmd.PersistentFlags().String("app-dir", "", "Directory holding the .compose configuration, defaults to the working directory")
	_ = viper.BindPFlag("app-dir", RootCmd.PersistentFlags().Lookup("app-dir"))
}
