package command

import (
	"fmt"
	"os"

	"github.com/DataDog/datadog-agent/pkg/util/fxutil"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/tidepool-org/vitals/api"
)

const logLevelFlag = "log-level"

var logLevel string

// Run executes a given function with dependencies supplied by the vitals DI graph
// `f` must return an error or nothing
// `opts` can be used to supply additional arguments that are not provided by the vitals service
func Run(f interface{}, opts ...fx.Option) error {
	deps := append(opts, api.Dependencies()...)
	return fxutil.OneShot(f, deps...)
}

var rootCmd = &cobra.Command{
	Use:   "vitals",
	Short: "Record and review BMI, blood pressure and glucose readings",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return overrideLogLevel(cmd)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, logLevelFlag, "v", "error", "Log Level")
}

// overrideLogLevel overwrites zap's log level when the flag is set. Otherwise
// one-shot commands default to the flag value unless LOG_LEVEL is already set,
// and the server keeps its configured level.
func overrideLogLevel(cmd *cobra.Command) error {
	if cmd.Flags().Changed(logLevelFlag) {
		return os.Setenv("LOG_LEVEL", logLevel)
	}
	if _, ok := os.LookupEnv("LOG_LEVEL"); ok || cmd == serveCmd {
		return nil
	}
	return os.Setenv("LOG_LEVEL", logLevel)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
