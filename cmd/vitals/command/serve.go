package command

import (
	"github.com/spf13/cobra"

	"github.com/tidepool-org/vitals/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long:  "The serve command runs the HTTP server until it receives SIGINT or SIGTERM",
	Run: func(cmd *cobra.Command, args []string) {
		api.MainLoop()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
