package command

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/tidepool-org/vitals/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive session",
	Long:  "The session command shows the patient and professional menus on the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(runSession,
			fx.Supply(session.NewTerminal(os.Stdin, os.Stdout)),
			fx.Provide(session.NewSession),
		)
	},
}

func runSession(s *session.Session) error {
	return s.Run(context.TODO())
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}
