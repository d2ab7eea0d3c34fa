package command

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tidepool-org/vitals/auth"
	"github.com/tidepool-org/vitals/history"
	"github.com/tidepool-org/vitals/patients"
)

var patientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the history of every patient",
	Long:  "The list command prints the history of every patient in the order they were created",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(listPatients) },
}

func listPatients(authenticator auth.ProfessionalAuthenticator, service patients.Service, renderer *history.Renderer) error {
	if err := authenticateProfessional(authenticator); err != nil {
		return err
	}

	list, err := service.List(context.TODO())
	if err != nil {
		return fmt.Errorf("patients list error: %w", err)
	}

	if err := renderer.RenderAll(os.Stdout, list); err != nil {
		return err
	}
	fmt.Printf("Found %v patients\n", len(list))

	return nil
}

func init() {
	patientsCmd.AddCommand(patientsListCmd)
}
