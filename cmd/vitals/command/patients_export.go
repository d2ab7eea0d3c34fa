package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tidepool-org/vitals/auth"
	"github.com/tidepool-org/vitals/history"
	"github.com/tidepool-org/vitals/patients"
)

var patientsExportParams = struct {
	Output string
}{}

var patientsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every history to a spreadsheet",
	Long:  "The export command writes the profile and readings of every patient to an xlsx workbook",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(exportPatients) },
}

func exportPatients(authenticator auth.ProfessionalAuthenticator, service patients.Service, logger *zap.SugaredLogger) error {
	if err := authenticateProfessional(authenticator); err != nil {
		return err
	}

	list, err := service.List(context.TODO())
	if err != nil {
		return fmt.Errorf("patients list error: %w", err)
	}

	report, err := history.NewExport(list).Generate()
	if err != nil {
		return err
	}
	if err := report.Save(patientsExportParams.Output); err != nil {
		return fmt.Errorf("unable to write %s: %w", patientsExportParams.Output, err)
	}

	logger.Infow("exported patients", "count", len(list), "output", patientsExportParams.Output)
	fmt.Printf("Exported %v patients to %s\n", len(list), patientsExportParams.Output)

	return nil
}

func init() {
	patientsExportCmd.Flags().StringVarP(&patientsExportParams.Output, "output", "o", "patients.xlsx", "Output file")

	patientsCmd.AddCommand(patientsExportCmd)
}
