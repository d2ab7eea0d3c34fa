package command

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tidepool-org/vitals/auth"
)

var patientsParams = struct {
	Password string
}{}

var patientsCmd = &cobra.Command{
	Use:   "patients",
	Short: "Review patients",
	Long:  "The patients command gives professionals access to the history of every patient",
}

func init() {
	patientsCmd.PersistentFlags().StringVar(&patientsParams.Password, "password", "", "Professional password")
	_ = patientsCmd.MarkPersistentFlagRequired("password")

	rootCmd.AddCommand(patientsCmd)
}

func authenticateProfessional(authenticator auth.ProfessionalAuthenticator) error {
	return authenticator.Authenticate(context.TODO(), patientsParams.Password)
}
