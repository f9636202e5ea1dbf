package cli

import (
	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/lifecycle"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newOffboardCmd(opts *options) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "offboard",
		Args:  cobra.NoArgs,
		Short: "Check an employee email for offboarding",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := resultOutput{}
			switch res := lifecycle.Offboard(email).(type) {
			case lifecycle.Success:
				out = resultOutput{Ok: true, Message: res.Value}
			case lifecycle.Failure:
				opts.logger.Debug("offboard rejected", zap.String("email", email))
				out = resultOutput{Ok: false, Error: res.Message}
			}

			if err := prettyPrint(cmd.OutOrStdout(), out); err != nil {
				return err
			}
			if !out.Ok {
				return ErrFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email of the employee to offboard")
	return cmd
}
