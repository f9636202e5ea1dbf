package cli

import (
	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/lifecycle"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// flag name -> request key
var onboardFlags = map[string]string{
	"first-name": lifecycle.FieldFirstName,
	"last-name":  lifecycle.FieldLastName,
	"email":      lifecycle.FieldEmail,
	"department": lifecycle.FieldDepartment,
	"start-date": lifecycle.FieldStartDate,
}

func newOnboardCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onboard",
		Args:  cobra.NoArgs,
		Short: "Check a new employee record",
		Long:  `Check that a new employee record carries first name, last name, email, department and start date. Only flags that are passed count as present.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := make(map[string]string, len(onboardFlags))
			for flag, key := range onboardFlags {
				if !cmd.Flags().Changed(flag) {
					continue
				}
				v, err := cmd.Flags().GetString(flag)
				if err != nil {
					return err
				}
				fields[key] = v
			}

			out := resultOutput{}
			switch res := lifecycle.Onboard(lifecycle.OnboardingRequestFromMap(fields)).(type) {
			case lifecycle.Success:
				out = resultOutput{Ok: true, User: res.Value}
			case lifecycle.Failure:
				opts.logger.Debug("onboard rejected", zap.Strings("missing_fields", res.Fields))
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

	cmd.Flags().String("first-name", "", "First name of the employee")
	cmd.Flags().String("last-name", "", "Last name of the employee")
	cmd.Flags().String("email", "", "Work email of the employee")
	cmd.Flags().String("department", "", "Department the employee joins")
	cmd.Flags().String("start-date", "", "First working day")
	return cmd
}
