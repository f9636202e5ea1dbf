package cli

import (
	"fmt"
	"time"

	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/health"

	"github.com/spf13/cobra"
)

func newHealthCmd(opts *options) *cobra.Command {
	var (
		url     string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "health",
		Args:  cobra.NoArgs,
		Short: "Probe the service health endpoint",
		Long:  `Send one GET to the health endpoint. Exit code 0 when it answers 200, 1 otherwise.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("url") {
				url = opts.cfg.HealthURL
			}
			if !cmd.Flags().Changed("timeout") {
				timeout = opts.cfg.HealthTimeout
			}

			checker := health.NewChecker(url, timeout, opts.logger)
			if err := checker.Check(cmd.Context()); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "❌ Health check failed: %v\n", err)
				return ErrFailed
			}

			fmt.Fprintln(cmd.OutOrStdout(), "✅ Application is healthy")
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", health.DefaultURL, "Health endpoint URL")
	cmd.Flags().DurationVar(&timeout, "timeout", health.DefaultTimeout, "Request timeout")
	return cmd
}
