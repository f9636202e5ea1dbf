package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/config"
	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrFailed is returned when a command ran but its check did not pass.
// The result has already been printed, so callers only set the exit code.
var ErrFailed = errors.New("check failed")

type options struct {
	configFile string
	cfg        config.Config
	logger     *zap.Logger
}

// NewRootCmd builds the identity-manager command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "identity-manager",
		Short:         "Validate employee onboarding and offboarding requests",
		Long:          `Validate employee onboarding and offboarding requests and probe the lifecycle service health endpoint`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			l, err := logger.New(cfg.LogMode, cfg.LogLevel)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			opts.logger = l.Named("cli")
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "YAML config file (default $"+config.FileEnvKey+")")

	rootCmd.AddCommand(newOnboardCmd(opts))
	rootCmd.AddCommand(newOffboardCmd(opts))
	rootCmd.AddCommand(newHealthCmd(opts))
	return rootCmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

type resultOutput struct {
	Ok      bool   `json:"ok"`
	User    string `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func prettyPrint(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
