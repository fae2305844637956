package cli

import (
	"fmt"

	"github.com/nonebot-go/nb/internal/compose"
	"github.com/spf13/cobra"
)

// Compose global flags, shared by build/deploy/stop.
var (
	composeVerbose  bool
	composeNoANSI   bool
	composeLogLevel string
)

func init() {
	for _, cmd := range []*cobra.Command{buildCmd, deployCmd, stopCmd} {
		cmd.Flags().BoolVar(&composeVerbose, "verbose", false, "Show more compose output")
		cmd.Flags().BoolVar(&composeNoANSI, "no-ansi", false, "Do not print ANSI control characters")
		cmd.Flags().StringVar(&composeLogLevel, "log-level", "", "Compose log level (DEBUG, INFO, WARNING, ERROR, CRITICAL)")
		rootCmd.AddCommand(cmd)
	}
}

func composeOptions() compose.Options {
	return compose.Options{
		Verbose:  composeVerbose,
		NoANSI:   composeNoANSI,
		LogLevel: composeLogLevel,
	}
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the Docker image for the bot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := compose.Build(cmd.Context(), composeOptions(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		return reportComposeStatus("build", code, err)
	},
}

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy the bot to Docker (up -d)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := compose.Deploy(cmd.Context(), composeOptions(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		return reportComposeStatus("up", code, err)
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the bot container in Docker (down)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := compose.Stop(cmd.Context(), composeOptions(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		return reportComposeStatus("down", code, err)
	},
}

// reportComposeStatus converts a nonzero compose exit status into an error
// without interpreting it further.
func reportComposeStatus(command string, code int, err error) error {
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("compose %s exited with status %d", command, code)
	}
	return nil
}
