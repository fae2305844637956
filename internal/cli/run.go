package cli

import (
	"errors"

	"github.com/nonebot-go/nb/internal/config"
	"github.com/nonebot-go/nb/internal/launcher"
	"github.com/nonebot-go/nb/internal/style"
	"github.com/spf13/cobra"
)

var (
	runEntry string
	runApp   string
)

func init() {
	runCmd.Flags().StringVarP(&runEntry, "file", "f", "", "Bot entry file (default from config)")
	runCmd.Flags().StringVarP(&runApp, "app", "a", "", "ASGI application attribute name (default from config)")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the bot in the current folder",
	Long: `Start the bot's service loop from its entry file. When an ASGI app
reference is configured (config key "app_ref") or an app attribute is found
in the entry file, the loop runs with hot-reload enabled.

This blocks until the bot exits or is interrupted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBot(cmd, runEntry, runApp)
	},
}

func runBot(cmd *cobra.Command, entry, app string) error {
	if entry == "" {
		entry = config.Get(config.KeyEntry)
	}
	if app == "" {
		app = config.Get(config.KeyApp)
	}

	err := launcher.Run(cmd.Context(), launcher.Options{
		Entry:  entry,
		App:    app,
		AppRef: config.Get(config.KeyAppRef),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	})
	if errors.Is(err, launcher.ErrEntryMissing) {
		style.Errorf(cmd.ErrOrStderr(), "Cannot find %s in current folder!", entry)
		return nil
	}
	return err
}
