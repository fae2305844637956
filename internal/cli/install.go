package cli

import (
	"github.com/nonebot-go/nb/internal/config"
	"github.com/nonebot-go/nb/internal/registry"
	"github.com/spf13/cobra"
)

var (
	installEntry string
	installIndex string
)

func init() {
	pluginInstallCmd.Flags().StringVarP(&installEntry, "file", "f", "", "Bot entry file to patch (default from config)")
	pluginInstallCmd.Flags().StringVarP(&installIndex, "index", "i", "", "Package index URL (default from config)")
}

var pluginInstallCmd = &cobra.Command{
	Use:   "install <name>",
	Short: "Install a plugin and enable it in the bot entry file",
	Long: `Install a plugin from the package index via pip. On success the bot entry
file gains a nonebot.load_plugin(...) line, inserted after the last existing
load/init statement.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry := installEntry
		if entry == "" {
			entry = config.Get(config.KeyEntry)
		}
		index := installIndex
		if index == "" {
			index = config.Get(config.KeyIndex)
		}

		installer := &registry.PipInstaller{
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		}

		return registry.InstallPlugin(cmd.Context(), installer, registry.InstallOptions{
			Suffix:    args[0],
			EntryFile: entry,
			Index:     index,
			Out:       cmd.OutOrStdout(),
		})
	},
}
