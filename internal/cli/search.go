package cli

import (
	"fmt"

	"github.com/nonebot-go/nb/internal/config"
	"github.com/nonebot-go/nb/internal/registry"
	"github.com/spf13/cobra"
)

var searchIndex string

func init() {
	pluginSearchCmd.Flags().StringVarP(&searchIndex, "index", "i", "", "Package index URL (default from config)")
}

var pluginSearchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search the package index for a plugin",
	Long: `Search the package index for a plugin by name. The name is qualified with
the plugin package prefix before lookup, so "weather" searches for
"nonebot_plugin_weather".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index := searchIndex
		if index == "" {
			index = config.Get(config.KeyIndex)
		}

		client := registry.NewClient(index)
		hits, err := client.Search(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("searching for %s: %w", args[0], err)
		}

		return registry.PrintResults(cmd.OutOrStdout(), hits)
	},
}
