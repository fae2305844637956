package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nonebot-go/nb/internal/prompt"
	"github.com/nonebot-go/nb/internal/scaffold"
	"github.com/nonebot-go/nb/internal/style"
	"github.com/spf13/cobra"
)

var (
	pluginNewName string
	pluginNewDir  string
)

func init() {
	pluginNewCmd.Flags().StringVar(&pluginNewName, "name", "", "Plugin name (prompted when omitted)")
	pluginNewCmd.Flags().StringVar(&pluginNewDir, "dir", "", "Directory to create the plugin in (prompted when omitted)")
	pluginCmd.AddCommand(pluginNewCmd)
	pluginCmd.AddCommand(pluginSearchCmd)
	pluginCmd.AddCommand(pluginInstallCmd)
	rootCmd.AddCommand(pluginCmd)
}

var pluginCmd = &cobra.Command{
	Use:   "plugin",
	Short: "Create, search, and install plugins",
}

var pluginNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new plugin from the template",
	Long: `Scaffold a new NoneBot plugin. Candidate plugins/ directories beneath the
current path are auto-detected and offered as destinations, with a manual
path entry as fallback.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return createPlugin(cmd, pluginNewName, pluginNewDir)
	},
}

// otherChoice is the manual-path fallback entry in the directory menu.
const otherChoice = "Other"

func createPlugin(cmd *cobra.Command, name, pluginDir string) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	asker := prompt.NewAsker(cmd.InOrStdin(), out)

	if name == "" {
		questions := []prompt.Question{{
			Kind:     prompt.Text,
			Key:      "plugin_name",
			Message:  "Plugin Name:",
			Validate: prompt.NonEmpty,
		}}
		answers := asker.Ask(questions)
		if len(answers.Missing(prompt.Keys(questions))) > 0 {
			style.Errorf(errOut, "Error Input!")
			return nil
		}
		name = answers.String("plugin_name")
	}

	switch {
	case pluginDir == "":
		detected, err := scaffold.DetectPluginDirs(".")
		if err != nil {
			return err
		}
		choices := append(detected, otherChoice)

		questions := []prompt.Question{{
			Kind:    prompt.Select,
			Key:     "plugin_dir",
			Message: "Where to store the plugin?",
			Choices: func(prompt.Answers) []string { return choices },
		}}
		answers := asker.Ask(questions)
		if len(answers.Missing(prompt.Keys(questions))) > 0 {
			style.Errorf(errOut, "Error Input!")
			return nil
		}
		pluginDir = answers.String("plugin_dir")

		if pluginDir == otherChoice {
			dir, ok := askPluginDir(asker, errOut)
			if !ok {
				return nil
			}
			pluginDir = dir
		}
	case !isDir(pluginDir):
		style.Warnf(errOut, "Plugin Dir is not a directory!")
		dir, ok := askPluginDir(asker, errOut)
		if !ok {
			return nil
		}
		pluginDir = dir
	}

	result, err := scaffold.Generate(scaffold.SetPlugin, scaffold.PluginContext(name), filepath.Join(pluginDir, name))
	if err != nil {
		return err
	}

	printGenerated(cmd, "plugin", result)
	return nil
}

// askPluginDir prompts for a manual directory path, re-asking until the
// path is an existing directory. Returns ok=false when input was cancelled.
func askPluginDir(asker *prompt.Asker, errOut io.Writer) (string, bool) {
	questions := []prompt.Question{{
		Kind:    prompt.Text,
		Key:     "plugin_dir",
		Message: "Plugin Dir:",
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return fmt.Errorf("a value is required")
			}
			if !isDir(input) {
				return fmt.Errorf("%s is not a directory", input)
			}
			return nil
		},
	}}
	answers := asker.Ask(questions)
	if len(answers.Missing(prompt.Keys(questions))) > 0 {
		style.Errorf(errOut, "Error Input!")
		return "", false
	}
	return answers.String("plugin_dir"), true
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
