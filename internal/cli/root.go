package cli

import (
	"fmt"
	"os"

	"github.com/nonebot-go/nb/internal/branding"
	"github.com/nonebot-go/nb/internal/compose"
	"github.com/nonebot-go/nb/internal/config"
	"github.com/nonebot-go/nb/internal/prompt"
	"github.com/nonebot-go/nb/internal/style"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` CLI scaffolds bot projects and plugins from templates,
runs the bot locally, proxies build/deploy/stop to Docker Compose, and
searches/installs plugins from the package index.

Run with no arguments for the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: runMenu,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		style.Errorf(os.Stderr, "%v", err)
	}
	return err
}

// runMenu is the no-subcommand flow: logo, welcome, then an interactive
// action menu.
func runMenu(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	s := style.New(out)

	printLogo(out)
	fmt.Fprintln(out)
	fmt.Fprintln(out, s.BoldGreen("Welcome to "+branding.DisplayName()+" CLI!"))

	actions := []struct {
		label string
		run   func(*cobra.Command) error
	}{
		{"Show Logo", func(c *cobra.Command) error {
			printLogo(c.OutOrStdout())
			return nil
		}},
		{"Create a New Project", createProject},
		{"Run the Bot in Current Folder", func(c *cobra.Command) error {
			return runBot(c, "", "")
		}},
		{"Build Docker Image for the Bot", func(c *cobra.Command) error {
			code, err := compose.Build(c.Context(), compose.Options{}, c.OutOrStdout(), c.ErrOrStderr())
			return reportComposeStatus("build", code, err)
		}},
		{"Deploy the Bot to Docker", func(c *cobra.Command) error {
			code, err := compose.Deploy(c.Context(), compose.Options{}, c.OutOrStdout(), c.ErrOrStderr())
			return reportComposeStatus("up", code, err)
		}},
		{"Stop the Bot Container in Docker", func(c *cobra.Command) error {
			code, err := compose.Stop(c.Context(), compose.Options{}, c.OutOrStdout(), c.ErrOrStderr())
			return reportComposeStatus("down", code, err)
		}},
		{"Create a New NoneBot Plugin", func(c *cobra.Command) error {
			return createPlugin(c, "", "")
		}},
	}

	labels := make([]string, len(actions))
	for i, action := range actions {
		labels[i] = action.label
	}

	questions := []prompt.Question{{
		Kind:    prompt.Select,
		Key:     "subcommand",
		Message: "What do you want to do?",
		Choices: func(prompt.Answers) []string { return labels },
	}}

	asker := prompt.NewAsker(cmd.InOrStdin(), out)
	answers := asker.Ask(questions)
	if len(answers.Missing(prompt.Keys(questions))) > 0 {
		style.Errorf(cmd.ErrOrStderr(), "Error Input!")
		return nil
	}

	chosen := answers.String("subcommand")
	for _, action := range actions {
		if action.label == chosen {
			return action.run(cmd)
		}
	}
	return nil
}
