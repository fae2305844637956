package cli

import (
	"fmt"
	"strings"

	"github.com/nonebot-go/nb/internal/prompt"
	"github.com/nonebot-go/nb/internal/scaffold"
	"github.com/nonebot-go/nb/internal/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new bot project from the template",
	Long: `Interactively scaffold a new NoneBot project: collects the project name,
where generated plugins should live, and whether to load the builtin plugin,
then instantiates the project template into a new directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return createProject(cmd)
	},
}

func createProject(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	questions := []prompt.Question{
		{
			Kind:     prompt.Text,
			Key:      "project_name",
			Message:  "Project Name:",
			Validate: prompt.NonEmpty,
		},
		{
			Kind:    prompt.Select,
			Key:     "use_src",
			Message: "Where to store the plugin?",
			// The choice list depends on the name answered just above.
			Choices: func(answers prompt.Answers) []string {
				slug := scaffold.ProjectSlug(answers.String("project_name"))
				return []string{
					fmt.Sprintf("1) In a %q folder", slug),
					`2) In a "src" folder`,
				}
			},
			Filter: func(raw string) any { return strings.HasPrefix(raw, "2") },
		},
		{
			Kind:    prompt.Confirm,
			Key:     "load_builtin",
			Message: "Load NoneBot Builtin Plugin?",
			Default: false,
		},
	}

	keys := prompt.Keys(questions)
	answers := prompt.NewAsker(cmd.InOrStdin(), out).Ask(questions)
	if missing := answers.Missing(keys); len(missing) > 0 {
		style.Errorf(cmd.ErrOrStderr(), "Error Input! Missing %s", strings.Join(missing, ", "))
		return nil
	}

	name := answers.String("project_name")
	context := scaffold.ProjectContext(name, answers.Bool("use_src"), answers.Bool("load_builtin"))

	result, err := scaffold.Generate(scaffold.SetProject, context, scaffold.ProjectSlug(name))
	if err != nil {
		return err
	}

	printGenerated(cmd, "project", result)
	return nil
}

func printGenerated(cmd *cobra.Command, kind string, result *scaffold.Result) {
	out := cmd.OutOrStdout()
	s := style.New(out)
	fmt.Fprintln(out, s.Green(fmt.Sprintf("Created %s at %s/", kind, result.OutputDir)))
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
}
