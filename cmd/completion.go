package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/blogger/internal/cli"
	"github.com/xolan/blogger/internal/tui/ui"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate a shell completion script for blogger.

Besides commands and flags, the scripts complete entry ids (log show, edit,
delete, toggle and subtask), configured status types (log toggle, tickets,
config status-type remove) and dashboard themes (config theme).

Usage:
  source <(blogger completion bash)
  blogger completion zsh > "${fpath[1]}/_blogger"
  blogger completion fish > ~/.config/fish/completions/blogger.fish
  blogger completion powershell | Out-String | Invoke-Expression`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.ExactValidArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)

	for _, c := range []*cobra.Command{showCmd, editCmd, deleteCmd, subtaskAddCmd, subtaskEditCmd, subtaskRemoveCmd} {
		c.ValidArgsFunction = completeEntryID
	}
	toggleCmd.ValidArgsFunction = completeToggleArgs
	ticketsCmd.ValidArgsFunction = completeStatusTypeArg
	statusTypeRemoveCmd.ValidArgsFunction = completeStatusTypeArg
	configThemeCmd.ValidArgsFunction = completeThemeArg
}

// generateCompletion writes the completion script for the given shell
func generateCompletion(shell string) {
	var err error

	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletionV2(deps.Stdout, true)
	case "zsh":
		err = rootCmd.GenZshCompletion(deps.Stdout)
	case "fish":
		err = rootCmd.GenFishCompletion(deps.Stdout, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(deps.Stdout)
	default:
		failUsage(fmt.Sprintf("Unsupported shell '%s'", shell), "blogger completion [bash|zsh|fish|powershell]")
		return
	}

	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to generate %s completion: %v\n", shell, err)
		deps.Exit(1)
	}
}

// completeEntryID offers short ids of stored entries, described by their ticket
func completeEntryID(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	services, err := deps.Services()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	logs, _, err := services.Log.All()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	ids := make([]string, 0, len(logs))
	for _, e := range logs {
		id := cli.ShortID(e.ID)
		if strings.HasPrefix(id, toComplete) {
			ids = append(ids, id+"\t"+e.Ticket)
		}
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

// completeStatusTypeArg offers the configured status type names as the first argument
func completeStatusTypeArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return statusTypeNames(toComplete)
}

// completeToggleArgs completes "log toggle <id> <status-type>"
func completeToggleArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return completeEntryID(cmd, args, toComplete)
	case 1:
		return statusTypeNames(toComplete)
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func statusTypeNames(toComplete string) ([]string, cobra.ShellCompDirective) {
	services, err := deps.Services()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	for _, st := range services.Log.StatusTypes() {
		if !strings.HasPrefix(st.Name, toComplete) {
			continue
		}
		if st.Prefix != "" {
			names = append(names, st.Name+"\tprefix "+st.Prefix)
		} else {
			names = append(names, st.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeThemeArg offers the dashboard themes bundled with blogger
func completeThemeArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, name := range ui.NewThemeProvider("").AvailableThemes() {
		if strings.HasPrefix(name, toComplete) {
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
