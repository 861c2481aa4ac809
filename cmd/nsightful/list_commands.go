// cmd/nsightful/list_commands.go
package nsightful

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// commandsCmd implements 'list commands', which prints every command path
// in the tool together with its short description.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List all commands and subcommands",
	Long:  `The 'commands' subcommand walks the command tree and prints every command path together with its short description, one block per command.`,
	Run: func(cmd *cobra.Command, args []string) {
		listAllCommands(rootCmd)
	},
}

func init() {
	listCmd.AddCommand(commandsCmd)
}

// listAllCommands walks the command tree rooted at cmd and prints one block
// per command: the full command path as a heading, the short description
// underneath.
func listAllCommands(cmd *cobra.Command) {
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	for _, info := range collectCommandInfo(cmd, "") {
		fmt.Println(pathStyle.Render(info.path + ":"))
		fmt.Println("  >>> " + descStyle.Render(info.description))
		fmt.Println()
	}
}

type commandInfo struct {
	path        string
	description string
}

// collectCommandInfo flattens the command tree into path/description pairs,
// depth first, skipping cobra's injected help and completion commands.
func collectCommandInfo(cmd *cobra.Command, parent string) []commandInfo {
	path := cmd.Name()
	if parent != "" {
		path = parent + " " + cmd.Name()
	}

	infos := []commandInfo{{path: path, description: cmd.Short}}
	for _, sub := range cmd.Commands() {
		if sub.Name() == "help" || sub.Name() == "completion" {
			continue
		}
		infos = append(infos, collectCommandInfo(sub, path)...)
	}
	return infos
}
