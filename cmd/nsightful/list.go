// cmd/nsightful/list.go
package nsightful

import (
	"github.com/spf13/cobra"
)

// listCmd represents the 'list' command group and acts as a namespace
// for subcommands that list information (for example, kernels or sections).
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing report contents",
	Long:  `The 'list' command groups related subcommands that list report contents or converter metadata. It performs no action on its own.`,
}

func init() {
	rootCmd.AddCommand(listCmd)
}
