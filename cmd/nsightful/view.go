// cmd/nsightful/view.go
package nsightful

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/nsightful/internal/viewer"
)

var startViewer = viewer.Start

// viewCmd represents the 'view' command.
var viewCmd = &cobra.Command{
	Use:   "view <csv-file>",
	Short: "Browse an NCU CSV export in an interactive viewer",
	Long: `The 'view' command opens an NCU CSV export in an interactive terminal
viewer: pick a kernel, then move through its sections as tabs. A Summary tab
collects every advisory rule for the selected kernel.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		startViewer(args[0])
	},
}

// init adds the view command to the root command.
func init() {
	rootCmd.AddCommand(viewCmd)
}
