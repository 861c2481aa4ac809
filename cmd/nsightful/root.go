// cmd/nsightful/root.go
package nsightful

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base Cobra command for the nsightful application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "nsightful",
	Short: "Convert NVIDIA Nsight Compute CSV exports to readable Markdown",
	Long: `nsightful converts NVIDIA Nsight Compute (NCU) CSV exports into readable
Markdown, either as a flat document or in an interactive terminal viewer.

NCU CSV files can be generated using:
  ncu --set full -o MYREPORT ./MYAPPLICATION
  ncu --import MYREPORT.ncu-rep --csv > MYREPORT.csv`,
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
}
