// cmd/nsightful/list_kernels.go
package nsightful

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mwiater/nsightful/internal/ncu"
)

// listKernelsCmd implements 'list kernels', which enumerates the kernels
// found in an NCU CSV export together with their section, metric, and rule
// counts.
var listKernelsCmd = &cobra.Command{
	Use:   "kernels <csv-file>",
	Short: "List kernels found in an NCU CSV export",
	Long:  `The 'kernels' subcommand lists every kernel in the given NCU CSV export, in the order first seen, with per-kernel section, metric, and rule counts.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := listKernels(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	listCmd.AddCommand(listKernelsCmd)
}

// listKernels parses the named CSV file and prints one block per kernel in
// discovery order.
func listKernels(csvPath string) error {
	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", csvPath, err)
	}
	defer f.Close()

	report, err := ncu.ParseCSV(f)
	if err != nil {
		return fmt.Errorf("could not parse %s: %w", csvPath, err)
	}

	kernelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	for _, k := range report.Kernels() {
		sections := k.Sections()
		metrics, rules := 0, 0
		for _, s := range sections {
			metrics += len(s.Metrics())
			rules += len(s.Rules())
		}
		fmt.Println(kernelStyle.Render(fmt.Sprintf("%s:", k.Name)))
		fmt.Println("  >>> " + countStyle.Render(fmt.Sprintf("%d sections, %d metrics, %d rules", len(sections), metrics, rules)))
		fmt.Println()
	}
	return nil
}
