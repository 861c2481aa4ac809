// cmd/nsightful/list_sections.go
package nsightful

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mwiater/nsightful/internal/ncu"
)

// listSectionsCmd implements 'list sections', which prints the canonical
// section display order and the raw NCU labels that fold into each name.
var listSectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List canonical report sections and their NCU label variants",
	Long:  `The 'sections' subcommand lists the canonical section names in the order they appear in converted reports, together with the raw NCU section labels that map onto each.`,
	Run: func(cmd *cobra.Command, args []string) {
		listSections()
	},
}

func init() {
	listCmd.AddCommand(listSectionsCmd)
}

// listSections prints the canonical section table.
func listSections() {
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	for _, name := range ncu.SectionOrder() {
		fmt.Println(sectionStyle.Render(fmt.Sprintf("%s:", name)))
		for _, raw := range ncu.RawLabels(name) {
			fmt.Println("  >>> " + labelStyle.Render(raw))
		}
		fmt.Println()
	}
}
