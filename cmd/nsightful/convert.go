// cmd/nsightful/convert.go
package nsightful

import (
	"fmt"
	"os"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/nsightful/internal/ncu"
)

// Flag targets for the 'convert' command. Values are read back through
// viper so tests and callers can override them without reparsing flags.
var (
	outputFile string
	debugDump  bool
)

// convertCmd represents the 'convert' command.
var convertCmd = &cobra.Command{
	Use:   "convert <csv-file>",
	Short: "Convert an NCU CSV export to a flat Markdown document",
	Long: `The 'convert' command reads an NCU CSV export and writes the equivalent
Markdown document to stdout, or to a file when --output is given. The
conversion either completes fully or fails without partial output.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runConvert(args[0], viper.GetString("output"), viper.GetBool("debug")); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file path (default: stdout)")
	convertCmd.Flags().BoolVar(&debugDump, "debug", false, "dump the aggregated report to stderr before rendering")

	viper.BindPFlag("output", convertCmd.Flags().Lookup("output"))
	viper.BindPFlag("debug", convertCmd.Flags().Lookup("debug"))
}

// runConvert converts the named NCU CSV file to Markdown, writing the
// document to outputPath, or to stdout when outputPath is empty. With debug
// set, the aggregated report is pretty-printed to stderr before rendering.
func runConvert(csvPath, outputPath string, debug bool) error {
	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", csvPath, err)
	}
	defer f.Close()

	report, err := ncu.ParseCSV(f)
	if err != nil {
		return fmt.Errorf("could not convert %s: %w", csvPath, err)
	}

	if debug {
		pp.Fprintln(os.Stderr, report)
	}

	markdown := report.Markdown()
	if outputPath == "" {
		fmt.Println(markdown)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(markdown), 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", outputPath, err)
	}
	return nil
}
