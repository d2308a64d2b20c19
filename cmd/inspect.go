package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/quickeda-cli/internal/analysis"
	"github.com/KaramelBytes/quickeda-cli/internal/loader"
)

var (
	insOutputPath string
	insDelimiter  string
	insSheetName  string
	insSheetIndex int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Run the analysis and print the raw results as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opt, err := loaderOptions(insDelimiter, insSheetName, insSheetIndex)
		if err != nil {
			return err
		}
		ds, err := loader.LoadFile(args[0], opt)
		if err != nil {
			return err
		}
		res, err := analysis.Analyze(ds, nil)
		if err != nil {
			return err
		}
		b, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		if insOutputPath != "" {
			if err := os.WriteFile(insOutputPath, b, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote results to %s\n", insOutputPath)
			return nil
		}
		fmt.Print(string(b))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&insOutputPath, "output", "o", "", "optional path to write results (YAML)")
	inspectCmd.Flags().StringVar(&insDelimiter, "delimiter", "", "delimiter for text files: ',' | ';' | 'tab' (auto-detect if omitted)")
	inspectCmd.Flags().StringVar(&insSheetName, "sheet-name", "", "XLSX: sheet name to analyze")
	inspectCmd.Flags().IntVar(&insSheetIndex, "sheet-index", 0, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
}
