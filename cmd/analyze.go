package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/quickeda-cli/internal/analysis"
	"github.com/KaramelBytes/quickeda-cli/internal/loader"
	"github.com/KaramelBytes/quickeda-cli/internal/report"
)

var (
	anaOutputPath string
	anaDelimiter  string
	anaSheetName  string
	anaSheetIndex int
	anaQuiet      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a data file and generate a PDF report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		opt, err := loaderOptions(anaDelimiter, anaSheetName, anaSheetIndex)
		if err != nil {
			return err
		}

		ds, err := loader.LoadFile(path, opt)
		if err != nil {
			return err
		}
		slog.Debug("dataset loaded",
			slog.String("file", filepath.Base(path)),
			slog.Int("rows", ds.NumRows()),
			slog.Int("cols", ds.NumCols()))

		res, err := analysis.Analyze(ds, progressPrinter(anaQuiet))
		if err != nil {
			return err
		}

		out := anaOutputPath
		if out == "" {
			out = defaultReportPath()
		}
		doc, err := report.Build(res, report.Metadata{SourceFile: filepath.Base(path)})
		if err != nil {
			return err
		}
		if err := report.WritePDF(doc, out); err != nil {
			return err
		}
		fmt.Printf("✓ Report saved to %s\n", out)
		return nil
	},
}

// loaderOptions merges config defaults with command flags.
func loaderOptions(delimiter, sheetName string, sheetIndex int) (loader.Options, error) {
	opt := loader.DefaultOptions()
	if cfg != nil {
		if cfg.InferSampleRows > 0 {
			opt.InferSampleRows = cfg.InferSampleRows
		}
		if cfg.SniffLines > 0 {
			opt.SniffLines = cfg.SniffLines
		}
	}
	switch delimiter {
	case "":
	case ",":
		opt.Delimiter = ','
	case ";":
		opt.Delimiter = ';'
	case "\t", "tab":
		opt.Delimiter = '\t'
	default:
		return opt, fmt.Errorf("unsupported --delimiter: %s (use ','|';'|'tab')", delimiter)
	}
	opt.SheetName = sheetName
	opt.SheetIndex = sheetIndex
	return opt, nil
}

// progressPrinter reports analysis checkpoints on stderr.
func progressPrinter(quiet bool) analysis.Progress {
	if quiet {
		return nil
	}
	return func(percent int, message string) {
		fmt.Fprintf(os.Stderr, "  [%3d%%] %s\n", percent, message)
	}
}

// defaultReportPath mirrors the traditional default report filename.
func defaultReportPath() string {
	name := fmt.Sprintf("EDA_Report_%s.pdf", time.Now().Format("20060102_150405"))
	if cfg != nil && strings.TrimSpace(cfg.OutputDir) != "" {
		return filepath.Join(cfg.OutputDir, name)
	}
	return name
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "path for the PDF report (default EDA_Report_<timestamp>.pdf)")
	analyzeCmd.Flags().StringVar(&anaDelimiter, "delimiter", "", "delimiter for text files: ',' | ';' | 'tab' (auto-detect if omitted)")
	analyzeCmd.Flags().StringVar(&anaSheetName, "sheet-name", "", "XLSX: sheet name to analyze")
	analyzeCmd.Flags().IntVar(&anaSheetIndex, "sheet-index", 0, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
	analyzeCmd.Flags().BoolVar(&anaQuiet, "quiet", false, "suppress progress output")
}
