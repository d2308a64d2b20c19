package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/KaramelBytes/quickeda-cli/internal/analysis"
)

const (
	// reportTopValues is how many top values the per-column
	// categorical table shows.
	reportTopValues = 5
	// valueMaxChars caps the length of a rendered categorical value.
	valueMaxChars = 30
)

// Build assembles the report document from an analysis result. Missing
// metadata fields are defaulted: generation time to now, report ID to a
// fresh UUID. A malformed results object fails fast with a RenderError
// naming the offending block.
func Build(res *analysis.Results, meta Metadata) (*Document, error) {
	if res == nil {
		return nil, &RenderError{Block: "document", Err: fmt.Errorf("nil results")}
	}
	if err := validate(res); err != nil {
		return nil, err
	}
	if meta.GeneratedAt.IsZero() {
		meta.GeneratedAt = time.Now()
	}
	if meta.ReportID == "" {
		meta.ReportID = uuid.NewString()
	}

	doc := &Document{Meta: meta}

	doc.add(
		Title{Text: "Exploratory Data Analysis Report"},
		Spacer{Height: 8},
		Paragraph{Text: "Generated on: " + meta.GeneratedAt.Format("2006-01-02 15:04:05")},
	)
	if meta.SourceFile != "" {
		doc.add(Paragraph{Text: "Source file: " + meta.SourceFile})
	}
	doc.add(
		Paragraph{Text: "Report ID: " + meta.ReportID},
		Spacer{Height: 8},
	)

	doc.add(
		Heading{Text: "Dataset Overview"},
		Table{
			Header: []string{"Metric", "Value"},
			Rows: [][]string{
				{"Number of Rows", formatCount(res.Shape.Rows)},
				{"Number of Columns", formatCount(res.Shape.Cols)},
				{"Memory Usage", formatMB(res.MemoryUsage)},
				{"Duplicate Rows", formatCount(res.DuplicateRows)},
			},
		},
		Spacer{Height: 8},
	)

	colTable := Table{Header: []string{"Column Name", "Data Type", "Missing Values", "Missing %"}}
	for _, name := range res.Columns {
		colTable.Rows = append(colTable.Rows, []string{
			name,
			string(res.DTypes[name]),
			strconv.Itoa(res.MissingValues[name]),
			formatFloat(res.MissingPercentage[name], 1) + "%",
		})
	}
	doc.add(Heading{Text: "Column Information"}, colTable)

	if res.NumericSummary != nil {
		numTable := Table{Header: []string{"Column", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"}}
		for _, name := range res.Columns {
			stats, ok := res.NumericSummary[name]
			if !ok {
				continue
			}
			numTable.Rows = append(numTable.Rows, []string{
				name,
				formatFloat(stats.Count, 0),
				formatFloat(stats.Mean, 2),
				formatFloat(stats.Std, 2),
				formatFloat(stats.Min, 2),
				formatFloat(stats.Q25, 2),
				formatFloat(stats.Median, 2),
				formatFloat(stats.Q75, 2),
				formatFloat(stats.Max, 2),
			})
		}
		doc.add(PageBreak{}, Heading{Text: "Numerical Columns Summary"}, numTable)
	}

	if res.CategoricalSummary != nil {
		doc.add(Spacer{Height: 8}, Heading{Text: "Categorical Columns Summary"})
		for _, name := range res.Columns {
			info, ok := res.CategoricalSummary[name]
			if !ok {
				continue
			}
			doc.add(
				SubHeading{Text: "Column: " + name},
				Paragraph{Text: "Unique values: " + formatCount(info.UniqueCount)},
			)
			if len(info.TopValues) == 0 {
				continue
			}
			doc.add(Paragraph{Text: "Top values:"})
			top := Table{Header: []string{"Value", "Count"}}
			for i, vc := range info.TopValues {
				if i >= reportTopValues {
					break
				}
				top.Rows = append(top.Rows, []string{
					truncate(vc.Value, valueMaxChars),
					strconv.Itoa(vc.Count),
				})
			}
			doc.add(top, Spacer{Height: 4})
		}
	}

	return doc, nil
}

// validate checks the Results invariants the renderer relies on.
func validate(res *analysis.Results) error {
	if len(res.Columns) != len(res.DTypes) ||
		len(res.Columns) != len(res.MissingValues) ||
		len(res.Columns) != len(res.MissingPercentage) {
		return &RenderError{
			Block: "column information",
			Err: fmt.Errorf("inconsistent result sizes: %d columns, %d dtypes, %d missing counts",
				len(res.Columns), len(res.DTypes), len(res.MissingValues)),
		}
	}
	for _, name := range res.Columns {
		if _, ok := res.DTypes[name]; !ok {
			return &RenderError{Block: "column information", Column: name, Err: fmt.Errorf("no declared type")}
		}
	}
	for name := range res.NumericSummary {
		t, ok := res.DTypes[name]
		if !ok || !t.IsNumeric() {
			return &RenderError{Block: "numerical columns summary", Column: name, Err: fmt.Errorf("not a numeric column")}
		}
	}
	for name := range res.CategoricalSummary {
		t, ok := res.DTypes[name]
		if !ok || !t.IsCategorical() {
			return &RenderError{Block: "categorical columns summary", Column: name, Err: fmt.Errorf("not a categorical column")}
		}
	}
	return nil
}
