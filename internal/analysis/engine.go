package analysis

import (
	"fmt"

	"github.com/KaramelBytes/quickeda-cli/internal/dataset"
)

// Progress receives checkpoint updates during an analysis run. Percent
// is in [0,100] and monotonically non-decreasing. The callback is purely
// observational; it may be nil, slow, or panic without affecting the run.
type Progress func(percent int, message string)

// report invokes the callback protected, so a panicking observer cannot
// corrupt the analysis.
func report(p Progress, percent int, message string) {
	if p == nil {
		return
	}
	defer func() { _ = recover() }()
	p(percent, message)
}

// topValuesKept is how many most-frequent values the categorical
// summary retains per column.
const topValuesKept = 10

// AnalysisError indicates a column whose declared type contradicts its
// contents, e.g. a declared-numeric column holding a non-numeric value
// the loader failed to normalize. Degenerate datasets (zero rows, zero
// columns) are valid inputs and never produce it.
type AnalysisError struct {
	Column string
	Err    error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analyze column %q: %v", e.Column, e.Err)
}
func (e *AnalysisError) Unwrap() error { return e.Err }

// Analyze computes the full battery of descriptive statistics over the
// dataset. Stages run in a fixed order with progress checkpoints before
// each; the dataset is not mutated and the returned Results object is
// owned by the caller.
func Analyze(ds *dataset.Dataset, progress Progress) (*Results, error) {
	res := &Results{}

	// Stage 1: basic info.
	report(progress, 10, "Analyzing basic dataset information...")
	res.Shape = Shape{Rows: ds.NumRows(), Cols: ds.NumCols()}
	res.Columns = ds.Columns()
	res.DTypes = make(map[string]dataset.DType, ds.NumCols())
	for i := 0; i < ds.NumCols(); i++ {
		c := ds.ColumnAt(i)
		res.DTypes[c.Name] = c.Type
	}
	res.MemoryUsage = ds.EstimateBytes()

	// Stage 2: missing values.
	report(progress, 25, "Checking for missing values...")
	res.MissingValues = make(map[string]int, ds.NumCols())
	res.MissingPercentage = make(map[string]float64, ds.NumCols())
	for col := 0; col < ds.NumCols(); col++ {
		miss := 0
		for row := 0; row < ds.NumRows(); row++ {
			if ds.IsNull(row, col) {
				miss++
			}
		}
		name := ds.ColumnAt(col).Name
		res.MissingValues[name] = miss
		pct := 0.0
		if ds.NumRows() > 0 {
			pct = float64(miss) / float64(ds.NumRows()) * 100
		}
		res.MissingPercentage[name] = pct
	}

	// Stage 3: numeric summary and correlation.
	report(progress, 50, "Analyzing numerical columns...")
	numeric := numericColumns(ds)
	if len(numeric) > 0 {
		summary, err := summarizeNumeric(ds, numeric)
		if err != nil {
			return nil, err
		}
		res.NumericSummary = summary
		res.CorrelationMatrix = correlate(ds, numeric)
	}

	// Stage 4: categorical summary.
	report(progress, 75, "Analyzing categorical columns...")
	if summary := summarizeCategorical(ds); len(summary) > 0 {
		res.CategoricalSummary = summary
	}

	// Stage 5: duplicate rows.
	report(progress, 90, "Checking for duplicate rows...")
	seen := make(map[string]struct{}, ds.NumRows())
	for row := 0; row < ds.NumRows(); row++ {
		key := ds.RowKey(row)
		if _, dup := seen[key]; dup {
			res.DuplicateRows++
			continue
		}
		seen[key] = struct{}{}
	}

	report(progress, 100, "Analysis complete!")
	return res, nil
}

// numericColumns returns the indices of columns whose declared type is
// numeric, in dataset order.
func numericColumns(ds *dataset.Dataset) []int {
	var idx []int
	for i := 0; i < ds.NumCols(); i++ {
		if ds.ColumnAt(i).Type.IsNumeric() {
			idx = append(idx, i)
		}
	}
	return idx
}

// summarizeCategorical counts unique values and the most frequent
// values for every text or categorical column.
func summarizeCategorical(ds *dataset.Dataset) map[string]CategoricalStats {
	out := make(map[string]CategoricalStats)
	for col := 0; col < ds.NumCols(); col++ {
		c := ds.ColumnAt(col)
		if !c.Type.IsCategorical() {
			continue
		}
		counts := make(map[string]int)
		firstSeen := make(map[string]int)
		for row := 0; row < ds.NumRows(); row++ {
			if ds.IsNull(row, col) {
				continue
			}
			v := ds.Raw(row, col)
			if _, ok := counts[v]; !ok {
				firstSeen[v] = row
			}
			counts[v]++
		}
		out[c.Name] = CategoricalStats{
			UniqueCount: len(counts),
			TopValues:   topValues(counts, firstSeen, topValuesKept),
		}
	}
	return out
}
