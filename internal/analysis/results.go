package analysis

import (
	"github.com/KaramelBytes/quickeda-cli/internal/dataset"
)

// Shape is the (rows, columns) dimension of a dataset.
type Shape struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// NumericStats is the descriptive summary of one numeric column.
// Statistics over an empty column are NaN with Count 0.
type NumericStats struct {
	Count  float64 `yaml:"count"`
	Mean   float64 `yaml:"mean"`
	Std    float64 `yaml:"std"`
	Min    float64 `yaml:"min"`
	Q25    float64 `yaml:"25%"`
	Median float64 `yaml:"50%"`
	Q75    float64 `yaml:"75%"`
	Max    float64 `yaml:"max"`
}

// ValueCount pairs a categorical value with its occurrence count.
type ValueCount struct {
	Value string `yaml:"value"`
	Count int    `yaml:"count"`
}

// CategoricalStats summarizes one text or categorical column. TopValues
// is ordered most-frequent first, ties broken by first-encountered order.
type CategoricalStats struct {
	UniqueCount int          `yaml:"unique_count"`
	TopValues   []ValueCount `yaml:"top_values"`
}

// CorrelationMatrix holds a symmetric Pearson correlation matrix across
// the numeric columns, diagonal exactly 1.
type CorrelationMatrix struct {
	Columns []string    `yaml:"columns"`
	Values  [][]float64 `yaml:"values"`
}

// At returns the coefficient for a pair of column names.
func (m *CorrelationMatrix) At(a, b string) (float64, bool) {
	ai, bi := -1, -1
	for i, c := range m.Columns {
		if c == a {
			ai = i
		}
		if c == b {
			bi = i
		}
	}
	if ai < 0 || bi < 0 {
		return 0, false
	}
	return m.Values[ai][bi], true
}

// Results is the complete outcome of one analysis run. It is built once
// and never mutated after Analyze returns. NumericSummary and
// CorrelationMatrix are nil when the dataset has no numeric columns;
// CategoricalSummary is nil when it has no text or categorical columns.
type Results struct {
	Shape              Shape                       `yaml:"shape"`
	Columns            []string                    `yaml:"columns"`
	DTypes             map[string]dataset.DType    `yaml:"dtypes"`
	MemoryUsage        int64                       `yaml:"memory_usage"`
	MissingValues      map[string]int              `yaml:"missing_values"`
	MissingPercentage  map[string]float64          `yaml:"missing_percentage"`
	NumericSummary     map[string]NumericStats     `yaml:"numeric_summary,omitempty"`
	CorrelationMatrix  *CorrelationMatrix          `yaml:"correlation_matrix,omitempty"`
	CategoricalSummary map[string]CategoricalStats `yaml:"categorical_summary,omitempty"`
	DuplicateRows      int                         `yaml:"duplicate_rows"`
}
