package loader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KaramelBytes/quickeda-cli/internal/dataset"
)

// Options controls loading behavior.
type Options struct {
	// Delimiter for delimited text. If 0, it is chosen by extension
	// (.csv comma, .tsv tab) or detected (.txt).
	Delimiter rune
	// SheetName selects an XLSX sheet by name; takes precedence over SheetIndex.
	SheetName string
	// SheetIndex is the 1-based XLSX sheet index. 0 means the first sheet.
	SheetIndex int
	// InferSampleRows caps how many rows type inference inspects; 0 means all.
	InferSampleRows int
	// SniffLines is how many lines delimiter detection samples for .txt files.
	SniffLines int
}

// DefaultOptions returns reasonable defaults for loading.
func DefaultOptions() Options {
	return Options{
		InferSampleRows: 1000,
		SniffLines:      10,
	}
}

// Loader turns an on-disk file into an in-memory tabular dataset.
type Loader interface {
	CanLoad(filename string) bool
	Load(path string, opt Options) (*dataset.Dataset, error)
}

// ErrUnsupported indicates a file format is not supported.
var ErrUnsupported = errors.New("unsupported data file format")

// LoadError wraps any failure to produce a dataset from a file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string { return fmt.Sprintf("load %s: %v", e.Path, e.Err) }
func (e *LoadError) Unwrap() error { return e.Err }

var registry []Loader

// Register adds a loader implementation to the registry.
func Register(l Loader) {
	registry = append(registry, l)
}

// LoadFile selects a loader by filename and returns the parsed dataset.
func LoadFile(path string, opt Options) (*dataset.Dataset, error) {
	for _, l := range registry {
		if l.CanLoad(path) {
			ds, err := l.Load(path, opt)
			if err != nil {
				return nil, &LoadError{Path: path, Err: err}
			}
			return ds, nil
		}
	}
	return nil, &LoadError{Path: path, Err: ErrUnsupported}
}

func init() {
	Register(csvLoader{})
	Register(txtLoader{})
	Register(xlsxLoader{})
}

// missingTokens are raw cell values normalized to null on load.
var missingTokens = map[string]struct{}{
	"":     {},
	"na":   {},
	"n/a":  {},
	"null": {},
	"nan":  {},
	"none": {},
}

func normalizeCell(v string) string {
	v = strings.TrimSpace(v)
	if _, miss := missingTokens[strings.ToLower(v)]; miss {
		return ""
	}
	return v
}

// buildDataset infers declared types from the records and assembles the
// dataset. Blank header cells get positional names; duplicate header
// names get a numeric suffix.
func buildDataset(header []string, records [][]string, opt Options) (*dataset.Dataset, error) {
	names := make([]string, len(header))
	seen := map[string]int{}
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		base := name
		// Suffixed names can themselves collide with other headers, so
		// keep bumping until the name is unused.
		for seen[name] > 0 {
			name = fmt.Sprintf("%s.%d", base, seen[base])
			seen[base]++
		}
		seen[name] = 1
		names[i] = name
	}

	sample := len(records)
	if opt.InferSampleRows > 0 && sample > opt.InferSampleRows {
		sample = opt.InferSampleRows
	}
	cols := make([]dataset.Column, len(names))
	for i, name := range names {
		vals := make([]string, 0, sample)
		for r := 0; r < sample; r++ {
			if i < len(records[r]) && records[r][i] != "" {
				vals = append(vals, records[r][i])
			}
		}
		cols[i] = dataset.Column{Name: name, Type: inferType(vals)}
	}

	ds, err := dataset.New(cols)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		ds.AppendRow(rec)
	}
	return ds, nil
}
