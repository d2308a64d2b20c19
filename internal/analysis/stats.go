package analysis

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/KaramelBytes/quickeda-cli/internal/dataset"
)

// summarizeNumeric computes count/mean/std/min/quartiles/max for each
// declared-numeric column. A column with no present values (zero rows,
// or all nulls) yields Count 0 and NaN statistics rather than an error.
func summarizeNumeric(ds *dataset.Dataset, numeric []int) (map[string]NumericStats, error) {
	out := make(map[string]NumericStats, len(numeric))
	for _, col := range numeric {
		name := ds.ColumnAt(col).Name
		vals, err := columnFloats(ds, col)
		if err != nil {
			return nil, err
		}
		if len(vals) == 0 {
			nan := math.NaN()
			out[name] = NumericStats{
				Count: 0, Mean: nan, Std: nan, Min: nan,
				Q25: nan, Median: nan, Q75: nan, Max: nan,
			}
			continue
		}
		s := stats.Sample{Xs: vals}
		s.Sort()
		out[name] = NumericStats{
			Count:  float64(len(vals)),
			Mean:   s.Mean(),
			Std:    s.StdDev(),
			Min:    s.Quantile(0),
			Q25:    s.Quantile(0.25),
			Median: s.Quantile(0.5),
			Q75:    s.Quantile(0.75),
			Max:    s.Quantile(1),
		}
	}
	return out, nil
}

// columnFloats extracts the present values of a declared-numeric column.
func columnFloats(ds *dataset.Dataset, col int) ([]float64, error) {
	vals := make([]float64, 0, ds.NumRows())
	for row := 0; row < ds.NumRows(); row++ {
		if ds.IsNull(row, col) {
			continue
		}
		f, err := ds.Float(row, col)
		if err != nil {
			return nil, &AnalysisError{Column: ds.ColumnAt(col).Name, Err: err}
		}
		vals = append(vals, f)
	}
	return vals, nil
}

// pairAcc accumulates the running sums for one exact pairwise Pearson
// coefficient, restricted to rows where both values are present.
type pairAcc struct {
	n     float64
	sumX  float64
	sumY  float64
	sumXX float64
	sumYY float64
	sumXY float64
}

func (p *pairAcc) add(x, y float64) {
	p.n++
	p.sumX += x
	p.sumY += y
	p.sumXX += x * x
	p.sumYY += y * y
	p.sumXY += x * y
}

func (p *pairAcc) r() float64 {
	if p.n < 2 {
		return math.NaN()
	}
	denom := math.Sqrt((p.n*p.sumXX - p.sumX*p.sumX) * (p.n*p.sumYY - p.sumY*p.sumY))
	if denom == 0 {
		return math.NaN()
	}
	r := (p.n*p.sumXY - p.sumX*p.sumY) / denom
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}

// correlate builds the symmetric Pearson matrix over the numeric
// columns. Diagonal entries are exactly 1; pairs with fewer than two
// complete observations or zero variance are NaN.
func correlate(ds *dataset.Dataset, numeric []int) *CorrelationMatrix {
	// Cells declared numeric but unparseable were already rejected by
	// summarizeNumeric, so Float cannot fail here.
	names := make([]string, len(numeric))
	for i, col := range numeric {
		names[i] = ds.ColumnAt(col).Name
	}
	ncol := ds.NumCols()
	pairs := make(map[int]*pairAcc)

	for row := 0; row < ds.NumRows(); row++ {
		present := make(map[int]float64, len(numeric))
		for _, col := range numeric {
			if ds.IsNull(row, col) {
				continue
			}
			f, err := ds.Float(row, col)
			if err != nil {
				continue
			}
			present[col] = f
		}
		if len(present) < 2 {
			continue
		}
		idxs := make([]int, 0, len(present))
		for col := range present {
			idxs = append(idxs, col)
		}
		sort.Ints(idxs)
		for a := 1; a < len(idxs); a++ {
			for b := 0; b < a; b++ {
				key := idxs[a]*ncol + idxs[b]
				pa := pairs[key]
				if pa == nil {
					pa = &pairAcc{}
					pairs[key] = pa
				}
				pa.add(present[idxs[a]], present[idxs[b]])
			}
		}
	}

	n := len(numeric)
	mat := make([][]float64, n)
	for i := range mat {
		mat[i] = make([]float64, n)
	}
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if a == b {
				mat[a][b] = 1
				continue
			}
			hi, lo := numeric[a], numeric[b]
			if hi < lo {
				hi, lo = lo, hi
			}
			if pa := pairs[hi*ncol+lo]; pa != nil {
				mat[a][b] = pa.r()
			} else {
				mat[a][b] = math.NaN()
			}
		}
	}
	return &CorrelationMatrix{Columns: names, Values: mat}
}

// topValues ranks value counts most-frequent first, breaking ties by
// first-encountered row order, and keeps at most limit entries.
func topValues(counts map[string]int, firstSeen map[string]int, limit int) []ValueCount {
	tops := make([]ValueCount, 0, len(counts))
	for v, c := range counts {
		tops = append(tops, ValueCount{Value: v, Count: c})
	}
	sort.Slice(tops, func(i, j int) bool {
		if tops[i].Count == tops[j].Count {
			return firstSeen[tops[i].Value] < firstSeen[tops[j].Value]
		}
		return tops[i].Count > tops[j].Count
	})
	if len(tops) > limit {
		tops = tops[:limit]
	}
	return tops
}
