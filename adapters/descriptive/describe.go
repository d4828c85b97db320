package descriptive

import (
	"sort"

	"datalens/domain/core"
	"datalens/domain/dataset"
	domstats "datalens/domain/stats"

	"github.com/montanaflynn/stats"
)

// Engine computes descriptive statistics over a Dataset. It has no side
// effects on the dataset and produces a fresh result per call.
type Engine struct{}

// NewEngine creates a descriptive-statistics engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Describe computes per-column summaries: count/mean/std/min/max/quartiles
// for numeric columns, frequency tables for categorical columns, and missing
// counts for every column.
func (e *Engine) Describe(ds *dataset.Dataset) (*domstats.AnalysisResult, error) {
	if ds == nil {
		return nil, core.ErrNoDataset
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	result := domstats.NewAnalysisResult(ds.Rows(), ds.ColumnCount())
	result.ColumnOrder = ds.Names()

	for _, col := range ds.Columns {
		result.Kinds[col.Name] = col.Kind
		result.Missing[col.Name] = col.MissingCount()

		switch col.Kind {
		case dataset.KindNumeric:
			summary, err := summarize(col.Observed())
			if err != nil {
				return nil, err
			}
			result.Numeric[col.Name] = summary
		case dataset.KindCategorical:
			result.Categorical[col.Name] = frequencies(col.Labels)
		}
	}

	return result, nil
}

// summarize computes the descriptive summary of the observed values of one
// numeric column.
func summarize(observed []float64) (domstats.NumericSummary, error) {
	summary := domstats.NumericSummary{Count: len(observed)}
	if len(observed) == 0 {
		return summary, nil
	}

	mean, err := stats.Mean(observed)
	if err != nil {
		return summary, err
	}
	min, err := stats.Min(observed)
	if err != nil {
		return summary, err
	}
	max, err := stats.Max(observed)
	if err != nil {
		return summary, err
	}

	// Sample (n-1) standard deviation; a single observation has no spread.
	stdDev := 0.0
	if len(observed) > 1 {
		stdDev, err = stats.StandardDeviationSample(observed)
		if err != nil {
			return summary, err
		}
	}

	sorted := make([]float64, len(observed))
	copy(sorted, observed)
	sort.Float64s(sorted)

	summary.Mean = mean
	summary.StdDev = stdDev
	summary.Min = min
	summary.Max = max
	summary.Q25 = quantile(sorted, 0.25)
	summary.Median = quantile(sorted, 0.50)
	summary.Q75 = quantile(sorted, 0.75)
	return summary, nil
}

// quantile computes the p-quantile of sorted data by linear interpolation
// between order statistics: h = (n-1)p.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := float64(n-1) * p
	lo := int(h)
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// frequencies counts occurrences per distinct label, excluding missing cells.
func frequencies(labels []string) domstats.FrequencyTable {
	table := make(domstats.FrequencyTable)
	for _, l := range labels {
		if l == "" {
			continue
		}
		table[l]++
	}
	return table
}
