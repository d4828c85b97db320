package stats

import (
	"sort"

	"datalens/domain/dataset"
)

// NumericSummary holds descriptive statistics for one numeric column.
// StdDev uses the sample (n-1) formula; quantiles use linear interpolation
// between order statistics.
type NumericSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
}

// FrequencyTable maps a categorical label to its occurrence count. Missing
// cells are excluded.
type FrequencyTable map[string]int

// SortedLabels returns the table's labels in lexical order, for deterministic
// rendering.
func (f FrequencyTable) SortedLabels() []string {
	labels := make([]string, 0, len(f))
	for l := range f {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// AnalysisResult is the full descriptive-statistics mapping produced by one
// Analyze call. It is created fresh each call and never persisted.
type AnalysisResult struct {
	Rows        int                           `json:"rows"`
	Cols        int                           `json:"cols"`
	ColumnOrder []string                      `json:"column_order"`
	Kinds       map[string]dataset.ColumnKind `json:"kinds"`
	Numeric     map[string]NumericSummary     `json:"numeric"`
	Categorical map[string]FrequencyTable     `json:"categorical"`
	Missing     map[string]int                `json:"missing"`
}

// NewAnalysisResult allocates an empty result for a dataset shape.
func NewAnalysisResult(rows, cols int) *AnalysisResult {
	return &AnalysisResult{
		Rows:        rows,
		Cols:        cols,
		Kinds:       make(map[string]dataset.ColumnKind),
		Numeric:     make(map[string]NumericSummary),
		Categorical: make(map[string]FrequencyTable),
		Missing:     make(map[string]int),
	}
}

// TotalMissing returns the missing-cell count across all columns.
func (r *AnalysisResult) TotalMissing() int {
	total := 0
	for _, n := range r.Missing {
		total += n
	}
	return total
}
