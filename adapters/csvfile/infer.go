package csvfile

import (
	"math"
	"strconv"
	"strings"

	"datalens/domain/dataset"
)

// inferKind applies the strict numeric rule: every non-empty cell must parse
// as a finite number, otherwise the column is categorical. A fully-empty
// column is categorical.
func inferKind(cells []string) dataset.ColumnKind {
	sawValue := false
	for _, cell := range cells {
		if cell == "" {
			continue
		}
		sawValue = true
		if _, ok := parseNumeric(cell); !ok {
			return dataset.KindCategorical
		}
	}
	if !sawValue {
		return dataset.KindCategorical
	}
	return dataset.KindNumeric
}

// parseNumeric parses a cell as a finite float64. Scientific notation is
// accepted; Inf and NaN literals are rejected.
func parseNumeric(cell string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0, false
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
