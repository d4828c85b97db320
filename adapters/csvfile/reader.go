package csvfile

import (
	"encoding/csv"
	"os"
	"strings"

	"datalens/domain/core"
	"datalens/domain/dataset"
	"datalens/internal"
)

// Reader parses comma-delimited files with a header row into Datasets.
// Column kinds are inferred from the literal cell values: a column whose
// every non-empty cell parses as a number is numeric, anything else is
// categorical.
type Reader struct {
	log *internal.Logger
}

// NewReader creates a CSV reader.
func NewReader() *Reader {
	return &Reader{log: internal.DefaultLogger}
}

// Read parses the file at path. The file must exist; callers handle the
// missing-file fallback. A present but unreadable or ragged file surfaces a
// malformed-input error.
func (r *Reader) Read(path string) (*dataset.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, core.NewMalformedInputError(path, err)
	}
	defer file.Close()

	cr := csv.NewReader(file)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, core.NewMalformedInputError(path, err)
	}

	if len(rows) < 2 {
		return nil, core.NewMalformedInputError(path, core.ErrEmptyDataset)
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	columns := make([]dataset.Column, 0, len(headers))
	for colIdx, name := range headers {
		cells := make([]string, 0, len(rows)-1)
		for _, row := range rows[1:] {
			cells = append(cells, strings.TrimSpace(row[colIdx]))
		}
		columns = append(columns, buildColumn(name, cells))
	}

	ds, err := dataset.New(columns...)
	if err != nil {
		return nil, core.NewMalformedInputError(path, err)
	}

	r.log.Info("loaded %s (%d columns, %d rows)", path, ds.ColumnCount(), ds.Rows())
	return ds, nil
}

// buildColumn materializes one column according to its inferred kind.
func buildColumn(name string, cells []string) dataset.Column {
	if inferKind(cells) == dataset.KindNumeric {
		values := make([]float64, len(cells))
		missing := make([]bool, len(cells))
		for i, cell := range cells {
			if cell == "" {
				missing[i] = true
				continue
			}
			v, _ := parseNumeric(cell)
			values[i] = v
		}
		return dataset.NewNumericColumn(name, values, missing)
	}
	return dataset.NewCategoricalColumn(name, cells)
}
