package csvfile

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"datalens/domain/dataset"
	"datalens/internal"
	apperrors "datalens/internal/errors"
)

// Writer serializes a Dataset as a header-first CSV file. Numeric values are
// formatted with the shortest representation that round-trips, so a written
// dataset re-loads with an equivalent shape and value set.
type Writer struct {
	log *internal.Logger
}

// NewWriter creates a CSV writer.
func NewWriter() *Writer {
	return &Writer{log: internal.DefaultLogger}
}

// Write serializes ds to path, creating parent directories as needed.
func (w *Writer) Write(path string, ds *dataset.Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.OutputIO("failed to create output directory", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.OutputIO("failed to create output file", err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.Write(ds.Names()); err != nil {
		return apperrors.OutputIO("failed to write header", err)
	}

	for row := 0; row < ds.Rows(); row++ {
		record := make([]string, ds.ColumnCount())
		for i, col := range ds.Columns {
			record[i] = formatCell(col, row)
		}
		if err := cw.Write(record); err != nil {
			return apperrors.OutputIO("failed to write row", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return apperrors.OutputIO("failed to flush output file", err)
	}

	w.log.Info("wrote %s (%d columns, %d rows)", path, ds.ColumnCount(), ds.Rows())
	return nil
}

// formatCell renders one cell; missing cells become empty strings.
func formatCell(col dataset.Column, row int) string {
	if col.Kind == dataset.KindNumeric {
		if col.Missing[row] {
			return ""
		}
		return strconv.FormatFloat(col.Values[row], 'g', -1, 64)
	}
	return col.Labels[row]
}
