package report

import (
	"fmt"

	apperrors "datalens/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Workbook sheet names.
const (
	sheetNumeric     = "Numeric"
	sheetCategorical = "Categorical"
	sheetMissing     = "Missing"
)

// WriteWorkbook exports the report as an XLSX workbook with one sheet per
// concern. This is an output format only; CSV remains the only input format.
func (r *Report) WriteWorkbook(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetNumeric)
	if _, err := f.NewSheet(sheetCategorical); err != nil {
		return apperrors.OutputIO("failed to create workbook sheet", err)
	}
	if _, err := f.NewSheet(sheetMissing); err != nil {
		return apperrors.OutputIO("failed to create workbook sheet", err)
	}

	if err := r.writeNumericSheet(f); err != nil {
		return err
	}
	if err := r.writeCategoricalSheet(f); err != nil {
		return err
	}
	if err := r.writeMissingSheet(f); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return apperrors.OutputIO("failed to save workbook", err)
	}
	return nil
}

func (r *Report) writeNumericSheet(f *excelize.File) error {
	header := []interface{}{"Column", "Count", "Mean", "Std", "Min", "Q25", "Median", "Q75", "Max"}
	if err := f.SetSheetRow(sheetNumeric, "A1", &header); err != nil {
		return apperrors.OutputIO("failed to write workbook header", err)
	}

	row := 2
	for _, name := range r.Result.ColumnOrder {
		s, ok := r.Result.Numeric[name]
		if !ok {
			continue
		}
		record := []interface{}{name, s.Count, s.Mean, s.StdDev, s.Min, s.Q25, s.Median, s.Q75, s.Max}
		if err := f.SetSheetRow(sheetNumeric, fmt.Sprintf("A%d", row), &record); err != nil {
			return apperrors.OutputIO("failed to write workbook row", err)
		}
		row++
	}
	return nil
}

func (r *Report) writeCategoricalSheet(f *excelize.File) error {
	header := []interface{}{"Column", "Label", "Count"}
	if err := f.SetSheetRow(sheetCategorical, "A1", &header); err != nil {
		return apperrors.OutputIO("failed to write workbook header", err)
	}

	row := 2
	for _, name := range r.Result.ColumnOrder {
		table, ok := r.Result.Categorical[name]
		if !ok {
			continue
		}
		for _, label := range table.SortedLabels() {
			record := []interface{}{name, label, table[label]}
			if err := f.SetSheetRow(sheetCategorical, fmt.Sprintf("A%d", row), &record); err != nil {
				return apperrors.OutputIO("failed to write workbook row", err)
			}
			row++
		}
	}
	return nil
}

func (r *Report) writeMissingSheet(f *excelize.File) error {
	header := []interface{}{"Column", "Missing"}
	if err := f.SetSheetRow(sheetMissing, "A1", &header); err != nil {
		return apperrors.OutputIO("failed to write workbook header", err)
	}

	row := 2
	for _, name := range r.Result.ColumnOrder {
		record := []interface{}{name, r.Result.Missing[name]}
		if err := f.SetSheetRow(sheetMissing, fmt.Sprintf("A%d", row), &record); err != nil {
			return apperrors.OutputIO("failed to write workbook row", err)
		}
		row++
	}
	return nil
}
