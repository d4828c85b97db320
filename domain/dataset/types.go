package dataset

import (
	"datalens/domain/core"
)

// ColumnKind classifies how a column's values are interpreted statistically.
type ColumnKind string

const (
	KindNumeric     ColumnKind = "numeric"
	KindCategorical ColumnKind = "categorical"
)

// Column is a single named column of a Dataset. Exactly one of the value
// slices is populated depending on Kind: Values+Missing for numeric columns,
// Labels for categorical columns (empty label = missing cell).
type Column struct {
	Name    string     `json:"name"`
	Kind    ColumnKind `json:"kind"`
	Values  []float64  `json:"values,omitempty"`
	Missing []bool     `json:"missing,omitempty"`
	Labels  []string   `json:"labels,omitempty"`
}

// NewNumericColumn builds a numeric column. missing may be nil when every
// value is observed.
func NewNumericColumn(name string, values []float64, missing []bool) Column {
	if missing == nil {
		missing = make([]bool, len(values))
	}
	return Column{Name: name, Kind: KindNumeric, Values: values, Missing: missing}
}

// NewCategoricalColumn builds a categorical column from raw labels.
func NewCategoricalColumn(name string, labels []string) Column {
	return Column{Name: name, Kind: KindCategorical, Labels: labels}
}

// Len returns the row count of the column.
func (c Column) Len() int {
	if c.Kind == KindNumeric {
		return len(c.Values)
	}
	return len(c.Labels)
}

// MissingCount returns the number of missing cells in the column.
func (c Column) MissingCount() int {
	count := 0
	switch c.Kind {
	case KindNumeric:
		for _, m := range c.Missing {
			if m {
				count++
			}
		}
	case KindCategorical:
		for _, l := range c.Labels {
			if l == "" {
				count++
			}
		}
	}
	return count
}

// Observed returns the non-missing values of a numeric column in row order.
func (c Column) Observed() []float64 {
	if c.Kind != KindNumeric {
		return nil
	}
	out := make([]float64, 0, len(c.Values))
	for i, v := range c.Values {
		if !c.Missing[i] {
			out = append(out, v)
		}
	}
	return out
}

// DistinctLabels returns the number of distinct non-missing labels of a
// categorical column.
func (c Column) DistinctLabels() int {
	seen := make(map[string]struct{})
	for _, l := range c.Labels {
		if l != "" {
			seen[l] = struct{}{}
		}
	}
	return len(seen)
}

// Dataset is an ordered collection of equal-length named columns. It is
// exclusively owned by one analyzer instance; replacement is wholesale.
type Dataset struct {
	Columns []Column `json:"columns"`
}

// New builds a Dataset and checks the shared-length invariant.
func New(columns ...Column) (*Dataset, error) {
	ds := &Dataset{Columns: columns}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// Rows returns the shared row count across columns.
func (d *Dataset) Rows() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return d.Columns[0].Len()
}

// ColumnCount returns the number of columns.
func (d *Dataset) ColumnCount() int {
	return len(d.Columns)
}

// Names returns the column names in dataset order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

// Column looks up a column by name.
func (d *Dataset) Column(name string) (Column, bool) {
	for _, c := range d.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Validate enforces the tabular invariant: every column has the same length,
// and numeric columns carry a missing mask aligned with their values.
func (d *Dataset) Validate() error {
	if len(d.Columns) == 0 {
		return core.ErrEmptyDataset
	}
	rows := d.Columns[0].Len()
	for _, c := range d.Columns {
		if c.Len() != rows {
			return core.NewColumnLengthError(c.Name, c.Len(), rows)
		}
		if c.Kind == KindNumeric && len(c.Missing) != len(c.Values) {
			return core.NewColumnLengthError(c.Name+" (missing mask)", len(c.Missing), len(c.Values))
		}
	}
	return nil
}
