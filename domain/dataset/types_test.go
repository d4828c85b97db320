package dataset

import (
	"errors"
	"testing"

	"datalens/domain/core"
)

func TestDataset_Validate(t *testing.T) {
	tests := []struct {
		name    string
		columns []Column
		wantErr error
	}{
		{
			name: "valid mixed columns",
			columns: []Column{
				NewNumericColumn("value", []float64{1, 2, 3}, nil),
				NewCategoricalColumn("category", []string{"a", "b", "a"}),
			},
			wantErr: nil,
		},
		{
			name:    "no columns",
			columns: nil,
			wantErr: core.ErrEmptyDataset,
		},
		{
			name: "length mismatch",
			columns: []Column{
				NewNumericColumn("value", []float64{1, 2, 3}, nil),
				NewCategoricalColumn("category", []string{"a", "b"}),
			},
			wantErr: core.ErrColumnLengthMismatch,
		},
		{
			name: "missing mask mismatch",
			columns: []Column{
				{Name: "value", Kind: KindNumeric, Values: []float64{1, 2}, Missing: []bool{false}},
			},
			wantErr: core.ErrColumnLengthMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := &Dataset{Columns: tt.columns}
			err := ds.Validate()

			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestColumn_MissingCount(t *testing.T) {
	numeric := NewNumericColumn("value", []float64{1, 0, 3}, []bool{false, true, false})
	if got := numeric.MissingCount(); got != 1 {
		t.Errorf("numeric missing count = %d, want 1", got)
	}

	categorical := NewCategoricalColumn("category", []string{"a", "", "b", ""})
	if got := categorical.MissingCount(); got != 2 {
		t.Errorf("categorical missing count = %d, want 2", got)
	}
}

func TestColumn_Observed(t *testing.T) {
	col := NewNumericColumn("value", []float64{1, 99, 3}, []bool{false, true, false})

	observed := col.Observed()
	if len(observed) != 2 {
		t.Fatalf("expected 2 observed values, got %d", len(observed))
	}
	if observed[0] != 1 || observed[1] != 3 {
		t.Errorf("observed = %v, want [1 3]", observed)
	}
}

func TestColumn_DistinctLabels(t *testing.T) {
	col := NewCategoricalColumn("category", []string{"a", "b", "a", "", "c"})
	if got := col.DistinctLabels(); got != 3 {
		t.Errorf("distinct labels = %d, want 3", got)
	}
}

func TestDataset_Shape(t *testing.T) {
	ds, err := New(
		NewNumericColumn("id", []float64{1, 2}, nil),
		NewCategoricalColumn("category", []string{"a", "b"}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ds.Rows() != 2 {
		t.Errorf("rows = %d, want 2", ds.Rows())
	}
	if ds.ColumnCount() != 2 {
		t.Errorf("columns = %d, want 2", ds.ColumnCount())
	}

	col, ok := ds.Column("category")
	if !ok {
		t.Fatal("expected to find column category")
	}
	if col.Kind != KindCategorical {
		t.Errorf("kind = %s, want categorical", col.Kind)
	}

	if _, ok := ds.Column("nope"); ok {
		t.Error("expected lookup miss for unknown column")
	}
}
