package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"datalens/adapters/synthetic"
	"datalens/domain/core"
	"datalens/domain/dataset"
	"datalens/ports"
)

func TestAnalyze_BeforeLoadIsStateError(t *testing.T) {
	analyzer := NewDefaultAnalyzer()

	_, err := analyzer.Analyze()
	if !errors.Is(err, core.ErrNoDataset) {
		t.Fatalf("expected ErrNoDataset, got %v", err)
	}
	if !core.IsStateError(err) {
		t.Fatal("expected the error to classify as a state error")
	}
}

func TestCreateVisualizations_BeforeLoadIsStateError(t *testing.T) {
	analyzer := NewDefaultAnalyzer()

	err := analyzer.CreateVisualizations(t.TempDir(), ports.RenderOptions{})
	if !errors.Is(err, core.ErrNoDataset) {
		t.Fatalf("expected ErrNoDataset, got %v", err)
	}
}

func TestLoadData_MissingFileFallsBackToSample(t *testing.T) {
	analyzer := NewDefaultAnalyzer()

	ds, err := analyzer.LoadData(filepath.Join(t.TempDir(), "does_not_exist.csv"))
	if err != nil {
		t.Fatalf("missing file must not surface an error, got %v", err)
	}
	if ds.Rows() != synthetic.SampleRows {
		t.Errorf("fallback rows = %d, want %d", ds.Rows(), synthetic.SampleRows)
	}
	if analyzer.Dataset() != ds {
		t.Error("loaded dataset must become the analyzer's current dataset")
	}
}

func TestLoadData_EmptyPathFallsBackToSample(t *testing.T) {
	analyzer := NewDefaultAnalyzer()

	ds, err := analyzer.LoadData("")
	if err != nil {
		t.Fatalf("empty path must not surface an error, got %v", err)
	}
	if ds.ColumnCount() != 5 {
		t.Errorf("fallback columns = %d, want 5", ds.ColumnCount())
	}
}

func TestLoadData_MalformedFileSurfacesError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2\n3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	analyzer := NewDefaultAnalyzer()
	_, err := analyzer.LoadData(path)
	if err == nil {
		t.Fatal("expected an error for a ragged CSV")
	}
	if !core.IsMalformedInput(err) {
		t.Fatalf("expected malformed-input error, got %v", err)
	}
}

func TestPipeline_LoadAnalyzeVisualize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	csv := "id,category,score\n1,a,10\n2,b,20\n3,a,30\n4,b,40\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	analyzer := NewDefaultAnalyzer()
	ds, err := analyzer.LoadData(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if ds.Rows() != 4 || ds.ColumnCount() != 3 {
		t.Fatalf("shape = %dx%d, want 4x3", ds.Rows(), ds.ColumnCount())
	}

	result, err := analyzer.Analyze()
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if result.Numeric["score"].Mean != 25 {
		t.Errorf("score mean = %f, want 25", result.Numeric["score"].Mean)
	}
	if result.Categorical["category"]["a"] != 2 {
		t.Errorf("category a count = %d, want 2", result.Categorical["category"]["a"])
	}

	outDir := filepath.Join(t.TempDir(), "plots")
	if err := analyzer.CreateVisualizations(outDir, ports.RenderOptions{DPI: 72}); err != nil {
		t.Fatalf("visualize failed: %v", err)
	}

	for _, name := range []string{"id_histogram.png", "score_histogram.png", "category_barchart.png"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("expected chart %s: %v", name, err)
		}
	}
}

func TestSetDataset_WholesaleReplacement(t *testing.T) {
	analyzer := NewDefaultAnalyzer()

	ds := &dataset.Dataset{Columns: []dataset.Column{
		dataset.NewNumericColumn("value", []float64{1, 2, 3, 4}, nil),
	}}
	if err := analyzer.SetDataset(ds); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := analyzer.Analyze()
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if result.Numeric["value"].Mean != 2.5 {
		t.Errorf("mean = %f, want 2.5", result.Numeric["value"].Mean)
	}

	bad := &dataset.Dataset{Columns: []dataset.Column{
		dataset.NewNumericColumn("a", []float64{1}, nil),
		dataset.NewNumericColumn("b", []float64{1, 2}, nil),
	}}
	if err := analyzer.SetDataset(bad); !errors.Is(err, core.ErrColumnLengthMismatch) {
		t.Fatalf("expected invariant violation, got %v", err)
	}
}
