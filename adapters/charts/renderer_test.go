package charts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"datalens/domain/core"
	"datalens/domain/dataset"
	"datalens/ports"
)

func testDataset() *dataset.Dataset {
	return &dataset.Dataset{Columns: []dataset.Column{
		dataset.NewNumericColumn("score", []float64{1, 2, 2, 3, 3, 3, 4, 5}, nil),
		dataset.NewCategoricalColumn("region", []string{"north", "south", "north", "east", "north", "south", "east", "north"}),
	}}
}

func TestRender_WritesOneChartPerColumn(t *testing.T) {
	dir := t.TempDir()

	written, err := NewRenderer().Render(testDataset(), dir, ports.RenderOptions{DPI: 72})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		filepath.Join(dir, "score_histogram.png"),
		filepath.Join(dir, "region_barchart.png"),
	}
	if len(written) != len(want) {
		t.Fatalf("wrote %d charts, want %d: %v", len(written), len(want), written)
	}
	for i, path := range want {
		if written[i] != path {
			t.Errorf("written[%d] = %s, want %s", i, written[i], path)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("chart %s not written: %v", path, err)
		}
		if info.Size() == 0 {
			t.Errorf("chart %s is empty", path)
		}
	}
}

func TestRender_IdempotentNaming(t *testing.T) {
	dir := t.TempDir()
	renderer := NewRenderer()
	ds := testDataset()
	opts := ports.RenderOptions{DPI: 72}

	if _, err := renderer.Render(ds, dir, opts); err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	if _, err := renderer.Render(ds, dir, opts); err != nil {
		t.Fatalf("second render failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to list %s: %v", dir, err)
	}
	if len(entries) != 2 {
		t.Errorf("directory holds %d files after two renders, want 2 (overwrite, not duplicate)", len(entries))
	}
}

func TestRender_CreatesSaveDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "plots")

	if _, err := NewRenderer().Render(testDataset(), dir, ports.RenderOptions{DPI: 72}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("save dir not created: %v", err)
	}
}

func TestRender_SkipsHighCardinalityCategorical(t *testing.T) {
	ds := &dataset.Dataset{Columns: []dataset.Column{
		dataset.NewCategoricalColumn("label", []string{"a", "b", "c"}),
	}}
	dir := t.TempDir()

	written, err := NewRenderer().Render(ds, dir, ports.RenderOptions{DPI: 72, MaxCategories: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(written) != 0 {
		t.Errorf("expected column above the category cap to be skipped, wrote %v", written)
	}
}

func TestRender_NoDataset(t *testing.T) {
	_, err := NewRenderer().Render(nil, t.TempDir(), ports.RenderOptions{})
	if !errors.Is(err, core.ErrNoDataset) {
		t.Fatalf("expected ErrNoDataset, got %v", err)
	}
}

func TestChartFileName(t *testing.T) {
	tests := []struct {
		column string
		suffix string
		want   string
	}{
		{"value", "histogram", "value_histogram.png"},
		{"Total Sales", "barchart", "total_sales_barchart.png"},
		{"a/b", "histogram", "a_b_histogram.png"},
	}

	for _, tt := range tests {
		if got := chartFileName(tt.column, tt.suffix); got != tt.want {
			t.Errorf("chartFileName(%q, %q) = %q, want %q", tt.column, tt.suffix, got, tt.want)
		}
	}
}

func TestThemeFor_UnknownFallsBack(t *testing.T) {
	if got := themeFor("does-not-exist"); got.Name != "default" {
		t.Errorf("unknown style resolved to %s, want default", got.Name)
	}
	if got := themeFor("darkgrid"); got.Name != "darkgrid" {
		t.Errorf("darkgrid style resolved to %s", got.Name)
	}
}
