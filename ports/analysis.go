package ports

import (
	"datalens/domain/dataset"
	"datalens/domain/stats"
)

// Describer computes descriptive statistics over a dataset.
type Describer interface {
	Describe(ds *dataset.Dataset) (*stats.AnalysisResult, error)
}

// RenderOptions configures chart output. Zero values fall back to renderer
// defaults (style "default", 300 DPI, 100-category cap).
type RenderOptions struct {
	Style         string
	DPI           int
	MaxCategories int
}

// ChartRenderer writes one chart image per column into dir and returns the
// paths written. File names are deterministic per column, so re-rendering
// overwrites prior output.
type ChartRenderer interface {
	Render(ds *dataset.Dataset, dir string, opts RenderOptions) ([]string, error)
}
