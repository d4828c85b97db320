package app

import (
	"os"

	"datalens/adapters/charts"
	"datalens/adapters/csvfile"
	"datalens/adapters/descriptive"
	"datalens/adapters/synthetic"
	"datalens/domain/core"
	"datalens/domain/dataset"
	"datalens/domain/stats"
	"datalens/internal"
	"datalens/ports"
)

// Analyzer owns one in-memory Dataset and exposes the three pipeline
// operations: LoadData, Analyze, CreateVisualizations. A single instance is
// not safe for concurrent use; callers needing parallelism use independent
// instances.
type Analyzer struct {
	reader   ports.TableReader
	sample   ports.SampleSource
	engine   ports.Describer
	renderer ports.ChartRenderer
	log      *internal.Logger

	data *dataset.Dataset
}

// NewAnalyzer wires an analyzer from explicit ports.
func NewAnalyzer(reader ports.TableReader, sample ports.SampleSource, engine ports.Describer, renderer ports.ChartRenderer) *Analyzer {
	return &Analyzer{
		reader:   reader,
		sample:   sample,
		engine:   engine,
		renderer: renderer,
		log:      internal.DefaultLogger,
	}
}

// NewDefaultAnalyzer wires the production adapters: CSV reader, seeded
// sample generator, descriptive engine, PNG chart renderer.
func NewDefaultAnalyzer() *Analyzer {
	return NewAnalyzer(
		csvfile.NewReader(),
		synthetic.NewGenerator(),
		descriptive.NewEngine(),
		charts.NewRenderer(),
	)
}

// LoadData loads the CSV at path into the analyzer. A missing file (or empty
// path) is a soft condition: the deterministic sample dataset is generated
// instead and never surfaces as an error. A present but malformed file does
// surface its parse error.
func (a *Analyzer) LoadData(path string) (*dataset.Dataset, error) {
	if path == "" {
		a.log.Warn("no data path configured, generating sample data")
		a.data = a.sample.Generate()
		return a.data, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		a.log.Warn("data file %s not found, generating sample data", path)
		a.data = a.sample.Generate()
		return a.data, nil
	}

	ds, err := a.reader.Read(path)
	if err != nil {
		return nil, err
	}
	a.data = ds
	return a.data, nil
}

// Dataset returns the currently loaded dataset, or nil before LoadData.
func (a *Analyzer) Dataset() *dataset.Dataset {
	return a.data
}

// SetDataset replaces the current dataset wholesale (configuration
// override). The dataset must satisfy the tabular invariant.
func (a *Analyzer) SetDataset(ds *dataset.Dataset) error {
	if ds != nil {
		if err := ds.Validate(); err != nil {
			return err
		}
	}
	a.data = ds
	return nil
}

// Analyze computes descriptive statistics over the loaded dataset. Calling
// it before LoadData fails with the no-dataset state error.
func (a *Analyzer) Analyze() (*stats.AnalysisResult, error) {
	if a.data == nil {
		return nil, core.ErrNoDataset
	}
	return a.engine.Describe(a.data)
}

// CreateVisualizations renders one chart per column into saveDir, creating
// it if absent. Calling it before LoadData fails with the no-dataset state
// error; an unwritable saveDir surfaces an output I/O error.
func (a *Analyzer) CreateVisualizations(saveDir string, opts ports.RenderOptions) error {
	if a.data == nil {
		return core.ErrNoDataset
	}
	written, err := a.renderer.Render(a.data, saveDir, opts)
	if err != nil {
		return err
	}
	a.log.Info("visualizations saved to %s (%d files)", saveDir, len(written))
	return nil
}
