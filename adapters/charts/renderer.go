package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"datalens/domain/core"
	"datalens/domain/dataset"
	domstats "datalens/domain/stats"
	"datalens/internal"
	apperrors "datalens/internal/errors"
	"datalens/ports"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Renderer defaults, applied when RenderOptions fields are zero.
const (
	DefaultDPI           = 300
	DefaultMaxCategories = 100
	histogramBins        = 30

	chartWidth  = 6 * vg.Inch
	chartHeight = 4 * vg.Inch
)

// Renderer writes one PNG per column: a histogram for numeric columns, a bar
// chart of frequency counts for categorical columns. File names derive from
// the column name only, so repeated renders overwrite prior output.
type Renderer struct {
	log *internal.Logger
}

// NewRenderer creates a chart renderer.
func NewRenderer() *Renderer {
	return &Renderer{log: internal.DefaultLogger}
}

// Render draws every column of ds into dir, creating the directory if
// absent, and returns the written file paths in column order.
func (r *Renderer) Render(ds *dataset.Dataset, dir string, opts ports.RenderOptions) ([]string, error) {
	if ds == nil || len(ds.Columns) == 0 {
		return nil, core.ErrNoDataset
	}
	opts = normalize(opts)
	theme := themeFor(opts.Style)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperrors.OutputIO("failed to create chart directory", err)
	}

	var written []string
	for _, col := range ds.Columns {
		switch col.Kind {
		case dataset.KindNumeric:
			observed := col.Observed()
			if len(observed) == 0 {
				r.log.Warn("column %s has no observed values, skipping histogram", col.Name)
				continue
			}
			path := filepath.Join(dir, chartFileName(col.Name, "histogram"))
			if err := r.renderHistogram(col.Name, observed, theme, opts.DPI, path); err != nil {
				return written, err
			}
			written = append(written, path)

		case dataset.KindCategorical:
			if distinct := col.DistinctLabels(); distinct == 0 || distinct > opts.MaxCategories {
				r.log.Warn("column %s has %d distinct labels, skipping bar chart", col.Name, col.DistinctLabels())
				continue
			}
			path := filepath.Join(dir, chartFileName(col.Name, "barchart"))
			if err := r.renderBarChart(col.Name, col.Labels, theme, opts.DPI, path); err != nil {
				return written, err
			}
			written = append(written, path)
		}
	}

	r.log.Info("rendered %d charts into %s (style=%s dpi=%d)", len(written), dir, theme.Name, opts.DPI)
	return written, nil
}

func (r *Renderer) renderHistogram(column string, observed []float64, theme Theme, dpi int, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Distribution of %s", column)
	p.X.Label.Text = column
	p.Y.Label.Text = "Frequency"
	p.BackgroundColor = theme.Background

	hist, err := plotter.NewHist(plotter.Values(observed), histogramBins)
	if err != nil {
		return apperrors.Wrapf(err, "failed to build histogram for column %s", column)
	}
	hist.FillColor = theme.Fill

	if theme.Grid {
		p.Add(plotter.NewGrid())
	}
	p.Add(hist)

	return savePNG(p, path, dpi)
}

func (r *Renderer) renderBarChart(column string, labels []string, theme Theme, dpi int, path string) error {
	table := make(domstats.FrequencyTable)
	for _, l := range labels {
		if l != "" {
			table[l]++
		}
	}

	// Sorted labels keep tick order deterministic across renders.
	sorted := table.SortedLabels()
	counts := make(plotter.Values, len(sorted))
	for i, l := range sorted {
		counts[i] = float64(table[l])
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Count of %s", column)
	p.X.Label.Text = column
	p.Y.Label.Text = "Count"
	p.BackgroundColor = theme.Background

	bars, err := plotter.NewBarChart(counts, vg.Points(20))
	if err != nil {
		return apperrors.Wrapf(err, "failed to build bar chart for column %s", column)
	}
	bars.Color = theme.Fill

	if theme.Grid {
		p.Add(plotter.NewGrid())
	}
	p.Add(bars)
	p.NominalX(sorted...)

	return savePNG(p, path, dpi)
}

// savePNG rasterizes the plot at the requested resolution and writes it to
// path, overwriting any previous file.
func savePNG(p *plot.Plot, path string, dpi int) error {
	canvas := vgimg.NewWith(
		vgimg.UseWH(chartWidth, chartHeight),
		vgimg.UseDPI(dpi),
	)
	p.Draw(draw.New(canvas))

	file, err := os.Create(path)
	if err != nil {
		return apperrors.OutputIO("failed to create chart file", err)
	}
	defer file.Close()

	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(file); err != nil {
		return apperrors.OutputIO("failed to write chart file", err)
	}
	return nil
}

// chartFileName builds the deterministic output name for a column chart.
func chartFileName(column, suffix string) string {
	s := strings.ToLower(strings.TrimSpace(column))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String() + "_" + suffix + ".png"
}

func normalize(opts ports.RenderOptions) ports.RenderOptions {
	if opts.Style == "" {
		opts.Style = "default"
	}
	if opts.DPI <= 0 {
		opts.DPI = DefaultDPI
	}
	if opts.MaxCategories <= 0 {
		opts.MaxCategories = DefaultMaxCategories
	}
	return opts
}
