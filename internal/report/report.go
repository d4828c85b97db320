package report

import (
	"fmt"
	"strings"
	"time"

	"datalens/domain/dataset"
	"datalens/domain/stats"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/google/uuid"
)

// Report is a rendered view of one AnalysisResult. Each report carries its
// own identifier and generation timestamp.
type Report struct {
	ID          string
	GeneratedAt time.Time
	Result      *stats.AnalysisResult
}

// New wraps an analysis result in a report envelope.
func New(result *stats.AnalysisResult) *Report {
	return &Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Result:      result,
	}
}

// Markdown renders the report as a Markdown document with one table per
// concern: numeric summaries, categorical frequencies, missing counts.
func (r *Report) Markdown() string {
	var b strings.Builder
	res := r.Result

	fmt.Fprintf(&b, "# Data Analysis Report\n\n")
	fmt.Fprintf(&b, "Report %s, generated %s\n\n", r.ID, r.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Shape: %d rows x %d columns\n\n", res.Rows, res.Cols)

	b.WriteString("## Columns\n\n")
	b.WriteString("| Column | Kind | Missing |\n|---|---|---|\n")
	for _, name := range res.ColumnOrder {
		fmt.Fprintf(&b, "| %s | %s | %d |\n", name, res.Kinds[name], res.Missing[name])
	}
	b.WriteString("\n")

	if len(res.Numeric) > 0 {
		b.WriteString("## Numeric summaries\n\n")
		b.WriteString("| Column | Count | Mean | Std | Min | Q25 | Median | Q75 | Max |\n")
		b.WriteString("|---|---|---|---|---|---|---|---|---|\n")
		for _, name := range res.ColumnOrder {
			s, ok := res.Numeric[name]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "| %s | %d | %.4f | %.4f | %.4f | %.4f | %.4f | %.4f | %.4f |\n",
				name, s.Count, s.Mean, s.StdDev, s.Min, s.Q25, s.Median, s.Q75, s.Max)
		}
		b.WriteString("\n")
	}

	if len(res.Categorical) > 0 {
		b.WriteString("## Categorical frequencies\n\n")
		for _, name := range res.ColumnOrder {
			table, ok := res.Categorical[name]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "### %s\n\n", name)
			b.WriteString("| Label | Count |\n|---|---|\n")
			for _, label := range table.SortedLabels() {
				fmt.Fprintf(&b, "| %s | %d |\n", label, table[label])
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// HTML renders the Markdown report to a standalone HTML fragment.
func (r *Report) HTML() []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(r.Markdown()), p, renderer)
}

// Summary returns the one-line console summary printed by the CLI.
func (r *Report) Summary() string {
	res := r.Result
	numericCols := 0
	for _, k := range res.Kinds {
		if k == dataset.KindNumeric {
			numericCols++
		}
	}
	return fmt.Sprintf("%d rows, %d columns (%d numeric, %d categorical), %d missing cells",
		res.Rows, res.Cols, numericCols, res.Cols-numericCols, res.TotalMissing())
}
