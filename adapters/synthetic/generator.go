package synthetic

import (
	randv2 "math/rand/v2"
	"time"

	"datalens/domain/dataset"
	"datalens/internal"

	"gonum.org/v1/gonum/stat/distuv"
)

// Fixed sample schema: 1000 rows of id / category / value / recorded_at /
// active. The generator is deterministic across calls and processes.
const (
	SampleRows = 1000
	sampleSeed = 42
)

var sampleCategories = []string{"A", "B", "C", "D"}

// Generator synthesizes the fallback dataset used when no input file exists.
type Generator struct {
	rows int
	log  *internal.Logger
}

// NewGenerator creates a sample-data generator with the documented schema.
func NewGenerator() *Generator {
	return &Generator{rows: SampleRows, log: internal.DefaultLogger}
}

// Generate builds the sample dataset:
//   - id: numeric, 1..n
//   - category: categorical, uniform over {A, B, C, D}
//   - value: numeric, Normal(100, 25)
//   - recorded_at: categorical, daily ISO dates from 2023-01-01
//   - active: categorical {true, false}, P(true) = 0.7
func (g *Generator) Generate() *dataset.Dataset {
	src := randv2.NewPCG(sampleSeed, sampleSeed)
	rng := randv2.New(src)
	normal := distuv.Normal{Mu: 100, Sigma: 25, Src: src}

	ids := make([]float64, g.rows)
	categories := make([]string, g.rows)
	values := make([]float64, g.rows)
	dates := make([]string, g.rows)
	active := make([]string, g.rows)

	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < g.rows; i++ {
		ids[i] = float64(i + 1)
		categories[i] = sampleCategories[rng.IntN(len(sampleCategories))]
		values[i] = normal.Rand()
		dates[i] = start.AddDate(0, 0, i).Format("2006-01-02")
		if rng.Float64() < 0.7 {
			active[i] = "true"
		} else {
			active[i] = "false"
		}
	}

	ds := &dataset.Dataset{Columns: []dataset.Column{
		dataset.NewNumericColumn("id", ids, nil),
		dataset.NewCategoricalColumn("category", categories),
		dataset.NewNumericColumn("value", values, nil),
		dataset.NewCategoricalColumn("recorded_at", dates),
		dataset.NewCategoricalColumn("active", active),
	}}

	g.log.Info("generated sample dataset (%d columns, %d rows)", ds.ColumnCount(), ds.Rows())
	return ds
}
