package ports

import (
	"datalens/domain/dataset"
)

// TableReader parses a tabular file into a Dataset.
type TableReader interface {
	Read(path string) (*dataset.Dataset, error)
}

// TableWriter serializes a Dataset back to a tabular file.
type TableWriter interface {
	Write(path string, ds *dataset.Dataset) error
}

// SampleSource produces the deterministic fallback dataset used when no
// input file is available.
type SampleSource interface {
	Generate() *dataset.Dataset
}
