// Package jd holds the job description catalog: the records loaded at
// startup, their precomputed embeddings and cosine-similarity ranking
// against a query embedding.
package jd

import (
	"context"

	"github.com/matchlabs/resumerank/pkg/kernel"
)

// Record is one row of the JD catalog
type Record struct {
	Role      kernel.JobRole
	RawText   string
	CleanText string
	Embedding kernel.Embedding
}

// Match is a ranked similarity result against the catalog
type Match struct {
	Role  kernel.JobRole
	Score float64
}

// Embedder produces index-aligned embeddings for a batch of texts
type Embedder interface {
	GenerateBatchEmbeddings(ctx context.Context, texts []string) ([]kernel.Embedding, error)
}

// Corpus is the in-memory JD catalog. Built once at startup, immutable
// afterwards; safe for concurrent reads.
type Corpus struct {
	records []Record
}

// NewCorpus wraps a set of records as an immutable corpus
func NewCorpus(records []Record) *Corpus {
	return &Corpus{records: records}
}

// Len returns the number of catalog records
func (c *Corpus) Len() int {
	return len(c.records)
}

// Records returns the ordered catalog records
func (c *Corpus) Records() []Record {
	return c.records
}
