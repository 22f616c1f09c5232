package jd

import (
	"math"
	"sort"

	"github.com/matchlabs/resumerank/pkg/kernel"
)

// Rank scores every catalog record against query by cosine similarity and
// returns the top k matches in descending score order. Ties keep catalog
// order. k below zero is treated as zero; k beyond the catalog size returns
// the whole catalog.
func (c *Corpus) Rank(query kernel.Embedding, k int) []Match {
	if k < 0 {
		k = 0
	}
	if k > len(c.records) {
		k = len(c.records)
	}
	if k == 0 {
		return []Match{}
	}

	matches := make([]Match, len(c.records))
	for i, rec := range c.records {
		matches[i] = Match{
			Role:  rec.Role,
			Score: cosineSimilarity(query, rec.Embedding),
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches[:k]
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched lengths and zero vectors score 0.
func cosineSimilarity(a, b kernel.Embedding) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
