package embeddings

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/matchlabs/resumerank/pkg/kernel"
)

// Generator produces dense vector embeddings for text via the OpenAI API.
// For a fixed model the output is deterministic in dimensionality; the same
// text always maps to a vector of the same length.
type Generator struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

// NewGenerator creates an embeddings generator using text-embedding-3-small
func NewGenerator(apiKey string) *Generator {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &Generator{
		client: &client,
		model:  openai.EmbeddingModelTextEmbedding3Small,
	}
}

// GenerateEmbedding creates an embedding vector for a single text
func (g *Generator) GenerateEmbedding(ctx context.Context, text string) (kernel.Embedding, error) {
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	vectors, err := g.GenerateBatchEmbeddings(ctx, []string{text})
	if err != nil {
		return nil, err
	}

	return vectors[0], nil
}

// GenerateBatchEmbeddings creates one embedding per input text. The result is
// index-aligned with texts; empty inputs are rejected rather than skipped so
// callers never receive a misaligned batch.
func (g *Generator) GenerateBatchEmbeddings(ctx context.Context, texts []string) ([]kernel.Embedding, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no texts provided")
	}
	for i, text := range texts {
		if text == "" {
			return nil, fmt.Errorf("text at index %d is empty", i)
		}
	}

	resp, err := g.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: texts,
		},
		Model: g.model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embeddings: %w", err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data))
	}

	vectors := make([]kernel.Embedding, len(resp.Data))
	for i, data := range resp.Data {
		vec := make(kernel.Embedding, len(data.Embedding))
		for j, v := range data.Embedding {
			vec[j] = float32(v)
		}
		vectors[i] = vec
	}

	return vectors, nil
}
