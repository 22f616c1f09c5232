package prediction

import (
	"context"

	"github.com/matchlabs/resumerank/pkg/kernel"
)

// Repository persists predictions and their similarity rows
type Repository interface {
	// Save inserts the prediction and all of its similarity rows in a
	// single transaction and returns the generated identifier. No partial
	// writes survive a failure.
	Save(ctx context.Context, p *Prediction) (kernel.ResumeID, error)

	// GetByID loads a stored prediction with its similarity rows
	GetByID(ctx context.Context, id kernel.ResumeID) (*Prediction, error)

	// Delete removes a stored prediction; similarity rows go with it
	Delete(ctx context.Context, id kernel.ResumeID) error
}

// Embedder maps text to a fixed-length embedding vector
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) (kernel.Embedding, error)
}

// Classifier maps an embedding to the arg-max category label and its
// calibrated probability
type Classifier interface {
	Predict(vec kernel.Embedding) (kernel.CategoryLabel, float64, error)
}

// Cache is a best-effort read-through cache for stored predictions.
// Implementations log failures and report them as misses.
type Cache interface {
	Get(ctx context.Context, id kernel.ResumeID) (*Prediction, bool)
	Set(ctx context.Context, p *Prediction)
	Delete(ctx context.Context, id kernel.ResumeID)
}
