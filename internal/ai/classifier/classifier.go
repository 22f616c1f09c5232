// Package classifier predicts a job category from a resume embedding using a
// pretrained linear model artifact. The artifact is produced offline by the
// training pipeline; this package only loads and evaluates it.
package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/matchlabs/resumerank/pkg/kernel"
)

// artifact is the on-disk model format
type artifact struct {
	Model        string      `json:"model"`
	Dim          int         `json:"dim"`
	Labels       []string    `json:"labels"`
	Coefficients [][]float64 `json:"coefficients"`
	Intercepts   []float64   `json:"intercepts"`
	Temperature  float64     `json:"temperature"`
}

// Model is a calibrated probabilistic classifier over embedding vectors.
// Immutable after load; safe for concurrent use.
type Model struct {
	name        string
	dim         int
	labels      []kernel.CategoryLabel
	weights     [][]float64
	intercepts  []float64
	temperature float64
}

// Load reads a classifier artifact from path and validates its shape
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read classifier artifact: %w", err)
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to parse classifier artifact: %w", err)
	}

	if len(a.Labels) == 0 {
		return nil, fmt.Errorf("classifier artifact has no labels")
	}
	if len(a.Coefficients) != len(a.Labels) {
		return nil, fmt.Errorf("classifier artifact has %d coefficient rows for %d labels",
			len(a.Coefficients), len(a.Labels))
	}
	if len(a.Intercepts) != len(a.Labels) {
		return nil, fmt.Errorf("classifier artifact has %d intercepts for %d labels",
			len(a.Intercepts), len(a.Labels))
	}
	for i, row := range a.Coefficients {
		if len(row) != a.Dim {
			return nil, fmt.Errorf("coefficient row %d has dim %d, artifact declares %d",
				i, len(row), a.Dim)
		}
	}
	if a.Temperature <= 0 {
		a.Temperature = 1
	}

	labels := make([]kernel.CategoryLabel, len(a.Labels))
	for i, l := range a.Labels {
		labels[i] = kernel.CategoryLabel(l)
	}

	return &Model{
		name:        a.Model,
		dim:         a.Dim,
		labels:      labels,
		weights:     a.Coefficients,
		intercepts:  a.Intercepts,
		temperature: a.Temperature,
	}, nil
}

// Name returns the artifact's model name
func (m *Model) Name() string { return m.name }

// Dim returns the embedding dimensionality the model expects
func (m *Model) Dim() int { return m.dim }

// Labels returns the label table in encoder order
func (m *Model) Labels() []kernel.CategoryLabel { return m.labels }

// PredictProba returns the calibrated probability distribution over labels
// for a single embedding. Probabilities sum to 1.
func (m *Model) PredictProba(vec kernel.Embedding) ([]float64, error) {
	if vec.Dim() != m.dim {
		return nil, fmt.Errorf("embedding dim %d does not match model dim %d", vec.Dim(), m.dim)
	}

	scores := make([]float64, len(m.labels))
	for c, row := range m.weights {
		s := m.intercepts[c]
		for j, w := range row {
			s += w * float64(vec[j])
		}
		scores[c] = s / m.temperature
	}

	// softmax with max subtraction for numeric stability
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}
	var sum float64
	probs := make([]float64, len(scores))
	for c, s := range scores {
		p := math.Exp(s - maxScore)
		probs[c] = p
		sum += p
	}
	for c := range probs {
		probs[c] /= sum
	}

	return probs, nil
}

// Predict returns the arg-max label and its probability mass
func (m *Model) Predict(vec kernel.Embedding) (kernel.CategoryLabel, float64, error) {
	probs, err := m.PredictProba(vec)
	if err != nil {
		return "", 0, err
	}

	best := 0
	for c, p := range probs {
		if p > probs[best] {
			best = c
		}
	}

	return m.labels[best], probs[best], nil
}
