package classifier

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/matchlabs/resumerank/pkg/kernel"
)

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "classifier.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing artifact: %v", err)
	}
	return path
}

const validArtifact = `{
	"model": "calibrated-logreg-v1",
	"dim": 2,
	"labels": ["Engineer", "Analyst"],
	"coefficients": [[2.0, 0.0], [0.0, 2.0]],
	"intercepts": [0.0, 0.0],
	"temperature": 1.0
}`

func TestLoadValid(t *testing.T) {
	m, err := Load(writeArtifact(t, validArtifact))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Dim() != 2 {
		t.Errorf("Dim() = %d, want 2", m.Dim())
	}
	if len(m.Labels()) != 2 || m.Labels()[0] != "Engineer" {
		t.Errorf("unexpected labels: %v", m.Labels())
	}
	if m.Name() != "calibrated-logreg-v1" {
		t.Errorf("Name() = %q", m.Name())
	}
}

func TestLoadRejectsMalformedArtifacts(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "nope"},
		{"no labels", `{"dim": 2, "labels": [], "coefficients": [], "intercepts": []}`},
		{
			"coefficient row count mismatch",
			`{"dim": 2, "labels": ["A", "B"], "coefficients": [[1.0, 0.0]], "intercepts": [0.0, 0.0]}`,
		},
		{
			"intercept count mismatch",
			`{"dim": 2, "labels": ["A", "B"], "coefficients": [[1.0, 0.0], [0.0, 1.0]], "intercepts": [0.0]}`,
		},
		{
			"coefficient dim mismatch",
			`{"dim": 3, "labels": ["A", "B"], "coefficients": [[1.0, 0.0], [0.0, 1.0]], "intercepts": [0.0, 0.0]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeArtifact(t, tt.content)); err == nil {
				t.Error("expected Load to fail")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPredictProba(t *testing.T) {
	m, err := Load(writeArtifact(t, validArtifact))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	probs, err := m.PredictProba(kernel.Embedding{1, 0})
	if err != nil {
		t.Fatalf("PredictProba: %v", err)
	}

	var sum float64
	for c, p := range probs {
		if p < 0 || p > 1 {
			t.Errorf("prob[%d] = %f outside [0,1]", c, p)
		}
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("probabilities sum to %f, want 1", sum)
	}
	if probs[0] <= probs[1] {
		t.Errorf("expected Engineer to dominate for [1,0], got %v", probs)
	}
}

func TestPredict(t *testing.T) {
	m, err := Load(writeArtifact(t, validArtifact))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	label, confidence, err := m.Predict(kernel.Embedding{0, 1})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if label != "Analyst" {
		t.Errorf("label = %q, want Analyst", label)
	}

	probs, _ := m.PredictProba(kernel.Embedding{0, 1})
	maxProb := probs[0]
	for _, p := range probs {
		if p > maxProb {
			maxProb = p
		}
	}
	if confidence != maxProb {
		t.Errorf("confidence %f != max probability %f", confidence, maxProb)
	}
}

func TestPredictDimMismatch(t *testing.T) {
	m, err := Load(writeArtifact(t, validArtifact))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, _, err := m.Predict(kernel.Embedding{1, 2, 3}); err == nil {
		t.Error("expected dim mismatch error")
	}
}

func TestTemperatureFlattensDistribution(t *testing.T) {
	hot := `{
		"dim": 2,
		"labels": ["A", "B"],
		"coefficients": [[2.0, 0.0], [0.0, 2.0]],
		"intercepts": [0.0, 0.0],
		"temperature": 100.0
	}`

	m, err := Load(writeArtifact(t, hot))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	probs, err := m.PredictProba(kernel.Embedding{1, 0})
	if err != nil {
		t.Fatalf("PredictProba: %v", err)
	}
	if math.Abs(probs[0]-probs[1]) > 0.05 {
		t.Errorf("high temperature should flatten the distribution, got %v", probs)
	}
}
