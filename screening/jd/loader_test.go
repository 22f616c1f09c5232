package jd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/matchlabs/resumerank/pkg/kernel"
)

// fakeEmbedder returns a distinct vector per input so tests can verify
// record/embedding alignment.
type fakeEmbedder struct {
	calls [][]string
}

func (f *fakeEmbedder) GenerateBatchEmbeddings(ctx context.Context, texts []string) ([]kernel.Embedding, error) {
	f.calls = append(f.calls, texts)
	vectors := make([]kernel.Embedding, len(texts))
	for i := range texts {
		vectors[i] = kernel.Embedding{float32(i), 1}
	}
	return vectors, nil
}

type failingEmbedder struct{}

func (failingEmbedder) GenerateBatchEmbeddings(ctx context.Context, texts []string) ([]kernel.Embedding, error) {
	return nil, fmt.Errorf("provider unavailable")
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job_descriptions.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}
	return path
}

func TestLoadCorpus(t *testing.T) {
	catalog := "Role,JD_Text\n" +
		"Engineer,Build distributed systems in Go!\n" +
		"Analyst,Analyze data with SQL.\n"

	embedder := &fakeEmbedder{}
	corpus, err := LoadCorpus(context.Background(), writeCatalog(t, catalog), embedder)
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}

	if corpus.Len() != 2 {
		t.Fatalf("corpus has %d records, want 2", corpus.Len())
	}

	records := corpus.Records()
	if records[0].Role != "Engineer" || records[1].Role != "Analyst" {
		t.Errorf("unexpected roles: %s, %s", records[0].Role, records[1].Role)
	}
	if records[0].CleanText != "build distributed systems in go" {
		t.Errorf("CleanText = %q", records[0].CleanText)
	}
	// embeddings must stay index-aligned with records
	if records[0].Embedding[0] != 0 || records[1].Embedding[0] != 1 {
		t.Errorf("embeddings misaligned: %v / %v", records[0].Embedding, records[1].Embedding)
	}
	if len(embedder.calls) != 1 {
		t.Errorf("expected a single batch call, got %d", len(embedder.calls))
	}
}

func TestLoadCorpusDropsIncompleteRows(t *testing.T) {
	catalog := "Role,JD_Text\n" +
		"Engineer,Build systems\n" +
		",Orphan description\n" +
		"Ghost,\n" +
		"Analyst,Analyze data\n"

	corpus, err := LoadCorpus(context.Background(), writeCatalog(t, catalog), &fakeEmbedder{})
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}

	if corpus.Len() != 2 {
		t.Errorf("corpus has %d records, want 2", corpus.Len())
	}
}

func TestLoadCorpusDropsRowsEmptyAfterCleaning(t *testing.T) {
	catalog := "Role,JD_Text\n" +
		"Engineer,Build systems\n" +
		"Punct,\"!!! ... ???\"\n"

	corpus, err := LoadCorpus(context.Background(), writeCatalog(t, catalog), &fakeEmbedder{})
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}

	if corpus.Len() != 1 {
		t.Errorf("corpus has %d records, want 1", corpus.Len())
	}
}

func TestLoadCorpusMissingColumns(t *testing.T) {
	tests := []struct {
		name    string
		catalog string
	}{
		{"missing Role", "Title,JD_Text\nEngineer,Build systems\n"},
		{"missing JD_Text", "Role,Description\nEngineer,Build systems\n"},
		{"missing both", "a,b\nc,d\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCorpus(context.Background(), writeCatalog(t, tt.catalog), &fakeEmbedder{})
			if err == nil {
				t.Error("expected LoadCorpus to fail")
			}
		})
	}
}

func TestLoadCorpusEmptyCatalog(t *testing.T) {
	_, err := LoadCorpus(context.Background(), writeCatalog(t, "Role,JD_Text\n"), &fakeEmbedder{})
	if err == nil {
		t.Error("expected error for catalog with no rows")
	}
}

func TestLoadCorpusMissingFile(t *testing.T) {
	_, err := LoadCorpus(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), &fakeEmbedder{})
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadCorpusEmbedderFailureIsFatal(t *testing.T) {
	catalog := "Role,JD_Text\nEngineer,Build systems\n"
	_, err := LoadCorpus(context.Background(), writeCatalog(t, catalog), failingEmbedder{})
	if err == nil {
		t.Error("expected embedder failure to propagate")
	}
}
