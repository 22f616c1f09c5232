package jd

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matchlabs/resumerank/internal/textutil"
	"github.com/matchlabs/resumerank/pkg/kernel"
	"github.com/matchlabs/resumerank/pkg/logx"
)

const (
	roleColumn = "Role"
	textColumn = "JD_Text"
)

// LoadCorpus reads the JD catalog CSV at path, normalizes each description
// and precomputes one embedding per record. The file must carry Role and
// JD_Text columns; rows missing either value are dropped. Any error here is
// fatal to startup: the service cannot rank without a catalog.
func LoadCorpus(ctx context.Context, path string, embedder Embedder) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open JD catalog: %w", err)
	}
	defer f.Close()

	records, err := parseCatalog(f)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("JD catalog %s has no usable rows", path)
	}

	texts := make([]string, len(records))
	for i, rec := range records {
		texts[i] = rec.CleanText
	}

	vectors, err := embedder.GenerateBatchEmbeddings(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed JD catalog: %w", err)
	}
	for i := range records {
		records[i].Embedding = vectors[i]
	}

	logx.Infof("Loaded JD catalog: %d roles from %s", len(records), path)
	return NewCorpus(records), nil
}

func parseCatalog(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read JD catalog header: %w", err)
	}

	roleIdx, textIdx := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case roleColumn:
			roleIdx = i
		case textColumn:
			textIdx = i
		}
	}
	if roleIdx < 0 || textIdx < 0 {
		return nil, fmt.Errorf("JD catalog is missing %q or %q column", roleColumn, textColumn)
	}

	var records []Record
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read JD catalog row: %w", err)
		}
		line++

		role := strings.TrimSpace(row[roleIdx])
		rawText := row[textIdx]
		if role == "" || strings.TrimSpace(rawText) == "" {
			continue
		}

		cleanText := textutil.Clean(rawText)
		if cleanText == "" {
			// nothing left to embed once normalized
			logx.Warnf("Skipping JD catalog row %d (%s): text is empty after cleaning", line, role)
			continue
		}

		records = append(records, Record{
			Role:      kernel.JobRole(role),
			RawText:   rawText,
			CleanText: cleanText,
		})
	}

	return records, nil
}
