// Package corpusfile reads source documents from a JSON corpus file.
// It is the loading collaborator at the boundary of the answering
// core: it validates the document contract (a non-empty id) and fails
// fast on violations instead of letting the chunkers absorb them.
package corpusfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/custodia-labs/ansera/internal/core/domain"
)

// documentJSON is the wire shape of one corpus entry. Content is
// either a string (prose types) or an array of records (tabular).
type documentJSON struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Content  json.RawMessage `json:"content"`
	Metadata domain.Metadata `json:"metadata"`
}

// Read loads and parses a corpus file.
func Read(path string) ([]domain.SourceDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	docs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse corpus file %s: %w", path, err)
	}
	return docs, nil
}

// Parse decodes a JSON array of source documents.
func Parse(data []byte) ([]domain.SourceDocument, error) {
	var entries []documentJSON
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode documents: %w", err)
	}

	docs := make([]domain.SourceDocument, 0, len(entries))
	for i, entry := range entries {
		if entry.ID == "" {
			return nil, fmt.Errorf("document %d: %w", i, domain.ErrMissingID)
		}

		doc := domain.SourceDocument{
			ID:       entry.ID,
			Type:     domain.DocumentType(entry.Type),
			Metadata: entry.Metadata,
		}
		if err := decodeContent(entry.Content, &doc); err != nil {
			return nil, fmt.Errorf("document %s: %w", entry.ID, err)
		}

		docs = append(docs, doc)
	}
	return docs, nil
}

// decodeContent fills Content or Records depending on the JSON shape.
func decodeContent(raw json.RawMessage, doc *domain.SourceDocument) error {
	if len(raw) == 0 {
		return nil
	}

	var content string
	if err := json.Unmarshal(raw, &content); err == nil {
		doc.Content = content
		return nil
	}

	var records []domain.Record
	if err := json.Unmarshal(raw, &records); err == nil {
		doc.Records = records
		return nil
	}

	return fmt.Errorf("%w: content must be a string or an array of records", domain.ErrInvalidInput)
}
