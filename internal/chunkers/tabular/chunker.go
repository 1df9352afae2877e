package tabular

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/ansera/internal/core/domain"
	"github.com/custodia-labs/ansera/internal/core/ports/driven"
	"github.com/custodia-labs/ansera/internal/text"
)

// Ensure Chunker implements the interface.
var _ driven.Chunker = (*Chunker)(nil)

const (
	// missingField is rendered for absent record fields so the line
	// stays present and term matching behaves the same across records.
	missingField = "N/A"

	// missingName is rendered when a record has no name field.
	missingName = "Unknown"
)

// fieldOrder is the canonical rendering of a record: fixed labels in a
// stable order, one line each.
var fieldOrder = []struct {
	label string
	key   string
}{
	{"Product", "name"},
	{"ID", "product_id"},
	{"Category", "category"},
	{"Format", "format"},
	{"Target concerns", "target_concerns"},
	{"Key herbs", "key_herbs"},
	{"Contraindications", "contraindications_short"},
	{"Tags", "internal_tags"},
}

// Chunker converts tabular documents into one chunk per record.
type Chunker struct{}

// New creates a new tabular chunker.
func New() *Chunker {
	return &Chunker{}
}

// Type returns the document type this chunker handles.
func (c *Chunker) Type() domain.DocumentType {
	return domain.TypeTabular
}

// Chunk renders each record as a fixed multi-line listing and derives
// its section id from the record's identifier field, falling back to a
// deterministic digest when the identifier is missing. Record fields
// are merged into the chunk metadata, winning over document metadata
// on collision.
func (c *Chunker) Chunk(_ context.Context, doc *domain.SourceDocument) ([]domain.Chunk, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}

	chunks := make([]domain.Chunk, 0, len(doc.Records))
	for _, record := range doc.Records {
		rendered := renderRecord(record)
		chunks = append(chunks, domain.Chunk{
			DocID:     doc.ID,
			SectionID: sectionID(record, rendered),
			Content:   rendered,
			Metadata:  doc.Metadata.Merge(domain.Metadata(record)),
		})
	}

	return chunks, nil
}

// renderRecord formats the canonical field set in stable order.
// Missing fields keep their line with a placeholder value.
func renderRecord(record domain.Record) string {
	lines := make([]string, 0, len(fieldOrder))
	for _, field := range fieldOrder {
		value := missingField
		if field.key == "name" {
			value = missingName
		}
		if v, ok := record[field.key]; ok && v.Text() != "" {
			value = v.Text()
		}
		lines = append(lines, field.label+": "+value)
	}
	return strings.Join(lines, "\n")
}

// sectionID derives the record's section id. Records with an explicit
// identifier use it directly. The fallback digests the name together
// with the full rendering, so two id-less records that share a name
// still get distinct sections.
func sectionID(record domain.Record, rendered string) string {
	if v, ok := record["product_id"]; ok && v.Text() != "" {
		return "product_" + v.Text()
	}

	var name string
	if v, ok := record["name"]; ok {
		name = v.Text()
	}

	digest := uuid.NewSHA1(uuid.NameSpaceOID, []byte(name+"\n"+rendered))
	if slug := text.Slugify(name); slug != "" {
		return fmt.Sprintf("product_%s_%.8s", slug, digest.String())
	}
	return fmt.Sprintf("product_%.8s", digest.String())
}
