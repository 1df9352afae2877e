package markdown

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/ansera/internal/core/domain"
	"github.com/custodia-labs/ansera/internal/core/ports/driven"
	"github.com/custodia-labs/ansera/internal/text"
)

// Ensure Chunker implements the interface.
var _ driven.Chunker = (*Chunker)(nil)

// IntroSectionID is the section id of the chunk holding text before
// the first heading.
const IntroSectionID = "intro"

// headingSplit matches the start of a second-level heading line.
// CRLF line endings are tolerated.
var headingSplit = regexp.MustCompile(`\r?\n##\s+`)

// Chunker splits markdown documents into one chunk per second-level
// heading section.
type Chunker struct{}

// New creates a new markdown chunker.
func New() *Chunker {
	return &Chunker{}
}

// Type returns the document type this chunker handles.
func (c *Chunker) Type() domain.DocumentType {
	return domain.TypeMarkdown
}

// Chunk splits on "## " headings. Text before the first heading
// becomes an intro chunk when non-empty. Each section chunk carries
// the reconstituted heading line, an ordinal-plus-slug section id, and
// the document metadata extended with the section title. A document
// with no headings produces only the intro chunk, or none when empty.
func (c *Chunker) Chunk(_ context.Context, doc *domain.SourceDocument) ([]domain.Chunk, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}

	sections := headingSplit.Split(doc.Content, -1)

	var chunks []domain.Chunk
	if intro := strings.TrimSpace(sections[0]); intro != "" {
		chunks = append(chunks, domain.Chunk{
			DocID:     doc.ID,
			SectionID: IntroSectionID,
			Content:   intro,
			Metadata:  doc.Metadata.Clone(),
		})
	}

	for i, section := range sections[1:] {
		title, body, _ := strings.Cut(section, "\n")
		title = strings.TrimSpace(title)
		body = strings.TrimSpace(body)

		chunks = append(chunks, domain.Chunk{
			DocID:     doc.ID,
			SectionID: fmt.Sprintf("section_%d_%s", i+1, text.Slugify(title)),
			Content:   fmt.Sprintf("## %s\n\n%s", title, body),
			Metadata: doc.Metadata.Merge(domain.Metadata{
				"section_title": domain.String(title),
			}),
		})
	}

	return chunks, nil
}
