package faq

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

// FallbackSectionID is the section id of the catch-all chunk produced
// when no numbered question blocks are found. Unparsed content is
// retained wholesale rather than dropped.
const FallbackSectionID = "faq_all"

// questionMarker matches a numbered question heading such as
// "## 3. Can Ayurveda help with stress and sleep?".
var questionMarker = regexp.MustCompile(`^##\s*\d+\.\s*(.+)$`)

// Chunker splits FAQ documents into one chunk per question/answer
// block.
type Chunker struct{}

// New creates a new FAQ chunker.
func New() *Chunker {
	return &Chunker{}
}

// Type returns the document type this chunker handles.
func (c *Chunker) Type() domain.DocumentType {
	return domain.TypeFAQ
}

// Chunk parses repeated "## <n>. <question>" blocks, each followed by
// an answer body running until the next marker or end of document.
// Every block becomes a chunk with a 1-indexed ordinal section id and
// metadata extended with the ordinal and verbatim question. Content
// with no markers at all falls back to a single faq_all chunk.
func (c *Chunker) Chunk(_ context.Context, doc *domain.SourceDocument) ([]domain.Chunk, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}

	pairs := parsePairs(doc.Content)
	if len(pairs) == 0 {
		return []domain.Chunk{{
			DocID:     doc.ID,
			SectionID: FallbackSectionID,
			Content:   doc.Content,
			Metadata:  doc.Metadata.Clone(),
		}}, nil
	}

	chunks := make([]domain.Chunk, 0, len(pairs))
	for i, pair := range pairs {
		ordinal := i + 1
		chunks = append(chunks, domain.Chunk{
			DocID:     doc.ID,
			SectionID: fmt.Sprintf("faq_%d_%s", ordinal, text.Slugify(pair.question)),
			Content:   fmt.Sprintf("Q: %s\n\nA: %s", pair.question, pair.answer),
			Metadata: doc.Metadata.Merge(domain.Metadata{
				"faq_number": domain.Number(float64(ordinal)),
				"question":   domain.String(pair.question),
			}),
		})
	}

	return chunks, nil
}

// qaPair is one parsed question with its accumulated answer body.
type qaPair struct {
	question string
	answer   string
}

// parserState tracks where the line scanner is within the document.
type parserState int

const (
	// seekingQuestion skips lines until a numbered question marker.
	seekingQuestion parserState = iota

	// accumulatingAnswer collects answer lines until the next marker
	// or end of input.
	accumulatingAnswer
)

// parsePairs walks the content line by line with an explicit two-state
// machine. The "until next marker or end" boundary and the no-marker
// fallback are the edge cases this models.
func parsePairs(content string) []qaPair {
	var (
		pairs    []qaPair
		state    = seekingQuestion
		question string
		answer   []string
	)

	flush := func() {
		if state != accumulatingAnswer {
			return
		}
		pairs = append(pairs, qaPair{
			question: question,
			answer:   strings.TrimSpace(strings.Join(answer, "\n")),
		})
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if m := questionMarker.FindStringSubmatch(line); m != nil {
			flush()
			question = strings.TrimSpace(m[1])
			answer = nil
			state = accumulatingAnswer
			continue
		}
		if state == accumulatingAnswer {
			answer = append(answer, line)
		}
	}
	flush()

	return pairs
}
