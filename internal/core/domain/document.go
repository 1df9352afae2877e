package domain

// DocumentType declares the shape of a source document's content and
// selects the chunking strategy applied to it.
type DocumentType string

const (
	// TypeMarkdown is prose with second-level section headings.
	TypeMarkdown DocumentType = "markdown"

	// TypeFAQ is repeated numbered question/answer blocks.
	TypeFAQ DocumentType = "faq"

	// TypeTabular is a sequence of flat field/value records.
	TypeTabular DocumentType = "csv"

	// TypePlain is unstructured text. Unrecognised types degrade to it.
	TypePlain DocumentType = "plain"
)

// SourceDocument is a raw document at the loading boundary.
// Exactly one of Content or Records carries the body: prose types use
// Content, tabular documents use Records.
type SourceDocument struct {
	// ID identifies the document. It is shared by every chunk derived
	// from it and must be non-empty.
	ID string

	// Type selects the chunker. Unknown values fall back to plain.
	Type DocumentType

	// Content is the raw text body for prose document types.
	Content string

	// Records holds the rows of a tabular document.
	Records []Record

	// Metadata contains document-level key-value pairs inherited by
	// every chunk.
	Metadata Metadata
}

// Record is one row of a tabular document: a flat mapping of field
// name to scalar value.
type Record map[string]Value

// Chunk is the minimal independently retrievable unit of text.
// Chunks are created once during corpus loading and are immutable
// for the lifetime of the corpus.
type Chunk struct {
	// DocID identifies the originating document.
	DocID string

	// SectionID is unique within a document and derived
	// deterministically from content, so identical input always
	// re-chunks to identical identifiers.
	SectionID string

	// Content is the normalised text body scored during retrieval.
	Content string

	// Metadata is the document metadata, optionally augmented by the
	// chunker. It is a lower-weight matching surface, not just display
	// data.
	Metadata Metadata
}

// Key returns the stable (doc, section) identity of the chunk.
func (c Chunk) Key() string {
	return c.DocID + "/" + c.SectionID
}

// Citation is a read-only provenance view of a chunk, produced at
// answer time and discarded after the response is returned.
type Citation struct {
	// DocID is the originating document.
	DocID string `json:"doc_id"`

	// SectionID is the section within the document.
	SectionID string `json:"section_id"`

	// Snippet is a bounded-length excerpt of the chunk content.
	Snippet string `json:"snippet"`
}
