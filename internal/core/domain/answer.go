package domain

// Confidence is a coarse, three-level indicator of how many supporting
// chunks backed an answer.
type Confidence string

const (
	// ConfidenceLow means retrieval found nothing to support an answer.
	ConfidenceLow Confidence = "low"

	// ConfidenceMedium means a single chunk supported the answer.
	ConfidenceMedium Confidence = "medium"

	// ConfidenceHigh means at least two chunks supported the answer.
	ConfidenceHigh Confidence = "high"
)

// Answer is the assembled response to a query, suitable for direct
// serialisation by the calling collaborator.
type Answer struct {
	// Text is the answer body.
	Text string `json:"answer"`

	// Citations trace the answer back to corpus chunks, in rank order.
	Citations []Citation `json:"citations"`

	// Confidence labels how well supported the answer is.
	Confidence Confidence `json:"confidence"`
}

// RetrievedChunk pairs a chunk with its relevance score.
type RetrievedChunk struct {
	// Chunk is the matched chunk.
	Chunk Chunk

	// Score is the hybrid lexical relevance score. Always positive in
	// retrieval output.
	Score float64
}
