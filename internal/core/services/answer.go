package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/ansera/internal/core/domain"
	"github.com/custodia-labs/ansera/internal/core/ports/driven"
	"github.com/custodia-labs/ansera/internal/core/ports/driving"
	"github.com/custodia-labs/ansera/internal/logger"
)

// Ensure AnswerService implements the interface.
var _ driving.AnswerService = (*AnswerService)(nil)

const (
	// answerTopK is how many chunks back an answer.
	answerTopK = 4

	// contextLimit bounds each context block's content for context-size
	// safety, independent of the citation snippet length.
	contextLimit = 1500

	// snippetLimit bounds citation snippets, a stricter cut than the
	// context block's.
	snippetLimit = 120

	// noResultsAnswer is returned when retrieval finds nothing.
	noResultsAnswer = "No relevant information found in the corpus."
)

// AnswerService assembles cited answers from retrieved chunks.
type AnswerService struct {
	retriever driving.RetrievalService
	generator driven.Generator
}

// NewAnswerService creates a new answer service. The generator is
// required; the extractive generator is the deterministic default.
func NewAnswerService(retriever driving.RetrievalService, generator driven.Generator) *AnswerService {
	return &AnswerService{
		retriever: retriever,
		generator: generator,
	}
}

// Answer retrieves the top chunks for the query, builds labelled
// context blocks and citations from them, and invokes the generator
// for the answer text. No results yields a fixed low-confidence
// answer; otherwise confidence is high with two or more supporting
// chunks and medium with one.
func (s *AnswerService) Answer(ctx context.Context, query string) (*domain.Answer, error) {
	logger.Section("Answer Assembly")
	logger.Debug("Query: %q", query)

	if s.generator == nil {
		return nil, domain.ErrGeneratorUnavailable
	}

	retrieved := s.retriever.Retrieve(query, answerTopK)
	if len(retrieved) == 0 {
		logger.Info("No supporting chunks found")
		return &domain.Answer{
			Text:       noResultsAnswer,
			Citations:  []domain.Citation{},
			Confidence: domain.ConfidenceLow,
		}, nil
	}

	blocks := make([]string, 0, len(retrieved))
	citations := make([]domain.Citation, 0, len(retrieved))
	for i, result := range retrieved {
		chunk := result.Chunk
		snippet := truncate(chunk.Content, contextLimit)
		blocks = append(blocks, fmt.Sprintf("[Source %d] %s | %s\n%s\n",
			i+1, chunk.DocID, chunk.SectionID, snippet))
		citations = append(citations, domain.Citation{
			DocID:     chunk.DocID,
			SectionID: chunk.SectionID,
			Snippet:   head(snippet, snippetLimit),
		})
	}
	contextBlocks := strings.Join(blocks, "\n")

	answerText, err := s.generator.Generate(ctx, query, contextBlocks, retrieved)
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}
	logger.Debug("Generator %s produced %d bytes", s.generator.Name(), len(answerText))

	confidence := domain.ConfidenceMedium
	if len(retrieved) >= 2 {
		confidence = domain.ConfidenceHigh
	}
	logger.Info("Answer backed by %d chunks, confidence %s", len(retrieved), confidence)

	return &domain.Answer{
		Text:       answerText,
		Citations:  citations,
		Confidence: confidence,
	}, nil
}

// truncate cuts s at limit and appends an ellipsis marker when cut.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

// head cuts s at limit without a marker.
func head(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
