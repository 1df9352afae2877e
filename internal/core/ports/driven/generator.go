package driven

import (
	"context"

	"github.com/custodia-labs/ansera/internal/core/domain"
)

// Generator produces the answer text from a query and its retrieved
// passages.
//
// The extractive implementation is deterministic and runs offline;
// remote implementations (OpenAI) may replace it in production. The
// labelled context block string is pre-assembled by the answer service
// so remote generators can prompt with it directly.
type Generator interface {
	// Generate produces the answer text. Passages are ranked best
	// first and never empty.
	Generate(ctx context.Context, query, contextBlocks string, passages []domain.RetrievedChunk) (string, error)

	// Name returns the generator name for logging and configuration.
	Name() string

	// Close releases resources.
	Close() error
}
