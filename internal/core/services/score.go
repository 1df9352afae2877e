package services

import (
	"strings"

	"github.com/custodia-labs/ansera/internal/core/domain"
	"github.com/custodia-labs/ansera/internal/text"
)

// Scoring weights for the hybrid lexical heuristic. All components are
// additive per chunk; there is no corpus-wide document-frequency
// normalisation.
const (
	// termFrequencyWeight scales the per-term occurrence ratio.
	termFrequencyWeight = 10.0

	// coverageWeight scales the fraction of query terms present.
	coverageWeight = 5.0

	// phraseBonus rewards the raw query appearing verbatim.
	phraseBonus = 15.0

	// metadataBoost rewards a query term appearing in metadata values.
	metadataBoost = 3.0
)

// scoreChunk computes the relevance of a single chunk against the
// tokenized query. Zero means no match; the result is never negative.
// Duplicate query terms compound the term-frequency and metadata
// components; coverage counts distinct terms in the numerator only.
func scoreChunk(chunk domain.Chunk, terms []string, queryLower string) float64 {
	tokens := text.Tokenize(chunk.Content)
	if len(tokens) == 0 {
		return 0
	}

	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}

	var score float64

	// Term-frequency component.
	for _, term := range terms {
		if tf := counts[term]; tf > 0 {
			score += float64(tf) / float64(len(tokens)) * termFrequencyWeight
		}
	}

	// Coverage component.
	if len(terms) > 0 {
		present := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			if counts[term] > 0 {
				present[term] = struct{}{}
			}
		}
		score += float64(len(present)) / float64(len(terms)) * coverageWeight
	}

	// Exact-phrase bonus.
	if strings.Contains(strings.ToLower(chunk.Content), queryLower) {
		score += phraseBonus
	}

	// Metadata boost: substring containment against the joined value
	// blob, not tokenized matching.
	if blob := chunk.Metadata.Blob(); blob != "" {
		for _, term := range terms {
			if strings.Contains(blob, term) {
				score += metadataBoost
			}
		}
	}

	return score
}
