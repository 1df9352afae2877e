// Package domain defines the core business entities for Ansera.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SourceDocument: A raw document handed over by the loading collaborator
//   - Chunk: The minimal independently retrievable unit of text
//   - Corpus: An immutable, ordered snapshot of chunks for one session
//   - Citation: A read-only provenance view built at answer time
//   - Answer: The cited, confidence-labelled response
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
