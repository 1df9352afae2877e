// Package chunkers provides the per-type document chunkers and the
// registry that selects between them. Each chunker converts one source
// document into chunks with stable, content-derived section ids:
//
//   - plaintext: one chunk covering the whole document
//   - markdown: one chunk per second-level heading section
//   - faq: one chunk per numbered question/answer block
//   - tabular: one chunk per record
//
// Unrecognised document types degrade to the plaintext chunker rather
// than failing.
package chunkers
