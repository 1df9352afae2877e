// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): chunkers, the corpus store, answer
// generators, and configuration. Implementations live under
// internal/adapters/driven and internal/chunkers.
package driven
