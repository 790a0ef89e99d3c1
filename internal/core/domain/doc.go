// Package domain defines the core business entities for the fee-narrative engine.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - TimeEntry: A billable time record for a legal matter
//   - Matter: Read-only context about the matter being billed
//   - WorkCategory: A canonical classification of billable work
//   - GeneratedNarrative: The engine's output, with confidence and compliance
//   - Vocabulary: Versioned wording tables the engine is built from
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
