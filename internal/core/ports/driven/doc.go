// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - PhraseSelector: Seedable choice of wording (one instance per generation call)
//   - VocabularyStore: Loads the versioned wording tables
//   - TemplateStore: Loads the Bar-compliant prose templates
//   - Rewriter: Produces alternative phrasings of a narrative
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - NarrativeRecordStore: Audit trail of generated narratives. Without it, nothing is recorded.
//   - NarrativeMetrics: Generation metrics. Without it, nothing is measured.
//   - ConfigStore: Application configuration. Without it, built-in defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
