// Package services implements the driving port interfaces.
// Services wrap the narrative engine with the concerns the engine itself
// stays free of: seed selection, the audit trail, metrics and settings.
package services
