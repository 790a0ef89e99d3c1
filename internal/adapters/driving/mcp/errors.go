// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// narrative engine. It lets AI assistants draft, check and classify fee
// narratives for a practice-management system.
package mcp

import "errors"

// ErrMissingNarrativeService is returned when the narrative service is not provided.
var ErrMissingNarrativeService = errors.New("mcp: narrative service is required")

// ErrRateLimited is reported to HTTP clients that exceed the request budget.
var ErrRateLimited = errors.New("mcp: rate limit exceeded")
