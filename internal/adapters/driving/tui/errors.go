package tui

import "errors"

// ErrMissingNarrativeService is returned when the narrative service is not provided.
var ErrMissingNarrativeService = errors.New("tui: narrative service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
