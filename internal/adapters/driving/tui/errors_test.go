package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrMissingNarrativeService.Error(), ErrInvalidPorts.Error())
	assert.Contains(t, ErrMissingNarrativeService.Error(), "narrative service")
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
