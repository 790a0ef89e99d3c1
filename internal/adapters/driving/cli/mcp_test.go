package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPCmd_Structure(t *testing.T) {
	assert.Equal(t, "mcp", mcpCmd.Use)
	assert.Equal(t, "serve", mcpServeCmd.Use)

	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_NoService(t *testing.T) {
	old := current
	SetServices(nil)
	defer SetServices(old)

	_, err := execute(t, "", "mcp", "serve")

	assert.ErrorContains(t, err, "narrative service not configured")
}

func TestMCPServeCmd_LongMentionsEndpoints(t *testing.T) {
	assert.Contains(t, mcpServeCmd.Long, "/metrics")
	assert.Contains(t, mcpServeCmd.Long, "mcp.requests_per_second")
}
