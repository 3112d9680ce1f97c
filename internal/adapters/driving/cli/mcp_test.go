package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPCmd_Use(t *testing.T) {
	assert.Equal(t, "mcp", mcpCmd.Use)
}

func TestMCPServeCmd_HasPortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_FailsWithoutServices(t *testing.T) {
	prev := validationService
	validationService = nil
	defer func() { validationService = prev }()

	_, err := runCommand(t, "mcp", "serve")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation service is required")
}
