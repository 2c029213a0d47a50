package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleMCP_Help(t *testing.T) {
	assert.NoError(t, HandleMCP([]string{"--help"}))
}

func TestHandleMCP_RejectsArguments(t *testing.T) {
	err := HandleMCP([]string{"extra"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "takes no arguments")
}
