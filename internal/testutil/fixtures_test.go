package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteTempDescription verifies the description file is written verbatim.
func TestWriteTempDescription(t *testing.T) {
	path := WriteTempDescription(t, SampleDescription)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, SampleDescription, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

// TestYAMLMappingKeys verifies keys come back in document order.
func TestYAMLMappingKeys(t *testing.T) {
	keys := YAMLMappingKeys(t, []byte("zeta: 1\nalpha: 2\nmid: 3\n"))
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys)

	assert.Nil(t, YAMLMappingKeys(t, []byte("")))
}

// TestJSONObjectKeys verifies keys come back in document order.
func TestJSONObjectKeys(t *testing.T) {
	keys := JSONObjectKeys(t, []byte(`{"zeta":1,"alpha":{"x":[1,2]},"mid":"3"}`))
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys)
}
