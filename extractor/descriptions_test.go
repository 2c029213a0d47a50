package extractor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/featdesc/internal/testutil"
)

func newTestDescriptions() *Descriptions {
	d := NewDescriptions()
	d.Set("ZETA", "last letter")
	d.Set("ALPHA", "first letter")
	d.Set("MID", "has: a colon")
	return d
}

func TestDescriptions_SetAndGet(t *testing.T) {
	d := newTestDescriptions()

	v, ok := d.Get("ALPHA")
	assert.True(t, ok)
	assert.Equal(t, "first letter", v)

	_, ok = d.Get("MISSING")
	assert.False(t, ok)

	d.Set("ZETA", "replaced")
	assert.Equal(t, []string{"ZETA", "ALPHA", "MID"}, d.Keys())
	v, _ = d.Get("ZETA")
	assert.Equal(t, "replaced", v)
}

func TestDescriptions_ZeroValue(t *testing.T) {
	var d Descriptions
	assert.Equal(t, 0, d.Len())
	d.Set("A", "b")
	assert.Equal(t, 1, d.Len())
}

func TestDescriptions_NilReceiver(t *testing.T) {
	var d *Descriptions
	assert.Equal(t, 0, d.Len())
	assert.Nil(t, d.Keys())
	assert.Nil(t, d.Entries())
	assert.Empty(t, d.Map())
	_, ok := d.Get("A")
	assert.False(t, ok)
}

func TestDescriptions_CopiesAreIndependent(t *testing.T) {
	d := newTestDescriptions()

	keys := d.Keys()
	keys[0] = "CHANGED"
	m := d.Map()
	m["NEW"] = "x"

	assert.Equal(t, []string{"ZETA", "ALPHA", "MID"}, d.Keys())
	assert.Equal(t, 3, d.Len())
}

func TestDescriptions_MarshalJSON(t *testing.T) {
	d := newTestDescriptions()

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, []string{"ZETA", "ALPHA", "MID"}, testutil.JSONObjectKeys(t, data))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, d.Map(), decoded)

	empty, err := json.Marshal(NewDescriptions())
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(empty))
}

func TestDescriptions_MarshalYAML(t *testing.T) {
	d := newTestDescriptions()
	d.Set("EMPTY", "")

	data, err := yaml.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, []string{"ZETA", "ALPHA", "MID", "EMPTY"}, testutil.YAMLMappingKeys(t, data))

	var decoded map[string]string
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, d.Map(), decoded)
}
