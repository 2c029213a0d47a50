package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/featdesc/featerrors"
)

func TestSetupNormalizeFlags(t *testing.T) {
	fs, flags := SetupNormalizeFlags()
	require.NoError(t, fs.Parse([]string{"--format", "json", "userId", "HTTPServer"}))

	assert.Equal(t, FormatJSON, flags.Format)
	assert.Equal(t, []string{"userId", "HTTPServer"}, fs.Args())
}

func TestHandleNormalize_Text(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, HandleNormalize([]string{"userId", "HTTPServer", "9lives", "value1Name"}))
	})
	assert.Equal(t, "USER_ID\nHTTP_SERVER\n_9LIVES\nVALUE1_NAME\n", out)
}

func TestHandleNormalize_JSON(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, HandleNormalize([]string{"--format", "json", "signUpDate"}))
	})

	var got []normalizedName
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []normalizedName{{Input: "signUpDate", Normalized: "SIGN_UP_DATE"}}, got)
}

func TestHandleNormalize_EmptyIdentifier(t *testing.T) {
	var err error
	out := captureStdout(t, func() {
		err = HandleNormalize([]string{"userId", ""})
	})

	assert.Equal(t, "USER_ID\n", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument 2")
	assert.ErrorIs(t, err, featerrors.ErrInvalidArgument)
}

func TestHandleNormalize_Errors(t *testing.T) {
	t.Run("no arguments", func(t *testing.T) {
		err := HandleNormalize([]string{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one identifier")
	})

	t.Run("invalid format", func(t *testing.T) {
		err := HandleNormalize([]string{"--format", "xml", "userId"})
		assert.ErrorIs(t, err, featerrors.ErrConfig)
	})

	t.Run("help", func(t *testing.T) {
		assert.NoError(t, HandleNormalize([]string{"-h"}))
	})
}
