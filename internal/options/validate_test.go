package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/featdesc/featerrors"
)

func TestValidateSingleInputSource(t *testing.T) {
	tests := []struct {
		name    string
		sources []bool
		wantErr string
	}{
		{name: "exactly one", sources: []bool{false, true, false}},
		{name: "none", sources: []bool{false, false}, wantErr: "must specify an input source"},
		{name: "no sources at all", sources: nil, wantErr: "must specify an input source"},
		{name: "two", sources: []bool{true, true, false}, wantErr: "exactly one input source"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSingleInputSource("input", tt.sources...)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, featerrors.ErrConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "input")
		})
	}
}
