package version

import (
	"testing"

	"github.com/rxtech-lab/argo-signals/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConfigCompatibility(t *testing.T) {
	tests := []struct {
		name          string
		supported     string
		configVersion string
		expectCode    errors.ErrorCode
		errorContains string
	}{
		{name: "exact match", supported: "1.2.0", configVersion: "1.2.0"},
		{name: "config patch higher", supported: "1.2.0", configVersion: "1.2.7"},
		{name: "config minor older", supported: "1.2.0", configVersion: "1.0.3"},
		{name: "v prefix", supported: "v1.0.0", configVersion: "v1.0.0"},
		{name: "prerelease", supported: "1.0.0", configVersion: "1.0.0-rc.1"},
		{name: "binary is main", supported: "main", configVersion: "9.9.9"},
		{name: "config is main", supported: "1.0.0", configVersion: "main"},
		{
			name:          "config minor newer",
			supported:     "1.2.0",
			configVersion: "1.3.0",
			expectCode:    errors.ErrCodeVersionMismatch,
			errorContains: "newer than supported",
		},
		{
			name:          "major differs",
			supported:     "2.0.0",
			configVersion: "1.0.0",
			expectCode:    errors.ErrCodeVersionMismatch,
			errorContains: "major version mismatch",
		},
		{
			name:          "invalid config version",
			supported:     "1.0.0",
			configVersion: "one",
			expectCode:    errors.ErrCodeInvalidVersion,
			errorContains: "invalid config version",
		},
		{
			name:          "empty config version",
			supported:     "1.0.0",
			configVersion: "",
			expectCode:    errors.ErrCodeInvalidVersion,
			errorContains: "invalid config version",
		},
		{
			name:          "invalid supported version",
			supported:     "x.y",
			configVersion: "1.0.0",
			expectCode:    errors.ErrCodeInvalidVersion,
			errorContains: "invalid supported version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckConfigCompatibility(tt.supported, tt.configVersion)

			if tt.expectCode == 0 {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.expectCode))
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestConfigVersionIsReadable(t *testing.T) {
	require.NoError(t, CheckConfigCompatibility(ConfigVersion, ConfigVersion))
}

func TestGetVersion(t *testing.T) {
	assert.Equal(t, Version, GetVersion())
}
