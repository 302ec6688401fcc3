package cliconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/linemark/internal/domain"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all env vars",
			envVars: map[string]string{
				"LINEMARK_FILE":           "/env/in.txt",
				"LINEMARK_REVISION":       "2",
				"LINEMARK_WATCH":          "1",
				"LINEMARK_WATCH_DEBOUNCE": "2s",
				"LINEMARK_LOG_LEVEL":      "error",
			},
			changed: map[string]bool{},
			expected: Config{
				File:          "/env/in.txt",
				Revision:      2,
				Watch:         true,
				WatchDebounce: 2 * time.Second,
				LogLevel:      "error",
			},
		},
		{
			name:     "respects changed flags",
			envVars:  map[string]string{"LINEMARK_FILE": "/env/in.txt", "LINEMARK_REVISION": "1"},
			changed:  map[string]bool{"revision": true},
			initial:  Config{Revision: 3},
			expected: Config{File: "/env/in.txt", Revision: 3},
		},
		{
			name:     "zero revision is kept for validation",
			envVars:  map[string]string{"LINEMARK_REVISION": "0"},
			changed:  map[string]bool{},
			initial:  Config{Revision: 3},
			expected: Config{Revision: 0},
		},
		{
			name:    "invalid revision",
			envVars: map[string]string{"LINEMARK_REVISION": "three"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "invalid duration",
			envVars: map[string]string{"LINEMARK_WATCH_DEBOUNCE": "not-a-duration"},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestApplyEnvConfig_NonPositiveRevisionFailsValidate(t *testing.T) {
	for _, v := range []string{"0", "-1"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("LINEMARK_REVISION", v)

			cfg := DefaultConfig()
			require.NoError(t, ApplyEnvConfig(&cfg, map[string]bool{}))
			assert.ErrorIs(t, cfg.Validate(), domain.ErrInvalidConfig)
		})
	}
}
