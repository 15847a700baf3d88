package configs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeployValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Deploy
		wantErr string
	}{
		{name: "empty config is valid", cfg: Deploy{}},
		{name: "beamline name is valid", cfg: Deploy{Beamline: "i24"}},
		{name: "log file name is valid", cfg: Deploy{Beamline: "i24", LogFile: "deploy.log"}},
		{
			name:    "beamline with path separator is rejected",
			cfg:     Deploy{Beamline: "i24/../../etc"},
			wantErr: "must not contain a path separator",
		},
		{
			name:    "log file with path separator is rejected",
			cfg:     Deploy{LogFile: "logs/deploy.log"},
			wantErr: "must be a bare file name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := DefaultConfig()
	require.NoError(t, err)
	require.Empty(t, cfg.Deploy.Beamline)
	require.Empty(t, cfg.Deploy.RepoRoot)
	require.NoError(t, cfg.Deploy.Validate())

	require.NotPanics(t, func() { MustDefaultConfig() })
}
