package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/isometric/depth"
)

func TestDefault(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)
	require.NoError(t, s.Validate())

	assert.Equal(t, 800, s.Window.Width)
	assert.Equal(t, 600, s.Window.Height)
	assert.Equal(t, 60, s.Window.TPS)
	assert.Equal(t, 64.0, s.Tiles.Width)
	assert.True(t, s.Render.ShowGrid)
	assert.Equal(t, depth.StrategyAllPairs, s.Render.Resolver)
	assert.Equal(t, "Escape", s.Keys.Quit)
	assert.Equal(t, "Enter", s.Keys.ToggleGrid)
	assert.Equal(t, "scene.yaml", s.Prefabs.Scene)
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		check   func(t *testing.T, s Settings)
		wantErr string
	}{
		{
			name: "partial_override",
			data: "[window]\nwidth = 1280\n[render]\nresolver = \"linked\"\n",
			check: func(t *testing.T, s Settings) {
				assert.Equal(t, 1280, s.Window.Width)
				assert.Equal(t, 600, s.Window.Height)
				assert.Equal(t, depth.StrategyLinked, s.Render.Resolver)
			},
		},
		{
			name: "rebind_keys",
			data: "[keys]\nleft = \"A\"\nright = \"D\"\n",
			check: func(t *testing.T, s Settings) {
				assert.Equal(t, "A", s.Keys.Left)
				assert.Equal(t, "ArrowUp", s.Keys.Up)
			},
		},
		{name: "bad_strategy", data: "[render]\nresolver = \"zbuffer\"\n", wantErr: "unknown resolver strategy"},
		{name: "unknown_key", data: "[window]\nvsync = true\n", wantErr: "unknown settings key"},
		{name: "zero_tps", data: "[window]\ntps = 0\n", wantErr: "tps 0"},
		{name: "syntax", data: "[window\n", wantErr: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Default()
			require.NoError(t, err)
			err = s.Merge(tt.data)
			if tt.check == nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestLoad(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 800, s.Window.Width)

	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("[render]\nshow_grid = false\n"), 0o644))
	s, err = Load(path)
	require.NoError(t, err)
	assert.False(t, s.Render.ShowGrid)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
