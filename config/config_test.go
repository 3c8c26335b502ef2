package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Audio.Muted)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
start_section = "projects"

[window]
title = "Test Portfolio"
width = 640
height = 480

[camera]
damping = 0.2

[audio]
muted = false
volume = 0.25
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Test Portfolio", cfg.Window.Title)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.Equal(t, 4, cfg.Window.MSAA, "unset keys keep their defaults")
	assert.False(t, cfg.Audio.Muted)
	assert.InDelta(t, 0.25, cfg.Audio.Volume, 1e-9)
	assert.Equal(t, "projects", cfg.StartSection)
	assert.InDelta(t, 0.2, cfg.Camera.Damping, 1e-6)
	assert.InDelta(t, 0.005, cfg.Camera.Sensitivity, 1e-9)
	assert.False(t, cfg.Window.SoftwareRenderer)
	assert.Equal(t, "https://bharathkumar.dev", cfg.Links.BaseURL)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window\nwidth = "), 0600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
		check   func(t *testing.T, c Config)
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{
			name:   "zero size falls back",
			mutate: func(c *Config) { c.Window.Width = 0 },
			check: func(t *testing.T, c Config) {
				assert.Equal(t, 1280, c.Window.Width)
				assert.Equal(t, 800, c.Window.Height)
			},
		},
		{
			name:   "zero msaa means one",
			mutate: func(c *Config) { c.Window.MSAA = 0 },
			check:  func(t *testing.T, c Config) { assert.Equal(t, 1, c.Window.MSAA) },
		},
		{name: "negative size", mutate: func(c *Config) { c.Window.Height = -1 }, wantErr: "must not be negative"},
		{name: "bad msaa", mutate: func(c *Config) { c.Window.MSAA = 2 }, wantErr: "window.msaa"},
		{name: "negative tick rate", mutate: func(c *Config) { c.Engine.TickRate = -5 }, wantErr: "engine.tick_rate"},
		{
			name:   "zero camera settings fall back",
			mutate: func(c *Config) { c.Camera = CameraConfig{} },
			check: func(t *testing.T, c Config) {
				assert.Equal(t, Default().Camera, c.Camera)
			},
		},
		{name: "negative sensitivity", mutate: func(c *Config) { c.Camera.Sensitivity = -1 }, wantErr: "camera.sensitivity"},
		{name: "overdamped", mutate: func(c *Config) { c.Camera.Damping = 1.5 }, wantErr: "camera.damping"},
		{name: "loud", mutate: func(c *Config) { c.Audio.Volume = 1.5 }, wantErr: "audio.volume"},
		{name: "missing content", mutate: func(c *Config) { c.Content.Path = "/nonexistent/portfolio.json" }, wantErr: "content file not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	written, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Window, cfg.Window)

	_, err = InitConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestTickInterval(t *testing.T) {
	assert.Equal(t, time.Second/60, EngineConfig{}.TickInterval())
	assert.Equal(t, time.Second/120, EngineConfig{TickRate: 120}.TickInterval())
}
