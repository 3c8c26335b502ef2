// Package config loads the TOML configuration of the portfolio application.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// DefaultDir is the directory under the user's home that holds the config file.
const DefaultDir = ".oxy-portfolio"

// DefaultFile is the config file name inside DefaultDir.
const DefaultFile = "config.toml"

// Config represents the application configuration.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Engine  EngineConfig  `toml:"engine"`
	Camera  CameraConfig  `toml:"camera"`
	Audio   AudioConfig   `toml:"audio"`
	Content ContentConfig `toml:"content"`
	Links   LinksConfig   `toml:"links"`

	// StartSection is the section shown first. Empty means welcome.
	StartSection string `toml:"start_section,omitempty"`
}

// WindowConfig holds the native window settings.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	VSync  bool   `toml:"vsync"`
	MSAA   int    `toml:"msaa"`

	// SoftwareRenderer asks WebGPU for its CPU fallback adapter, for machines without a usable GPU.
	SoftwareRenderer bool `toml:"software_renderer"`
}

// EngineConfig holds the tick loop settings.
type EngineConfig struct {
	TickRate   int  `toml:"tick_rate"`
	FrameLimit int  `toml:"frame_limit"`
	Profiling  bool `toml:"profiling"`
}

// TickInterval returns the duration of one engine tick.
func (e EngineConfig) TickInterval() (interval time.Duration) {
	if e.TickRate <= 0 {
		interval = time.Second / 60
		return interval
	}
	interval = time.Second / time.Duration(e.TickRate)
	return interval
}

// CameraConfig tunes the orbit controller.
type CameraConfig struct {
	// Sensitivity is the radians of orbit per dragged pixel.
	Sensitivity float32 `toml:"sensitivity"`
	// Damping is the fraction of the remaining motion applied per 60 Hz frame, in (0, 1].
	Damping float32 `toml:"damping"`
}

// AudioConfig holds the ambient sound settings.
type AudioConfig struct {
	Muted  bool    `toml:"muted"`
	Volume float64 `toml:"volume"`
}

// ContentConfig points at an optional content override file.
type ContentConfig struct {
	Path string `toml:"path,omitempty"`
}

// LinksConfig holds the base URL that site-relative links resolve against.
type LinksConfig struct {
	BaseURL string `toml:"base_url"`
}

// Default returns the configuration used when no file exists.
func Default() (cfg Config) {
	cfg = Config{
		Window: WindowConfig{
			Title:  "Bharath Kumar K | Portfolio",
			Width:  1280,
			Height: 800,
			VSync:  true,
			MSAA:   4,
		},
		Engine: EngineConfig{
			TickRate:   60,
			FrameLimit: 0,
		},
		Camera: CameraConfig{
			Sensitivity: 0.005,
			Damping:     0.05,
		},
		Audio: AudioConfig{
			Muted:  true,
			Volume: 0.5,
		},
		Links: LinksConfig{
			BaseURL: "https://bharathkumar.dev",
		},
	}
	return cfg
}

// DefaultPath returns $HOME/.oxy-portfolio/config.toml.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, DefaultDir, DefaultFile)
	return path, err
}

// Load reads configuration from a TOML file layered over Default. An empty
// path means DefaultPath. A missing file is not an error: the defaults are returned.
func Load(configPath string) (cfg Config, err error) {
	cfg = Default()

	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = nil
			return cfg, err
		}
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	err = toml.Unmarshal(data, &cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse config file: %s", path)
		return cfg, err
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate checks the configuration and fills zero values that have a sensible default.
func (c *Config) Validate() (err error) {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		err = errors.Errorf("window size must not be negative, got %dx%d", c.Window.Width, c.Window.Height)
		return err
	}
	if c.Window.Width == 0 || c.Window.Height == 0 {
		def := Default()
		c.Window.Width, c.Window.Height = def.Window.Width, def.Window.Height
	}

	switch c.Window.MSAA {
	case 0:
		c.Window.MSAA = 1
	case 1, 4:
	default:
		err = errors.Errorf("window.msaa must be 1 or 4, got %d", c.Window.MSAA)
		return err
	}

	if c.Engine.TickRate < 0 {
		err = errors.Errorf("engine.tick_rate must not be negative, got %d", c.Engine.TickRate)
		return err
	}
	if c.Engine.FrameLimit < 0 {
		err = errors.Errorf("engine.frame_limit must not be negative, got %d", c.Engine.FrameLimit)
		return err
	}

	if c.Camera.Sensitivity < 0 {
		err = errors.Errorf("camera.sensitivity must not be negative, got %g", c.Camera.Sensitivity)
		return err
	}
	if c.Camera.Damping < 0 || c.Camera.Damping > 1 {
		err = errors.Errorf("camera.damping must be within (0, 1], got %g", c.Camera.Damping)
		return err
	}
	if c.Camera.Sensitivity == 0 {
		c.Camera.Sensitivity = Default().Camera.Sensitivity
	}
	if c.Camera.Damping == 0 {
		c.Camera.Damping = Default().Camera.Damping
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		err = errors.Errorf("audio.volume must be within [0, 1], got %g", c.Audio.Volume)
		return err
	}

	if c.Content.Path != "" {
		_, err = os.Stat(c.Content.Path)
		if os.IsNotExist(err) {
			err = errors.Errorf("content file not found: %s", c.Content.Path)
			return err
		}
		err = nil
	}

	return err
}

// InitConfig writes the default configuration to path, or DefaultPath when empty.
// It refuses to overwrite an existing file.
func InitConfig(configPath string) (path string, err error) {
	path = configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return path, err
		}
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return path, err
	}

	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return path, err
	}

	var data []byte
	data, err = toml.Marshal(Default())
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return path, err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return path, err
	}

	return path, err
}
