package cmd

import (
	"fmt"
	"io"

	"github.com/Carmen-Shannon/oxy-portfolio/config"
	"github.com/Carmen-Shannon/oxy-portfolio/content"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// sessionFlags are the overrides shared by the window and terminal front ends.
type sessionFlags struct {
	content string
	section string
	muted   bool
	profile bool
}

//nolint:gochecknoglobals // Cobra boilerplate
var session sessionFlags

// addSessionFlags registers the front end overrides on c.
func addSessionFlags(c *cobra.Command) {
	c.Flags().StringVar(&session.content, "content", "", "content file overriding the built-in records (.json, .yaml)")
	c.Flags().StringVar(&session.section, "section", "", "section to start on: welcome, skills, experience, projects, achievements")
	c.Flags().BoolVar(&session.muted, "muted", false, "start with sound off")
	c.Flags().BoolVar(&session.profile, "profile", false, "log render loop timings")
}

// loadSession reads the config file, layers the flags that were set on top and loads the content.
func loadSession(c *cobra.Command, out io.Writer) (cfg config.Config, data content.Data, err error) {
	cfg, err = loadConfig()
	if err != nil {
		return cfg, data, err
	}

	flags := c.Flags()
	if flags.Changed("content") {
		cfg.Content.Path = session.content
	}
	if flags.Changed("section") {
		cfg.StartSection = session.section
	}
	if flags.Changed("muted") {
		cfg.Audio.Muted = session.muted
	}
	if flags.Changed("profile") {
		cfg.Engine.Profiling = session.profile
	}
	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "invalid settings")
		return cfg, data, err
	}

	data, err = content.LoadOrDefault(cfg.Content.Path)
	if err != nil {
		err = errors.Wrap(err, "failed to load content")
		return cfg, data, err
	}

	if getVerbose() {
		source := cfg.Content.Path
		if source == "" {
			source = "built-in records"
		}
		_, _ = fmt.Fprintf(out, "Content: %s\n", source)
		_, _ = fmt.Fprintf(out, "Window: %dx%d vsync=%t msaa=%d\n", cfg.Window.Width, cfg.Window.Height, cfg.Window.VSync, cfg.Window.MSAA)
		_, _ = fmt.Fprintf(out, "Tick interval: %s\n", cfg.Engine.TickInterval())
	}
	return cfg, data, err
}
