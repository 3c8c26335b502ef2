package cmd

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Carmen-Shannon/oxy-portfolio/portfolio"
	"github.com/Carmen-Shannon/oxy-portfolio/tui"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/browser"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Show the portfolio in the terminal",
	Long: `Show the portfolio in the terminal. Sections, the project cards and the controls panel work
as they do in the window.

Keys:
  1-5 or ←/→  change section
  ↑/↓         move the highlight
  Enter       open the highlighted link, or expand the highlighted project
  o           open the highlighted project link
  m           toggle sound
  i           toggle the controls panel
  Esc, q      close the panel, or quit`,
	RunE: runTUI,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(tuiCmd)
	addSessionFlags(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) (err error) {
	cfg, data, err := loadSession(cmd, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	start := portfolio.SectionWelcome
	if cfg.StartSection != "" {
		var ok bool
		start, ok = portfolio.ParseSection(cfg.StartSection)
		if !ok {
			err = errors.Errorf("unknown section %q", cfg.StartSection)
			return err
		}
	}
	controls := portfolio.NewControls()
	controls.SetMuted(cfg.Audio.Muted)

	screen, err := tcell.NewScreen()
	if err != nil {
		err = errors.Wrap(err, "failed to open terminal")
		return err
	}
	err = screen.Init()
	if err != nil {
		err = errors.Wrap(err, "failed to initialise terminal")
		return err
	}
	defer screen.Fini()
	// Nothing may print over the screen while it is up.
	browser.Stdout, browser.Stderr = io.Discard, io.Discard
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	ui := tui.NewUI(screen, data,
		tui.WithCoordinator(portfolio.NewCoordinator(portfolio.WithInitialSection(start))),
		tui.WithControls(controls),
		tui.WithLinkOpener(portfolio.NewBrowserOpener(cfg.Links.BaseURL)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return ui.Run(ctx)
}
