package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Carmen-Shannon/oxy-portfolio/app"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the portfolio window",
	Long: `Open the portfolio in a window and animate it until the window is closed.

Keys:
  1-5        jump to a section
  ←/→        previous / next section
  ↑/↓ or =/- zoom in / out
  M          toggle sound
  I          toggle the controls panel
  Esc        close the panel, or quit

Example:
  oxy-portfolio run
  oxy-portfolio run --section projects --muted=false
  oxy-portfolio run --content ~/portfolio.yaml`,
	RunE: runWindow,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(runCmd)
	addSessionFlags(runCmd)
}

func runWindow(cmd *cobra.Command, args []string) (err error) {
	cfg, data, err := loadSession(cmd, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	p, err := app.NewPortfolio(cfg, data)
	if err != nil {
		err = errors.Wrap(err, "failed to build portfolio")
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = app.Run(ctx, cfg, p)
	if err != nil {
		err = errors.Wrap(err, "portfolio window failed")
		return err
	}
	return err
}
