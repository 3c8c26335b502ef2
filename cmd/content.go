package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/Carmen-Shannon/oxy-portfolio/content"
	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var contentWatch bool

//nolint:gochecknoglobals // Cobra boilerplate
var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect portfolio content files",
}

//nolint:gochecknoglobals // Cobra boilerplate
var contentShowCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print the portfolio records",
	Long: `Print the records the portfolio would show, coloured by section. Without a file the content
path from the config is used, and without one of those the built-in records.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runContentShow,
}

//nolint:gochecknoglobals // Cobra boilerplate
var contentValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a content file",
	Long: `Check that a content file parses and that every record is complete.

With --watch the file is checked again every time it is saved, until interrupted.

Example:
  oxy-portfolio content validate portfolio.yaml
  oxy-portfolio content validate --watch portfolio.json`,
	Args: cobra.ExactArgs(1),
	RunE: runContentValidate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(contentCmd)
	contentCmd.AddCommand(contentShowCmd, contentValidateCmd)
	contentValidateCmd.Flags().BoolVarP(&contentWatch, "watch", "w", false, "re-validate whenever the file changes")
}

func runContentShow(cmd *cobra.Command, args []string) (err error) {
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		cfg, cerr := loadConfig()
		if cerr != nil {
			return cerr
		}
		path = cfg.Content.Path
	}

	data, err := content.LoadOrDefault(path)
	if err != nil {
		return err
	}
	showContent(termenv.NewOutput(cmd.OutOrStdout()), data)
	return err
}

// showContent prints data section by section in the scene's colours.
func showContent(out *termenv.Output, data content.Data) {
	heading := func(s, hex string) {
		_, _ = fmt.Fprintln(out, out.String(s).Foreground(out.Color(hex)).Bold())
	}
	muted := func(s string) termenv.Style {
		return out.String(s).Foreground(out.Color("#94A3B8"))
	}

	heading(data.Profile.Name, "#4CC9F0")
	_, _ = fmt.Fprintln(out, muted(data.Profile.Headline))
	for _, l := range data.Links {
		_, _ = fmt.Fprintf(out, "  %-8s %s\n", out.String(strings.ToUpper(l.Label)).Foreground(out.Color(l.Color)), l.URL)
	}

	_, _ = fmt.Fprintln(out)
	heading("SKILLS", "#4CC9F0")
	for _, s := range data.Skills {
		_, _ = fmt.Fprintf(out, "  %s: %s\n", out.String(s.Title).Foreground(out.Color(s.Color)).Bold(), strings.Join(s.Items, ", "))
	}

	_, _ = fmt.Fprintln(out)
	heading("EXPERIENCE", "#4CC9F0")
	for _, e := range data.Experience {
		_, _ = fmt.Fprintf(out, "  %s  %s  %s\n", out.String(e.Company).Foreground(out.Color("#8B5CF6")).Bold(), e.Role, muted(e.Period))
		for _, h := range e.Highlights {
			_, _ = fmt.Fprintf(out, "    • %s\n", h)
		}
	}

	_, _ = fmt.Fprintln(out)
	heading("PROJECTS", "#4CC9F0")
	for _, p := range data.Projects {
		_, _ = fmt.Fprintf(out, "  %s\n", out.String(p.Title).Foreground(out.Color("#F72585")).Bold())
		_, _ = fmt.Fprintf(out, "    %s\n    %s\n", p.Description, muted(p.TechLine()))
		if p.Link != "" {
			_, _ = fmt.Fprintf(out, "    %s\n", out.String(p.Link).Underline())
		}
	}

	_, _ = fmt.Fprintln(out)
	heading("ACHIEVEMENTS", "#FCD34D")
	for _, a := range data.Achievements {
		_, _ = fmt.Fprintf(out, "  %s  %s\n    %s\n", muted(a.Year), out.String(a.Title).Foreground(out.Color("#FCD34D")), a.Description)
	}
}

func runContentValidate(cmd *cobra.Command, args []string) (err error) {
	path := args[0]
	out := cmd.OutOrStdout()
	if !contentWatch {
		return validateContent(path, out)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchContent(ctx, path, out)
}

// validateContent loads path and reports the record counts.
func validateContent(path string, out io.Writer) (err error) {
	data, err := content.Load(path)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "%s: ok (%d links, %d skill categories, %d jobs, %d projects, %d achievements)\n",
		path, len(data.Links), len(data.Skills), len(data.Experience), len(data.Projects), len(data.Achievements))
	return err
}

// watchContent validates path now and after every change until ctx is cancelled. Validation
// failures are reported to out and do not stop the watch.
func watchContent(ctx context.Context, path string, out io.Writer) (err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		err = errors.Wrap(err, "failed to create file watcher")
		return err
	}
	defer watcher.Close()

	// Editors often replace the file instead of writing it, so watch the directory.
	abs, err := filepath.Abs(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to resolve %s", path)
		return err
	}
	err = watcher.Add(filepath.Dir(abs))
	if err != nil {
		err = errors.Wrapf(err, "failed to watch %s", filepath.Dir(abs))
		return err
	}

	report := func() {
		if verr := validateContent(path, out); verr != nil {
			_, _ = fmt.Fprintf(out, "%s: invalid: %v\n", path, verr)
		}
	}
	report()
	for {
		select {
		case <-ctx.Done():
			return err
		case event, ok := <-watcher.Events:
			if !ok {
				return err
			}
			if filepath.Base(event.Name) != filepath.Base(abs) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				report()
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return err
			}
			_, _ = fmt.Fprintf(out, "watch error: %v\n", werr)
		}
	}
}
