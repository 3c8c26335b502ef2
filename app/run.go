package app

import (
	"context"
	"log"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/Carmen-Shannon/oxy-portfolio/config"
	"github.com/Carmen-Shannon/oxy-portfolio/engine"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/window"
	"github.com/Carmen-Shannon/oxy-portfolio/portfolio"
	"github.com/pkg/errors"
)

const (
	minWindowWidth  = 640
	minWindowHeight = 480
)

// Run opens a window and shows the portfolio until the window closes or Escape is pressed with
// no overlay open. It must be called from the main goroutine.
//
// Parameters:
//   - ctx: cancelling it closes the window
//   - cfg: the validated configuration
//   - p: the portfolio to show
//
// Returns:
//   - error: an error if the window or the GPU could not be set up
func Run(ctx context.Context, cfg config.Config, p *Portfolio) (err error) {
	w, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
		window.WithMinSize(minWindowWidth, minWindowHeight),
	)
	if err != nil {
		err = errors.Wrap(err, "failed to open window")
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil {
			log.Printf("[app] close window: %v", cerr)
		}
	}()

	present := renderer.PresentModeUncapped
	if cfg.Window.VSync {
		present = renderer.PresentModeVSync
	}
	bg := common.MustHexColor(fogColor)
	r, err := renderer.NewRenderer(renderer.BackendTypeWGPU, w,
		renderer.WithPresentMode(present),
		renderer.WithMSAA(renderer.MSAAFromSamples(cfg.Window.MSAA)),
		renderer.WithForceSoftwareRenderer(cfg.Window.SoftwareRenderer),
		renderer.WithClearColor([3]float32{bg[0], bg[1], bg[2]}),
	)
	if err != nil {
		err = errors.Wrap(err, "failed to create renderer")
		return err
	}
	defer r.Release()

	e := engine.NewEngine(
		engine.WithWindow(w),
		engine.WithConfig(cfg.Engine),
		engine.WithScene(p.World),
		engine.WithScene(p.HUD),
	)
	for _, s := range p.Scenes() {
		s.SetRenderer(r)
		defer s.Release()
	}

	if p.quit == nil {
		p.quit = e.Quit
	}
	w.SetKeyDownCallback(p.HandleKey)
	p.Pointer.OnChange(func(c portfolio.Cursor) {
		if c == portfolio.CursorPointer {
			w.SetCursor(window.CursorPointer)
			return
		}
		w.SetCursor(window.CursorDefault)
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	err = p.Start(ctx)
	if err != nil {
		return err
	}
	defer p.Release()

	if !p.Controls.Muted() {
		if aerr := p.Audio.Init(); aerr != nil {
			log.Printf("[app] audio unavailable, continuing without sound: %v", aerr)
		}
	}

	go func() {
		<-ctx.Done()
		e.Quit()
	}()
	log.Printf("[app] showing %s", p.Coordinator.Current())
	e.Run()
	return err
}
