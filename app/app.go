// Package app wires the portfolio state, the section panels and the chrome into engine scenes,
// and runs them in a window.
package app

import (
	"context"
	"log"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/Carmen-Shannon/oxy-portfolio/config"
	"github.com/Carmen-Shannon/oxy-portfolio/content"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/audio"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/camera"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/game_object"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/light"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/scene"
	"github.com/Carmen-Shannon/oxy-portfolio/portfolio"
	"github.com/Carmen-Shannon/oxy-portfolio/portfolio/panels"
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

const (
	// WorldScene is the name of the scene holding the section panels.
	WorldScene = "world"
	// HUDScene is the name of the scene holding the chrome.
	HUDScene = "hud"

	hudOrder = 10
	fogColor = "#070b1a"
)

// Portfolio is the fully wired portfolio: shared state, panels, chrome and the two scenes that
// draw them. It runs without a window, which is how it is tested.
type Portfolio struct {
	Coordinator portfolio.Coordinator
	Pointer     portfolio.PointerService
	Controls    *portfolio.Controls
	Loading     portfolio.LoadingIndicator
	Readiness   *portfolio.Readiness
	Audio       audio.Audio

	Panels []panels.Panel
	Chrome *panels.Chrome
	World  scene.Scene
	HUD    scene.Scene

	links portfolio.LinkOpener
	quit  func()
}

// NewPortfolio builds the portfolio for data with the settings in cfg.
//
// Parameters:
//   - cfg: the validated configuration
//   - data: the validated content
//   - options: functional options to configure the portfolio
//
// Returns:
//   - *Portfolio: the wired portfolio
//   - error: an error if the start section is unknown
func NewPortfolio(cfg config.Config, data content.Data, options ...PortfolioOption) (p *Portfolio, err error) {
	start := portfolio.SectionWelcome
	if cfg.StartSection != "" {
		var ok bool
		start, ok = portfolio.ParseSection(cfg.StartSection)
		if !ok {
			err = errors.Errorf("unknown start section %q", cfg.StartSection)
			return p, err
		}
	}

	p = &Portfolio{
		Coordinator: portfolio.NewCoordinator(portfolio.WithInitialSection(start)),
		Pointer:     portfolio.NewPointerService(),
		Controls:    portfolio.NewControls(),
		Loading:     portfolio.NewLoadingIndicator(),
		links:       portfolio.NewBrowserOpener(cfg.Links.BaseURL),
	}
	for _, opt := range options {
		opt(p)
	}
	p.Controls.SetMuted(cfg.Audio.Muted)
	if p.Audio == nil {
		p.Audio = audio.NewAudio(audio.WithMuted(p.Controls.Muted()), audio.WithVolume(cfg.Audio.Volume))
	}
	p.Readiness = portfolio.NewReadiness(p.Loading, p.Coordinator)

	p.Controls.OnMuteChange(p.setMuted)
	env := &panels.Env{
		Coordinator: p.Coordinator,
		Pointer:     p.Pointer,
		Links:       p.links,
		Controls:    p.Controls,
		Loading:     p.Loading,
		Readiness:   p.Readiness,
		Sound:       p.Audio.Play,
	}

	p.World = newWorldScene(p.Coordinator.CameraPosition(), cfg.Camera)
	p.Panels = panels.Build(env, data)
	roots := make([]game_object.GameObject, 0, len(p.Panels))
	for _, panel := range p.Panels {
		roots = append(roots, panel.Root())
	}
	p.World.Add(roots...)
	p.World.OnFrame(func(dt, elapsed float32) {
		for _, panel := range p.Panels {
			panel.Update(dt, elapsed)
		}
	})

	hudCam := camera.NewCamera(camera.WithOrthographic(panels.HUDHalfHeight))
	p.Chrome = panels.NewChrome(env, hudCam)
	p.HUD = scene.NewScene(HUDScene, hudCam,
		scene.WithOrder(hudOrder),
		scene.WithCullingDisabled(true),
		scene.WithObjects(p.Chrome.Objects()...),
	)
	p.HUD.OnFrame(p.Chrome.Update)

	p.Coordinator.OnSectionChange(func(_, next portfolio.Section) {
		pos, _ := next.CameraPosition()
		if ctrl := p.World.Camera().Controller(); ctrl != nil {
			ctrl.SetGoal(pos[0], pos[1], pos[2])
		}
		p.Audio.Play(audio.CueSection)
	})
	return p, err
}

// newWorldScene creates the perspective scene with the orbit camera placed at eye, the three
// lights and the fog.
func newWorldScene(eye common.Vec3, orbit config.CameraConfig) scene.Scene {
	ctrl := camera.NewCameraController(
		camera.WithPosition(eye[0], eye[1], eye[2]),
		camera.WithDamping(orbit.Damping),
		camera.WithMouseSensitivity(orbit.Sensitivity),
	)
	cam := camera.NewCamera(
		camera.WithFov(60*math32.Pi/180),
		camera.WithClipPlanes(0.1, 100),
		camera.WithController(ctrl),
	)
	fog := common.MustHexColor(fogColor)
	return scene.NewScene(WorldScene, cam,
		scene.WithLights(
			light.NewLight(light.WithType(light.LightTypeAmbient), light.WithIntensity(0.2)),
			light.NewLight(light.WithType(light.LightTypeDirectional), light.WithPosition(10, 10, 5), light.WithIntensity(0.5)),
			light.NewLight(light.WithType(light.LightTypePoint), light.WithPosition(0, 0, 0), light.WithHexColor("#8B5CF6"), light.WithIntensity(0.5)),
		),
		scene.WithFog(light.Fog{Color: [3]float32{fog[0], fog[1], fog[2]}, Near: 10, Far: 50}),
	)
}

// Scenes returns the world and HUD scenes.
func (p *Portfolio) Scenes() []scene.Scene {
	return []scene.Scene{p.World, p.HUD}
}

// Start begins the loading indicator and rasterises every label. The chrome is prepared first so
// the loading overlay can be drawn while the world labels are still being rasterised.
//
// Parameters:
//   - ctx: cancels the loading timer and the world preload
//
// Returns:
//   - error: an error if the chrome labels could not be prepared
func (p *Portfolio) Start(ctx context.Context) (err error) {
	err = p.HUD.Preload(ctx)
	if err != nil {
		err = errors.Wrap(err, "failed to prepare the overlay")
		return err
	}
	p.Loading.Start(ctx)
	go func() {
		if werr := p.World.Preload(ctx); werr != nil {
			log.Printf("[app] world preload: %v", werr)
		}
	}()
	return err
}

// setMuted forwards the mute toggle to the audio engine, opening the device the first time
// sound is turned on.
func (p *Portfolio) setMuted(muted bool) {
	if !muted && !p.Audio.Initialized() {
		if err := p.Audio.Init(); err != nil {
			log.Printf("[app] audio unavailable: %v", err)
		}
	}
	p.Audio.SetMuted(muted)
}

// HandleKey applies a keyboard shortcut: 1 to 5 select a section, the arrows step through the
// sections and zoom, M mutes, I toggles the info panel, and Escape closes the info panel or
// quits.
//
// Parameters:
//   - key: the key code
func (p *Portfolio) HandleKey(key uint32) {
	if p.Chrome.Nav.PressKey(key) {
		return
	}
	switch key {
	case common.KeyRight:
		p.Chrome.Nav.Press(p.Coordinator.Current().Step(1))
	case common.KeyLeft:
		p.Chrome.Nav.Press(p.Coordinator.Current().Step(-1))
	case common.KeyUp, common.KeyEqual:
		p.zoom(1)
	case common.KeyDown, common.KeyMinus:
		p.zoom(-1)
	case common.KeyM:
		p.Chrome.Controls.ToggleMute()
	case common.KeyI:
		p.Chrome.Controls.ToggleInfo()
	case common.KeyEsc:
		if p.Controls.InfoVisible() {
			p.Chrome.Controls.CloseInfo()
			return
		}
		if p.quit != nil {
			p.quit()
		}
	}
}

func (p *Portfolio) zoom(delta float32) {
	if ctrl := p.World.Camera().Controller(); ctrl != nil {
		ctrl.Zoom(delta)
	}
}

// Release stops the loading timer and the audio.
func (p *Portfolio) Release() {
	p.Loading.Stop()
	p.Audio.Release()
}
