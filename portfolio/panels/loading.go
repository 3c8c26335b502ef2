package panels

import (
	"fmt"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/game_object"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/text"
	"github.com/Carmen-Shannon/oxy-portfolio/portfolio"
)

const (
	barWidth  float32 = 6
	barHeight float32 = 0.18
	spaceDark         = "#070b1a"
)

// LoadingOverlay covers the screen with the loading title, a progress bar and the percentage
// until the portfolio is ready.
type LoadingOverlay struct {
	env *Env

	root    game_object.GameObject
	shade   game_object.GameObject
	fill    game_object.GameObject
	percent text.Label

	progress atomic.Int32
	ready    atomic.Bool
}

// NewLoadingOverlay builds the overlay and subscribes it to the loading indicator and the
// readiness signal.
//
// Parameters:
//   - env: the shared panel environment, Loading and Readiness are required
//
// Returns:
//   - *LoadingOverlay: the loading overlay
func NewLoadingOverlay(env *Env) *LoadingOverlay {
	if env.Loading == nil || env.Readiness == nil {
		panic("panels: loading indicator and readiness are required for the loading overlay")
	}
	o := &LoadingOverlay{env: env, root: group("loading")}

	o.shade = quad("loading-shade", 1, 1, spaceDark, 1)
	// The shade swallows clicks so nothing underneath reacts while loading.
	o.shade.OnClick(func() {})

	track := quad("loading-track", barWidth, barHeight, "#1f2937", 1, game_object.WithPosition(0, 0, 0))
	o.fill = quad("loading-fill", barWidth, barHeight, "#4CC9F0", 1, game_object.WithScale(0, 1, 1))
	o.percent = hudLabel(percentCaption(0), 0, -0.6, 0.22, "#9CA3AF", text.WithFamily(text.FamilyMono))

	o.root.AddChild(
		o.shade,
		hudLabel("LOADING PORTFOLIO", 0, 1, 0.6, "#4CC9F0", text.WithFamily(text.FamilyBold)),
		track,
		o.fill,
		o.percent,
	)

	o.progress.Store(int32(env.Loading.Progress()))
	env.Loading.OnProgress(func(p int) { o.progress.Store(int32(p)) })
	env.Readiness.OnReady(func() {
		o.ready.Store(true)
		o.root.SetEnabled(false)
	})
	return o
}

func percentCaption(p int) string {
	return fmt.Sprintf("Initializing 3D Environment %d%%", p)
}

// Root returns the group holding the overlay.
func (o *LoadingOverlay) Root() game_object.GameObject {
	return o.root
}

// Shown reports whether the overlay still covers the screen.
func (o *LoadingOverlay) Shown() bool {
	return !o.ready.Load()
}

// Caption returns the percentage text.
func (o *LoadingOverlay) Caption() string {
	return o.percent.Text()
}

// FillFraction returns how much of the bar is filled, 0 to 1.
func (o *LoadingOverlay) FillFraction() float32 {
	return o.fill.Scale()[0]
}

// layout stretches the shade over the whole view.
func (o *LoadingOverlay) layout(halfWidth, halfHeight float32) {
	o.shade.SetScale(common.Vec3{2 * halfWidth, 2 * halfHeight, 1})
}

// update moves the bar and the percentage to the latest progress.
func (o *LoadingOverlay) update() {
	if !o.Shown() {
		return
	}
	p := int(o.progress.Load())
	frac := common.Clamp(float32(p)/portfolio.LoadingComplete, 0, 1)
	o.fill.SetTransform(
		common.Vec3{-barWidth / 2 * (1 - frac), 0, 0},
		common.Vec3{},
		common.Vec3{frac, 1, 1},
	)
	if err := o.percent.SetText(percentCaption(p)); err != nil {
		logError("loading caption", err)
	}
}
