package panels

import (
	"log"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/camera"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/game_object"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/model"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/text"
)

// HUDHalfHeight is the half-height in world units of the orthographic camera the chrome is
// drawn with.
const HUDHalfHeight float32 = 5

// Chrome is everything drawn on top of the world: the navigation bar, the controls and the
// loading overlay. It lays itself out against the HUD camera's aspect ratio.
type Chrome struct {
	cam camera.Camera

	Nav      *NavBar
	Controls *ControlsOverlay
	Loading  *LoadingOverlay

	aspect float32
}

// NewChrome builds the HUD elements for cam, an orthographic camera.
//
// Parameters:
//   - env: the shared panel environment
//   - cam: the HUD camera
//
// Returns:
//   - *Chrome: the chrome
func NewChrome(env *Env, cam camera.Camera) *Chrome {
	c := &Chrome{
		cam:      cam,
		Nav:      NewNavBar(env),
		Controls: NewControlsOverlay(env),
		Loading:  NewLoadingOverlay(env),
	}
	c.layout()
	c.update()
	return c
}

// Objects returns the HUD roots in draw order. The loading overlay is last so it covers the rest.
//
// Returns:
//   - []game_object.GameObject: the root objects
func (c *Chrome) Objects() []game_object.GameObject {
	return []game_object.GameObject{c.Nav.Root(), c.Controls.Root(), c.Loading.Root()}
}

// Update re-lays the chrome when the window shape changed and refreshes every element.
func (c *Chrome) Update(_, _ float32) {
	if c.cam.Aspect() != c.aspect {
		c.layout()
	}
	c.update()
}

func (c *Chrome) layout() {
	c.aspect = c.cam.Aspect()
	halfHeight := c.cam.OrthoSize()
	if halfHeight <= 0 {
		halfHeight = HUDHalfHeight
	}
	halfWidth := halfHeight * c.aspect
	c.Nav.layout(halfWidth, halfHeight)
	c.Controls.layout(halfWidth, halfHeight)
	c.Loading.layout(halfWidth, halfHeight)
}

func (c *Chrome) update() {
	c.Nav.update()
	c.Controls.update()
	c.Loading.update()
}

// quad is a flat HUD rectangle tinted hex at the given opacity.
func quad(name string, w, h float32, hex string, alpha float32, options ...game_object.GameObjectBuilderOption) game_object.GameObject {
	mat := material.NewMaterial(
		material.WithName(name),
		material.WithHexColor(hex),
		material.WithUnlit(),
		material.WithPipelineKey(material.PipelineHUD),
	)
	mat.SetOpacity(alpha)
	opts := append([]game_object.GameObjectBuilderOption{
		game_object.WithName(name),
		game_object.WithModel(model.NewPlane(w, h)),
		game_object.WithMaterial(mat),
	}, options...)
	return game_object.NewGameObject(opts...)
}

func setQuadColor(mat material.Material, hex string, alpha float32) {
	c := common.MustHexColor(hex)
	c[3] = alpha
	mat.SetBaseColor(c)
}

// hudLabel is a label drawn on top of the world at (x, y) relative to its parent.
func hudLabel(s string, x, y, size float32, hex string, options ...text.LabelBuilderOption) text.Label {
	return label(s, x, y, 0, size, hex, append([]text.LabelBuilderOption{text.WithOverlay()}, options...)...)
}

func logError(what string, err error) {
	log.Printf("[panels] %s: %v", what, err)
}
