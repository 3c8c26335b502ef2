package panels

import (
	"strings"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/audio"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/game_object"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/text"
)

const (
	infoWidth  float32 = 5.2
	infoHeight float32 = 2.6
	soundOn            = "SOUND ON"
	soundOff           = "SOUND OFF"
)

// ControlsOverlay is the mute and info buttons in the top right corner and the info panel that
// lists the instructions.
type ControlsOverlay struct {
	env *Env

	root    game_object.GameObject
	mute    game_object.GameObject
	muteTxt text.Label
	info    game_object.GameObject
	panel   game_object.GameObject
	close   game_object.GameObject
}

// NewControlsOverlay builds the buttons and the hidden info panel.
//
// Parameters:
//   - env: the shared panel environment, Controls is required
//
// Returns:
//   - *ControlsOverlay: the controls overlay
func NewControlsOverlay(env *Env) *ControlsOverlay {
	if env.Controls == nil {
		panic("panels: controls are required for the controls overlay")
	}
	c := &ControlsOverlay{env: env, root: group("controls")}

	c.mute = quad("mute-button", 1.9, 0.55, glassColor, 0.7, game_object.WithPosition(-2.15, 0, 0))
	c.muteTxt = hudLabel(muteCaption(env.Controls.Muted()), 0, 0, 0.22, "#D1D5DB", text.WithFamily(text.FamilyMono))
	c.mute.AddChild(c.muteTxt)
	env.hoverable(c.mute, "controls/mute", nil)
	c.mute.OnClick(c.ToggleMute)

	c.info = quad("info-button", 1.1, 0.55, glassColor, 0.7, game_object.WithPosition(-0.55, 0, 0))
	c.info.AddChild(hudLabel("INFO", 0, 0, 0.22, "#D1D5DB", text.WithFamily(text.FamilyMono)))
	env.hoverable(c.info, "controls/info", nil)
	c.info.OnClick(c.ToggleInfo)

	c.panel = quad("info-panel", infoWidth, infoHeight, glassColor, 0.85,
		game_object.WithPosition(-infoWidth/2, -0.45-infoHeight/2, 0),
		game_object.WithEnabled(env.Controls.InfoVisible()),
	)
	instructions := env.Controls.Instructions()
	lines := make([]string, len(instructions))
	for i, l := range instructions {
		lines[i] = "• " + l
	}
	c.close = quad("info-close", 1.2, 0.4, mutedColor, 0, game_object.WithPosition(-infoWidth/2+0.8, -infoHeight/2+0.35, 0))
	c.close.AddChild(hudLabel("Close", 0, 0, 0.2, primaryColor))
	env.hoverable(c.close, "controls/close", nil)
	c.close.OnClick(c.CloseInfo)

	c.panel.AddChild(
		hudLabel("Controls:", -infoWidth/2+1, infoHeight/2-0.35, 0.24, "#4CC9F0", text.WithFamily(text.FamilyBold)),
		hudLabel(strings.Join(lines, "\n"), 0, 0.05, 0.22, "#D1D5DB", text.WithAlign(text.AlignLeft)),
		c.close,
	)

	c.root.AddChild(c.mute, c.info, c.panel)
	env.Controls.OnMuteChange(func(muted bool) {
		if err := c.muteTxt.SetText(muteCaption(muted)); err != nil {
			logError("mute caption", err)
		}
	})
	return c
}

func muteCaption(muted bool) string {
	if muted {
		return soundOff
	}
	return soundOn
}

// Root returns the group holding the overlay.
func (c *ControlsOverlay) Root() game_object.GameObject {
	return c.root
}

// ToggleMute flips the mute state.
func (c *ControlsOverlay) ToggleMute() {
	c.env.Controls.ToggleMute()
	c.env.play(audio.CueClick)
}

// ToggleInfo shows or hides the info panel.
func (c *ControlsOverlay) ToggleInfo() {
	c.env.Controls.ToggleInfo()
	c.env.play(audio.CueClick)
}

// CloseInfo hides the info panel.
func (c *ControlsOverlay) CloseInfo() {
	c.env.Controls.CloseInfo()
	c.env.play(audio.CueClick)
}

// InfoShown reports whether the info panel is drawn.
func (c *ControlsOverlay) InfoShown() bool {
	return c.panel.Visible()
}

// layout pins the buttons to the top right corner.
func (c *ControlsOverlay) layout(halfWidth, halfHeight float32) {
	c.root.SetPosition(common.Vec3{halfWidth - 0.3, halfHeight - 0.5, 0})
}

// update shows the info panel when the controls say so.
func (c *ControlsOverlay) update() {
	c.panel.SetEnabled(c.env.Controls.InfoVisible())
}
