package panels

import (
	"strings"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-portfolio/content"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/game_object"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/text"
	"github.com/Carmen-Shannon/oxy-portfolio/portfolio"
	"github.com/Carmen-Shannon/oxy-portfolio/portfolio/animate"
)

// linkSlots are the x offsets of the four link labels under the headline.
var linkSlots = [...]float32{-1.2, -0.4, 0.4, 1.2}

// Welcome is the console that greets the visitor: a base, a glowing screen with the name and
// headline, and the outbound links.
type Welcome struct {
	*panelBase

	screen  game_object.GameObject
	name    text.Label
	links   []text.Label
	hovered atomic.Bool
}

var _ Panel = &Welcome{}

// NewWelcome builds the welcome console. It reports the section as loaded to the coordinator
// once the objects exist, which is the welcome half of the readiness signal.
//
// Parameters:
//   - env: the shared panel environment
//   - profile: the name and headline to show
//   - links: the outbound links, at most four are placed
//
// Returns:
//   - *Welcome: the welcome panel
func NewWelcome(env *Env, profile content.Profile, links []content.Link) *Welcome {
	w := &Welcome{panelBase: newPanelBase(env, portfolio.SectionWelcome, animate.WelcomeProfile)}

	base := box("console-base", 4, 0.2, 2, material.NewMaterial(
		material.WithHexColor("#1f2937"),
		material.WithMetallic(0.8),
		material.WithRoughness(0.2),
	), game_object.WithPosition(0, -0.5, 0))

	w.screen = box("console-screen", 3.8, 2, 0.1, material.NewMaterial(
		material.WithHexColor("#8B5CF6"),
		material.WithEmissive(emissive("#4CC9F0"), animate.ScreenEmissive(0, false)),
		material.WithMetallic(0.5),
		material.WithRoughness(0.2),
	), game_object.WithPosition(0, 0.5, 0))
	env.hoverable(w.screen, w.owner("screen"), w.hovered.Store)

	w.name = label(profile.Name, 0, 0.5, 0.1, 0.35, "#FFFFFF", text.WithFamily(text.FamilyBold))
	headline := label(profile.Headline, 0, 0, 0.1, 0.2, "#e2e8f0", text.WithMaxWidth(3.6))

	w.root.AddChild(base, w.screen, w.name, headline)
	for i, l := range links {
		if i >= len(linkSlots) {
			break
		}
		ll := label(strings.ToUpper(l.Label), linkSlots[i], -0.4, 0.1, 0.15, l.Color, text.WithFamily(text.FamilyMono))
		env.link(ll, w.owner("link/"+strings.ToLower(l.Label)), l.URL)
		w.links = append(w.links, ll)
		w.root.AddChild(ll)
	}

	env.Coordinator.NotifyLoaded()
	return w
}

// ScreenHovered reports whether the pointer is over the console screen.
//
// Returns:
//   - bool: true while hovered
func (w *Welcome) ScreenHovered() bool {
	return w.hovered.Load()
}

// Links returns the link labels in display order.
//
// Returns:
//   - []text.Label: the link labels
func (w *Welcome) Links() []text.Label {
	return w.links
}

// Update bobs the console, sways it while active and pulses the screen glow.
func (w *Welcome) Update(dt, elapsed float32) {
	active := w.active()
	t := w.advance(dt, active)
	t.Position[1] = w.anchor[1] + animate.FloatOffset(elapsed, 0.5, 0.1)
	if active {
		t.Rotation[1] = animate.Sway(elapsed)
	}
	w.apply(t)
	w.screen.Material().SetEmissiveIntensity(animate.ScreenEmissive(elapsed, w.ScreenHovered()))
}
