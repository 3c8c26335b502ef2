package panels

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/audio"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/game_object"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/text"
	"github.com/Carmen-Shannon/oxy-portfolio/portfolio"
)

const (
	navButtonWidth  float32 = 2.1
	navButtonHeight float32 = 0.55
	navGap          float32 = 0.1
	navMargin       float32 = 0.9

	primaryColor = "#8B5CF6"
	glassColor   = "#0F172A"
	mutedColor   = "#1E293B"
)

type navButton struct {
	section portfolio.Section
	bg      game_object.GameObject
	caption text.Label
}

// NavBar is the row of section buttons at the bottom of the screen. The current section's
// button is highlighted.
type NavBar struct {
	mu *sync.Mutex

	env     *Env
	root    game_object.GameObject
	glass   game_object.GameObject
	buttons []*navButton
	hovered portfolio.Section
}

// NewNavBar builds one button per section in section order.
//
// Parameters:
//   - env: the shared panel environment
//
// Returns:
//   - *NavBar: the navigation bar
func NewNavBar(env *Env) *NavBar {
	n := &NavBar{
		mu:      &sync.Mutex{},
		env:     env,
		root:    group("nav"),
		hovered: portfolio.Section(NoSelection),
	}
	count := float32(len(portfolio.Sections))
	n.glass = quad("nav-glass", count*(navButtonWidth+navGap)+navGap, navButtonHeight+2*navGap, glassColor, 0.7)
	n.root.AddChild(n.glass)

	for i, s := range portfolio.Sections {
		x := (float32(i) - (count-1)/2) * (navButtonWidth + navGap)
		b := &navButton{
			section: s,
			bg:      quad("nav-"+s.String(), navButtonWidth, navButtonHeight, primaryColor, 0, game_object.WithPosition(x, 0, 0)),
			caption: hudLabel(s.Label(), 0, 0, 0.24, "#D1D5DB"),
		}
		section := s
		env.hoverable(b.bg, "nav/"+s.String(), func(hovered bool) { n.setHovered(section, hovered) })
		b.bg.OnClick(func() { n.Press(section) })
		b.bg.AddChild(b.caption)
		n.buttons = append(n.buttons, b)
		n.root.AddChild(b.bg)
	}
	return n
}

// Root returns the group holding the bar.
func (n *NavBar) Root() game_object.GameObject {
	return n.root
}

// Highlighted reports whether s is the button drawn as current.
//
// Parameters:
//   - s: the section to check
//
// Returns:
//   - bool: true when s is the current section
func (n *NavBar) Highlighted(s portfolio.Section) bool {
	return n.env.Coordinator.IsActive(s)
}

// Press selects s as if its button was clicked. Invalid sections are ignored.
//
// Parameters:
//   - s: the section to show
//
// Returns:
//   - bool: true when s is a valid section
func (n *NavBar) Press(s portfolio.Section) bool {
	if !n.env.Coordinator.SelectSection(s) {
		return false
	}
	n.env.play(audio.CueClick)
	return true
}

// PressKey maps the number keys 1 to 5 to the buttons in order.
//
// Parameters:
//   - key: the key code
//
// Returns:
//   - bool: true when the key belongs to a button
func (n *NavBar) PressKey(key uint32) bool {
	for i, k := range common.SectionKeys {
		if k == key {
			return n.Press(portfolio.Sections[i])
		}
	}
	return false
}

func (n *NavBar) setHovered(s portfolio.Section, hovered bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	switch {
	case hovered:
		n.hovered = s
	case n.hovered == s:
		n.hovered = portfolio.Section(NoSelection)
	}
}

// layout centres the bar at the bottom of a view halfHeight units tall.
func (n *NavBar) layout(_, halfHeight float32) {
	n.root.SetPosition(common.Vec3{0, -halfHeight + navMargin, 0})
}

// update paints the current button in the primary colour and the hovered one muted.
func (n *NavBar) update() {
	n.mu.Lock()
	hovered := n.hovered
	n.mu.Unlock()

	for _, b := range n.buttons {
		mat := b.bg.Material()
		switch {
		case n.Highlighted(b.section):
			mat.SetBaseColor(common.MustHexColor(primaryColor))
			b.caption.SetColor("#FFFFFF")
		case b.section == hovered:
			setQuadColor(mat, mutedColor, 0.9)
			b.caption.SetColor("#FFFFFF")
		default:
			setQuadColor(mat, mutedColor, 0)
			b.caption.SetColor("#D1D5DB")
		}
	}
}
