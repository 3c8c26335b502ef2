package panels

import (
	"strconv"
	"sync"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/Carmen-Shannon/oxy-portfolio/content"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/audio"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/game_object"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/text"
	"github.com/Carmen-Shannon/oxy-portfolio/portfolio"
	"github.com/Carmen-Shannon/oxy-portfolio/portfolio/animate"
)

const (
	projectAccent      = "#F72585"
	expandedCardScale  = 1.2
	expandedCardHeight = 2
	collapsedHeight    = 1.5
)

// ExpandState is the index of the expanded project card, or NoSelection.
type ExpandState struct {
	mu    *sync.Mutex
	index int
}

// NewExpandState returns a state with every card collapsed.
func NewExpandState() *ExpandState {
	return &ExpandState{mu: &sync.Mutex{}, index: NoSelection}
}

// Toggle collapses card i when it is expanded and otherwise expands it directly, collapsing any
// other card.
//
// Parameters:
//   - i: the clicked card index
//
// Returns:
//   - int: the expanded index after the toggle, or NoSelection
func (s *ExpandState) Toggle(i int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index == i {
		s.index = NoSelection
	} else {
		s.index = i
	}
	return s.index
}

// Expanded returns the expanded index or NoSelection.
func (s *ExpandState) Expanded() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// IsExpanded reports whether card i is expanded.
func (s *ExpandState) IsExpanded(i int) bool {
	return s.Expanded() == i
}

// projectCard is one tablet of the grid. Details and the hint swap visibility on expansion.
type projectCard struct {
	root    game_object.GameObject
	body    game_object.GameObject
	tablet  game_object.GameObject
	title   text.Label
	details game_object.GameObject
	hint    text.Label
	link    text.Label
	rest    common.Vec3
}

// Projects is the grid of project tablets that expand on click.
type Projects struct {
	*panelBase

	expand *ExpandState
	cards  []*projectCard
}

var _ Panel = &Projects{}

// NewProjects builds the project grid.
//
// Parameters:
//   - env: the shared panel environment
//   - entries: the projects in grid order
//
// Returns:
//   - *Projects: the projects panel
func NewProjects(env *Env, entries []content.ProjectEntry) *Projects {
	p := &Projects{
		panelBase: newPanelBase(env, portfolio.SectionProjects, animate.ProjectsProfile),
		expand:    NewExpandState(),
	}
	p.root.AddChild(label("PROJECTS", 0, 2.5, 0, 0.5, projectAccent, text.WithFamily(text.FamilyMono)))

	for i, entry := range entries {
		pos := GridLayout(i)
		n := strconv.Itoa(i)
		c := &projectCard{
			rest: pos,
			root: group("project-card-"+n, game_object.WithPosition(pos[0], pos[1], pos[2])),
			body: group("project-body-" + n),
			tablet: box("project-tablet-"+n, 2.5, 1, 0.1, material.NewMaterial(
				material.WithHexColor(cardColor),
				material.WithMetallic(0.5),
				material.WithRoughness(0.2),
				material.WithEmissive(emissive(projectAccent), 0),
			), game_object.WithScale(1, collapsedHeight, 1)),
			title: label(entry.Title, 0, 0.3, 0.06, 0.18, projectAccent, text.WithFamily(text.FamilyMono)),
			hint:  label("Click to expand", 0, -0.1, 0.06, 0.12, mutedTextColor),
			link:  label("VISIT SITE →", 0, -0.4, 0.06, 0.12, "#4ADE80"),
		}
		c.details = group("project-details-"+n, game_object.WithEnabled(false))
		c.details.AddChild(
			label(entry.Description, 0, 0.2, 0.06, 0.12, brightTextColor, text.WithMaxWidth(2.3)),
			label(entry.TechLine(), 0, -0.1, 0.06, 0.12, "#4CC9F0", text.WithFamily(text.FamilyMono), text.WithMaxWidth(2.3)),
			c.link,
		)

		idx := i
		env.hoverable(c.tablet, p.owner("card/"+n), nil)
		c.tablet.OnClick(func() {
			env.play(audio.CueClick)
			p.expand.Toggle(idx)
		})
		env.link(c.link, p.owner("link/"+n), entry.Link)

		c.body.AddChild(c.tablet, c.title, c.hint, c.details)
		c.root.AddChild(c.body)
		p.cards = append(p.cards, c)
		p.root.AddChild(c.root)
	}
	return p
}

// Expand returns the expansion state.
func (p *Projects) Expand() *ExpandState {
	return p.expand
}

// Update scales and spins the grid, floats the cards and lays each card out for its expansion
// state.
func (p *Projects) Update(dt, elapsed float32) {
	p.apply(p.advance(dt, p.active()))
	expanded := p.expand.Expanded()
	for i, c := range p.cards {
		bob(c.root, c.rest, elapsed, float32(i)*1.3, 1.5, 0.05)
		c.layout(i == expanded)
	}
}

func (c *projectCard) layout(expanded bool) {
	scale, height, titleY, titleSize := float32(1), float32(collapsedHeight), float32(0.3), float32(0.18)
	color, glow := cardColor, float32(0)
	if expanded {
		scale, height, titleY, titleSize = expandedCardScale, expandedCardHeight, 0.7, 0.22
		color, glow = cardHoverColor, cardGlow
	}
	c.body.SetScale(common.Vec3{scale, scale, scale})
	c.tablet.SetScale(common.Vec3{1, height, 1})
	mat := c.tablet.Material()
	mat.SetBaseColor(common.MustHexColor(color))
	mat.SetEmissiveIntensity(glow)

	pos := c.title.Position()
	pos[1] = titleY
	c.title.SetPosition(pos)
	if err := c.title.SetLineHeight(titleSize); err != nil {
		logError("project title", err)
	}

	c.hint.SetEnabled(!expanded)
	c.details.SetEnabled(expanded)
}
