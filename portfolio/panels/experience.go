package panels

import (
	"strconv"
	"sync"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/Carmen-Shannon/oxy-portfolio/content"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/game_object"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/text"
	"github.com/Carmen-Shannon/oxy-portfolio/portfolio"
	"github.com/Carmen-Shannon/oxy-portfolio/portfolio/animate"
)

const (
	cardColor       = "#0F172A"
	cardHoverColor  = "#1E293B"
	mutedTextColor  = "#94A3B8"
	brightTextColor = "#F8FAFC"
	cardGlow        = 0.2
)

// experienceCard is one card of the arc.
type experienceCard struct {
	root       game_object.GameObject
	body       game_object.GameObject
	highlights []text.Label
	rest       common.Vec3
}

// Experience is the arc of work history cards.
type Experience struct {
	*panelBase

	mu      *sync.Mutex
	hovered int
	cards   []*experienceCard
}

var _ Panel = &Experience{}

// NewExperience builds the experience arc.
//
// Parameters:
//   - env: the shared panel environment
//   - entries: the experience entries, left to right
//
// Returns:
//   - *Experience: the experience panel
func NewExperience(env *Env, entries []content.ExperienceEntry) *Experience {
	e := &Experience{
		panelBase: newPanelBase(env, portfolio.SectionExperience, animate.ExperienceProfile),
		mu:        &sync.Mutex{},
		hovered:   NoSelection,
	}
	e.root.AddChild(label("EXPERIENCE", 0, 3, 0, 0.5, "#4CC9F0", text.WithFamily(text.FamilyBold)))

	for i, entry := range entries {
		pos, rotY := ArcLayout(i)
		c := &experienceCard{
			rest: pos,
			root: group("experience-card-"+strconv.Itoa(i),
				game_object.WithPosition(pos[0], pos[1], pos[2]),
				game_object.WithRotation(0, rotY, 0),
			),
			body: box("experience-body-"+strconv.Itoa(i), 3, 2, 0.1, material.NewMaterial(
				material.WithHexColor(cardColor),
				material.WithMetallic(0.5),
				material.WithRoughness(0.2),
				material.WithEmissive(emissive("#8B5CF6"), 0),
			)),
		}
		idx := i
		env.hoverable(c.body, e.owner("card/"+strconv.Itoa(i)), func(hovered bool) {
			e.setHovered(idx, hovered)
		})

		c.root.AddChild(c.body,
			label(entry.Company, 0, 0.7, 0.06, 0.25, "#8B5CF6", text.WithFamily(text.FamilyBold)),
			label(entry.Role, 0, 0.3, 0.06, 0.18, brightTextColor),
			label(entry.Period, 0, 0, 0.06, 0.15, mutedTextColor, text.WithFamily(text.FamilyMono)),
		)
		for j, h := range entry.Highlights {
			l := label("• "+h, 0, -0.3-float32(j)*0.25, 0.06, 0.12, mutedTextColor, text.WithMaxWidth(2.8))
			c.highlights = append(c.highlights, l)
			c.root.AddChild(l)
		}
		e.cards = append(e.cards, c)
		e.root.AddChild(c.root)
	}
	return e
}

func (e *Experience) setHovered(i int, hovered bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case hovered:
		e.hovered = i
	case e.hovered == i:
		e.hovered = NoSelection
	}
}

// Hovered returns the hovered card index or NoSelection.
func (e *Experience) Hovered() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hovered
}

// Update scales and spins the arc, floats the cards and highlights the hovered one.
func (e *Experience) Update(dt, elapsed float32) {
	e.apply(e.advance(dt, e.active()))
	hovered := e.Hovered()
	for i, c := range e.cards {
		bob(c.root, c.rest, elapsed, float32(i), 2, 0.05)

		color, ink, glow := cardColor, mutedTextColor, float32(0)
		if i == hovered {
			color, ink, glow = cardHoverColor, brightTextColor, cardGlow
		}
		mat := c.body.Material()
		mat.SetBaseColor(common.MustHexColor(color))
		mat.SetEmissiveIntensity(glow)
		for _, l := range c.highlights {
			l.SetColor(ink)
		}
	}
}
