package panels

import (
	"strconv"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/Carmen-Shannon/oxy-portfolio/content"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/game_object"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/model"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/text"
	"github.com/Carmen-Shannon/oxy-portfolio/portfolio"
	"github.com/Carmen-Shannon/oxy-portfolio/portfolio/animate"
)

const gold = "#FCD34D"

// Achievements is a base with one podium per achievement, each topped by a trophy.
type Achievements struct {
	*panelBase

	podiums []game_object.GameObject
	rests   []common.Vec3
}

var _ Panel = &Achievements{}

// NewAchievements builds the podium row.
//
// Parameters:
//   - env: the shared panel environment
//   - entries: the achievements, left to right
//
// Returns:
//   - *Achievements: the achievements panel
func NewAchievements(env *Env, entries []content.AchievementEntry) *Achievements {
	a := &Achievements{panelBase: newPanelBase(env, portfolio.SectionAchievements, animate.AchievementsProfile)}

	a.root.AddChild(
		label("ACHIEVEMENTS", 0, 2.5, 0, 0.5, gold, text.WithFamily(text.FamilyBold)),
		box("podium-base", 6, 0.5, 3, material.NewMaterial(
			material.WithHexColor("#1f2937"),
			material.WithMetallic(0.8),
			material.WithRoughness(0.2),
		), game_object.WithPosition(0, -1, 0)),
	)

	for i, entry := range entries {
		x, height := PodiumLayout(i)
		n := strconv.Itoa(i)
		rest := common.Vec3{x, -0.25, 0}
		podium := group("podium-"+n, game_object.WithPosition(rest[0], rest[1], rest[2]))
		podium.AddChild(
			box("podium-pillar-"+n, 1, height, 1, material.NewMaterial(
				material.WithHexColor(cardColor),
				material.WithMetallic(0.5),
				material.WithRoughness(0.2),
				material.WithEmissive(emissive(gold), 0.1),
			), game_object.WithPosition(0, -0.5+height/2, 0)),
			game_object.NewGameObject(
				game_object.WithName("trophy-"+n),
				game_object.WithModel(model.NewCylinder(0.2, 0.3, 0.5, 16)),
				game_object.WithMaterial(material.NewMaterial(
					material.WithHexColor(gold),
					material.WithMetallic(0.8),
					material.WithRoughness(0.2),
					material.WithEmissive(emissive(gold), 0.5),
				)),
				game_object.WithPosition(0, height-0.5, 0),
			),
			label(entry.Title, 0, height+0.3, 0, 0.18, gold, text.WithFamily(text.FamilyBold), text.WithMaxWidth(1.8)),
			label(entry.Description, 0, height, 0, 0.12, brightTextColor, text.WithMaxWidth(1.8)),
			label(entry.Year, 0, height-0.25, 0, 0.15, "#4CC9F0", text.WithFamily(text.FamilyMono)),
		)
		a.podiums = append(a.podiums, podium)
		a.rests = append(a.rests, rest)
		a.root.AddChild(podium)
	}
	return a
}

// Update scales and spins the row and floats each podium.
func (a *Achievements) Update(dt, elapsed float32) {
	a.apply(a.advance(dt, a.active()))
	for i, p := range a.podiums {
		bob(p, a.rests[i], elapsed, float32(i)*0.7, 1, 0.02)
	}
}
