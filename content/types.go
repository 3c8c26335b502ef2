// Package content holds the static records shown by the portfolio: the
// profile, outbound links, skill categories, experience entries, projects and
// achievements. The records are loaded once and never mutated afterwards.
package content

import "strings"

// SkillFaces is the number of skill categories, one per cube face.
const SkillFaces = 6

// Data is the full set of portfolio records.
type Data struct {
	Profile      Profile            `json:"profile" yaml:"profile"`
	Links        []Link             `json:"links" yaml:"links"`
	Skills       []SkillCategory    `json:"skills" yaml:"skills"`
	Experience   []ExperienceEntry  `json:"experience" yaml:"experience"`
	Projects     []ProjectEntry     `json:"projects" yaml:"projects"`
	Achievements []AchievementEntry `json:"achievements" yaml:"achievements"`
}

// Profile is the name and headline shown on the welcome console.
type Profile struct {
	Name     string `json:"name" yaml:"name"`
	Headline string `json:"headline" yaml:"headline"`
}

// Link is an outbound link shown under the welcome headline.
type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
	Color string `json:"color" yaml:"color"`
}

// SkillCategory is one face of the skills cube.
type SkillCategory struct {
	Title string   `json:"title" yaml:"title"`
	Items []string `json:"items" yaml:"items"`
	Color string   `json:"color" yaml:"color"`
}

// ExperienceEntry is one card of the experience arc.
type ExperienceEntry struct {
	Company    string   `json:"company" yaml:"company"`
	Role       string   `json:"role" yaml:"role"`
	Period     string   `json:"period" yaml:"period"`
	Highlights []string `json:"highlights" yaml:"highlights"`
}

// ProjectEntry is one card of the projects grid.
type ProjectEntry struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Tech        []string `json:"tech" yaml:"tech"`
	Link        string   `json:"link" yaml:"link"`
}

// TechLine joins the tech tags the way the expanded card shows them.
func (p ProjectEntry) TechLine() string {
	return strings.Join(p.Tech, " • ")
}

// AchievementEntry is one podium of the achievements row.
type AchievementEntry struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Year        string `json:"year" yaml:"year"`
}
