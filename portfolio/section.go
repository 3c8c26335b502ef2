// Package portfolio holds the scene state that sits above the engine: the five
// sections, the coordinator that owns the current one, the pointer affordance
// service, the loading indicator and the readiness gate.
package portfolio

import (
	"strings"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
)

// Section is one of the five mutually exclusive display modes of the scene.
type Section int

const (
	SectionWelcome Section = iota
	SectionSkills
	SectionExperience
	SectionProjects
	SectionAchievements

	sectionCount
)

// Sections lists every section in navigation order.
var Sections = [sectionCount]Section{
	SectionWelcome,
	SectionSkills,
	SectionExperience,
	SectionProjects,
	SectionAchievements,
}

var sectionNames = [sectionCount]string{"welcome", "skills", "experience", "projects", "achievements"}

var sectionLabels = [sectionCount]string{"Welcome", "Skills", "Experience", "Projects", "Achievements"}

// cameraPositions is where the camera sits for each section. The camera always looks at the origin.
var cameraPositions = [sectionCount]common.Vec3{
	{0, 0, 10},
	{10, 2, 5},
	{-5, 0, 8},
	{0, -5, 8},
	{5, -2, 10},
}

// anchors is the world position of each section's panel.
var anchors = [sectionCount]common.Vec3{
	{0, 0, 0},
	{10, 2, 0},
	{-5, 0, 0},
	{0, -5, 0},
	{5, -2, 0},
}

// Valid reports whether s is one of the five known sections.
func (s Section) Valid() bool {
	return s >= 0 && s < sectionCount
}

// String returns the navigation identifier of the section, or "unknown".
func (s Section) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return sectionNames[s]
}

// Label returns the human readable button caption of the section.
func (s Section) Label() string {
	if !s.Valid() {
		return ""
	}
	return sectionLabels[s]
}

// CameraPosition returns the fixed camera position for the section.
//
// Returns:
//   - common.Vec3: the camera position
//   - bool: false for an invalid section
func (s Section) CameraPosition() (common.Vec3, bool) {
	if !s.Valid() {
		return common.Vec3{}, false
	}
	return cameraPositions[s], true
}

// Anchor returns the world position of the section's panel.
//
// Returns:
//   - common.Vec3: the anchor position
//   - bool: false for an invalid section
func (s Section) Anchor() (common.Vec3, bool) {
	if !s.Valid() {
		return common.Vec3{}, false
	}
	return anchors[s], true
}

// Step returns the section n places after s in navigation order, wrapping around. Negative n
// moves back. An invalid s steps from welcome.
func (s Section) Step(n int) Section {
	if !s.Valid() {
		s = SectionWelcome
	}
	c := int(sectionCount)
	return Section(((int(s)+n)%c + c) % c)
}

// ParseSection maps a navigation identifier to its Section. Matching ignores case and surrounding space.
//
// Parameters:
//   - name: the identifier, e.g. "skills"
//
// Returns:
//   - Section: the parsed section
//   - bool: false when the name is not one of the five identifiers
func ParseSection(name string) (Section, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range sectionNames {
		if candidate == n {
			return Section(i), true
		}
	}
	return Section(-1), false
}

// CameraTarget is the fixed orbit pivot shared by every section.
var CameraTarget = common.Vec3{0, 0, 0}
