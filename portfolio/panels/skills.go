package panels

import (
	"strconv"
	"sync"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/Carmen-Shannon/oxy-portfolio/content"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/game_object"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/model"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/text"
	"github.com/Carmen-Shannon/oxy-portfolio/portfolio"
	"github.com/Carmen-Shannon/oxy-portfolio/portfolio/animate"
)

const (
	faceSize          float32 = 3
	faceHoverEmissive float32 = 0.5
)

// SkillsData provides the categories drawn on the cube, one per face.
type SkillsData struct {
	categories []content.SkillCategory
}

// NewSkillsData keeps at most one category per cube face.
//
// Parameters:
//   - categories: the skill categories in face order
//
// Returns:
//   - SkillsData: the face data
func NewSkillsData(categories []content.SkillCategory) SkillsData {
	if len(categories) > content.SkillFaces {
		categories = categories[:content.SkillFaces]
	}
	return SkillsData{categories: categories}
}

// Faces returns the number of faces with a category.
func (d SkillsData) Faces() int {
	return len(d.categories)
}

// Category returns the category for face i.
//
// Parameters:
//   - i: the face index
//
// Returns:
//   - content.SkillCategory: the category
//   - bool: false when no category sits on face i
func (d SkillsData) Category(i int) (content.SkillCategory, bool) {
	if i < 0 || i >= len(d.categories) {
		return content.SkillCategory{}, false
	}
	return d.categories[i], true
}

// CubeAnimator owns the cube rotation and the hovered face.
type CubeAnimator struct {
	mu *sync.Mutex

	rotation common.Vec3
	hovered  int
}

// NewCubeAnimator returns an unrotated animator with no hovered face.
func NewCubeAnimator() *CubeAnimator {
	return &CubeAnimator{mu: &sync.Mutex{}, hovered: NoSelection}
}

// Hover makes face i the hovered face.
func (a *CubeAnimator) Hover(i int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hovered = i
}

// Unhover clears the hovered face when it is still i. A later Hover of another face wins.
func (a *CubeAnimator) Unhover(i int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.hovered == i {
		a.hovered = NoSelection
	}
}

// Hovered returns the hovered face index or NoSelection.
func (a *CubeAnimator) Hovered() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hovered
}

// Rotation returns the current cube rotation.
func (a *CubeAnimator) Rotation() common.Vec3 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rotation
}

// Step advances the cube rotation by dt. Any hovered face, face 0 included, holds an idle cube
// still.
//
// Parameters:
//   - dt: seconds since the last frame
//   - active: whether the skills section is current
//
// Returns:
//   - common.Vec3: the new rotation
func (a *CubeAnimator) Step(dt float32, active bool) common.Vec3 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rotation = animate.CubeStep(a.rotation, dt, active, a.hovered != NoSelection)
	return a.rotation
}

// FaceRenderer builds the objects of one cube face and keeps their highlight in sync with the
// animator.
type FaceRenderer struct {
	env      *Env
	animator *CubeAnimator
	owner    func(string) string
}

// Face is one rendered cube face.
type Face struct {
	Index int
	Root  game_object.GameObject
	Plane game_object.GameObject
	Title text.Label
	Items []text.Label

	color [3]float32
}

// Build creates face i showing cat: a coloured plane with the title near the top and one
// line per item below it.
//
// Parameters:
//   - i: the face index
//   - cat: the category to show
//
// Returns:
//   - *Face: the built face
func (r FaceRenderer) Build(i int, cat content.SkillCategory) *Face {
	pos, rot, _ := FaceLayout(i)
	f := &Face{Index: i, color: emissive(cat.Color)}
	f.Root = group("skill-face-"+strconv.Itoa(i),
		game_object.WithPosition(pos[0], pos[1], pos[2]),
		game_object.WithRotation(rot[0], rot[1], rot[2]),
	)
	f.Plane = game_object.NewGameObject(
		game_object.WithName("skill-plane-"+strconv.Itoa(i)),
		game_object.WithModel(model.NewPlane(faceSize, faceSize)),
		game_object.WithMaterial(material.NewMaterial(
			material.WithHexColor(cat.Color),
			material.WithMetallic(0.5),
			material.WithRoughness(0.2),
			material.WithEmissive(f.color, 0),
		)),
	)
	r.env.hoverable(f.Plane, r.owner("face/"+strconv.Itoa(i)), func(hovered bool) {
		if hovered {
			r.animator.Hover(i)
		} else {
			r.animator.Unhover(i)
		}
	})

	f.Title = label(cat.Title, 0, 1, 0.1, 0.3, "#FFFFFF", text.WithFamily(text.FamilyBold))
	f.Root.AddChild(f.Plane, f.Title)
	for j, item := range cat.Items {
		l := label(item, 0, 0.5-float32(j)*0.5, 0.1, 0.2, "#FFFFFF")
		f.Items = append(f.Items, l)
		f.Root.AddChild(l)
	}
	return f
}

// Sync sets the face glow from the animator's hovered face.
func (r FaceRenderer) Sync(f *Face) {
	intensity := float32(0)
	if r.animator.Hovered() == f.Index {
		intensity = faceHoverEmissive
	}
	f.Plane.Material().SetEmissiveIntensity(intensity)
}

// Skills is the rotating cube with one skill category per face.
type Skills struct {
	*panelBase

	data     SkillsData
	animator *CubeAnimator
	renderer FaceRenderer
	cube     game_object.GameObject
	faces    []*Face
}

var _ Panel = &Skills{}

// NewSkills builds the skills cube.
//
// Parameters:
//   - env: the shared panel environment
//   - categories: the skill categories in face order
//
// Returns:
//   - *Skills: the skills panel
func NewSkills(env *Env, categories []content.SkillCategory) *Skills {
	s := &Skills{
		panelBase: newPanelBase(env, portfolio.SectionSkills, animate.SkillsProfile),
		data:      NewSkillsData(categories),
		animator:  NewCubeAnimator(),
		cube:      group("skills-cube"),
	}
	s.renderer = FaceRenderer{env: env, animator: s.animator, owner: s.owner}
	for i := 0; i < s.data.Faces(); i++ {
		cat, _ := s.data.Category(i)
		f := s.renderer.Build(i, cat)
		s.faces = append(s.faces, f)
		s.cube.AddChild(f.Root)
	}
	s.root.AddChild(s.cube)
	return s
}

// Animator returns the cube animator.
func (s *Skills) Animator() *CubeAnimator {
	return s.animator
}

// Faces returns the built faces in face order.
func (s *Skills) Faces() []*Face {
	return s.faces
}

// Update scales the panel, turns the cube and refreshes the face glow.
func (s *Skills) Update(dt, _ float32) {
	active := s.active()
	s.apply(s.advance(dt, active))
	s.cube.SetRotation(s.animator.Step(dt, active))
	for _, f := range s.faces {
		s.renderer.Sync(f)
	}
}
