// Package panels builds the game objects for the five portfolio sections and the screen chrome
// around them, and advances their per-frame animation from the coordinator's active flags.
package panels

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/Carmen-Shannon/oxy-portfolio/content"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/audio"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/game_object"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/model"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/text"
	"github.com/Carmen-Shannon/oxy-portfolio/portfolio"
	"github.com/Carmen-Shannon/oxy-portfolio/portfolio/animate"
)

// NoSelection marks a hover or expansion index that points at nothing.
const NoSelection = -1

// Env is the shared state every panel reads and reports to.
type Env struct {
	// Coordinator owns the current section. Required.
	Coordinator portfolio.Coordinator
	// Pointer owns the cursor style. Required.
	Pointer portfolio.PointerService
	// Links opens outbound links. Nil drops link clicks.
	Links portfolio.LinkOpener
	// Controls holds the mute and info overlay state. Required by the chrome.
	Controls *portfolio.Controls
	// Loading drives the loading overlay. Required by the chrome.
	Loading portfolio.LoadingIndicator
	// Readiness dismisses the loading overlay. Required by the chrome.
	Readiness *portfolio.Readiness
	// Sound plays a UI cue. Nil is silent.
	Sound func(cue audio.Cue)
}

func (e *Env) play(cue audio.Cue) {
	if e.Sound != nil {
		e.Sound(cue)
	}
}

func (e *Env) open(target string) {
	if e.Links != nil && target != "" {
		e.Links.Open(target)
	}
}

// hoverable routes obj's pointer enter and leave through the pointer service under owner and
// reports the hover state to changed, which may be nil.
func (e *Env) hoverable(obj game_object.GameObject, owner string, changed func(hovered bool)) {
	obj.OnPointerEnter(func() {
		e.Pointer.Acquire(owner)
		e.play(audio.CueHover)
		if changed != nil {
			changed(true)
		}
	})
	obj.OnPointerLeave(func() {
		e.Pointer.Release(owner)
		if changed != nil {
			changed(false)
		}
	})
}

// link makes obj open target on click with the pointer cursor while hovered.
func (e *Env) link(obj game_object.GameObject, owner, target string) {
	e.hoverable(obj, owner, nil)
	obj.OnClick(func() {
		e.play(audio.CueClick)
		e.open(target)
	})
}

// Panel is the renderable group for one section.
type Panel interface {
	// Section returns the section this panel belongs to.
	//
	// Returns:
	//   - portfolio.Section: the owning section
	Section() portfolio.Section

	// Root returns the group holding every object of the panel.
	//
	// Returns:
	//   - game_object.GameObject: the root group
	Root() game_object.GameObject

	// Transform returns the root transform produced by the last Update.
	//
	// Returns:
	//   - animate.Transform: the current root transform
	Transform() animate.Transform

	// Update advances the panel one frame. The active flag is read from the coordinator.
	//
	// Parameters:
	//   - dt: seconds since the last frame
	//   - elapsed: seconds since the scene started
	Update(dt, elapsed float32)
}

// Build creates the five section panels in section order.
//
// Parameters:
//   - env: the shared panel environment
//   - data: the records to show
//
// Returns:
//   - []Panel: one panel per section
func Build(env *Env, data content.Data) []Panel {
	return []Panel{
		NewWelcome(env, data.Profile, data.Links),
		NewSkills(env, data.Skills),
		NewExperience(env, data.Experience),
		NewProjects(env, data.Projects),
		NewAchievements(env, data.Achievements),
	}
}

// panelBase carries the root group and the shared scale and spin animation.
type panelBase struct {
	mu *sync.Mutex

	env       *Env
	section   portfolio.Section
	profile   animate.Profile
	anchor    common.Vec3
	root      game_object.GameObject
	transform animate.Transform
}

// newPanelBase creates the root group at the section anchor at full scale. Inactive panels
// shrink toward their profile scale from there.
func newPanelBase(env *Env, section portfolio.Section, profile animate.Profile) *panelBase {
	if env == nil || env.Coordinator == nil || env.Pointer == nil {
		panic("panels: env with a coordinator and pointer service is required")
	}
	anchor, _ := section.Anchor()
	return &panelBase{
		mu:      &sync.Mutex{},
		env:     env,
		section: section,
		profile: profile,
		anchor:  anchor,
		root: game_object.NewGameObject(
			game_object.WithName(section.String()),
			game_object.WithPosition(anchor[0], anchor[1], anchor[2]),
		),
		transform: animate.NewTransform(anchor, 1),
	}
}

func (p *panelBase) Section() portfolio.Section {
	return p.section
}

func (p *panelBase) Root() game_object.GameObject {
	return p.root
}

func (p *panelBase) Transform() animate.Transform {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.transform
}

func (p *panelBase) active() bool {
	return p.env.Coordinator.IsActive(p.section)
}

// advance returns the next root transform without applying it.
func (p *panelBase) advance(dt float32, active bool) animate.Transform {
	p.mu.Lock()
	defer p.mu.Unlock()
	return animate.Step(p.transform, dt, active, p.profile)
}

// apply stores t and moves the root group to it.
func (p *panelBase) apply(t animate.Transform) {
	p.mu.Lock()
	p.transform = t
	p.mu.Unlock()
	p.root.SetTransform(t.Position, t.Rotation, t.Scale)
}

// owner returns a pointer service owner id scoped to this panel.
func (p *panelBase) owner(element string) string {
	return p.section.String() + "/" + element
}

// bob floats obj around its resting position the way every card in a panel hovers.
func bob(obj game_object.GameObject, rest common.Vec3, elapsed, phase, speed, amp float32) {
	pos := rest
	pos[1] += animate.FloatOffset(elapsed+phase, speed, amp)
	obj.SetPosition(pos)
}

// box is a lit box mesh.
func box(name string, w, h, d float32, mat material.Material, options ...game_object.GameObjectBuilderOption) game_object.GameObject {
	opts := append([]game_object.GameObjectBuilderOption{
		game_object.WithName(name),
		game_object.WithModel(model.NewBox(w, h, d)),
		game_object.WithMaterial(mat),
	}, options...)
	return game_object.NewGameObject(opts...)
}

// group is an empty transform node.
func group(name string, options ...game_object.GameObjectBuilderOption) game_object.GameObject {
	return game_object.NewGameObject(append([]game_object.GameObjectBuilderOption{game_object.WithName(name)}, options...)...)
}

// label places a world label at (x, y, z) relative to its parent.
func label(s string, x, y, z, size float32, hex string, options ...text.LabelBuilderOption) text.Label {
	opts := append([]text.LabelBuilderOption{
		text.WithLineHeight(size),
		text.WithColor(hex),
		text.WithObjectOptions(game_object.WithPosition(x, y, z)),
	}, options...)
	return text.NewLabel(s, opts...)
}

func emissive(hex string) [3]float32 {
	c := common.MustHexColor(hex)
	return [3]float32{c[0], c[1], c[2]}
}
