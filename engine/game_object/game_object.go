package game_object

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/model"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/material"
)

// objectCount hands out unique object IDs.
var objectCount atomic.Uint64

type gameObject struct {
	mu *sync.Mutex

	id      uint64
	name    string
	enabled atomic.Bool

	parent   GameObject
	children []GameObject

	position common.Vec3
	rotation common.Vec3
	scale    common.Vec3

	mdl model.Model
	mat material.Material

	onPointerEnter func()
	onPointerLeave func()
	onClick        func()
	preload        func() error

	bindGroupProvider bind_group_provider.BindGroupProvider
}

// GameObject defines the interface for a node of the scene graph.
//
// A node has a local transform relative to its parent, an optional mesh and material,
// and optional pointer handlers. Nodes without a model only group their children. The
// world transform is the parent's world transform times the local one, so scaling a
// panel root scales every card under it.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Name returns the debug name of the object.
	//
	// Returns:
	//   - string: the name
	Name() string

	// Enabled returns whether this object itself is enabled.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Visible returns whether this object and every ancestor are enabled.
	//
	// Returns:
	//   - bool: true if drawn and pickable
	Visible() bool

	// SetEnabled sets whether the object is drawn and pickable.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Parent returns the parent node, or nil for a root.
	//
	// Returns:
	//   - GameObject: the parent or nil
	Parent() GameObject

	// Children returns the direct children in insertion order.
	//
	// Returns:
	//   - []GameObject: the children
	Children() []GameObject

	// AddChild appends children and sets their parent to this object.
	//
	// Parameters:
	//   - children: the nodes to attach
	AddChild(children ...GameObject)

	// Walk visits this object and all descendants depth first, parents before children.
	//
	// Parameters:
	//   - fn: called for every node
	Walk(fn func(GameObject))

	// Position returns the local position.
	//
	// Returns:
	//   - common.Vec3: position relative to the parent
	Position() common.Vec3

	// Rotation returns the local Euler rotation in radians.
	//
	// Returns:
	//   - common.Vec3: rotation around X, Y and Z
	Rotation() common.Vec3

	// Scale returns the local scale.
	//
	// Returns:
	//   - common.Vec3: scale along X, Y and Z
	Scale() common.Vec3

	// SetPosition replaces the local position.
	//
	// Parameters:
	//   - p: position relative to the parent
	SetPosition(p common.Vec3)

	// SetRotation replaces the local Euler rotation.
	//
	// Parameters:
	//   - r: rotation in radians
	SetRotation(r common.Vec3)

	// SetScale replaces the local scale.
	//
	// Parameters:
	//   - s: scale factors
	SetScale(s common.Vec3)

	// SetTransform replaces position, rotation and scale at once.
	//
	// Parameters:
	//   - p: position relative to the parent
	//   - r: rotation in radians
	//   - s: scale factors
	SetTransform(p, r, s common.Vec3)

	// LocalMatrix returns the column-major local transform.
	//
	// Returns:
	//   - [16]float32: the local matrix
	LocalMatrix() [16]float32

	// WorldMatrix returns the column-major world transform.
	//
	// Returns:
	//   - [16]float32: the world matrix
	WorldMatrix() [16]float32

	// WorldBounds returns the world-space axis-aligned bounds of the model.
	//
	// Returns:
	//   - common.Vec3: minimum corner
	//   - common.Vec3: maximum corner
	//   - bool: false when the object has no model
	WorldBounds() (common.Vec3, common.Vec3, bool)

	// Model returns the mesh, or nil for a group node.
	//
	// Returns:
	//   - model.Model: the mesh or nil
	Model() model.Model

	// SetModel assigns a mesh.
	//
	// Parameters:
	//   - m: the mesh
	SetModel(m model.Model)

	// Material returns the surface material, or nil for a group node.
	//
	// Returns:
	//   - material.Material: the material or nil
	Material() material.Material

	// SetMaterial assigns a material.
	//
	// Parameters:
	//   - m: the material
	SetMaterial(m material.Material)

	// OnPointerEnter registers the handler fired when the cursor starts hovering the object.
	//
	// Parameters:
	//   - fn: the handler
	OnPointerEnter(fn func())

	// OnPointerLeave registers the handler fired when the cursor stops hovering the object.
	//
	// Parameters:
	//   - fn: the handler
	OnPointerLeave(fn func())

	// OnClick registers the handler fired when the object is clicked.
	//
	// Parameters:
	//   - fn: the handler
	OnClick(fn func())

	// Interactive reports whether any pointer handler is registered.
	//
	// Returns:
	//   - bool: true if the object takes part in picking
	Interactive() bool

	// PointerEnter fires the enter handler, if any.
	PointerEnter()

	// PointerLeave fires the leave handler, if any.
	PointerLeave()

	// Click fires the click handler, if any.
	Click()

	// SetPreload registers work that must finish before the first frame, such as text rasterisation.
	//
	// Parameters:
	//   - fn: the preload work
	SetPreload(fn func() error)

	// Preload runs the registered preload work.
	//
	// Returns:
	//   - error: the preload error, nil when none is registered
	Preload() error

	// BindGroupProvider returns the provider holding the object's uniform buffer and texture.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the provider
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// GPUUniform snapshots the world matrix and material into the per-object uniform layout.
	//
	// Returns:
	//   - GPUObjectUniform: the uniform data
	GPUUniform() GPUObjectUniform

	// setParent is called by AddChild. Keeping it unexported means other packages build
	// node types by embedding a GameObject from NewGameObject.
	setParent(parent GameObject)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new enabled GameObject with unit scale, configured with the given options.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		mu:    &sync.Mutex{},
		id:    objectCount.Add(1),
		scale: common.Vec3{1, 1, 1},
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	obj.bindGroupProvider = bind_group_provider.NewBindGroupProvider(
		"object_" + strconv.FormatUint(obj.id, 10) + "_" + obj.name,
	)
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Visible() bool {
	for n := GameObject(g); n != nil; n = n.Parent() {
		if !n.Enabled() {
			return false
		}
	}
	return true
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) Parent() GameObject {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.parent
}

func (g *gameObject) Children() []GameObject {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.children
}

func (g *gameObject) AddChild(children ...GameObject) {
	g.mu.Lock()
	g.children = append(g.children, children...)
	g.mu.Unlock()
	for _, c := range children {
		c.setParent(g)
	}
}

func (g *gameObject) Walk(fn func(GameObject)) {
	fn(g)
	for _, c := range g.Children() {
		c.Walk(fn)
	}
}

func (g *gameObject) Position() common.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position
}

func (g *gameObject) Rotation() common.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rotation
}

func (g *gameObject) Scale() common.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.scale
}

func (g *gameObject) SetPosition(p common.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position = p
}

func (g *gameObject) SetRotation(r common.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotation = r
}

func (g *gameObject) SetScale(s common.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scale = s
}

func (g *gameObject) SetTransform(p, r, s common.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position, g.rotation, g.scale = p, r, s
}

func (g *gameObject) LocalMatrix() [16]float32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	var m [16]float32
	common.BuildModelMatrix(m[:], g.position, g.rotation, g.scale)
	return m
}

func (g *gameObject) WorldMatrix() [16]float32 {
	local := g.LocalMatrix()
	parent := g.Parent()
	if parent == nil {
		return local
	}
	pm := parent.WorldMatrix()
	var out [16]float32
	common.Mul4(out[:], pm[:], local[:])
	return out
}

func (g *gameObject) WorldBounds() (common.Vec3, common.Vec3, bool) {
	m := g.Model()
	if m == nil {
		return common.Vec3{}, common.Vec3{}, false
	}
	world := g.WorldMatrix()
	lo, hi := m.Bounds()
	lo, hi = common.TransformAABB(world[:], lo, hi)
	return lo, hi, true
}

func (g *gameObject) Model() model.Model {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.mdl
}

func (g *gameObject) SetModel(m model.Model) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.mdl = m
}

func (g *gameObject) Material() material.Material {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.mat
}

func (g *gameObject) SetMaterial(m material.Material) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.mat = m
}

func (g *gameObject) OnPointerEnter(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onPointerEnter = fn
}

func (g *gameObject) OnPointerLeave(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onPointerLeave = fn
}

func (g *gameObject) OnClick(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onClick = fn
}

func (g *gameObject) Interactive() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.onPointerEnter != nil || g.onPointerLeave != nil || g.onClick != nil
}

func (g *gameObject) PointerEnter() {
	g.mu.Lock()
	fn := g.onPointerEnter
	g.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (g *gameObject) PointerLeave() {
	g.mu.Lock()
	fn := g.onPointerLeave
	g.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (g *gameObject) Click() {
	g.mu.Lock()
	fn := g.onClick
	g.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (g *gameObject) SetPreload(fn func() error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.preload = fn
}

func (g *gameObject) Preload() error {
	g.mu.Lock()
	fn := g.preload
	g.mu.Unlock()
	if fn == nil {
		return nil
	}
	return fn()
}

func (g *gameObject) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return g.bindGroupProvider
}

func (g *gameObject) GPUUniform() GPUObjectUniform {
	u := GPUObjectUniform{Model: g.WorldMatrix()}
	if mat := g.Material(); mat != nil {
		u.Material = mat.GPUParams()
	}
	return u
}

func (g *gameObject) setParent(parent GameObject) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.parent = parent
}
