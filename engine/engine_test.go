package engine

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-portfolio/config"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/camera"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/game_object"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/model"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/scene"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clickable(name string, events *[]string) game_object.GameObject {
	obj := game_object.NewGameObject(
		game_object.WithName(name),
		game_object.WithModel(model.NewBox(2, 2, 2)),
		game_object.WithMaterial(material.NewMaterial()),
	)
	obj.OnClick(func() { *events = append(*events, name+":click") })
	obj.OnPointerEnter(func() { *events = append(*events, name+":enter") })
	obj.OnPointerLeave(func() { *events = append(*events, name+":leave") })
	return obj
}

// layered builds a world scene with an orbit controller and a HUD scene above it, each holding one
// clickable box in the middle of an 800x800 viewport.
func layered(events *[]string) (Engine, *inputRouter, scene.Scene, scene.Scene) {
	world := scene.NewScene("world", camera.NewCamera(camera.WithController(camera.NewCameraController())),
		scene.WithObjects(clickable("world", events)))
	hud := scene.NewScene("hud", camera.NewCamera(), scene.WithOrder(10),
		scene.WithObjects(clickable("hud", events)))
	e := NewEngine(WithScene(hud), WithScene(world))
	router := newInputRouter(e.Scenes, func() (int, int) { return 800, 800 })
	return e, router, world, hud
}

func TestScenesSortedByOrder(t *testing.T) {
	overlay := scene.NewScene("overlay", camera.NewCamera(), scene.WithOrder(20))
	hud := scene.NewScene("hud", camera.NewCamera(), scene.WithOrder(10))
	world := scene.NewScene("world", camera.NewCamera())

	e := NewEngine(WithScene(overlay))
	e.AddScene(world)
	e.AddScene(hud)
	e.AddScene(nil)

	names := func() []string {
		var out []string
		for _, s := range e.Scenes() {
			out = append(out, s.Name())
		}
		return out
	}
	assert.Equal(t, []string{"world", "hud", "overlay"}, names())

	replacement := scene.NewScene("hud", camera.NewCamera(), scene.WithOrder(30))
	e.AddScene(replacement)
	assert.Equal(t, []string{"world", "overlay", "hud"}, names())
	assert.Same(t, replacement, e.Scene("hud"))

	e.RemoveScene("overlay")
	e.RemoveScene("missing")
	assert.Equal(t, []string{"world", "hud"}, names())
	assert.Nil(t, e.Scene("overlay"))
}

func TestTickAdvancesActiveScenesBeforeCallback(t *testing.T) {
	var order []string
	world := scene.NewScene("world", camera.NewCamera())
	hud := scene.NewScene("hud", camera.NewCamera(), scene.WithOrder(1))
	paused := scene.NewScene("paused", camera.NewCamera(), scene.WithOrder(2), scene.WithActive(false))
	world.OnFrame(func(float32, float32) { order = append(order, "world") })
	hud.OnFrame(func(float32, float32) { order = append(order, "hud") })
	paused.OnFrame(func(float32, float32) { order = append(order, "paused") })

	e := NewEngine(WithScene(paused), WithScene(hud), WithScene(world))
	e.SetTickCallback(func(float32) { order = append(order, "callback") })
	e.Tick(1.0 / 60)

	assert.Equal(t, []string{"world", "hud", "callback"}, order)
	assert.InDelta(t, 1.0/60, world.Elapsed(), 1e-6)
	assert.Zero(t, paused.Elapsed())
}

func TestClickGoesToTopScene(t *testing.T) {
	var events []string
	_, router, _, hud := layered(&events)

	router.down(window.MouseButtonLeft, 400, 400)
	assert.True(t, router.up(window.MouseButtonLeft, 400, 400))
	assert.Equal(t, []string{"hud:click"}, events)

	events = nil
	hud.SetActive(false)
	router.down(window.MouseButtonLeft, 400, 400)
	assert.True(t, router.up(window.MouseButtonLeft, 400, 400))
	assert.Equal(t, []string{"world:click"}, events)

	events = nil
	router.down(window.MouseButtonLeft, 5, 5)
	assert.False(t, router.up(window.MouseButtonLeft, 5, 5))
	assert.False(t, router.up(window.MouseButtonRight, 400, 400))
	assert.Empty(t, events)
}

func TestHoverHandsOffBetweenScenes(t *testing.T) {
	var events []string
	_, router, world, hud := layered(&events)

	hud.SetActive(false)
	router.move(400, 400)
	hud.SetActive(true)
	router.move(401, 400)
	router.move(5, 5)

	assert.Equal(t, []string{"world:enter", "hud:enter", "world:leave", "hud:leave"}, events)
	assert.Nil(t, world.Hovered())
	assert.Nil(t, hud.Hovered())

	events = nil
	router.move(400, 400)
	router.leave()
	assert.Equal(t, []string{"hud:enter", "hud:leave"}, events)
}

func TestDragFromEmptySpaceOrbits(t *testing.T) {
	var events []string
	_, router, world, _ := layered(&events)
	ctrl := world.Camera().Controller()
	x0, _, _ := ctrl.Position()

	router.down(window.MouseButtonLeft, 5, 5)
	router.move(6, 5)
	router.move(60, 5)
	world.Tick(0.2)
	assert.False(t, router.up(window.MouseButtonLeft, 60, 5), "a drag is not a click")

	x1, _, _ := ctrl.Position()
	assert.NotEqual(t, x0, x1, "drag rotated the orbit camera")
	assert.Empty(t, events)
}

func TestPressOnObjectDoesNotOrbit(t *testing.T) {
	var events []string
	_, router, world, _ := layered(&events)
	ctrl := world.Camera().Controller()

	router.down(window.MouseButtonLeft, 400, 400)
	router.move(420, 400)
	world.Tick(0.2)
	assert.True(t, router.up(window.MouseButtonLeft, 420, 400))

	x, y, z := ctrl.Position()
	assert.Equal(t, [3]float32{0, 0, 10}, [3]float32{x, y, z})
	assert.Contains(t, events, "hud:click")
}

func TestScrollZooms(t *testing.T) {
	var events []string
	_, router, world, _ := layered(&events)
	ctrl := world.Camera().Controller()

	router.scroll(2)
	for i := 0; i < 60; i++ {
		world.Tick(1.0 / 60)
	}
	assert.Less(t, ctrl.Radius(), float32(10), "scrolling up zooms in")
}

func TestFrameLimit(t *testing.T) {
	assert.Zero(t, frameLimit(0))
	assert.Zero(t, frameLimit(-5))
	assert.Equal(t, 10*time.Millisecond, frameLimit(100))
}

func TestWithConfig(t *testing.T) {
	e := NewEngine(WithConfig(config.EngineConfig{TickRate: 120, FrameLimit: 50, Profiling: true})).(*engine)

	assert.Equal(t, time.Second/120, e.engineTickRate)
	assert.Equal(t, 20*time.Millisecond, e.renderFrameLimit)
	assert.True(t, e.profilingEnabled)

	e = NewEngine(WithConfig(config.EngineConfig{})).(*engine)
	assert.Equal(t, time.Second/60, e.engineTickRate)
	assert.Zero(t, e.renderFrameLimit)
}

func TestHeadlessRunStopsOnQuit(t *testing.T) {
	e := NewEngine(WithTickRate(240))
	ticks := make(chan struct{}, 1)
	e.SetTickCallback(func(float32) {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	select {
	case <-ticks:
	case <-time.After(2 * time.Second):
		t.Fatal("tick loop never ran")
	}
	e.SetTickRate(120)
	e.Quit()
	e.Quit()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.Fail(t, "Run did not return after Quit")
	}
}
