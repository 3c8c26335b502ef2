package engine

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-portfolio/engine/scene"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/window"
)

// dragThreshold is how far in pixels the pointer must travel with the left button held before
// the press becomes an orbit drag instead of a click.
const dragThreshold = 4

// inputRouter turns raw window events into scene hover, click, orbit and zoom.
//
// Scenes are offered pointer events from the highest order down. The first scene with an
// interactive object under the pointer takes the event and every scene below it loses hover.
// Presses that start on empty space orbit the camera of the lowest scene that has a controller.
type inputRouter struct {
	mu *sync.Mutex

	scenes func() []scene.Scene
	size   func() (int, int)

	pressed      bool
	dragging     bool
	pressOnHit   bool
	pressX       float32
	pressY       float32
	lastX, lastY float32
}

func newInputRouter(scenes func() []scene.Scene, size func() (int, int)) *inputRouter {
	return &inputRouter{
		mu:     &sync.Mutex{},
		scenes: scenes,
		size:   size,
	}
}

// topDown returns the active scenes in descending order.
func (r *inputRouter) topDown() []scene.Scene {
	all := r.scenes()
	out := make([]scene.Scene, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].Active() {
			out = append(out, all[i])
		}
	}
	return out
}

// orbitTarget returns the lowest active scene whose camera has a controller.
func (r *inputRouter) orbitTarget() scene.Scene {
	for _, s := range r.scenes() {
		if s.Active() && s.Camera().Controller() != nil {
			return s
		}
	}
	return nil
}

func (r *inputRouter) move(x, y float32) {
	r.mu.Lock()
	dx, dy := x-r.lastX, y-r.lastY
	r.lastX, r.lastY = x, y
	if r.pressed && !r.pressOnHit && !r.dragging {
		ox, oy := x-r.pressX, y-r.pressY
		if ox*ox+oy*oy >= dragThreshold*dragThreshold {
			r.dragging = true
		}
	}
	dragging := r.dragging
	r.mu.Unlock()

	if dragging {
		if s := r.orbitTarget(); s != nil {
			s.Camera().Controller().Rotate(dx, dy)
		}
		return
	}
	r.hover(x, y)
}

// hover offers the pointer to each scene from the top down.
func (r *inputRouter) hover(x, y float32) {
	w, h := r.size()
	taken := false
	for _, s := range r.topDown() {
		if taken {
			s.PointerExit()
			continue
		}
		if s.PointerMove(x, y, w, h) != nil {
			taken = true
		}
	}
}

func (r *inputRouter) down(button window.MouseButton, x, y float32) {
	if button != window.MouseButtonLeft {
		return
	}
	w, h := r.size()
	hit := false
	for _, s := range r.topDown() {
		if s.Pick(x, y, w, h) != nil {
			hit = true
			break
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.pressed = true
	r.dragging = false
	r.pressOnHit = hit
	r.pressX, r.pressY = x, y
	r.lastX, r.lastY = x, y
}

// up finishes a press. A press that did not turn into a drag is a click.
//
// Returns:
//   - bool: true if a scene handled the click
func (r *inputRouter) up(button window.MouseButton, x, y float32) bool {
	if button != window.MouseButtonLeft {
		return false
	}
	r.mu.Lock()
	wasPressed, wasDragging := r.pressed, r.dragging
	r.pressed, r.dragging, r.pressOnHit = false, false, false
	r.mu.Unlock()

	if !wasPressed || wasDragging {
		return false
	}
	w, h := r.size()
	for _, s := range r.topDown() {
		if s.Click(x, y, w, h) {
			return true
		}
	}
	return false
}

func (r *inputRouter) scroll(delta float32) {
	if s := r.orbitTarget(); s != nil {
		s.Camera().Controller().Zoom(delta)
	}
}

func (r *inputRouter) leave() {
	r.mu.Lock()
	r.pressed, r.dragging = false, false
	r.mu.Unlock()
	for _, s := range r.topDown() {
		s.PointerExit()
	}
}
