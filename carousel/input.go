package carousel

import "math"

// Swipe and drag distances, in pixels, that count as a navigation gesture.
const (
	SwipeThreshold = 40
	DragThreshold  = 32
)

// Modifiers is the held modifier state of a key event.
type Modifiers struct {
	Alt, Ctrl, Meta bool
}

func (m Modifiers) any() bool {
	return m.Alt || m.Ctrl || m.Meta
}

// KeyIntent maps a KeyboardEvent.key value to an intent. Keys pressed with a
// modifier are ignored so browser shortcuts keep working.
func KeyIntent(key string, mods Modifiers, count int) (Intent, bool) {
	if mods.any() {
		return Intent{}, false
	}
	switch key {
	case "ArrowRight":
		return Next(), true
	case "ArrowLeft":
		return Prev(), true
	case "Home":
		return GoTo(0), true
	case "End":
		return GoTo(count - 1), true
	case " ":
		return ToggleAutoplay(), true
	}
	return Intent{}, false
}

// WheelIntent navigates on vertical-dominant wheel input only.
func WheelIntent(deltaX, deltaY float64) (Intent, bool) {
	if math.Abs(deltaY) <= math.Abs(deltaX) {
		return Intent{}, false
	}
	if deltaY > 0 {
		return Next(), true
	}
	return Prev(), true
}

// swipeIntent turns a horizontal displacement into prev (rightward) or next
// (leftward) once it exceeds threshold.
func swipeIntent(dx, threshold float64) (Intent, bool) {
	if math.Abs(dx) <= threshold {
		return Intent{}, false
	}
	if dx > 0 {
		return Prev(), true
	}
	return Next(), true
}

// TouchTracker recognises horizontal swipes between touchstart and the last
// touchmove. Vertical motion is recorded but not used.
type TouchTracker struct {
	startX, startY float64
	endX, endY     float64
	moved          bool
}

// Start records the first touch point.
func (t *TouchTracker) Start(x, y float64) {
	t.startX, t.startY = x, y
	t.moved = false
}

// Move records the latest touch point.
func (t *TouchTracker) Move(x, y float64) {
	t.moved = true
	t.endX, t.endY = x, y
}

// End reports the swipe intent, if any. A touch that never moved is a tap.
func (t *TouchTracker) End() (Intent, bool) {
	if !t.moved {
		return Intent{}, false
	}
	t.moved = false
	return swipeIntent(t.endX-t.startX, SwipeThreshold)
}

// DragTracker recognises primary-button mouse drags. A drag ends either when
// it crosses the threshold, yielding one intent, or on release.
type DragTracker struct {
	startX   float64
	dragging bool
}

// Dragging reports whether a drag is in progress.
func (d *DragTracker) Dragging() bool {
	return d.dragging
}

// Down starts a drag for the primary button. It reports whether a drag started.
func (d *DragTracker) Down(button int, x float64) bool {
	if button != 0 {
		return false
	}
	d.startX = x
	d.dragging = true
	return true
}

// Move reports the drag intent once the pointer passes the threshold.
func (d *DragTracker) Move(x float64) (Intent, bool) {
	if !d.dragging {
		return Intent{}, false
	}
	in, ok := swipeIntent(x-d.startX, DragThreshold)
	if ok {
		d.dragging = false
	}
	return in, ok
}

// Up ends the drag.
func (d *DragTracker) Up() {
	d.dragging = false
}
