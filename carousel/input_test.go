package carousel

import "testing"

func TestKeyIntent(t *testing.T) {
	tests := []struct {
		name string
		key  string
		mods Modifiers
		want Intent
		ok   bool
	}{
		{"right arrow", "ArrowRight", Modifiers{}, Next(), true},
		{"left arrow", "ArrowLeft", Modifiers{}, Prev(), true},
		{"home", "Home", Modifiers{}, GoTo(0), true},
		{"end", "End", Modifiers{}, GoTo(7), true},
		{"space", " ", Modifiers{}, ToggleAutoplay(), true},
		{"ctrl arrow ignored", "ArrowRight", Modifiers{Ctrl: true}, Intent{}, false},
		{"alt home ignored", "Home", Modifiers{Alt: true}, Intent{}, false},
		{"meta space ignored", " ", Modifiers{Meta: true}, Intent{}, false},
		{"other key", "a", Modifiers{}, Intent{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyIntent(tt.key, tt.mods, 8)
			if ok != tt.ok || got != tt.want {
				t.Errorf("KeyIntent(%q) = %v,%v expected %v,%v", tt.key, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestWheelIntent(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   Intent
		ok     bool
	}{
		{"vertical down", 10, 100, Next(), true},
		{"vertical up", 10, -100, Prev(), true},
		{"horizontal dominant", 100, 10, Intent{}, false},
		{"equal magnitude", 50, 50, Intent{}, false},
		{"no movement", 0, 0, Intent{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := WheelIntent(tt.dx, tt.dy)
			if ok != tt.ok || got != tt.want {
				t.Errorf("WheelIntent(%v, %v) = %v,%v expected %v,%v", tt.dx, tt.dy, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTouchTracker_Swipes(t *testing.T) {
	tests := []struct {
		name string
		dx   float64
		want Intent
		ok   bool
	}{
		{"rightward swipe goes back", 50, Prev(), true},
		{"leftward swipe goes forward", -50, Next(), true},
		{"short swipe ignored", 20, Intent{}, false},
		{"exactly threshold ignored", 40, Intent{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr TouchTracker
			tr.Start(200, 300)
			tr.Move(200+tt.dx/2, 310)
			tr.Move(200+tt.dx, 320)
			got, ok := tr.End()
			if ok != tt.ok || got != tt.want {
				t.Errorf("End() = %v,%v expected %v,%v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTouchTracker_TapIsIgnored(t *testing.T) {
	var tr TouchTracker
	tr.Start(10, 10)
	if _, ok := tr.End(); ok {
		t.Error("Expected a touch without movement to produce no intent")
	}
}

func TestTouchTracker_VerticalDragCrossingThresholdNavigates(t *testing.T) {
	var tr TouchTracker
	tr.Start(100, 0)
	tr.Move(55, 400)
	if got, ok := tr.End(); !ok || got != Next() {
		t.Errorf("Expected next, got %v,%v", got, ok)
	}
}

func TestTouchTracker_EndConsumesGesture(t *testing.T) {
	var tr TouchTracker
	tr.Start(0, 0)
	tr.Move(-80, 0)
	tr.End()
	if _, ok := tr.End(); ok {
		t.Error("Expected a second End without a new gesture to be ignored")
	}
}

func TestDragTracker_PrimaryButtonOnly(t *testing.T) {
	var d DragTracker
	if d.Down(2, 100) {
		t.Fatal("Expected right button to be ignored")
	}
	if _, ok := d.Move(0); ok {
		t.Error("Expected no intent without an active drag")
	}
}

func TestDragTracker_FiresOnceAtThreshold(t *testing.T) {
	var d DragTracker
	d.Down(0, 100)

	if _, ok := d.Move(120); ok {
		t.Fatal("Expected no intent below threshold")
	}
	got, ok := d.Move(140)
	if !ok || got != Prev() {
		t.Fatalf("Expected prev at +40px, got %v,%v", got, ok)
	}
	if d.Dragging() {
		t.Error("Expected drag to end after navigating")
	}
	if _, ok := d.Move(300); ok {
		t.Error("Expected no further intent after the drag ended")
	}
}

func TestDragTracker_LeftDragAndRelease(t *testing.T) {
	var d DragTracker
	d.Down(0, 100)
	if got, ok := d.Move(60); !ok || got != Next() {
		t.Errorf("Expected next at -40px, got %v,%v", got, ok)
	}

	d.Down(0, 100)
	d.Up()
	if _, ok := d.Move(0); ok {
		t.Error("Expected release to end the drag")
	}
}
