package effects

import (
	"math"
	"testing"

	"github.com/simukka/stellar-navigator/common"
)

func TestStarfield_ResizeSeedsLayers(t *testing.T) {
	s := NewStarfield(3, common.NewSeededRNG(5))
	s.Resize(1280, 720)

	if len(s.Stars) != 80+120+160 {
		t.Fatalf("Expected 360 stars, got %d", len(s.Stars))
	}
	for i, st := range s.Stars {
		if st.X < 0 || st.X >= 1280 || st.Y < 0 || st.Y >= 720 {
			t.Fatalf("star %d outside viewport: %+v", i, st)
		}
		l := float64(st.Z - 1)
		if st.R < 0 || st.R >= 1.2+l*0.6 {
			t.Errorf("star %d radius %f out of range for layer %d", i, st.R, st.Z)
		}
		if st.Alpha < 0.5 || st.Alpha >= 1 {
			t.Errorf("star %d alpha %f out of range", i, st.Alpha)
		}
	}
	if s.Stars[0].Z != 1 || s.Stars[len(s.Stars)-1].Z != 3 {
		t.Errorf("Expected depths 1..3, got %d..%d", s.Stars[0].Z, s.Stars[len(s.Stars)-1].Z)
	}
}

func TestStarfield_ResizeRegeneratesEverything(t *testing.T) {
	s := NewStarfield(2, common.NewSeededRNG(5))
	s.Resize(800, 600)
	first := s.Stars[0]

	s.Resize(400, 300)
	if len(s.Stars) != 80+120 {
		t.Fatalf("Expected 200 stars, got %d", len(s.Stars))
	}
	if s.Stars[0] == first {
		t.Error("Expected a fresh field after resize")
	}
	for _, st := range s.Stars {
		if st.X >= 400 || st.Y >= 300 {
			t.Fatalf("star outside resized viewport: %+v", st)
		}
	}
}

func TestStarColor(t *testing.T) {
	tests := []struct {
		z    int
		want string
	}{
		{1, "#fff"},
		{2, "#ffd700"},
		{3, "#6c3fd1"},
	}
	for _, tt := range tests {
		if got := StarColor(tt.z); got != tt.want {
			t.Errorf("StarColor(%d) = %q, expected %q", tt.z, got, tt.want)
		}
	}
}

func TestParticleField_Seed(t *testing.T) {
	f := NewParticleField(0, common.NewSeededRNG(11))
	f.Resize(1000, 500)

	if len(f.Particles) != 48 {
		t.Fatalf("Expected default 48 particles, got %d", len(f.Particles))
	}
	for i, p := range f.Particles {
		if math.Abs(p.VX) > 0.4 || math.Abs(p.VY) > 0.4 {
			t.Errorf("particle %d velocity out of range: %+v", i, p)
		}
		if p.R < 2 || p.R >= 5 {
			t.Errorf("particle %d radius %f out of range", i, p.R)
		}
	}
}

func TestParticleField_StepReflectsWithoutClamping(t *testing.T) {
	f := &ParticleField{Width: 100, Height: 100}
	f.Particles = []Particle{{X: 99.8, Y: 50, VX: 0.4, VY: 0}}

	f.Step()
	p := f.Particles[0]
	if math.Abs(p.X-100.2) > 1e-9 {
		t.Errorf("Expected overshoot to 100.2, got %f", p.X)
	}
	if p.VX != -0.4 {
		t.Errorf("Expected VX inverted to -0.4, got %f", p.VX)
	}

	f.Step()
	if f.Particles[0].X >= 100.2 {
		t.Errorf("Expected particle to head back, got X=%f", f.Particles[0].X)
	}
}

func TestParticleField_StepReflectsTopEdge(t *testing.T) {
	f := &ParticleField{Width: 100, Height: 100}
	f.Particles = []Particle{{X: 50, Y: 0.1, VX: 0, VY: -0.3}}
	f.Step()
	if f.Particles[0].VY != 0.3 {
		t.Errorf("Expected VY inverted to 0.3, got %f", f.Particles[0].VY)
	}
}

func TestParticle_Color(t *testing.T) {
	p := Particle{Alpha: 0.75}
	if got := p.Color(); got != "rgba(108,63,209,0.750)" {
		t.Errorf("Unexpected colour %q", got)
	}
}

func TestCursor_MovePressRelease(t *testing.T) {
	var c Cursor
	c.Move(100, 50)
	if c.Transform != "translate(84px,34px) scale(1)" || c.Opacity != "0.8" {
		t.Fatalf("Unexpected move state %+v", c)
	}

	c.Press()
	if c.Transform != "translate(84px,34px) scale(1) scale(0.7)" || c.Opacity != "0.5" {
		t.Fatalf("Unexpected press state %+v", c)
	}

	c.Release()
	if c.Transform != "translate(84px,34px) scale(1) scale(1)" || c.Opacity != "0.8" {
		t.Errorf("Unexpected release state %+v", c)
	}
}

func TestParallaxOffset(t *testing.T) {
	tests := []struct {
		name           string
		x, y, w, h     float64
		wantDX, wantDY float64
	}{
		{"centre", 500, 400, 1000, 800, 0, 0},
		{"top left", 0, 0, 1000, 800, -16, -16},
		{"bottom right", 1000, 800, 1000, 800, 16, 16},
		{"quarter", 750, 200, 1000, 800, 8, -8},
		{"zero viewport", 10, 10, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := ParallaxOffset(tt.x, tt.y, tt.w, tt.h)
			if math.Abs(dx-tt.wantDX) > 1e-9 || math.Abs(dy-tt.wantDY) > 1e-9 {
				t.Errorf("ParallaxOffset = (%f, %f), expected (%f, %f)", dx, dy, tt.wantDX, tt.wantDY)
			}
		})
	}
}

func TestParallaxTransform(t *testing.T) {
	if got := ParallaxTransform(8, -4.5); got != "translate(8px,-4.5px)" {
		t.Errorf("Unexpected transform %q", got)
	}
}
