package effects

import (
	"math"
	"strconv"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/stellar-navigator/common"
)

// Particle drifts across the viewport and bounces off its edges.
type Particle struct {
	X, Y   float64
	VX, VY float64
	R      float64
	Alpha  float64
}

// Color is the particle fill as a CSS rgba value.
func (p Particle) Color() string {
	return "rgba(" + Palette.ParticleRGB + "," + strconv.FormatFloat(p.Alpha, 'f', 3, 64) + ")"
}

// ParticleField is a fixed-size set of drifting particles.
type ParticleField struct {
	Count     int
	Particles []Particle
	Width     float64
	Height    float64

	rng    *common.SeededRNG
	canvas *js.Object
	ctx    *js.Object
	loop   *common.FrameLoop
}

// NewParticleField creates an unseeded field.
func NewParticleField(count int, rng *common.SeededRNG) *ParticleField {
	if count <= 0 {
		count = 48
	}
	return &ParticleField{Count: count, rng: rng}
}

// Resize discards every particle and seeds a new set for the viewport.
func (f *ParticleField) Resize(w, h float64) {
	f.Width, f.Height = w, h
	f.Particles = make([]Particle, f.Count)
	for i := range f.Particles {
		f.Particles[i] = Particle{
			X:     f.rng.Float() * w,
			Y:     f.rng.Float() * h,
			VX:    (f.rng.Float() - 0.5) * 0.8,
			VY:    (f.rng.Float() - 0.5) * 0.8,
			R:     2 + f.rng.Float()*3,
			Alpha: 0.5 + f.rng.Float()*0.5,
		}
	}
}

// Step moves every particle by its velocity. A particle that ends outside the
// viewport has that velocity component inverted; position is not clamped.
func (f *ParticleField) Step() {
	for i := range f.Particles {
		p := &f.Particles[i]
		p.X += p.VX
		p.Y += p.VY
		if p.X < 0 || p.X > f.Width {
			p.VX = -p.VX
		}
		if p.Y < 0 || p.Y > f.Height {
			p.VY = -p.VY
		}
	}
}

// Draw paints the particles onto a 2D context.
func (f *ParticleField) Draw(ctx *js.Object) {
	ctx.Call("clearRect", 0, 0, f.Width, f.Height)
	for _, p := range f.Particles {
		ctx.Call("save")
		ctx.Call("beginPath")
		ctx.Call("arc", p.X, p.Y, p.R, 0, 2*math.Pi)
		ctx.Set("fillStyle", p.Color())
		ctx.Set("shadowColor", Palette.ParticleGlow)
		ctx.Set("shadowBlur", Palette.ParticleBlur)
		ctx.Call("fill")
		ctx.Call("restore")
	}
}

// Attach binds the field to a canvas and starts animating it.
func (f *ParticleField) Attach(canvas *js.Object) {
	f.canvas = canvas
	f.ctx = canvas.Call("getContext", "2d")
	f.fit()
	js.Global.Call("addEventListener", "resize", f.fit)

	f.loop = common.NewFrameLoop(func(float64) {
		f.Draw(f.ctx)
		f.Step()
	})
	f.loop.Start()
}

// Stop halts the animation.
func (f *ParticleField) Stop() {
	if f.loop != nil {
		f.loop.Stop()
	}
}

func (f *ParticleField) fit() {
	w, h := fitCanvas(f.canvas)
	f.Resize(w, h)
}
