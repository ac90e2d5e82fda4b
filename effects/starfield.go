package effects

import (
	"math"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/stellar-navigator/common"
)

// Star is one point of the starfield. Z is the depth layer, starting at 1.
type Star struct {
	X, Y  float64
	R     float64
	Alpha float64
	Z     int
}

// Starfield is a static, layered field of glowing stars.
type Starfield struct {
	Layers int
	Stars  []Star
	Width  float64
	Height float64

	rng    *common.SeededRNG
	canvas *js.Object
	ctx    *js.Object
	loop   *common.FrameLoop
}

// NewStarfield creates an unseeded field; call Resize or Attach to populate it.
func NewStarfield(layers int, rng *common.SeededRNG) *Starfield {
	if layers <= 0 {
		layers = 3
	}
	return &Starfield{Layers: layers, rng: rng}
}

// StarsInLayer is how many stars layer l (0-based) holds.
func StarsInLayer(l int) int {
	return 80 + l*40
}

// Resize discards every star and seeds a new field for the given viewport.
func (s *Starfield) Resize(w, h float64) {
	s.Width, s.Height = w, h
	total := 0
	for l := 0; l < s.Layers; l++ {
		total += StarsInLayer(l)
	}
	s.Stars = make([]Star, 0, total)
	for l := 0; l < s.Layers; l++ {
		fl := float64(l)
		for i := 0; i < StarsInLayer(l); i++ {
			s.Stars = append(s.Stars, Star{
				X:     s.rng.Float() * w,
				Y:     s.rng.Float() * h,
				Z:     l + 1,
				R:     s.rng.Float() * (1.2 + fl*0.6),
				Alpha: 0.5 + s.rng.Float()*0.5,
			})
		}
	}
}

// StarColor picks the fill colour for a depth layer.
func StarColor(z int) string {
	switch z {
	case 1:
		return Palette.StarNear
	case 2:
		return Palette.StarMid
	default:
		return Palette.StarFar
	}
}

// Draw paints the field onto a 2D context.
func (s *Starfield) Draw(ctx *js.Object) {
	ctx.Call("clearRect", 0, 0, s.Width, s.Height)
	for _, st := range s.Stars {
		ctx.Call("save")
		ctx.Set("globalAlpha", st.Alpha)
		ctx.Call("beginPath")
		ctx.Call("arc", st.X, st.Y, st.R, 0, 2*math.Pi)
		ctx.Set("fillStyle", StarColor(st.Z))
		ctx.Set("shadowColor", Palette.StarGlow)
		ctx.Set("shadowBlur", Palette.StarBlurPerDepth*float64(st.Z))
		ctx.Call("fill")
		ctx.Call("restore")
	}
}

// Attach binds the field to a canvas, sizes it to the window and starts the
// render loop. The field is reseeded on every window resize.
func (s *Starfield) Attach(canvas *js.Object) {
	s.canvas = canvas
	s.ctx = canvas.Call("getContext", "2d")
	s.fit()
	js.Global.Call("addEventListener", "resize", s.fit)

	s.loop = common.NewFrameLoop(func(float64) { s.Draw(s.ctx) })
	s.loop.Start()
}

// Stop halts the render loop.
func (s *Starfield) Stop() {
	if s.loop != nil {
		s.loop.Stop()
	}
}

func (s *Starfield) fit() {
	w, h := fitCanvas(s.canvas)
	s.Resize(w, h)
}

// fitCanvas sizes a canvas to the window and returns the new size.
func fitCanvas(canvas *js.Object) (float64, float64) {
	w := js.Global.Get("innerWidth").Float()
	h := js.Global.Get("innerHeight").Float()
	canvas.Set("width", w)
	canvas.Set("height", h)
	return w, h
}
