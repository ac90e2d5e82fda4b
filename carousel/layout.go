package carousel

import (
	"math"
	"strconv"
)

// Placement is where one slide sits on the ring for a given active index.
type Placement struct {
	Index    int
	AngleDeg float64
	X        float64
	Z        float64
	Active   bool
}

// Transform renders the placement as a CSS transform.
func (p Placement) Transform() string {
	return "translateX(" + formatFloat(p.X) + "px) translateZ(" + formatFloat(p.Z) +
		"px) rotateY(" + formatFloat(p.AngleDeg) + "deg)"
}

// AngleStep is the angular spacing between neighbouring slides.
func AngleStep(count int) float64 {
	return 360 / float64(count)
}

// Layout projects count slides onto a ring of the given radius, with the
// active slide facing the viewer at angle 0.
func Layout(count, active int, radius float64) []Placement {
	step := AngleStep(count)
	out := make([]Placement, count)
	for i := 0; i < count; i++ {
		deg := float64(i-active) * step
		rad := deg * math.Pi / 180
		out[i] = Placement{
			Index:    i,
			AngleDeg: deg,
			X:        math.Sin(rad) * radius,
			Z:        math.Cos(rad) * radius,
			Active:   i == active,
		}
	}
	return out
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 3, 64)
}
