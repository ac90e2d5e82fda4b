// Package easing maps normalized time in [0, 1] to eased progress.
package easing

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Func maps t in [0, 1] to eased progress.
type Func func(t float64) float64

// EaseInOut accelerates through the first half and decelerates through the second.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// Cubic decelerates towards the end.
func Cubic(t float64) float64 {
	t--
	return t*t*t + 1
}

// Elastic overshoots and settles at 1.
func Elastic(t float64) float64 {
	return math.Pow(2, -10*t)*math.Sin((t-0.075)*2*math.Pi/0.3) + 1
}

var table = map[string]Func{
	"easeInOut": EaseInOut,
	"cubic":     Cubic,
	"elastic":   Elastic,
}

// ByName looks up an easing function by its table name.
func ByName(name string) (Func, bool) {
	fn, ok := table[name]
	return fn, ok
}

// Spring follows a target value one frame at a time, damped so it does not
// oscillate around the target for long.
type Spring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewSpring creates a spring stepped at fps frames per second.
func NewSpring(fps int, frequency, damping float64) *Spring {
	return &Spring{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Step advances one frame towards target and returns the new position.
func (s *Spring) Step(target float64) float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	return s.pos
}

// Snap jumps to v and stops all motion.
func (s *Spring) Snap(v float64) {
	s.pos = v
	s.vel = 0
}

// Value returns the current position.
func (s *Spring) Value() float64 {
	return s.pos
}
