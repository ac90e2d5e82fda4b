// Package carousel holds the ring carousel state machine: the slide sequence,
// the active index, autoplay, and the projection of slides onto the ring.
package carousel

import "time"

// Slide is one navigable content unit.
type Slide struct {
	Title string
	Icon  string
	Desc  string
}

// Label is the accessible name of the slide.
func (s Slide) Label() string {
	return s.Title + ": " + s.Desc
}

// DefaultSlides is the fixed slide list the page starts with.
var DefaultSlides = []Slide{
	{Title: "Mission Alpha", Icon: "🚀", Desc: "Launch sequence and space journey"},
	{Title: "Galaxy Node", Icon: "🌌", Desc: "Galactic networks and star systems"},
	{Title: "Nebula Station", Icon: "🛸", Desc: "Research facility in stellar nursery"},
	{Title: "Stellar Core", Icon: "⭐", Desc: "Heart of stars and cosmic fusion"},
	{Title: "Terra Nova", Icon: "🌍", Desc: "New world discovery"},
	{Title: "Lunar Base", Icon: "🌙", Desc: "Moon outpost establishment"},
	{Title: "Observatory", Icon: "🔭", Desc: "Deep space observation deck"},
	{Title: "Cosmic Return", Icon: "🌠", Desc: "Journey completion and wisdom"},
}

// Speed is the autoplay pace.
type Speed string

const (
	SpeedSlow   Speed = "slow"
	SpeedNormal Speed = "normal"
	SpeedFast   Speed = "fast"
)

// Interval is the autoplay period for the speed.
func (s Speed) Interval() time.Duration {
	switch s {
	case SpeedSlow:
		return 3200 * time.Millisecond
	case SpeedFast:
		return 1200 * time.Millisecond
	default:
		return 2000 * time.Millisecond
	}
}

// ParseSpeed reads a speed selector value. Unknown values mean normal.
func ParseSpeed(v string) Speed {
	switch Speed(v) {
	case SpeedSlow, SpeedFast:
		return Speed(v)
	default:
		return SpeedNormal
	}
}
