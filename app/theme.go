// Package app wires the carousel, effects, audio and readout to the page.
package app

import "time"

// Theme holds the page styling switched at runtime.
var Theme = struct {
	DarkClass       string
	DarkBackground  string
	LightBackground string

	// Switcher icon shown while each theme is active
	DarkIcon  string
	LightIcon string

	MutedIcon   string
	UnmutedIcon string

	ActiveClass        string
	ReducedMotionClass string
}{
	DarkClass:       "dark-theme",
	DarkBackground:  "linear-gradient(135deg,#1a1a2f 0%,#3f2fd1 100%)",
	LightBackground: "var(--gradient)",

	DarkIcon:  "☀️",
	LightIcon: "🌙",

	MutedIcon:   "🔇",
	UnmutedIcon: "🔊",

	ActiveClass:        "active",
	ReducedMotionClass: "reduced-motion",
}

// PageConfig names the page elements and holds the bootstrap timings.
var PageConfig = struct {
	LoadingScreenID string
	LoadingBarID    string
	LoadingTextID   string
	StarfieldID     string
	ParticlesID     string
	CursorID        string
	ContainerID     string
	CarouselID      string
	DotNavID        string
	PrevID          string
	NextID          string
	AutoplayID      string
	ShuffleID       string
	ResetID         string
	SpeedID         string
	ThemeID         string
	MuteID          string
	VolumeID        string
	PerfID          string

	LoadingTick    time.Duration
	LoadingStepMax float64
	LoadingFade    time.Duration
	StartDelay     time.Duration

	// Slide transition length; matches the stylesheet
	Transition time.Duration

	RadiusVar  string
	StarLayers int
	Particles  int
}{
	LoadingScreenID: "loading-screen",
	LoadingBarID:    "loading-bar",
	LoadingTextID:   "loading-text",
	StarfieldID:     "starfield",
	ParticlesID:     "particles",
	CursorID:        "custom-cursor",
	ContainerID:     "carousel-container",
	CarouselID:      "stellar-carousel",
	DotNavID:        "dot-nav",
	PrevID:          "prev-btn",
	NextID:          "next-btn",
	AutoplayID:      "autoplay-btn",
	ShuffleID:       "shuffle-btn",
	ResetID:         "reset-btn",
	SpeedID:         "speed-select",
	ThemeID:         "theme-switcher",
	MuteID:          "mute-btn",
	VolumeID:        "volume-slider",
	PerfID:          "perf-monitor",

	LoadingTick:    180 * time.Millisecond,
	LoadingStepMax: 18,
	LoadingFade:    700 * time.Millisecond,
	StartDelay:     400 * time.Millisecond,

	Transition: 600 * time.Millisecond,

	RadiusVar:  "--carousel-radius",
	StarLayers: 3,
	Particles:  48,
}

// Look is what the page shows for one theme.
type Look struct {
	Dark       bool
	Background string
	Icon       string
}

// ThemeSwitch flips between the light and dark themes. The page starts light.
type ThemeSwitch struct {
	dark bool
}

// Dark reports whether the dark theme is active.
func (t *ThemeSwitch) Dark() bool {
	return t.dark
}

// Toggle switches theme and returns the new look.
func (t *ThemeSwitch) Toggle() Look {
	t.dark = !t.dark
	return t.Look()
}

// Look returns the current look.
func (t *ThemeSwitch) Look() Look {
	if t.dark {
		return Look{Dark: true, Background: Theme.DarkBackground, Icon: Theme.DarkIcon}
	}
	return Look{Background: Theme.LightBackground, Icon: Theme.LightIcon}
}

// MuteIcon is the mute button label for a mute state.
func MuteIcon(muted bool) string {
	if muted {
		return Theme.MutedIcon
	}
	return Theme.UnmutedIcon
}
