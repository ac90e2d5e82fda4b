// Package audio synthesises the ambient drone and navigation blips with the
// Web Audio API.
package audio

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/stellar-navigator/common"
)

// ContextFactory constructs an AudioContext. It returns nil, or panics with
// the browser exception, when audio is unavailable.
type ContextFactory func() *js.Object

// BrowserContext creates an AudioContext from the page's global constructor.
func BrowserContext() *js.Object {
	if js.Global == nil {
		return nil
	}
	ctor := js.Global.Get("AudioContext")
	if ctor == js.Undefined {
		ctor = js.Global.Get("webkitAudioContext")
	}
	if ctor == js.Undefined {
		return nil
	}
	return ctor.New()
}

// Manager owns one audio graph for the page session. The graph is built on
// first use; if that fails every method is a no-op.
type Manager struct {
	factory ContextFactory
	ctx     *js.Object
	master  *js.Object
	tried   bool
	ready   bool

	muted  bool
	volume float64
}

// NewManager creates a manager that will build its graph with factory.
func NewManager(factory ContextFactory) *Manager {
	return &Manager{
		factory: factory,
		volume:  AudioConfig.MasterVolume,
	}
}

// Init builds the graph and starts the ambient drone. Only the first call does
// any work; it reports whether audio is available.
func (m *Manager) Init() bool {
	if m.tried {
		return m.ready
	}
	m.tried = true
	if m.factory == nil {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			common.DebugWarn("Audio not supported:", r)
			m.ctx, m.master, m.ready = nil, nil, false
		}
	}()

	ctx := m.factory()
	if ctx == nil {
		common.DebugWarn("Audio not supported: no AudioContext")
		return false
	}
	m.ctx = ctx
	m.master = ctx.Call("createGain")
	m.master.Call("connect", ctx.Get("destination"))
	m.master.Get("gain").Set("value", m.Gain())
	m.startAmbient()
	m.ready = true
	return true
}

// Available reports whether the graph was built.
func (m *Manager) Available() bool {
	return m.ready
}

// Muted reports the mute state.
func (m *Manager) Muted() bool {
	return m.muted
}

// Volume is the stored master volume, kept while muted.
func (m *Manager) Volume() float64 {
	return m.volume
}

// Gain is the value the master gain node should hold.
func (m *Manager) Gain() float64 {
	if m.muted {
		return 0
	}
	return m.volume
}

// Resume restarts a context suspended by the autoplay policy.
func (m *Manager) Resume() {
	if !m.Init() {
		return
	}
	if m.ctx.Get("state").String() == "suspended" {
		m.ctx.Call("resume")
	}
}

// SetVolume sets the master volume (0.0 to 1.0). While muted the new value is
// stored and applied on unmute.
func (m *Manager) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	m.volume = volume
	m.applyGain()
}

// SetMuted silences the master bus without stopping the drone.
func (m *Manager) SetMuted(muted bool) {
	m.muted = muted
	m.applyGain()
}

// ToggleMute flips the mute state and returns the new one.
func (m *Manager) ToggleMute() bool {
	m.SetMuted(!m.muted)
	return m.muted
}

func (m *Manager) applyGain() {
	if !m.Init() {
		return
	}
	m.master.Get("gain").Call("setValueAtTime", m.Gain(), m.ctx.Get("currentTime").Float())
}

// startAmbient creates the two-voice drone. It runs for the whole session.
func (m *Manager) startAmbient() {
	now := m.ctx.Get("currentTime").Float()

	low := m.ctx.Call("createOscillator")
	low.Set("type", "sine")
	low.Get("frequency").Call("setValueAtTime", AudioConfig.AmbientLowFreq, now)

	high := m.ctx.Call("createOscillator")
	high.Set("type", "sine")
	high.Get("frequency").Call("setValueAtTime", AudioConfig.AmbientHighFreq, now)

	filter := m.ctx.Call("createBiquadFilter")
	filter.Set("type", "lowpass")
	filter.Get("frequency").Call("setValueAtTime", AudioConfig.AmbientFilterCutoff, now)

	gain := m.ctx.Call("createGain")
	gain.Get("gain").Call("setValueAtTime", AudioConfig.AmbientVolume, now)

	low.Call("connect", filter)
	high.Call("connect", filter)
	filter.Call("connect", gain)
	gain.Call("connect", m.master)

	low.Call("start")
	high.Call("start")
}

// PlayNav plays a short falling blip. Each call gets its own oscillator, so
// rapid navigation overlaps rather than retriggers.
func (m *Manager) PlayNav() {
	if !m.Init() || m.muted {
		return
	}
	now := m.ctx.Get("currentTime").Float()
	end := now + AudioConfig.NavDuration

	osc := m.ctx.Call("createOscillator")
	osc.Set("type", "sine")
	osc.Get("frequency").Call("setValueAtTime", AudioConfig.NavStartFreq, now)
	osc.Get("frequency").Call("exponentialRampToValueAtTime", AudioConfig.NavEndFreq, end)

	gain := m.ctx.Call("createGain")
	gain.Get("gain").Call("setValueAtTime", AudioConfig.NavStartGain, now)
	gain.Get("gain").Call("exponentialRampToValueAtTime", AudioConfig.NavEndGain, end)

	osc.Call("connect", gain)
	gain.Call("connect", m.master)

	osc.Call("start")
	osc.Call("stop", end)
}
