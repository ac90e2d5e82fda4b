// Package perf samples frame rate and JS heap usage once per second.
package perf

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/stellar-navigator/common"
)

// Window is the sampling period in milliseconds.
const Window = 1000

// Sample is one window's measurement.
type Sample struct {
	FPS       int
	HeapMB    float64
	HeapKnown bool
}

func (s Sample) String() string {
	mem := "N/A"
	if s.HeapKnown {
		mem = strconv.FormatFloat(s.HeapMB, 'f', 1, 64)
	}
	return "FPS: " + strconv.Itoa(s.FPS) + " | Memory: " + mem + " MB"
}

// HeapFunc reports used heap in bytes, or false when the platform hides it.
type HeapFunc func() (float64, bool)

// BrowserHeap reads performance.memory.usedJSHeapSize where supported.
func BrowserHeap() (float64, bool) {
	if js.Global == nil {
		return 0, false
	}
	mem := js.Global.Get("performance").Get("memory")
	if mem == js.Undefined || mem == nil {
		return 0, false
	}
	return mem.Get("usedJSHeapSize").Float(), true
}

// Monitor counts frames and produces a Sample per window. Windows are
// independent; nothing is averaged across them.
type Monitor struct {
	heap   HeapFunc
	frames int
	last   float64
	sample Sample

	el   *js.Object
	loop *common.FrameLoop
}

// NewMonitor creates a monitor whose first window starts at start (ms).
func NewMonitor(start float64, heap HeapFunc) *Monitor {
	if heap == nil {
		heap = func() (float64, bool) { return 0, false }
	}
	return &Monitor{heap: heap, last: start}
}

// Last is the most recent sample.
func (m *Monitor) Last() Sample {
	return m.sample
}

// Frame records one frame at now (ms). It returns a fresh sample when the
// window closed on this frame.
func (m *Monitor) Frame(now float64) (Sample, bool) {
	m.frames++
	if now-m.last < Window {
		return Sample{}, false
	}
	s := Sample{FPS: m.frames}
	if bytes, ok := m.heap(); ok {
		s.HeapMB = bytes / 1048576
		s.HeapKnown = true
	}
	m.frames = 0
	m.last = now
	m.sample = s
	return s, true
}

// Start writes samples into el's text until Stop.
func (m *Monitor) Start(el *js.Object) {
	m.el = el
	m.el.Set("textContent", m.sample.String())
	if m.loop == nil {
		m.loop = common.NewFrameLoop(func(now float64) {
			if s, ok := m.Frame(now); ok {
				m.el.Set("textContent", s.String())
			}
		})
	}
	m.loop.Start()
}

// Stop halts sampling.
func (m *Monitor) Stop() {
	if m.loop != nil {
		m.loop.Stop()
	}
}
