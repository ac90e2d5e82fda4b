package common

import (
	"time"

	"github.com/gopherjs/gopherjs/js"
)

// FrameLoop drives a callback from requestAnimationFrame until stopped.
type FrameLoop struct {
	fn      func(now float64)
	frameID int
	running bool
}

// NewFrameLoop creates a loop that calls fn with the frame timestamp in ms.
func NewFrameLoop(fn func(now float64)) *FrameLoop {
	return &FrameLoop{fn: fn}
}

// Running reports whether the loop is scheduled.
func (l *FrameLoop) Running() bool {
	return l.running
}

// Start schedules the first frame. Starting a running loop does nothing.
func (l *FrameLoop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.frameID = js.Global.Call("requestAnimationFrame", l.tick).Int()
}

// Stop cancels the pending frame.
func (l *FrameLoop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	js.Global.Call("cancelAnimationFrame", l.frameID)
	l.frameID = 0
}

func (l *FrameLoop) tick(now float64) {
	if !l.running {
		return
	}
	// Schedule next frame before drawing so a slow draw does not drop the loop
	l.frameID = js.Global.Call("requestAnimationFrame", l.tick).Int()
	l.fn(now)
}

// BrowserScheduler runs callbacks on window timers.
type BrowserScheduler struct{}

// Every calls fn each d until the returned cancel func is called.
func (BrowserScheduler) Every(d time.Duration, fn func()) func() {
	id := js.Global.Call("setInterval", fn, d.Milliseconds()).Int()
	return once(func() { js.Global.Call("clearInterval", id) })
}

// After calls fn once after d unless cancelled first.
func (BrowserScheduler) After(d time.Duration, fn func()) func() {
	id := js.Global.Call("setTimeout", fn, d.Milliseconds()).Int()
	return once(func() { js.Global.Call("clearTimeout", id) })
}

// once wraps cancel so repeated calls clear the timer a single time.
func once(cancel func()) func() {
	done := false
	return func() {
		if done {
			return
		}
		done = true
		cancel()
	}
}
