package carousel

import "time"

// fakeScheduler is a virtual clock. Timers fire only from Advance, in
// deadline order.
type fakeScheduler struct {
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	at        time.Duration
	every     time.Duration
	fn        func()
	cancelled bool
}

func (f *fakeScheduler) add(d, every time.Duration, fn func()) func() {
	t := &fakeTimer{at: f.now + d, every: every, fn: fn}
	f.timers = append(f.timers, t)
	return func() { t.cancelled = true }
}

func (f *fakeScheduler) Every(d time.Duration, fn func()) func() { return f.add(d, d, fn) }

func (f *fakeScheduler) After(d time.Duration, fn func()) func() { return f.add(d, 0, fn) }

func (f *fakeScheduler) Advance(d time.Duration) {
	end := f.now + d
	for {
		var next *fakeTimer
		for _, t := range f.timers {
			if t.cancelled || t.at > end {
				continue
			}
			if next == nil || t.at < next.at {
				next = t
			}
		}
		if next == nil {
			break
		}
		f.now = next.at
		if next.every > 0 {
			next.at += next.every
		} else {
			next.cancelled = true
		}
		next.fn()
	}
	f.now = end
}

// live counts repeating timers that have not been cancelled.
func (f *fakeScheduler) live() int {
	n := 0
	for _, t := range f.timers {
		if !t.cancelled && t.every > 0 {
			n++
		}
	}
	return n
}

type fakeView struct {
	mounts     int
	mounted    []Slide
	placements []Placement
}

func (v *fakeView) Mount(slides []Slide) {
	v.mounts++
	v.mounted = slides
}

func (v *fakeView) Apply(p []Placement) {
	v.placements = p
}

func (v *fakeView) activeIndices() []int {
	var out []int
	for _, p := range v.placements {
		if p.Active {
			out = append(out, p.Index)
		}
	}
	return out
}

type fakeSound struct {
	plays int
}

func (s *fakeSound) PlayNav() { s.plays++ }
