package carousel

import (
	"errors"
	"time"

	"github.com/simukka/stellar-navigator/common"
)

// DefaultRadius is used when no radius source is configured.
const DefaultRadius = 400

var (
	ErrNoSlides    = errors.New("carousel: at least one slide is required")
	ErrNoScheduler = errors.New("carousel: scheduler is required")
)

// View renders the carousel. Mount rebuilds the slide and dot elements for a
// new slide order; Apply writes one placement per slide and marks the dot of
// the active placement.
type View interface {
	Mount(slides []Slide)
	Apply(placements []Placement)
}

// RadiusFunc reads the current ring radius in pixels.
type RadiusFunc func() float64

// Sound plays the navigation cue.
type Sound interface {
	PlayNav()
}

// Scheduler runs callbacks on timers. The returned func cancels the timer and
// is safe to call more than once.
type Scheduler interface {
	Every(d time.Duration, fn func()) func()
	After(d time.Duration, fn func()) func()
}

// Options wires the navigator to its collaborators.
type Options struct {
	View      View
	Radius    RadiusFunc
	Sound     Sound
	Scheduler Scheduler
	RNG       *common.SeededRNG
	Speed     Speed

	// Transition, when positive, locks out GoTo for that long after each
	// slide change so a running visual transition is never interrupted.
	Transition time.Duration
}

// Navigator owns the active index and slide order.
type Navigator struct {
	slides []Slide
	active int
	step   float64
	radius float64

	animating bool
	autoplay  bool
	speed     Speed

	view       View
	radiusFn   RadiusFunc
	sound      Sound
	sched      Scheduler
	rng        *common.SeededRNG
	transition time.Duration

	stopAutoplay   func()
	stopTransition func()
}

type nopView struct{}

func (nopView) Mount([]Slide)      {}
func (nopView) Apply([]Placement) {}

type nopSound struct{}

func (nopSound) PlayNav() {}

// New builds a navigator at index 0, mounts the slides and lays them out.
func New(slides []Slide, opts Options) (*Navigator, error) {
	if len(slides) == 0 {
		return nil, ErrNoSlides
	}
	if opts.Scheduler == nil {
		return nil, ErrNoScheduler
	}
	n := &Navigator{
		slides:     append([]Slide(nil), slides...),
		speed:      ParseSpeed(string(opts.Speed)),
		view:       opts.View,
		radiusFn:   opts.Radius,
		sound:      opts.Sound,
		sched:      opts.Scheduler,
		rng:        opts.RNG,
		transition: opts.Transition,
	}
	if n.view == nil {
		n.view = nopView{}
	}
	if n.radiusFn == nil {
		n.radiusFn = func() float64 { return DefaultRadius }
	}
	if n.sound == nil {
		n.sound = nopSound{}
	}
	if n.rng == nil {
		n.rng = common.NewSeededRNG(1)
	}

	n.view.Mount(n.Slides())
	n.Relayout()
	return n, nil
}

// Active is the index of the slide facing the viewer.
func (n *Navigator) Active() int { return n.active }

// Count is the number of slides.
func (n *Navigator) Count() int { return len(n.slides) }

// Slides returns a copy of the current slide order.
func (n *Navigator) Slides() []Slide { return append([]Slide(nil), n.slides...) }

// AngleStep is the spacing computed by the last layout.
func (n *Navigator) AngleStep() float64 { return n.step }

// Radius is the ring radius read by the last layout.
func (n *Navigator) Radius() float64 { return n.radius }

// Autoplaying reports whether the autoplay timer is running.
func (n *Navigator) Autoplaying() bool { return n.autoplay }

// Speed is the current autoplay pace.
func (n *Navigator) Speed() Speed { return n.speed }

// Animating reports whether a slide transition holds the lock.
func (n *Navigator) Animating() bool { return n.animating }

// Relayout recomputes the angle step and radius and re-projects every slide.
// Metrics are read fresh each call so a resize between calls is picked up.
func (n *Navigator) Relayout() {
	n.step = AngleStep(len(n.slides))
	n.radius = n.radiusFn()
	n.view.Apply(Layout(len(n.slides), n.active, n.radius))
}

// GoTo makes slide i active. It reports false when i is already active or a
// transition is still running. Out-of-range indices wrap.
func (n *Navigator) GoTo(i int) bool {
	i = wrap(i, len(n.slides))
	if n.animating || i == n.active {
		return false
	}
	n.active = i
	n.Relayout()
	n.sound.PlayNav()
	n.lock()
	return true
}

// Next advances one slide, wrapping from the last to the first.
func (n *Navigator) Next() bool { return n.GoTo(n.active + 1) }

// Prev goes back one slide, wrapping from the first to the last.
func (n *Navigator) Prev() bool { return n.GoTo(n.active - 1) }

// First jumps to slide 0.
func (n *Navigator) First() bool { return n.GoTo(0) }

// Last jumps to the final slide.
func (n *Navigator) Last() bool { return n.GoTo(len(n.slides) - 1) }

// Dispatch applies a navigation intent.
func (n *Navigator) Dispatch(in Intent) {
	switch in.Kind {
	case IntentNext:
		n.Next()
	case IntentPrev:
		n.Prev()
	case IntentGoTo:
		n.GoTo(in.Index)
	case IntentToggleAutoplay:
		n.ToggleAutoplay()
	}
}

// ToggleAutoplay starts or stops timed advancement.
func (n *Navigator) ToggleAutoplay() {
	n.autoplay = !n.autoplay
	if n.autoplay {
		n.startAutoplay()
	} else {
		n.cancelAutoplay()
	}
}

// SetSpeed changes the autoplay pace. A running timer is replaced, never
// duplicated.
func (n *Navigator) SetSpeed(s Speed) {
	n.speed = ParseSpeed(string(s))
	if n.autoplay {
		n.startAutoplay()
	}
}

// Shuffle permutes the slide order and rebuilds the view. The active index
// keeps its number, so it now names whichever slide landed there.
func (n *Navigator) Shuffle() {
	shuffled := append([]Slide(nil), n.slides...)
	n.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	n.slides = shuffled
	n.view.Mount(n.Slides())
	n.Relayout()
}

// SetSlides replaces the slide set. The active index is clamped to the new
// count.
func (n *Navigator) SetSlides(slides []Slide) error {
	if len(slides) == 0 {
		return ErrNoSlides
	}
	n.slides = append([]Slide(nil), slides...)
	if n.active >= len(n.slides) {
		n.active = len(n.slides) - 1
	}
	n.view.Mount(n.Slides())
	n.Relayout()
	return nil
}

// Reset returns to slide 0. Autoplay and slide order are left alone.
func (n *Navigator) Reset() {
	n.active = 0
	n.Relayout()
}

// Stop cancels every timer the navigator owns.
func (n *Navigator) Stop() {
	n.autoplay = false
	n.cancelAutoplay()
	n.unlock()
}

func (n *Navigator) startAutoplay() {
	n.cancelAutoplay()
	n.stopAutoplay = n.sched.Every(n.speed.Interval(), func() { n.Next() })
}

func (n *Navigator) cancelAutoplay() {
	if n.stopAutoplay != nil {
		n.stopAutoplay()
		n.stopAutoplay = nil
	}
}

func (n *Navigator) lock() {
	if n.transition <= 0 {
		return
	}
	n.animating = true
	n.stopTransition = n.sched.After(n.transition, func() {
		n.animating = false
		n.stopTransition = nil
	})
}

func (n *Navigator) unlock() {
	if n.stopTransition != nil {
		n.stopTransition()
		n.stopTransition = nil
	}
	n.animating = false
}

func wrap(i, count int) int {
	return ((i % count) + count) % count
}
