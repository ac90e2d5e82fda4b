package app

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/stellar-navigator/carousel"
	"github.com/simukka/stellar-navigator/common"
	"github.com/simukka/stellar-navigator/easing"
)

// Loader simulates asset loading with random progress steps.
type Loader struct {
	progress float64
	done     bool
	rng      *common.SeededRNG
}

// NewLoader creates a loader at 0%.
func NewLoader(rng *common.SeededRNG) *Loader {
	return &Loader{rng: rng}
}

// Done reports whether progress reached 100%.
func (l *Loader) Done() bool {
	return l.done
}

// Percent is the whole-number progress.
func (l *Loader) Percent() int {
	return int(math.Floor(l.progress))
}

// Tick advances progress by up to PageConfig.LoadingStepMax, clamped at 100.
func (l *Loader) Tick() (int, bool) {
	if l.done {
		return 100, true
	}
	l.progress += l.rng.Float() * PageConfig.LoadingStepMax
	if l.progress >= 100 {
		l.progress = 100
		l.done = true
	}
	return l.Percent(), l.done
}

// LoadingText is the status line for a progress value.
func LoadingText(percent int) string {
	return "Loading assets... " + strconv.Itoa(percent) + "%"
}

// FadeOpacity is the loading screen opacity elapsed into a fade of length total.
func FadeOpacity(elapsed, total time.Duration) float64 {
	if total <= 0 || elapsed >= total {
		return 0
	}
	if elapsed <= 0 {
		return 1
	}
	return 1 - easing.Cubic(float64(elapsed)/float64(total))
}

// LoadingView renders loader progress.
type LoadingView interface {
	ShowProgress(percent int)
	Hide()
}

// RunLoading ticks l on sched until it completes, then hides view and calls
// ready after PageConfig.StartDelay. The returned func aborts loading.
func RunLoading(l *Loader, view LoadingView, sched carousel.Scheduler, ready func()) func() {
	var cancel func()
	cancel = sched.Every(PageConfig.LoadingTick, func() {
		if l.Done() {
			return
		}
		p, done := l.Tick()
		if done {
			cancel()
			view.Hide()
			sched.After(PageConfig.StartDelay, ready)
		}
		view.ShowProgress(p)
	})
	return cancel
}

// loadingScreen animates the page's loading overlay. The bar width follows
// progress on a spring; hiding fades the overlay out and removes it.
type loadingScreen struct {
	screen *js.Object
	bar    *js.Object
	text   *js.Object

	spring    *easing.Spring
	target    float64
	loop      *common.FrameLoop
	fading    bool
	fadeStart float64
}

func newLoadingScreen(doc *js.Object) LoadingView {
	s := &loadingScreen{
		screen: byID(doc, PageConfig.LoadingScreenID),
		bar:    byID(doc, PageConfig.LoadingBarID),
		text:   byID(doc, PageConfig.LoadingTextID),
		spring: easing.NewSpring(60, 6, 1),
	}
	if s.screen == nil {
		common.DebugWarn("loading screen not found")
		return nopLoading{}
	}
	s.loop = common.NewFrameLoop(s.frame)
	return s
}

func (s *loadingScreen) ShowProgress(percent int) {
	s.target = float64(percent)
	if s.text != nil {
		s.text.Set("textContent", LoadingText(percent))
	}
	s.loop.Start()
}

func (s *loadingScreen) Hide() {
	s.fading = true
	s.fadeStart = -1
	s.loop.Start()
}

func (s *loadingScreen) frame(now float64) {
	if s.bar != nil {
		s.bar.Get("style").Set("width", fmt.Sprintf("%.1f%%", s.spring.Step(s.target)))
	}
	if !s.fading {
		return
	}
	if s.fadeStart < 0 {
		s.fadeStart = now
	}
	elapsed := time.Duration((now - s.fadeStart) * float64(time.Millisecond))
	s.screen.Get("style").Set("opacity", FadeOpacity(elapsed, PageConfig.LoadingFade))
	if elapsed >= PageConfig.LoadingFade {
		s.screen.Get("style").Set("display", "none")
		s.loop.Stop()
	}
}

type nopLoading struct{}

func (nopLoading) ShowProgress(int) {}
func (nopLoading) Hide()            {}

// byID returns the element with id, or nil when the page has none.
func byID(doc *js.Object, id string) *js.Object {
	el := doc.Call("getElementById", id)
	if el == nil || el == js.Undefined {
		return nil
	}
	return el
}
