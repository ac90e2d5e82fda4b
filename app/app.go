package app

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/stellar-navigator/audio"
	"github.com/simukka/stellar-navigator/carousel"
	"github.com/simukka/stellar-navigator/common"
	"github.com/simukka/stellar-navigator/effects"
	"github.com/simukka/stellar-navigator/perf"
)

// App holds everything running on the page.
type App struct {
	RNG *common.SeededRNG

	Nav       *carousel.Navigator
	Audio     *audio.Manager
	Stars     *effects.Starfield
	Particles *effects.ParticleField
	Cursor    *effects.Cursor
	Perf      *perf.Monitor
	Theme     ThemeSwitch

	doc   *js.Object
	sched carousel.Scheduler
	view  *domView

	touch carousel.TouchTracker
	drag  carousel.DragTracker

	// Document listeners installed for the duration of a mouse drag
	dragMove *js.Object
	dragUp   *js.Object
}

// New creates the app for doc. Nothing touches the page until Boot.
func New(doc *js.Object, seed uint32) *App {
	rng := common.NewSeededRNG(seed)
	return &App{
		RNG:       rng,
		Audio:     audio.NewManager(audio.BrowserContext),
		Stars:     effects.NewStarfield(PageConfig.StarLayers, rng),
		Particles: effects.NewParticleField(PageConfig.Particles, rng),
		doc:       doc,
		sched:     common.BrowserScheduler{},
	}
}

// Boot runs the loading screen and starts the app once it is gone.
func (a *App) Boot() {
	RunLoading(NewLoader(a.RNG), newLoadingScreen(a.doc), a.sched, a.start)
}

func (a *App) start() {
	a.startEffects()

	// Browsers may keep the context suspended until a user gesture
	if !a.Audio.Init() {
		common.Debug("continuing without sound")
	}

	if err := a.startCarousel(); err != nil {
		common.DebugError("carousel disabled:", err)
		return
	}
	a.bindControls()
	a.bindAccessibility()

	if el := byID(a.doc, PageConfig.PerfID); el != nil {
		a.Perf = perf.NewMonitor(js.Global.Get("performance").Call("now").Float(), perf.BrowserHeap)
		a.Perf.Start(el)
	}
	common.Debug("stellar navigator ready, seed", a.RNG.Seed())
}

func (a *App) startEffects() {
	if el := byID(a.doc, PageConfig.StarfieldID); el != nil {
		a.Stars.Attach(el)
	}
	if el := byID(a.doc, PageConfig.ParticlesID); el != nil {
		a.Particles.Attach(el)
	}
	if el := byID(a.doc, PageConfig.CursorID); el != nil {
		a.Cursor = effects.BindCursor(el)
	}
	if el := byID(a.doc, PageConfig.ContainerID); el != nil {
		effects.BindParallax(el)
	}
}

func (a *App) startCarousel() error {
	el := byID(a.doc, PageConfig.CarouselID)
	if el == nil {
		return errMissing(PageConfig.CarouselID)
	}
	a.view = newDOMView(a.doc, el, byID(a.doc, PageConfig.DotNavID))

	nav, err := carousel.New(carousel.DefaultSlides, carousel.Options{
		View:       a.view,
		Radius:     cssRadius(a.doc),
		Sound:      a.Audio,
		Scheduler:  a.sched,
		RNG:        a.RNG,
		Speed:      carousel.SpeedNormal,
		Transition: PageConfig.Transition,
	})
	if err != nil {
		return err
	}
	a.Nav = nav
	a.view.onDot = func(i int) { a.Nav.GoTo(i) }

	a.bindCarouselInput(el)
	return nil
}
