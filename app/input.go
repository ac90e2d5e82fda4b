package app

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/stellar-navigator/carousel"
	"github.com/simukka/stellar-navigator/common"
)

// bindCarouselInput routes keyboard, wheel, touch and mouse-drag input on the
// carousel element to the navigator.
func (a *App) bindCarouselInput(el *js.Object) {
	a.doc.Call("addEventListener", "keydown", func(e *js.Object) {
		mods := carousel.Modifiers{
			Alt:  e.Get("altKey").Bool(),
			Ctrl: e.Get("ctrlKey").Bool(),
			Meta: e.Get("metaKey").Bool(),
		}
		if in, ok := carousel.KeyIntent(e.Get("key").String(), mods, a.Nav.Count()); ok {
			a.Nav.Dispatch(in)
		}
	})

	el.Call("addEventListener", "wheel", func(e *js.Object) {
		if in, ok := carousel.WheelIntent(e.Get("deltaX").Float(), e.Get("deltaY").Float()); ok {
			a.Nav.Dispatch(in)
		}
	})

	passive := js.M{"passive": true}
	el.Call("addEventListener", "touchstart", func(e *js.Object) {
		t := e.Get("touches").Index(0)
		a.touch.Start(t.Get("clientX").Float(), t.Get("clientY").Float())
	}, passive)
	el.Call("addEventListener", "touchmove", func(e *js.Object) {
		t := e.Get("touches").Index(0)
		a.touch.Move(t.Get("clientX").Float(), t.Get("clientY").Float())
	}, passive)
	el.Call("addEventListener", "touchend", func() {
		if in, ok := a.touch.End(); ok {
			a.Nav.Dispatch(in)
		}
	})

	a.dragMove = js.MakeFunc(func(_ *js.Object, args []*js.Object) interface{} {
		if in, ok := a.drag.Move(args[0].Get("clientX").Float()); ok {
			a.Nav.Dispatch(in)
		}
		return nil
	})
	a.dragUp = js.MakeFunc(func(*js.Object, []*js.Object) interface{} {
		a.drag.Up()
		a.doc.Call("removeEventListener", "mousemove", a.dragMove)
		a.doc.Call("removeEventListener", "mouseup", a.dragUp)
		return nil
	})
	el.Call("addEventListener", "mousedown", func(e *js.Object) {
		if !a.drag.Down(e.Get("button").Int(), e.Get("clientX").Float()) {
			return
		}
		a.doc.Call("addEventListener", "mousemove", a.dragMove)
		a.doc.Call("addEventListener", "mouseup", a.dragUp)
	})

	js.Global.Call("addEventListener", "resize", func() {
		a.Nav.Relayout()
	})
}

// bindControls wires the page buttons and inputs.
func (a *App) bindControls() {
	a.onClick(PageConfig.PrevID, func() { a.Nav.Prev() })
	a.onClick(PageConfig.NextID, func() { a.Nav.Next() })
	a.onClick(PageConfig.AutoplayID, func() {
		a.Nav.ToggleAutoplay()
		if el := byID(a.doc, PageConfig.AutoplayID); el != nil {
			el.Call("setAttribute", "aria-pressed", strconv.FormatBool(a.Nav.Autoplaying()))
		}
	})
	a.onClick(PageConfig.ShuffleID, func() { a.Nav.Shuffle() })
	a.onClick(PageConfig.ResetID, func() { a.Nav.Reset() })

	if el := byID(a.doc, PageConfig.SpeedID); el != nil {
		el.Call("addEventListener", "change", func(e *js.Object) {
			a.Nav.SetSpeed(carousel.ParseSpeed(e.Get("target").Get("value").String()))
		})
	}

	a.onClick(PageConfig.ThemeID, a.switchTheme)

	a.onClick(PageConfig.MuteID, func() {
		muted := a.Audio.ToggleMute()
		if el := byID(a.doc, PageConfig.MuteID); el != nil {
			el.Set("textContent", MuteIcon(muted))
		}
	})
	if el := byID(a.doc, PageConfig.VolumeID); el != nil {
		el.Call("addEventListener", "input", func(e *js.Object) {
			v, err := strconv.ParseFloat(e.Get("target").Get("value").String(), 64)
			if err != nil {
				common.DebugWarn("bad volume value:", err)
				return
			}
			a.Audio.SetVolume(v)
		})
	}

	// First gesture lifts the autoplay policy suspension
	a.doc.Call("addEventListener", "click", func() { a.Audio.Resume() })
}

func (a *App) switchTheme() {
	look := a.Theme.Toggle()
	body := a.doc.Get("body")
	body.Get("classList").Call("toggle", Theme.DarkClass, look.Dark)
	body.Get("style").Set("background", look.Background)
	if el := byID(a.doc, PageConfig.ThemeID); el != nil {
		el.Set("textContent", look.Icon)
	}
}

// bindAccessibility forwards carousel focus to the active slide and honours
// the reduced motion preference.
func (a *App) bindAccessibility() {
	if el := byID(a.doc, PageConfig.CarouselID); el != nil {
		el.Call("addEventListener", "focus", func() {
			a.view.focusActive(a.Nav.Active())
		})
	}
	mq := js.Global.Call("matchMedia", "(prefers-reduced-motion: reduce)")
	if mq != nil && mq.Get("matches").Bool() {
		a.doc.Get("body").Get("classList").Call("add", Theme.ReducedMotionClass)
	}
}

func (a *App) onClick(id string, fn func()) {
	el := byID(a.doc, id)
	if el == nil {
		common.DebugWarn("control not found:", id)
		return
	}
	el.Call("addEventListener", "click", fn)
}
