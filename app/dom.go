package app

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/stellar-navigator/carousel"
)

// DotLabel is the accessible name of the dot for slide i.
func DotLabel(i int, s carousel.Slide) string {
	return "Go to slide " + strconv.Itoa(i+1) + ": " + s.Title
}

// domView renders slides into the carousel element and dots into the dot
// navigation element.
type domView struct {
	doc      *js.Object
	carousel *js.Object
	dotNav   *js.Object

	slideEls []*js.Object
	dotEls   []*js.Object

	// onDot is called with the index of a clicked dot
	onDot func(i int)
}

func newDOMView(doc, carouselEl, dotNav *js.Object) *domView {
	return &domView{doc: doc, carousel: carouselEl, dotNav: dotNav}
}

func (v *domView) Mount(slides []carousel.Slide) {
	v.carousel.Set("innerHTML", "")
	v.slideEls = v.slideEls[:0]
	for _, s := range slides {
		el := v.doc.Call("createElement", "div")
		el.Set("className", "carousel-slide")
		el.Call("setAttribute", "tabindex", "0")
		el.Call("setAttribute", "role", "group")
		el.Call("setAttribute", "aria-label", s.Label())
		el.Call("appendChild", v.span("slide-icon", s.Icon))
		el.Call("appendChild", v.span("slide-title", s.Title))
		el.Call("appendChild", v.span("slide-desc", s.Desc))
		v.carousel.Call("appendChild", el)
		v.slideEls = append(v.slideEls, el)
	}

	if v.dotNav == nil {
		return
	}
	v.dotNav.Set("innerHTML", "")
	v.dotEls = v.dotEls[:0]
	for i, s := range slides {
		i := i
		dot := v.doc.Call("createElement", "button")
		dot.Set("className", "dot")
		dot.Call("setAttribute", "aria-label", DotLabel(i, s))
		dot.Call("setAttribute", "tabindex", "0")
		dot.Call("addEventListener", "click", func() {
			if v.onDot != nil {
				v.onDot(i)
			}
		})
		v.dotNav.Call("appendChild", dot)
		v.dotEls = append(v.dotEls, dot)
	}
}

func (v *domView) Apply(placements []carousel.Placement) {
	for _, p := range placements {
		if p.Index >= len(v.slideEls) {
			continue
		}
		el := v.slideEls[p.Index]
		el.Get("style").Set("transform", p.Transform())
		el.Get("classList").Call("toggle", Theme.ActiveClass, p.Active)
		el.Call("setAttribute", "aria-hidden", strconv.FormatBool(!p.Active))
		if p.Index < len(v.dotEls) {
			v.dotEls[p.Index].Get("classList").Call("toggle", Theme.ActiveClass, p.Active)
		}
	}
}

// focusActive moves keyboard focus to the slide at i.
func (v *domView) focusActive(i int) {
	if i >= 0 && i < len(v.slideEls) {
		v.slideEls[i].Call("focus")
	}
}

func (v *domView) span(class, text string) *js.Object {
	el := v.doc.Call("createElement", "span")
	el.Set("className", class)
	el.Set("textContent", text)
	return el
}
