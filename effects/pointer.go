package effects

import (
	"strconv"
	"strings"

	"github.com/gopherjs/gopherjs/js"
)

// Cursor follower geometry.
const (
	CursorHalfSize = 16
	ParallaxRange  = 32
)

const (
	pressScale   = " scale(0.7)"
	releaseScale = " scale(1)"
)

// Cursor tracks the custom pointer indicator's transform and opacity.
type Cursor struct {
	Transform string
	Opacity   string
}

// Move centres the indicator on the pointer.
func (c *Cursor) Move(x, y float64) {
	c.Transform = "translate(" + px(x-CursorHalfSize) + "," + px(y-CursorHalfSize) + ")" + releaseScale
	c.Opacity = "0.8"
}

// Press shrinks the indicator.
func (c *Cursor) Press() {
	c.Transform += pressScale
	c.Opacity = "0.5"
}

// Release restores the indicator size.
func (c *Cursor) Release() {
	c.Transform = strings.Replace(c.Transform, pressScale, releaseScale, 1)
	c.Opacity = "0.8"
}

// BindCursor drives el from document pointer events.
func BindCursor(el *js.Object) *Cursor {
	c := &Cursor{}
	doc := js.Global.Get("document")
	apply := func() {
		el.Get("style").Set("transform", c.Transform)
		el.Get("style").Set("opacity", c.Opacity)
	}
	doc.Call("addEventListener", "mousemove", func(e *js.Object) {
		c.Move(e.Get("clientX").Float(), e.Get("clientY").Float())
		apply()
	})
	doc.Call("addEventListener", "mousedown", func() {
		c.Press()
		apply()
	})
	doc.Call("addEventListener", "mouseup", func() {
		c.Release()
		apply()
	})
	return c
}

// ParallaxOffset shifts a container by up to half of ParallaxRange towards
// the pointer, relative to the viewport centre.
func ParallaxOffset(x, y, w, h float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	return (x/w - 0.5) * ParallaxRange, (y/h - 0.5) * ParallaxRange
}

// ParallaxTransform renders an offset as a CSS transform.
func ParallaxTransform(dx, dy float64) string {
	return "translate(" + px(dx) + "," + px(dy) + ")"
}

// BindParallax offsets container while the pointer is over it.
func BindParallax(container *js.Object) {
	container.Call("addEventListener", "mousemove", func(e *js.Object) {
		dx, dy := ParallaxOffset(
			e.Get("clientX").Float(), e.Get("clientY").Float(),
			js.Global.Get("innerWidth").Float(), js.Global.Get("innerHeight").Float(),
		)
		container.Get("style").Set("transform", ParallaxTransform(dx, dy))
	})
	container.Call("addEventListener", "mouseleave", func() {
		container.Get("style").Set("transform", "")
	})
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
