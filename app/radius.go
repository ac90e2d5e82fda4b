package app

import (
	"strconv"
	"strings"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/stellar-navigator/carousel"
)

// ParseRadius reads the leading integer of a CSS length such as "400px".
// Anything unparsable or non-positive yields carousel.DefaultRadius.
func ParseRadius(v string) float64 {
	v = strings.TrimSpace(v)
	end := 0
	if end < len(v) && (v[end] == '-' || v[end] == '+') {
		end++
	}
	for end < len(v) && v[end] >= '0' && v[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(v[:end])
	if err != nil || n <= 0 {
		return carousel.DefaultRadius
	}
	return float64(n)
}

// cssRadius reads the radius variable from the root element's computed style.
func cssRadius(doc *js.Object) carousel.RadiusFunc {
	return func() float64 {
		style := js.Global.Call("getComputedStyle", doc.Get("documentElement"))
		return ParseRadius(style.Call("getPropertyValue", PageConfig.RadiusVar).String())
	}
}
