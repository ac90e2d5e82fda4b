//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/stellar-navigator/app"
	"github.com/simukka/stellar-navigator/carousel"
	"github.com/simukka/stellar-navigator/common"
)

func main() {
	doc := js.Global.Get("document")
	seed := uint32(js.Global.Get("Date").Call("now").Int64())
	a := app.New(doc, seed)

	// Script may load after the document is parsed
	if doc.Get("readyState").String() == "loading" {
		doc.Call("addEventListener", "DOMContentLoaded", func() { a.Boot() })
	} else {
		a.Boot()
	}

	// Expose a small control surface for the console
	js.Global.Set("StellarNavigator", map[string]interface{}{
		"next":  func() { withNav(a, func(n *carousel.Navigator) { n.Next() }) },
		"prev":  func() { withNav(a, func(n *carousel.Navigator) { n.Prev() }) },
		"goTo":  func(i int) { withNav(a, func(n *carousel.Navigator) { n.GoTo(i) }) },
		"seed":  func() uint32 { return a.RNG.Seed() },
		"debug": func(on bool) { common.EnableDebug = on },
	})

	select {}
}

// withNav runs fn once the carousel has started.
func withNav(a *app.App, fn func(*carousel.Navigator)) {
	if a.Nav == nil {
		common.DebugWarn("carousel not started yet")
		return
	}
	fn(a.Nav)
}
