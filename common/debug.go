package common

import (
	"log"

	"github.com/gopherjs/gopherjs/js"
)

var EnableDebug = true

// console returns the browser console, or nil when running without a JS runtime.
func console() *js.Object {
	if js.Global == nil {
		return nil
	}
	c := js.Global.Get("console")
	if c == js.Undefined {
		return nil
	}
	return c
}

func emit(method string, args ...interface{}) {
	if c := console(); c != nil {
		c.Call(method, args...)
		return
	}
	log.Println(append([]interface{}{method + ":"}, args...)...)
}

// Debug logs a message to the browser console if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		emit("log", args...)
	}
}

// DebugWarn logs a warning. Warnings are printed even with debug mode off.
func DebugWarn(args ...interface{}) {
	emit("warn", args...)
}

// DebugError logs an error to the browser console.
func DebugError(args ...interface{}) {
	emit("error", args...)
}
