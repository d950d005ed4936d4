//go:build js && wasm

package main

import (
	"strings"
	"syscall/js"

	"bull/internal/endpoint"
)

// pageQuery returns location.search without the leading '?'
func pageQuery() string {
	search := js.Global().Get("location").Get("search").String()
	return strings.TrimPrefix(search, "?")
}

// presetValue reports a binding made by a script that ran earlier.
// Falsy values count as unbound.
func presetValue() (string, bool) {
	v := js.Global().Get(endpoint.GlobalName)
	if !v.Truthy() {
		return "", false
	}
	return v.String(), true
}

func bindGlobal(value string) {
	js.Global().Set(endpoint.GlobalName, value)
}
