// Package main is the page bootstrap that picks the Bull API endpoint.
//
// Built for js/wasm it runs once on page load, reads api_url from the page
// address and binds window.BULL_API_URL unless another script already did.
// Native builds resolve a page URL given on the command line, for manual
// testing.
package main

import (
	"log"

	"bull/internal/endpoint"
)

func main() {
	log.SetFlags(0)

	var b endpoint.Binding
	if preset, ok := presetValue(); ok {
		b.Publish(endpoint.Endpoint{Source: endpoint.SourcePreset, Value: preset})
	}

	ep := endpoint.ResolveQuery(pageQuery())
	bound, stored := endpoint.Publish(&b, ep, log.Default())
	if stored {
		bindGlobal(bound.Value)
	}
}
