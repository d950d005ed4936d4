//go:build !js || !wasm

package main

import (
	"os"
	"testing"
)

func TestPageQuery(t *testing.T) {
	saved := os.Args
	defer func() { os.Args = saved }()

	os.Args = []string{"bull-config"}
	if q := pageQuery(); q != "" {
		t.Errorf("no argument: query = %q", q)
	}

	os.Args = []string{"bull-config", "https://example.com/?api_url=http://localhost:8080"}
	if q := pageQuery(); q != "api_url=http://localhost:8080" {
		t.Errorf("query = %q", q)
	}

	if _, ok := presetValue(); ok {
		t.Error("native build reported a preset binding")
	}
}
