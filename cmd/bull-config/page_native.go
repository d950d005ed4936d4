//go:build !js || !wasm

package main

import (
	"fmt"
	"log"
	"net/url"
	"os"
)

// pageQuery takes the page address from the first argument
func pageQuery() string {
	if len(os.Args) < 2 {
		return ""
	}
	page, err := url.Parse(os.Args[1])
	if err != nil {
		log.Fatalf("Invalid page URL %q: %v", os.Args[1], err)
	}
	return page.RawQuery
}

// No earlier script exists outside a page
func presetValue() (string, bool) {
	return "", false
}

func bindGlobal(value string) {
	fmt.Println(value)
}
