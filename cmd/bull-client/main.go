// Package main implements an interactive debugging client for the Bull API.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"strings"

	"bull/internal/client/commands"
	"bull/internal/client/display"
	"bull/internal/client/session"
	"bull/internal/endpoint"

	"github.com/chzyer/readline"
)

func main() {
	var (
		page    = flag.String("page", "", "Page address whose api_url query parameter selects the API")
		noColor = flag.Bool("no-color", false, "Disable colored output")
	)
	flag.Parse()

	if *noColor || !display.IsTerminal(os.Stdout) {
		display.Disable()
	}

	var pageURL *url.URL
	if *page != "" {
		var err error
		pageURL, err = url.Parse(*page)
		if err != nil {
			log.Fatalf("Invalid page URL: %v", err)
		}
	}

	var binding endpoint.Binding
	cfg := endpoint.NewConfig(endpoint.Resolver{}, &binding, pageURL, log.Default())
	s := session.New(cfg)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          display.Prompt("bull"),
		HistoryFile:     ".bull_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Printf("%s%s%s\n", display.Red, err.Error(), display.Reset)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Printf("%sBull Debug Client%s\n", display.Cyan, display.Reset)
	fmt.Printf("%sAPI: %s%s\n", display.Cyan, display.FormatEndpoint(s.Endpoint()), display.Reset)
	fmt.Printf("Type 'help' for commands\n\n")

	registry := commands.NewRegistry(s)

	for {
		rl.SetPrompt(buildPrompt(s))

		line, err := rl.Readline()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line == "exit" || line == "quit" || line == "x" {
			break
		}

		if strings.HasSuffix(line, " -v") {
			s.Verbose = true
			line = strings.TrimSuffix(line, " -v")
		} else {
			s.Verbose = false
		}

		registry.Execute(line)
	}
}

func buildPrompt(s *session.Session) string {
	ep := s.Endpoint()
	if ep.Source == endpoint.SourceDefault {
		return display.Prompt("bull")
	}

	host := ep.Value
	if u, err := url.Parse(ep.Value); err == nil && u.Host != "" {
		host = u.Host
	}
	return display.Prompt("bull" + display.Yellow + " [" + display.Magenta + host + display.Yellow + "]")
}
