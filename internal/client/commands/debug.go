package commands

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"bull/internal/client/display"
	"bull/internal/endpoint"
)

func (r *Registry) registerDebugCommands() {
	r.Register(&Command{
		Name:        "url",
		ShortName:   "/",
		Description: "Show or set API base URL",
		Usage:       "url [apiUrl]",
		Handler:     urlHandler,
	})

	r.Register(&Command{
		Name:        "raw",
		ShortName:   ":",
		Description: "Send raw API request",
		Usage:       "raw <method> <path> [json-body]",
		Handler:     rawRequestHandler,
	})

	r.Register(&Command{
		Name:        "clear",
		ShortName:   "-",
		Description: "Clear screen",
		Usage:       "clear",
		Handler:     clearHandler,
	})
}

func urlHandler(s Session, args []string) error {
	if len(args) == 0 {
		fmt.Printf("Current API URL: %s\n", display.FormatEndpoint(s.Endpoint()))
		return nil
	}

	// Taken as typed, like the api_url page parameter
	ep := endpoint.Endpoint{Source: endpoint.SourceOverride, Value: args[0]}
	s.SetEndpoint(ep)

	fmt.Printf("%sAPI URL set to: %s%s\n", display.Cyan, ep.Value, display.Reset)
	return nil
}

func rawRequestHandler(s Session, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: raw <method> <path> [json-body]")
	}

	method := strings.ToUpper(args[0])
	path := args[1]

	body := ""
	if len(args) > 2 {
		body = strings.Join(args[2:], " ")
	}

	return s.GetClient().RawRequest(method, path, body)
}

func clearHandler(s Session, args []string) error {
	cmd := exec.Command("clear")
	cmd.Stdout = os.Stdout
	return cmd.Run()
}
