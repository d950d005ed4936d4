package commands

import (
	"fmt"
	"strings"

	"bull/internal/client/display"
)

func (r *Registry) registerAPICommands() {
	r.Register(&Command{
		Name:        "health",
		ShortName:   ".",
		Description: "Check API health",
		Usage:       "health",
		Handler:     healthHandler,
	})

	r.Register(&Command{
		Name:        "packages",
		ShortName:   "p",
		Description: "Search packages by departure date",
		Usage:       "packages <date>",
		Handler:     packagesHandler,
	})
}

func healthHandler(s Session, args []string) error {
	resp, err := s.GetClient().Health()
	if err != nil {
		return err
	}

	status := display.Green + "ok" + display.Reset
	if !resp.OK {
		status = display.Red + "unhealthy" + display.Reset
	}
	fmt.Printf("%sAPI Health:%s\n", display.Cyan, display.Reset)
	fmt.Printf("  Endpoint: %s\n", display.FormatEndpoint(s.Endpoint()))
	fmt.Printf("  Status:   %s\n", status)
	return nil
}

func packagesHandler(s Session, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: packages <date>")
	}
	date := strings.Join(args, " ")

	resp, err := s.GetClient().Packages(date)
	if err != nil {
		return err
	}

	if !resp.Found || len(resp.Data) == 0 {
		fmt.Printf("%sNo packages for %s%s\n", display.Yellow, date, display.Reset)
		return nil
	}

	fmt.Printf("%sFound %d package(s) for %s:%s\n", display.Cyan, len(resp.Data), date, display.Reset)
	for _, pkg := range resp.Data {
		display.PrettyPrintJSON(pkg)
	}
	return nil
}
