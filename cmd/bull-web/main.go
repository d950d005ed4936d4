// Package main serves the Bull web app together with the endpoint
// configuration each page loads first.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bull/internal/endpoint"
	"bull/internal/webserver"
)

const (
	gracefulShutdownTimeout = time.Second * 5
)

func main() {
	var (
		host          = flag.String("host", "localhost", "Web UI server host")
		port          = flag.Int("port", 9090, "Web UI server port")
		defaultAPIURL = flag.String("default-api-url", endpoint.DefaultAPIURL, "API URL for pages without api_url")
	)
	flag.Parse()

	cfg := webserver.Config{
		Host:          *host,
		Port:          *port,
		DefaultAPIURL: *defaultAPIURL,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Error: %v", err)
	}

	// Server-wide default for pages that carry no api_url
	var binding endpoint.Binding
	api := endpoint.NewConfig(endpoint.Resolver{Default: cfg.DefaultAPIURL}, &binding, nil, log.Default())

	app, err := webserver.New(api)
	if err != nil {
		log.Fatalf("Failed to initialize web server: %v", err)
	}

	go func() {
		log.Printf("Bull Web UI starting...")
		log.Printf("Web UI Listening on: http://%s", cfg.Addr())
		log.Printf("Endpoint config: http://%s/config[.js]?%s=<url>", cfg.Addr(), endpoint.QueryKey)
		log.Printf("Health: http://%s/health", cfg.Addr())

		if err := app.Listen(cfg.Addr()); err != nil {
			log.Printf("Web UI server listen error: %v", err)
		}
	}()

	// Wait for an interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
