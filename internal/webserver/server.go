// Package webserver serves the Bull web app and the per-page API endpoint
// configuration it loads before any other script.
package webserver

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"bull/internal/core"
	"bull/internal/endpoint"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

//go:embed web
var webFS embed.FS

// configScript mirrors the page bootstrap: bind only if nothing else did
const configScript = `(function() {
  if (!window.%[1]s) {
    window.%[1]s = %[2]s;
  }
  console.log('%[1]s:', window.%[1]s);
})();
`

// New builds the web UI application. Pages without api_url get the endpoint in api.
func New(api endpoint.Config) (*fiber.App, error) {
	webContent, err := fs.Sub(webFS, "web")
	if err != nil {
		return nil, fmt.Errorf("failed to create web sub-filesystem: %w", err)
	}

	resolver := endpoint.Resolver{Default: api.BaseURL()}

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} WEB ${status} ${method} ${path} ${latency} ${locals:requestid}\n",
	}))
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(core.HealthResponse{OK: true})
	})

	// Endpoint config, resolved from the query of each request
	app.Get("/config", func(c *fiber.Ctx) error {
		ep := resolver.ResolveQuery(string(c.Request().URI().QueryString()))
		return c.JSON(core.ConfigResponse{
			APIURL: ep.Value,
			Source: ep.Source.String(),
		})
	})

	app.Get("/config.js", func(c *fiber.Ctx) error {
		ep := resolver.ResolveQuery(string(c.Request().URI().QueryString()))
		value, err := json.Marshal(ep.Value)
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, "application/javascript; charset=utf-8")
		c.Set(fiber.HeaderCacheControl, "no-store")
		return c.SendString(fmt.Sprintf(configScript, endpoint.GlobalName, value))
	})

	// The API lives elsewhere; don't answer API paths with the SPA shell
	app.All("/api/*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(core.ErrorResponse{
			Error: "API endpoint not found",
			Code:  core.ErrNotFound,
		})
	})

	// Serve static files from the embedded 'web' directory
	app.Get("*", func(c *fiber.Ctx) error {
		path := c.Path()
		if path == "/" {
			path = "/index.html"
		}

		// The path for the embedded filesystem must not have a leading slash
		fsPath := strings.TrimPrefix(path, "/")

		data, err := fs.ReadFile(webContent, fsPath)
		if err != nil {
			// SPA fallback for client-side routes
			data, err = fs.ReadFile(webContent, "index.html")
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "index.html not found")
			}
			fsPath = "index.html"
		}

		c.Set(fiber.HeaderContentType, contentType(fsPath))
		return c.Send(data)
	})

	return app, nil
}

func contentType(path string) string {
	switch {
	case strings.HasSuffix(path, ".html"):
		return "text/html; charset=utf-8"
	case strings.HasSuffix(path, ".js"):
		return "application/javascript; charset=utf-8"
	case strings.HasSuffix(path, ".css"):
		return "text/css; charset=utf-8"
	case strings.HasSuffix(path, ".wasm"):
		return "application/wasm"
	case strings.HasSuffix(path, ".svg"):
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	errCode := core.ErrInternalError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		switch {
		case code == fiber.StatusNotFound:
			errCode = core.ErrNotFound
		case code < fiber.StatusInternalServerError:
			errCode = core.ErrInvalidRequest
		}
	}

	return c.Status(code).JSON(core.ErrorResponse{
		Error: err.Error(),
		Code:  errCode,
	})
}
