package webserver

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config is the startup configuration of the web UI server
type Config struct {
	Host          string `validate:"required,hostname|ip"`
	Port          int    `validate:"min=1,max=65535"`
	DefaultAPIURL string `validate:"required,url"` // used when a page has no api_url
}

// Validate checks the startup configuration. Per-page overrides are not validated.
func (c Config) Validate() error {
	errs := validate.Struct(c)
	if errs == nil {
		return nil
	}

	verrs, ok := errs.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("invalid config: %w", errs)
	}

	var details strings.Builder
	for _, err := range verrs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch err.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", err.Field()))
		case "min":
			details.WriteString(fmt.Sprintf("%s must be at least %s", err.Field(), err.Param()))
		case "max":
			details.WriteString(fmt.Sprintf("%s must be at most %s", err.Field(), err.Param()))
		case "url":
			details.WriteString(fmt.Sprintf("%s must be an absolute URL", err.Field()))
		case "hostname|ip":
			details.WriteString(fmt.Sprintf("%s must be a hostname or IP address", err.Field()))
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", err.Field(), err.Tag()))
		}
	}
	return fmt.Errorf("invalid config: %s", details.String())
}

// Addr returns the listen address
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
