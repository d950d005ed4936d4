package endpoint

import (
	"net/url"
	"sync"
)

// Sink receives the diagnostic line written on publish. *log.Logger satisfies it.
type Sink interface {
	Printf(format string, v ...any)
}

// Binding holds the published endpoint. Only the first Publish stores a value.
type Binding struct {
	mu  sync.Mutex
	set bool
	ep  Endpoint
}

// Publish stores e if nothing is bound yet. It returns the bound endpoint and
// whether this call stored it.
func (b *Binding) Publish(e Endpoint) (Endpoint, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.set {
		return b.ep, false
	}
	b.ep = e
	b.set = true
	return e, true
}

// Load returns the bound endpoint, if any
func (b *Binding) Load() (Endpoint, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ep, b.set
}

// Publish binds e unless b already holds a value, then reports the bound value to sink.
func Publish(b *Binding, e Endpoint, sink Sink) (Endpoint, bool) {
	bound, stored := b.Publish(e)
	if sink != nil {
		sink.Printf("%s: %s (%s)", GlobalName, bound.Value, bound.Source)
	}
	return bound, stored
}

// Config carries the API endpoint to the components that talk to the API
type Config struct {
	API Endpoint
}

// BaseURL returns the API base URL as resolved
func (c Config) BaseURL() string {
	return c.API.Value
}

// NewConfig resolves the endpoint for page, publishes it into b and returns
// the bound value. Call it once at startup and pass the Config on.
func NewConfig(r Resolver, b *Binding, page *url.URL, sink Sink) Config {
	bound, _ := Publish(b, r.Resolve(page), sink)
	return Config{API: bound}
}
